package services

import (
	"testing"
	"time"

	"lms/models"
	"lms/models/training"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestGroupWithMember(t *testing.T, db *gorm.DB, name string, userID uint) models.UserGroup {
	t.Helper()

	group := models.UserGroup{Name: name}
	require.NoError(t, db.Create(&group).Error)

	membership := models.GroupMembership{
		UserID:     userID,
		GroupID:    group.ID,
		IsActive:   true,
		DateJoined: time.Now(),
	}
	require.NoError(t, db.Create(&membership).Error)

	return group
}

func assignModuleToGroup(t *testing.T, db *gorm.DB, groupID, moduleID uint) {
	t.Helper()

	assignment := training.GroupAssignment{
		GroupID:    groupID,
		ModuleID:   moduleID,
		AssignedAt: time.Now(),
		AssignedBy: 1,
	}
	require.NoError(t, db.Create(&assignment).Error)
}

func TestResolveAssignedModules_UnionOfDirectAndGroup(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "union@test.local")

	direct := createTestModule(t, db, "Direct Module", 2)
	inherited := createTestModule(t, db, "Group Module", 1)
	both := createTestModule(t, db, "Shared Module", 3)

	assignModuleDirect(t, db, user.ID, direct.ID)
	assignModuleDirect(t, db, user.ID, both.ID)

	group := createTestGroupWithMember(t, db, "Security Team", user.ID)
	assignModuleToGroup(t, db, group.ID, inherited.ID)
	assignModuleToGroup(t, db, group.ID, both.ID)

	modules, err := ResolveAssignedModules(db, user.ID)
	require.NoError(t, err)
	require.Len(t, modules, 3)

	// Ordered by display order, duplicates collapsed
	assert.Equal(t, inherited.ID, modules[0].ID)
	assert.Equal(t, direct.ID, modules[1].ID)
	assert.Equal(t, both.ID, modules[2].ID)
}

func TestResolveAssignedModules_InactiveMembershipExcluded(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "deactivated@test.local")

	module := createTestModule(t, db, "Group Module", 1)
	group := createTestGroupWithMember(t, db, "Former Team", user.ID)
	assignModuleToGroup(t, db, group.ID, module.ID)

	modules, err := ResolveAssignedModules(db, user.ID)
	require.NoError(t, err)
	require.Len(t, modules, 1)

	require.NoError(t, db.Model(&models.GroupMembership{}).
		Where("user_id = ? AND group_id = ?", user.ID, group.ID).
		Update("is_active", false).Error)

	modules, err = ResolveAssignedModules(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, modules)
}

func TestResolveAssignedModules_InactiveModuleExcluded(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "hidden@test.local")

	module := createTestModule(t, db, "Retired Module", 1)
	assignModuleDirect(t, db, user.ID, module.ID)

	require.NoError(t, db.Model(&training.Module{}).Where("id = ?", module.ID).Update("is_active", false).Error)

	modules, err := ResolveAssignedModules(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, modules)
}

func TestResolveAssignedModules_UnknownLearner(t *testing.T) {
	db := setupTestDB(t)

	modules, err := ResolveAssignedModules(db, 424242)
	require.NoError(t, err)
	assert.NotNil(t, modules)
	assert.Empty(t, modules)
}

func TestHasModuleAccess(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "access@test.local")

	assigned := createTestModule(t, db, "Assigned", 1)
	other := createTestModule(t, db, "Other", 2)
	assignModuleDirect(t, db, user.ID, assigned.ID)

	ok, err := HasModuleAccess(db, user.ID, assigned.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = HasModuleAccess(db, user.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
