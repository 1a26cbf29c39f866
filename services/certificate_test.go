package services

import (
	"testing"
	"time"

	"lms/models/training"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAndIssueComprehensiveCertificate_AllModulesCompleted(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "earned@test.local")

	moduleA := createTestModule(t, db, "Module A", 1)
	moduleB := createTestModule(t, db, "Module B", 2)
	createTestLesson(t, db, moduleA.ID, "A1", 1)
	createTestLesson(t, db, moduleB.ID, "B1", 1)

	assignModuleDirect(t, db, user.ID, moduleA.ID)
	assignModuleDirect(t, db, user.ID, moduleB.ID)

	completeAllLessons(t, db, user.ID, moduleA.ID)

	// One of two modules done: not eligible yet
	cert, err := GetComprehensiveCertificate(db, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, cert)

	completeAllLessons(t, db, user.ID, moduleB.ID)

	// The final completion triggers issuance through the recompute
	cert, err = GetComprehensiveCertificate(db, user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, cert.CertificateNumber)
	assert.Equal(t, 2, cert.TotalModulesCompleted)

	ids, err := CompletedModuleIDList(cert)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{moduleA.ID, moduleB.ID}, ids)
}

func TestCheckAndIssueComprehensiveCertificate_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "idempotent@test.local")

	module := createTestModule(t, db, "Module A", 1)
	createTestLesson(t, db, module.ID, "A1", 1)
	assignModuleDirect(t, db, user.ID, module.ID)
	completeAllLessons(t, db, user.ID, module.ID)

	first, err := GetComprehensiveCertificate(db, user.ID)
	require.NoError(t, err)

	// A second check returns the same certificate untouched
	second, err := CheckAndIssueComprehensiveCertificate(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CertificateNumber, second.CertificateNumber)

	var count int64
	db.Model(&training.ComprehensiveCertificate{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCheckAndIssueComprehensiveCertificate_FixedAfterIssuance(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "fixed@test.local")

	moduleA := createTestModule(t, db, "Module A", 1)
	createTestLesson(t, db, moduleA.ID, "A1", 1)
	assignModuleDirect(t, db, user.ID, moduleA.ID)
	completeAllLessons(t, db, user.ID, moduleA.ID)

	cert, err := GetComprehensiveCertificate(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cert.TotalModulesCompleted)

	// Assigning more work later never rewrites the issued certificate
	moduleB := createTestModule(t, db, "Module B", 2)
	createTestLesson(t, db, moduleB.ID, "B1", 1)
	assignModuleDirect(t, db, user.ID, moduleB.ID)
	completeAllLessons(t, db, user.ID, moduleB.ID)

	cert, err = GetComprehensiveCertificate(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cert.TotalModulesCompleted)
}

func TestCheckAndIssueComprehensiveCertificate_NoAssignments(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "unassigned@test.local")

	cert, err := CheckAndIssueComprehensiveCertificate(db, user.ID)
	require.NoError(t, err)
	assert.Nil(t, cert)
}

func TestRecordCertificateDownload(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "download@test.local")

	module := createTestModule(t, db, "Module A", 1)
	createTestLesson(t, db, module.ID, "A1", 1)
	assignModuleDirect(t, db, user.ID, module.ID)
	completeAllLessons(t, db, user.ID, module.ID)

	cert, err := GetComprehensiveCertificate(db, user.ID)
	require.NoError(t, err)
	assert.Zero(t, cert.DownloadCount)
	assert.Nil(t, cert.DownloadedAt)

	require.NoError(t, RecordCertificateDownload(db, cert))
	require.NoError(t, RecordCertificateDownload(db, cert))

	cert, err = GetComprehensiveCertificate(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, cert.DownloadCount)
	assert.NotNil(t, cert.DownloadedAt)
}

func TestRepairModuleCertificates(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "repair@test.local")
	module := createTestModule(t, db, "Module A", 1)

	// A completed row missing its certificate flags, as left behind by
	// older data
	now := time.Now()
	progress := training.ModuleProgress{
		UserID:           user.ID,
		ModuleID:         module.ID,
		Status:           training.StatusCompleted,
		CompletedLessons: 1,
		TotalLessons:     1,
		CompletedAt:      &now,
		LastAccessedAt:   now,
	}
	require.NoError(t, db.Create(&progress).Error)

	fixed, err := RepairModuleCertificates(db)
	require.NoError(t, err)
	assert.Equal(t, 1, fixed)

	var reloaded training.ModuleProgress
	require.NoError(t, db.Where("id = ?", progress.ID).First(&reloaded).Error)
	assert.True(t, reloaded.CertificateIssued)
	assert.NotNil(t, reloaded.CertificateIssuedAt)

	// Second pass finds nothing to fix
	fixed, err = RepairModuleCertificates(db)
	require.NoError(t, err)
	assert.Zero(t, fixed)
}

func TestAreAllAssignedModulesCompleted_InactiveModulesExcluded(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "inactivemod@test.local")

	moduleA := createTestModule(t, db, "Module A", 1)
	createTestLesson(t, db, moduleA.ID, "A1", 1)
	assignModuleDirect(t, db, user.ID, moduleA.ID)

	moduleB := createTestModule(t, db, "Module B", 2)
	createTestLesson(t, db, moduleB.ID, "B1", 1)
	assignModuleDirect(t, db, user.ID, moduleB.ID)
	require.NoError(t, db.Model(&training.Module{}).Where("id = ?", moduleB.ID).Update("is_active", false).Error)

	completeAllLessons(t, db, user.ID, moduleA.ID)

	// The deactivated module no longer counts against the learner
	done, assigned, err := AreAllAssignedModulesCompleted(db, user.ID)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Len(t, assigned, 1)
	assert.Equal(t, moduleA.ID, assigned[0].ID)
}
