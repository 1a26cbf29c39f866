package services

import (
	"testing"
	"time"

	"lms/models"
	"lms/models/training"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.UserGroup{},
		&models.GroupMembership{},
		&training.Module{},
		&training.Lesson{},
		&training.Quiz{},
		&training.Question{},
		&training.QuestionOption{},
		&training.ModuleAssignment{},
		&training.GroupAssignment{},
		&training.LessonProgress{},
		&training.ModuleProgress{},
		&training.QuizResult{},
		&training.QuestionAnswer{},
		&training.ComprehensiveCertificate{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		FirstName: "Test",
		LastName:  "Learner",
		Email:     email,
		Password:  "irrelevant",
		Role:      "USER",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestModule(t *testing.T, db *gorm.DB, title string, order int) training.Module {
	t.Helper()

	module := training.Module{
		Title:      title,
		OrderIndex: order,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&module).Error)
	return module
}

func createTestLesson(t *testing.T, db *gorm.DB, moduleID uint, title string, order int) training.Lesson {
	t.Helper()

	lesson := training.Lesson{
		ModuleID:   moduleID,
		Title:      title,
		Content:    "# " + title,
		OrderIndex: order,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&lesson).Error)
	return lesson
}

func assignModuleDirect(t *testing.T, db *gorm.DB, userID, moduleID uint) {
	t.Helper()

	assignment := training.ModuleAssignment{
		UserID:     userID,
		ModuleID:   moduleID,
		AssignedAt: time.Now(),
		AssignedBy: 1,
	}
	require.NoError(t, db.Create(&assignment).Error)
}

func completeAllLessons(t *testing.T, db *gorm.DB, userID, moduleID uint) {
	t.Helper()

	var lessons []training.Lesson
	require.NoError(t, db.Where("module_id = ? AND is_active = ? AND is_deleted = ?", moduleID, true, false).
		Order("order_index asc").Find(&lessons).Error)
	for _, lesson := range lessons {
		_, err := RecordLessonProgress(db, userID, lesson.ID, training.StatusCompleted, 100)
		require.NoError(t, err)
	}
}
