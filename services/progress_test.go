package services

import (
	"testing"

	"lms/models/training"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordLessonProgress_ForwardOnly(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "forward@test.local")
	module := createTestModule(t, db, "Module A", 1)
	lesson := createTestLesson(t, db, module.ID, "Lesson 1", 1)

	progress, err := RecordLessonProgress(db, user.ID, lesson.ID, training.StatusCompleted, 80)
	require.NoError(t, err)
	assert.Equal(t, training.StatusCompleted, progress.Status)
	require.NotNil(t, progress.CompletedAt)
	firstCompletedAt := *progress.CompletedAt

	// Reopening the lesson must not downgrade it
	progress, err = RecordLessonProgress(db, user.ID, lesson.ID, training.StatusInProgress, 10)
	require.NoError(t, err)
	assert.Equal(t, training.StatusCompleted, progress.Status)
	require.NotNil(t, progress.CompletedAt)
	assert.Equal(t, firstCompletedAt.Unix(), progress.CompletedAt.Unix())

	// Scroll position and last access still refresh on revisits
	assert.Equal(t, 10, progress.ScrollPosition)
}

func TestRecordLessonProgress_StampsStartedOnce(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "stamps@test.local")
	module := createTestModule(t, db, "Module A", 1)
	lesson := createTestLesson(t, db, module.ID, "Lesson 1", 1)

	progress, err := RecordLessonProgress(db, user.ID, lesson.ID, training.StatusInProgress, 5)
	require.NoError(t, err)
	require.NotNil(t, progress.StartedAt)
	started := *progress.StartedAt
	assert.Nil(t, progress.CompletedAt)

	progress, err = RecordLessonProgress(db, user.ID, lesson.ID, training.StatusCompleted, 100)
	require.NoError(t, err)
	require.NotNil(t, progress.StartedAt)
	assert.Equal(t, started.Unix(), progress.StartedAt.Unix())
	assert.NotNil(t, progress.CompletedAt)
}

func TestRecordLessonProgress_RejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "badstatus@test.local")
	module := createTestModule(t, db, "Module A", 1)
	lesson := createTestLesson(t, db, module.ID, "Lesson 1", 1)

	_, err := RecordLessonProgress(db, user.ID, lesson.ID, "FINISHED", 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRecordLessonProgress_UnknownLesson(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "nolesson@test.local")

	_, err := RecordLessonProgress(db, user.ID, 9999, training.StatusInProgress, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecomputeModuleProgress_DerivesStatus(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "derive@test.local")
	module := createTestModule(t, db, "Module A", 1)
	lesson1 := createTestLesson(t, db, module.ID, "Lesson 1", 1)
	lesson2 := createTestLesson(t, db, module.ID, "Lesson 2", 2)

	// Untouched module
	progress, err := GetOrCreateModuleProgress(db, user.ID, module.ID)
	require.NoError(t, err)
	assert.Equal(t, training.StatusNotStarted, progress.Status)
	assert.Equal(t, 2, progress.TotalLessons)

	// One lesson started
	_, err = RecordLessonProgress(db, user.ID, lesson1.ID, training.StatusInProgress, 0)
	require.NoError(t, err)
	progress, err = GetOrCreateModuleProgress(db, user.ID, module.ID)
	require.NoError(t, err)
	assert.Equal(t, training.StatusInProgress, progress.Status)
	assert.Equal(t, 0, progress.CompletedLessons)

	// One of two completed
	_, err = RecordLessonProgress(db, user.ID, lesson1.ID, training.StatusCompleted, 100)
	require.NoError(t, err)
	progress, err = GetOrCreateModuleProgress(db, user.ID, module.ID)
	require.NoError(t, err)
	assert.Equal(t, training.StatusInProgress, progress.Status)
	assert.Equal(t, 1, progress.CompletedLessons)
	assert.Nil(t, progress.CompletedAt)

	// All completed
	_, err = RecordLessonProgress(db, user.ID, lesson2.ID, training.StatusCompleted, 100)
	require.NoError(t, err)
	progress, err = GetOrCreateModuleProgress(db, user.ID, module.ID)
	require.NoError(t, err)
	assert.Equal(t, training.StatusCompleted, progress.Status)
	assert.Equal(t, 2, progress.CompletedLessons)
	require.NotNil(t, progress.CompletedAt)
	assert.True(t, progress.CertificateIssued)
	assert.NotNil(t, progress.CertificateIssuedAt)
}

func TestRecomputeModuleProgress_RefreshesLessonTotal(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "total@test.local")
	module := createTestModule(t, db, "Module A", 1)
	lesson1 := createTestLesson(t, db, module.ID, "Lesson 1", 1)

	_, err := RecordLessonProgress(db, user.ID, lesson1.ID, training.StatusCompleted, 100)
	require.NoError(t, err)

	progress, err := GetOrCreateModuleProgress(db, user.ID, module.ID)
	require.NoError(t, err)
	assert.Equal(t, training.StatusCompleted, progress.Status)

	// A new lesson reopens the module on the next recompute
	lesson2 := createTestLesson(t, db, module.ID, "Lesson 2", 2)
	progress, err = RecomputeModuleProgress(db, user.ID, module.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, progress.TotalLessons)
	assert.Equal(t, training.StatusInProgress, progress.Status)

	_, err = RecordLessonProgress(db, user.ID, lesson2.ID, training.StatusCompleted, 100)
	require.NoError(t, err)
	progress, err = GetOrCreateModuleProgress(db, user.ID, module.ID)
	require.NoError(t, err)
	assert.Equal(t, training.StatusCompleted, progress.Status)
}

func TestRecomputeModuleProgress_EmptyModuleNeverCompletes(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "empty@test.local")
	module := createTestModule(t, db, "Empty Module", 1)

	progress, err := RecomputeModuleProgress(db, user.ID, module.ID)
	require.NoError(t, err)
	assert.Equal(t, training.StatusNotStarted, progress.Status)
	assert.Equal(t, 0, progress.TotalLessons)
	assert.False(t, progress.CertificateIssued)
}

func TestMarkLessonCompleted_PreservesScrollPosition(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "scroll@test.local")
	module := createTestModule(t, db, "Module A", 1)
	lesson := createTestLesson(t, db, module.ID, "Lesson 1", 1)

	_, err := RecordLessonProgress(db, user.ID, lesson.ID, training.StatusInProgress, 42)
	require.NoError(t, err)

	require.NoError(t, MarkLessonCompleted(db, user.ID, lesson.ID))

	var progress training.LessonProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lesson.ID).First(&progress).Error)
	assert.Equal(t, training.StatusCompleted, progress.Status)
	assert.Equal(t, 42, progress.ScrollPosition)
}
