package services

import (
	"testing"

	"lms/models/training"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLessonUnlocked_Sequential(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "unlock@test.local")
	module := createTestModule(t, db, "Module A", 1)
	lesson1 := createTestLesson(t, db, module.ID, "Lesson 1", 1)
	lesson2 := createTestLesson(t, db, module.ID, "Lesson 2", 2)
	lesson3 := createTestLesson(t, db, module.ID, "Lesson 3", 3)

	// Only the first lesson opens for a fresh learner
	unlocked, err := IsLessonUnlocked(db, user.ID, &lesson1)
	require.NoError(t, err)
	assert.True(t, unlocked)

	unlocked, err = IsLessonUnlocked(db, user.ID, &lesson2)
	require.NoError(t, err)
	assert.False(t, unlocked)

	_, err = RecordLessonProgress(db, user.ID, lesson1.ID, training.StatusCompleted, 100)
	require.NoError(t, err)

	unlocked, err = IsLessonUnlocked(db, user.ID, &lesson2)
	require.NoError(t, err)
	assert.True(t, unlocked)

	// Starting without finishing does not unlock further lessons
	_, err = RecordLessonProgress(db, user.ID, lesson2.ID, training.StatusInProgress, 20)
	require.NoError(t, err)

	unlocked, err = IsLessonUnlocked(db, user.ID, &lesson3)
	require.NoError(t, err)
	assert.False(t, unlocked)
}

func TestIsLessonUnlocked_SkipsInactivePredecessors(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "skipped@test.local")
	module := createTestModule(t, db, "Module A", 1)
	lesson1 := createTestLesson(t, db, module.ID, "Lesson 1", 1)
	lesson2 := createTestLesson(t, db, module.ID, "Lesson 2", 2)

	require.NoError(t, db.Model(&training.Lesson{}).Where("id = ?", lesson1.ID).Update("is_active", false).Error)

	unlocked, err := IsLessonUnlocked(db, user.ID, &lesson2)
	require.NoError(t, err)
	assert.True(t, unlocked)
}

func TestResequenceLessons_ClosesGaps(t *testing.T) {
	db := setupTestDB(t)
	module := createTestModule(t, db, "Module A", 1)
	lesson1 := createTestLesson(t, db, module.ID, "Lesson 1", 1)
	lesson2 := createTestLesson(t, db, module.ID, "Lesson 2", 2)
	lesson3 := createTestLesson(t, db, module.ID, "Lesson 3", 3)

	require.NoError(t, db.Model(&training.Lesson{}).Where("id = ?", lesson2.ID).Update("is_deleted", true).Error)

	require.NoError(t, ResequenceLessons(db, module.ID))

	var reloaded1, reloaded3 training.Lesson
	require.NoError(t, db.First(&reloaded1, lesson1.ID).Error)
	require.NoError(t, db.First(&reloaded3, lesson3.ID).Error)
	assert.Equal(t, 1, reloaded1.OrderIndex)
	assert.Equal(t, 2, reloaded3.OrderIndex)
}

func TestMoveLessonToModule(t *testing.T) {
	db := setupTestDB(t)
	source := createTestModule(t, db, "Source", 1)
	target := createTestModule(t, db, "Target", 2)
	lesson1 := createTestLesson(t, db, source.ID, "Lesson 1", 1)
	lesson2 := createTestLesson(t, db, source.ID, "Lesson 2", 2)
	createTestLesson(t, db, target.ID, "Existing", 1)

	moved, err := MoveLessonToModule(db, lesson1.ID, target.ID)
	require.NoError(t, err)
	assert.Equal(t, target.ID, moved.ModuleID)
	assert.Equal(t, 2, moved.OrderIndex) // appended after the existing lesson

	// The source module closed the gap
	var remaining training.Lesson
	require.NoError(t, db.First(&remaining, lesson2.ID).Error)
	assert.Equal(t, 1, remaining.OrderIndex)
}

func TestMoveLessonToModule_UnknownTarget(t *testing.T) {
	db := setupTestDB(t)
	source := createTestModule(t, db, "Source", 1)
	lesson := createTestLesson(t, db, source.ID, "Lesson 1", 1)

	_, err := MoveLessonToModule(db, lesson.ID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMoveLessonToModule_SameModuleIsNoop(t *testing.T) {
	db := setupTestDB(t)
	source := createTestModule(t, db, "Source", 1)
	lesson := createTestLesson(t, db, source.ID, "Lesson 1", 1)

	moved, err := MoveLessonToModule(db, lesson.ID, source.ID)
	require.NoError(t, err)
	assert.Equal(t, source.ID, moved.ModuleID)
	assert.Equal(t, 1, moved.OrderIndex)
}
