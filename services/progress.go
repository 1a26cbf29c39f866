package services

import (
	"log"
	"time"

	"lms/models/training"

	"gorm.io/gorm"
)

// GetOrCreateLessonProgress fetches the learner's progress row for a
// lesson, creating it lazily on first access
func GetOrCreateLessonProgress(db *gorm.DB, userID, lessonID uint) (*training.LessonProgress, error) {
	var lesson training.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return nil, ErrNotFound
	}

	var progress training.LessonProgress
	err := db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lessonID, false).First(&progress).Error
	if err == nil {
		return &progress, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	progress = training.LessonProgress{
		UserID:         userID,
		LessonID:       lessonID,
		Status:         training.StatusNotStarted,
		LastAccessedAt: time.Now(),
	}
	if err := db.Create(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// GetOrCreateModuleProgress fetches the learner's progress row for a
// module, creating it with the current active-lesson count
func GetOrCreateModuleProgress(db *gorm.DB, userID, moduleID uint) (*training.ModuleProgress, error) {
	var module training.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return nil, ErrNotFound
	}

	var progress training.ModuleProgress
	err := db.Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, moduleID, false).First(&progress).Error
	if err == nil {
		return &progress, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	var totalLessons int64
	db.Model(&training.Lesson{}).Where("module_id = ? AND is_active = ? AND is_deleted = ?", moduleID, true, false).Count(&totalLessons)

	progress = training.ModuleProgress{
		UserID:         userID,
		ModuleID:       moduleID,
		Status:         training.StatusNotStarted,
		TotalLessons:   int(totalLessons),
		LastAccessedAt: time.Now(),
	}
	if err := db.Create(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// RecordLessonProgress updates a learner's lesson state. Status only
// moves forward; a backward transition is ignored rather than rejected
// so completion records survive revisits. Last-access time and scroll
// position are refreshed either way. The owning module's progress is
// recomputed afterwards.
func RecordLessonProgress(db *gorm.DB, userID, lessonID uint, newStatus string, scrollPosition int) (*training.LessonProgress, error) {
	if training.StatusRank(newStatus) == 0 && newStatus != training.StatusNotStarted {
		return nil, ErrValidation
	}

	var lesson training.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return nil, ErrNotFound
	}

	progress, err := GetOrCreateLessonProgress(db, userID, lessonID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	progress.LastAccessedAt = now
	progress.ScrollPosition = scrollPosition

	// Forward transitions only
	if training.StatusRank(newStatus) > training.StatusRank(progress.Status) {
		if progress.Status == training.StatusNotStarted && progress.StartedAt == nil {
			progress.StartedAt = &now
		}
		if newStatus == training.StatusCompleted && progress.CompletedAt == nil {
			progress.CompletedAt = &now
		}
		progress.Status = newStatus
	}

	if err := db.Save(progress).Error; err != nil {
		return nil, err
	}

	if _, err := RecomputeModuleProgress(db, userID, lesson.ModuleID); err != nil {
		return nil, err
	}

	return progress, nil
}

// MarkLessonCompleted upgrades a lesson to completed without touching
// the stored scroll position. Used by the quiz grader on a pass.
func MarkLessonCompleted(db *gorm.DB, userID, lessonID uint) error {
	var lesson training.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return ErrNotFound
	}

	progress, err := GetOrCreateLessonProgress(db, userID, lessonID)
	if err != nil {
		return err
	}

	if progress.Status != training.StatusCompleted {
		now := time.Now()
		if progress.StartedAt == nil {
			progress.StartedAt = &now
		}
		progress.CompletedAt = &now
		progress.Status = training.StatusCompleted
		progress.LastAccessedAt = now
		if err := db.Save(progress).Error; err != nil {
			return err
		}
	}

	_, err = RecomputeModuleProgress(db, userID, lesson.ModuleID)
	return err
}

// RecomputeModuleProgress re-derives a module's progress from the
// learner's lesson progress. The lesson total is refreshed from the
// live active-lesson count so modules stay completable after content
// changes. Runs in a transaction; a transition into completed issues
// the per-module certificate flags and triggers the comprehensive
// certificate check.
func RecomputeModuleProgress(db *gorm.DB, userID, moduleID uint) (*training.ModuleProgress, error) {
	progress, err := GetOrCreateModuleProgress(db, userID, moduleID)
	if err != nil {
		return nil, err
	}

	// Read-then-write under one transaction so two concurrent
	// completions cannot overwrite each other's counts
	tx := db.Begin()

	var completedCount int64
	if err := tx.Model(&training.LessonProgress{}).
		Joins("JOIN lessons ON lessons.id = lesson_progresses.lesson_id").
		Where("lesson_progresses.user_id = ? AND lessons.module_id = ? AND lesson_progresses.status = ? AND lessons.is_active = ? AND lessons.is_deleted = ?",
			userID, moduleID, training.StatusCompleted, true, false).
		Count(&completedCount).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	var startedCount int64
	if err := tx.Model(&training.LessonProgress{}).
		Joins("JOIN lessons ON lessons.id = lesson_progresses.lesson_id").
		Where("lesson_progresses.user_id = ? AND lessons.module_id = ? AND lesson_progresses.status <> ? AND lessons.is_active = ? AND lessons.is_deleted = ?",
			userID, moduleID, training.StatusNotStarted, true, false).
		Count(&startedCount).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	var totalLessons int64
	if err := tx.Model(&training.Lesson{}).
		Where("module_id = ? AND is_active = ? AND is_deleted = ?", moduleID, true, false).
		Count(&totalLessons).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	now := time.Now()
	wasCompleted := progress.Status == training.StatusCompleted

	progress.CompletedLessons = int(completedCount)
	progress.TotalLessons = int(totalLessons)
	progress.LastAccessedAt = now

	newStatus := training.StatusNotStarted
	if completedCount == totalLessons && totalLessons > 0 {
		newStatus = training.StatusCompleted
	} else if startedCount > 0 {
		newStatus = training.StatusInProgress
	}

	if newStatus != training.StatusNotStarted && progress.StartedAt == nil {
		progress.StartedAt = &now
	}
	if newStatus == training.StatusCompleted && !wasCompleted {
		progress.CompletedAt = &now
		progress.CertificateIssued = true
		progress.CertificateIssuedAt = &now
	}
	progress.Status = newStatus

	if err := tx.Save(progress).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	tx.Commit()

	// A freshly completed module may complete the whole assignment set
	if newStatus == training.StatusCompleted && !wasCompleted {
		if _, err := CheckAndIssueComprehensiveCertificate(db, userID); err != nil {
			log.Printf("[PROGRESS] comprehensive certificate check failed for user %d: %v", userID, err)
		}
	}

	return progress, nil
}

// CountPassedQuizzes reports how many distinct quizzes under a module
// the learner has passed, used by the admin progress report
func CountPassedQuizzes(db *gorm.DB, userID, moduleID uint) (int64, error) {
	var count int64
	err := db.Model(&training.QuizResult{}).
		Joins("JOIN quizzes ON quizzes.id = quiz_results.quiz_id").
		Joins("JOIN lessons ON lessons.id = quizzes.lesson_id").
		Where("quiz_results.user_id = ? AND quiz_results.passed = ? AND lessons.module_id = ? AND quiz_results.is_deleted = ?",
			userID, true, moduleID, false).
		Distinct("quiz_results.quiz_id").
		Count(&count).Error
	return count, err
}
