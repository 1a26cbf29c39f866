package services

import (
	"lms/models/training"

	"gorm.io/gorm"
)

// IsLessonUnlocked reports whether the learner may open a lesson.
// Lessons unlock sequentially: every active lesson earlier in the
// module must be completed first. The first lesson is always open.
func IsLessonUnlocked(db *gorm.DB, userID uint, lesson *training.Lesson) (bool, error) {
	var earlier []training.Lesson
	if err := db.Where("module_id = ? AND order_index < ? AND is_active = ? AND is_deleted = ?",
		lesson.ModuleID, lesson.OrderIndex, true, false).Find(&earlier).Error; err != nil {
		return false, err
	}

	for _, prev := range earlier {
		var progress training.LessonProgress
		err := db.Where("user_id = ? AND lesson_id = ? AND status = ? AND is_deleted = ?",
			userID, prev.ID, training.StatusCompleted, false).First(&progress).Error
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		if err != nil {
			return false, err
		}
	}

	return true, nil
}

// ResequenceLessons renumbers a module's active lessons 1..n, closing
// any gap left by a deletion or a move
func ResequenceLessons(db *gorm.DB, moduleID uint) error {
	var lessons []training.Lesson
	if err := db.Where("module_id = ? AND is_deleted = ?", moduleID, false).
		Order("order_index asc, id asc").Find(&lessons).Error; err != nil {
		return err
	}

	tx := db.Begin()
	for i := range lessons {
		if lessons[i].OrderIndex == i+1 {
			continue
		}
		lessons[i].OrderIndex = i + 1
		if err := tx.Save(&lessons[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	tx.Commit()

	return nil
}

// MoveLessonToModule reparents a lesson, appending it to the target
// module and resequencing the source module's remaining siblings
func MoveLessonToModule(db *gorm.DB, lessonID, targetModuleID uint) (*training.Lesson, error) {
	var lesson training.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return nil, ErrNotFound
	}

	var target training.Module
	if err := db.Where("id = ? AND is_deleted = ?", targetModuleID, false).First(&target).Error; err != nil {
		return nil, ErrNotFound
	}

	if lesson.ModuleID == targetModuleID {
		return &lesson, nil
	}

	sourceModuleID := lesson.ModuleID

	var maxOrder int
	db.Model(&training.Lesson{}).Where("module_id = ? AND is_deleted = ?", targetModuleID, false).
		Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	lesson.ModuleID = targetModuleID
	lesson.OrderIndex = maxOrder + 1
	if err := db.Save(&lesson).Error; err != nil {
		return nil, err
	}

	if err := ResequenceLessons(db, sourceModuleID); err != nil {
		return nil, err
	}

	return &lesson, nil
}
