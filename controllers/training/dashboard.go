package trainingController

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models/training"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// Dashboard lists the learner's assigned modules with progress
func Dashboard(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	modules, err := services.ResolveAssignedModules(db, userId)
	if err != nil {
		log.Printf("Error resolving assigned modules for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assigned modules!", nil)
	}

	type moduleRow struct {
		Module           training.Module `json:"module"`
		Status           string          `json:"status"`
		Completion       float64         `json:"completion_percentage"`
		CompletedLessons int             `json:"completed_lessons"`
		TotalLessons     int             `json:"total_lessons"`
	}

	rows := make([]moduleRow, 0, len(modules))
	completedModules := 0
	for _, module := range modules {
		progress, err := services.GetOrCreateModuleProgress(db, userId, module.ID)
		if err != nil {
			log.Printf("Error fetching module progress for user %d: %v", userId, err)
			continue
		}
		if progress.Status == training.StatusCompleted {
			completedModules++
		}
		rows = append(rows, moduleRow{
			Module:           module,
			Status:           progress.Status,
			Completion:       progress.CompletionPercentage(),
			CompletedLessons: progress.CompletedLessons,
			TotalLessons:     progress.TotalLessons,
		})
	}

	cert, err := services.GetComprehensiveCertificate(db, userId)
	if err != nil && err != services.ErrNotFound {
		log.Printf("Error fetching certificate for user %d: %v", userId, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training dashboard.", fiber.Map{
		"modules":          rows,
		"totalModules":     len(rows),
		"completedModules": completedModules,
		"certificate":      cert,
	})
}

// GetModule shows a single assigned module with its lessons, the
// learner's per-lesson progress and which lessons are unlocked
func GetModule(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID, ok := c.Locals("moduleID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	hasAccess, err := services.HasModuleAccess(db, userId, uint(moduleID))
	if err != nil {
		log.Printf("Error checking module access for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module!", nil)
	}
	if !hasAccess {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Module is not assigned to you!", nil)
	}

	var module training.Module
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", moduleID, true, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var lessons []training.Lesson
	if err := db.Where("module_id = ? AND is_active = ? AND is_deleted = ?", moduleID, true, false).
		Order("order_index asc").
		Find(&lessons).
		Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	type lessonRow struct {
		ID         uint   `json:"id"`
		Title      string `json:"title"`
		OrderIndex int    `json:"order_index"`
		Status     string `json:"status"`
		Unlocked   bool   `json:"unlocked"`
		HasQuiz    bool   `json:"has_quiz"`
	}

	rows := make([]lessonRow, 0, len(lessons))
	for i := range lessons {
		lesson := lessons[i]

		status := training.StatusNotStarted
		var lp training.LessonProgress
		if err := db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userId, lesson.ID, false).First(&lp).Error; err == nil {
			status = lp.Status
		}

		unlocked, err := services.IsLessonUnlocked(db, userId, &lesson)
		if err != nil {
			log.Printf("Error checking lesson unlock for user %d: %v", userId, err)
			unlocked = false
		}

		hasQuiz := false
		if err := db.Where("lesson_id = ? AND is_active = ? AND is_deleted = ?", lesson.ID, true, false).First(&training.Quiz{}).Error; err == nil {
			hasQuiz = true
		}

		rows = append(rows, lessonRow{
			ID:         lesson.ID,
			Title:      lesson.Title,
			OrderIndex: lesson.OrderIndex,
			Status:     status,
			Unlocked:   unlocked,
			HasQuiz:    hasQuiz,
		})
	}

	progress, err := services.GetOrCreateModuleProgress(db, userId, uint(moduleID))
	if err != nil {
		log.Printf("Error fetching module progress for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module details.", fiber.Map{
		"module":   module,
		"lessons":  rows,
		"progress": progress,
	})
}
