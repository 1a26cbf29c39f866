package trainingController

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/models/training"
	"lms/services"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// ViewLesson renders a lesson's markdown content. Opening a lesson
// marks it in progress; completed lessons stay completed.
func ViewLesson(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID, ok := c.Locals("lessonID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson training.Lesson
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", lessonID, true, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	hasAccess, err := services.HasModuleAccess(db, userId, lesson.ModuleID)
	if err != nil {
		log.Printf("Error checking module access for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lesson!", nil)
	}
	if !hasAccess {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Module is not assigned to you!", nil)
	}

	unlocked, err := services.IsLessonUnlocked(db, userId, &lesson)
	if err != nil {
		log.Printf("Error checking lesson unlock for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lesson!", nil)
	}
	if !unlocked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Complete the previous lessons first!", nil)
	}

	existing, err := services.GetOrCreateLessonProgress(db, userId, uint(lessonID))
	if err != nil {
		log.Printf("Error fetching lesson progress for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lesson!", nil)
	}

	progress, err := services.RecordLessonProgress(db, userId, uint(lessonID), training.StatusInProgress, existing.ScrollPosition)
	if err != nil {
		log.Printf("Error recording lesson progress for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lesson!", nil)
	}

	var quiz training.Quiz
	var quizID *uint
	if err := db.Where("lesson_id = ? AND is_active = ? AND is_deleted = ?", lessonID, true, false).First(&quiz).Error; err == nil {
		quizID = &quiz.ID
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson details.", fiber.Map{
		"lesson": fiber.Map{
			"id":          lesson.ID,
			"module_id":   lesson.ModuleID,
			"title":       lesson.Title,
			"order_index": lesson.OrderIndex,
			"html":        utils.MarkdownToHTML(lesson.Content),
		},
		"progress": progress,
		"quiz_id":  quizID,
	})
}

// RecordProgress updates the learner's position in a lesson
func RecordProgress(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID, ok := c.Locals("lessonID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*struct {
		Status         string `json:"status"`
		ScrollPosition int    `json:"scroll_position"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson training.Lesson
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", lessonID, true, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	hasAccess, err := services.HasModuleAccess(db, userId, lesson.ModuleID)
	if err != nil {
		log.Printf("Error checking module access for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
	}
	if !hasAccess {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Module is not assigned to you!", nil)
	}

	// A lesson with a quiz completes only through a passing attempt
	if reqData.Status == training.StatusCompleted {
		if err := db.Where("lesson_id = ? AND is_active = ? AND is_deleted = ?", lessonID, true, false).First(&training.Quiz{}).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Pass the lesson quiz to complete this lesson!", nil)
		}
	}

	_, certErr := services.GetComprehensiveCertificate(db, userId)
	hadCertificate := certErr == nil

	progress, err := services.RecordLessonProgress(db, userId, uint(lessonID), reqData.Status, reqData.ScrollPosition)
	if err != nil {
		if err == services.ErrValidation {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Invalid progress status!", nil)
		}
		if err == services.ErrNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		}
		log.Printf("Error recording lesson progress for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
	}

	if progress.Status == training.StatusCompleted {
		var moduleProgress training.ModuleProgress
		if err := db.Where("user_id = ? AND module_id = ? AND status = ? AND is_deleted = ?",
			userId, lesson.ModuleID, training.StatusCompleted, false).First(&moduleProgress).Error; err == nil {
			var module training.Module
			var user models.User
			if db.Where("id = ?", lesson.ModuleID).First(&module).Error == nil &&
				db.Where("id = ?", userId).First(&user).Error == nil {
				go utils.SendModuleCompletedEmail(user.Email, user.FullName(), module.Title)

				if !hadCertificate {
					if cert, err := services.GetComprehensiveCertificate(db, userId); err == nil {
						go utils.SendCertificateIssuedEmail(user.Email, user.FullName(), cert.TotalModulesCompleted)
					}
				}
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress recorded.", progress)
}
