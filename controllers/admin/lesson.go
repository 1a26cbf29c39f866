package adminController

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models/training"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

func CreateLesson(c *fiber.Ctx) error {
	moduleID, ok := c.Locals("moduleID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title      string `json:"title"`
		Content    string `json:"content"`
		OrderIndex int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var module training.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	orderIndex := reqData.OrderIndex
	if orderIndex == 0 {
		var maxOrder int
		db.Model(&training.Lesson{}).Where("module_id = ? AND is_deleted = ?", moduleID, false).
			Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	newLesson := training.Lesson{
		ModuleID:   uint(moduleID),
		Title:      reqData.Title,
		Content:    reqData.Content,
		OrderIndex: orderIndex,
		IsActive:   true,
	}

	if err := db.Create(&newLesson).Error; err != nil {
		log.Printf("Error saving lesson to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	if err := services.ResequenceLessons(db, uint(moduleID)); err != nil {
		log.Printf("Error resequencing lessons for module %d: %v", moduleID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully.", newLesson)
}

func UpdateLesson(c *fiber.Ctx) error {
	lessonID, ok := c.Locals("lessonID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedLessonUpdate").(*struct {
		Title      string `json:"title"`
		Content    string `json:"content"`
		OrderIndex int    `json:"order_index"`
		IsActive   *bool  `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson training.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if reqData.Title != "" {
		lesson.Title = reqData.Title
	}
	if reqData.Content != "" {
		lesson.Content = reqData.Content
	}
	if reqData.OrderIndex > 0 {
		lesson.OrderIndex = reqData.OrderIndex
	}
	if reqData.IsActive != nil {
		lesson.IsActive = *reqData.IsActive
	}

	if err := db.Save(&lesson).Error; err != nil {
		log.Printf("Error updating lesson: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	if err := services.ResequenceLessons(db, lesson.ModuleID); err != nil {
		log.Printf("Error resequencing lessons for module %d: %v", lesson.ModuleID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully.", lesson)
}

func DeleteLesson(c *fiber.Ctx) error {
	lessonID, ok := c.Locals("lessonID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson training.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	lesson.IsDeleted = true
	lesson.IsActive = false
	if err := db.Save(&lesson).Error; err != nil {
		log.Printf("Error deleting lesson: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	// Close the gap left by the removed lesson
	if err := services.ResequenceLessons(db, lesson.ModuleID); err != nil {
		log.Printf("Error resequencing lessons for module %d: %v", lesson.ModuleID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully.", nil)
}

func MoveLesson(c *fiber.Ctx) error {
	lessonID, ok := c.Locals("lessonID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedMove").(*struct {
		TargetModuleID uint `json:"target_module_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	lesson, err := services.MoveLessonToModule(db, uint(lessonID), reqData.TargetModuleID)
	if err != nil {
		if err == services.ErrNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson or target module not found!", nil)
		}
		log.Printf("Error moving lesson %d: %v", lessonID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to move lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson moved successfully.", lesson)
}
