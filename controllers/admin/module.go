package adminController

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models/training"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

func CreateModule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedModule").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	orderIndex := reqData.OrderIndex
	if orderIndex == 0 {
		// Append at the end when no position is given
		var maxOrder int
		db.Model(&training.Module{}).Where("is_deleted = ?", false).
			Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	newModule := training.Module{
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  orderIndex,
		IsActive:    true,
	}

	if err := db.Create(&newModule).Error; err != nil {
		log.Printf("Error saving module to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully.", newModule)
}

func ModuleList(c *fiber.Ctx) error {
	db := database.Database.Db

	var modules []training.Module
	if err := db.Where("is_deleted = ?", false).
		Order("order_index asc, title asc").
		Find(&modules).
		Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module List.", modules)
}

func GetModule(c *fiber.Ctx) error {
	moduleID, ok := c.Locals("moduleID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var module training.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var lessons []training.Lesson
	if err := db.Where("module_id = ? AND is_deleted = ?", moduleID, false).
		Order("order_index asc").
		Find(&lessons).
		Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module details.", fiber.Map{
		"module":  module,
		"lessons": lessons,
	})
}

func UpdateModule(c *fiber.Ctx) error {
	moduleID, ok := c.Locals("moduleID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedModuleUpdate").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
		IsActive    *bool  `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var module training.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if reqData.Title != "" {
		module.Title = reqData.Title
	}
	if reqData.Description != "" {
		module.Description = reqData.Description
	}
	if reqData.OrderIndex > 0 {
		module.OrderIndex = reqData.OrderIndex
	}
	if reqData.IsActive != nil {
		module.IsActive = *reqData.IsActive
	}

	if err := db.Save(&module).Error; err != nil {
		log.Printf("Error updating module: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully.", module)
}

func DeleteModule(c *fiber.Ctx) error {
	moduleID, ok := c.Locals("moduleID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var module training.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	module.IsDeleted = true
	module.IsActive = false
	if err := db.Save(&module).Error; err != nil {
		log.Printf("Error deleting module: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully.", nil)
}

func ModuleReport(c *fiber.Ctx) error {
	moduleID, ok := c.Locals("moduleID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var module training.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var progresses []training.ModuleProgress
	if err := db.Where("module_id = ? AND is_deleted = ?", moduleID, false).Find(&progresses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module report!", nil)
	}

	var started, completed int64
	for _, p := range progresses {
		switch p.Status {
		case training.StatusInProgress:
			started++
		case training.StatusCompleted:
			completed++
		}
	}

	type learnerRow struct {
		UserID       uint    `json:"user_id"`
		Status       string  `json:"status"`
		Completion   float64 `json:"completion_percentage"`
		PassedQuizes int64   `json:"passed_quizzes"`
	}

	learners := make([]learnerRow, 0, len(progresses))
	for _, p := range progresses {
		passedQuizzes, err := services.CountPassedQuizzes(db, p.UserID, uint(moduleID))
		if err != nil {
			log.Printf("Error counting passed quizzes for user %d: %v", p.UserID, err)
		}
		learners = append(learners, learnerRow{
			UserID:       p.UserID,
			Status:       p.Status,
			Completion:   p.CompletionPercentage(),
			PassedQuizes: passedQuizzes,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module report.", fiber.Map{
		"module":     module,
		"inProgress": started,
		"completed":  completed,
		"learners":   learners,
	})
}
