package adminController

import (
	"log"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/models/training"
	"lms/services"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

func UserList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPagination").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	db := database.Database.Db

	var users []models.User
	var total int64

	query := db.Where("is_deleted = ?", false)
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", like, like, like)
	}

	if err := query.
		Order("created_at desc").
		Offset(offset).
		Limit(*reqData.Limit).
		Find(&users).
		Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&total)

	for i := range users {
		users[i].Password = ""
	}

	response := map[string]interface{}{
		"users": users,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User List.", response)
}

func UpdateUserRole(c *fiber.Ctx) error {
	targetUserID, ok := c.Locals("targetUserID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedRole").(*struct {
		Role string `json:"role"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Role = reqData.Role
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating user role: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user role!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated successfully.", user)
}

func AssignModuleToUser(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetUserID, ok := c.Locals("targetUserID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedAssignment").(*struct {
		ModuleID uint       `json:"module_id"`
		DueDate  *time.Time `json:"due_date"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var module training.Module
	if err := db.Where("id = ? AND is_deleted = ?", reqData.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Module not found!", nil)
	}

	var existing training.ModuleAssignment
	if err := db.Where("user_id = ? AND module_id = ? AND is_deleted = ?", targetUserID, reqData.ModuleID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Module is already assigned to this user!", nil)
	}

	assignment := training.ModuleAssignment{
		UserID:     uint(targetUserID),
		ModuleID:   reqData.ModuleID,
		AssignedAt: time.Now(),
		AssignedBy: adminID,
		DueDate:    reqData.DueDate,
	}

	if err := db.Create(&assignment).Error; err != nil {
		log.Printf("Error saving module assignment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign module!", nil)
	}

	go utils.SendModuleAssignedEmail(user.Email, user.FullName(), module.Title, reqData.DueDate)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module assigned successfully.", assignment)
}

func UnassignModuleFromUser(c *fiber.Ctx) error {
	targetUserID, ok := c.Locals("targetUserID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	moduleID, ok := c.Locals("moduleID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var assignment training.ModuleAssignment
	if err := db.Where("user_id = ? AND module_id = ? AND is_deleted = ?", targetUserID, moduleID, false).First(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	assignment.IsDeleted = true
	if err := db.Save(&assignment).Error; err != nil {
		log.Printf("Error removing module assignment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unassign module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module unassigned successfully.", nil)
}

func UserProgressReport(c *fiber.Ctx) error {
	targetUserID, ok := c.Locals("targetUserID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	modules, err := services.ResolveAssignedModules(db, uint(targetUserID))
	if err != nil {
		log.Printf("Error resolving assigned modules for user %d: %v", targetUserID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user progress!", nil)
	}

	type moduleRow struct {
		Module     training.Module `json:"module"`
		Status     string          `json:"status"`
		Completion float64         `json:"completion_percentage"`
	}

	rows := make([]moduleRow, 0, len(modules))
	for _, module := range modules {
		progress, err := services.GetOrCreateModuleProgress(db, uint(targetUserID), module.ID)
		if err != nil {
			log.Printf("Error fetching module progress for user %d: %v", targetUserID, err)
			continue
		}
		rows = append(rows, moduleRow{
			Module:     module,
			Status:     progress.Status,
			Completion: progress.CompletionPercentage(),
		})
	}

	cert, err := services.GetComprehensiveCertificate(db, uint(targetUserID))
	if err != nil && err != services.ErrNotFound {
		log.Printf("Error fetching certificate for user %d: %v", targetUserID, err)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User progress report.", fiber.Map{
		"user":        user,
		"modules":     rows,
		"certificate": cert,
	})
}
