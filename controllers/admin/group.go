package adminController

import (
	"log"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/models/training"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateGroup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGroup").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		CompanyID   *uint  `json:"company_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if reqData.CompanyID != nil {
		var company models.Company
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.CompanyID, false).First(&company).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Company not found!", nil)
		}
	}

	newGroup := models.UserGroup{
		Name:        reqData.Name,
		Description: reqData.Description,
		CompanyID:   reqData.CompanyID,
	}

	if err := db.Create(&newGroup).Error; err != nil {
		log.Printf("Error saving group to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create group!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Group created successfully.", newGroup)
}

func GroupList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPagination").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	db := database.Database.Db

	var groups []models.UserGroup
	var total int64

	if err := db.Where("is_deleted = ?", false).
		Order("name asc").
		Offset(offset).
		Limit(*reqData.Limit).
		Find(&groups).
		Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch groups!", nil)
	}

	db.Model(&models.UserGroup{}).Where("is_deleted = ?", false).Count(&total)

	response := map[string]interface{}{
		"groups": groups,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Group List.", response)
}

func GetGroup(c *fiber.Ctx) error {
	groupID, ok := c.Locals("groupID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var group models.UserGroup
	if err := db.Where("id = ? AND is_deleted = ?", groupID, false).First(&group).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Group not found!", nil)
	}

	var memberships []models.GroupMembership
	if err := db.Where("group_id = ? AND is_deleted = ?", groupID, false).Find(&memberships).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch group members!", nil)
	}

	var assignments []training.GroupAssignment
	if err := db.Where("group_id = ? AND is_deleted = ?", groupID, false).Find(&assignments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch group assignments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Group details.", fiber.Map{
		"group":       group,
		"members":     memberships,
		"assignments": assignments,
	})
}

func AddGroupMember(c *fiber.Ctx) error {
	groupID, ok := c.Locals("groupID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedMember").(*struct {
		UserID uint `json:"user_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var group models.UserGroup
	if err := db.Where("id = ? AND is_deleted = ?", groupID, false).First(&group).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Group not found!", nil)
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "User not found!", nil)
	}

	// Reactivate an existing membership rather than violating the
	// unique user/group index
	var membership models.GroupMembership
	if err := db.Where("user_id = ? AND group_id = ?", reqData.UserID, groupID).First(&membership).Error; err == nil {
		if membership.IsActive && !membership.IsDeleted {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User is already a member of this group!", nil)
		}
		membership.IsActive = true
		membership.IsDeleted = false
		membership.DateJoined = time.Now()
		if err := db.Save(&membership).Error; err != nil {
			log.Printf("Error reactivating membership: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add group member!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Group member added successfully.", membership)
	}

	membership = models.GroupMembership{
		UserID:     reqData.UserID,
		GroupID:    uint(groupID),
		IsActive:   true,
		DateJoined: time.Now(),
	}

	if err := db.Create(&membership).Error; err != nil {
		log.Printf("Error saving membership to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add group member!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Group member added successfully.", membership)
}

func SetMembershipActive(c *fiber.Ctx) error {
	groupID, ok := c.Locals("groupID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedMembership").(*struct {
		UserID   uint  `json:"user_id"`
		IsActive *bool `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var membership models.GroupMembership
	if err := db.Where("user_id = ? AND group_id = ? AND is_deleted = ?", reqData.UserID, groupID, false).First(&membership).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Membership not found!", nil)
	}

	membership.IsActive = *reqData.IsActive
	if err := db.Save(&membership).Error; err != nil {
		log.Printf("Error updating membership: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update membership!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Membership updated successfully.", membership)
}

func AssignModuleToGroup(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	groupID, ok := c.Locals("groupID").(int)
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

	var group models.UserGroup
	if err := db.Where("id = ? AND is_deleted = ?", groupID, false).First(&group).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Group not found!", nil)
	}

	var module training.Module
	if err := db.Where("id = ? AND is_deleted = ?", reqData.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Module not found!", nil)
	}

	var existing training.GroupAssignment
	if err := db.Where("group_id = ? AND module_id = ? AND is_deleted = ?", groupID, reqData.ModuleID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Module is already assigned to this group!", nil)
	}

	assignment := training.GroupAssignment{
		GroupID:    uint(groupID),
		ModuleID:   reqData.ModuleID,
		AssignedAt: time.Now(),
		AssignedBy: adminID,
		DueDate:    reqData.DueDate,
	}

	if err := db.Create(&assignment).Error; err != nil {
		log.Printf("Error saving group assignment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign module!", nil)
	}

	// Notify active members
	var members []models.User
	if err := db.
		Joins("JOIN group_memberships ON group_memberships.user_id = users.id").
		Where("group_memberships.group_id = ? AND group_memberships.is_active = ? AND group_memberships.is_deleted = ?", groupID, true, false).
		Where("users.is_deleted = ?", false).
		Find(&members).Error; err != nil {
		log.Printf("Error fetching group members for notification: %v", err)
	} else {
		for _, member := range members {
			go utils.SendModuleAssignedEmail(member.Email, member.FullName(), module.Title, reqData.DueDate)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module assigned to group successfully.", assignment)
}

func UnassignModuleFromGroup(c *fiber.Ctx) error {
	groupID, ok := c.Locals("groupID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	moduleID, ok := c.Locals("moduleID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var assignment training.GroupAssignment
	if err := db.Where("group_id = ? AND module_id = ? AND is_deleted = ?", groupID, moduleID, false).First(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	assignment.IsDeleted = true
	if err := db.Save(&assignment).Error; err != nil {
		log.Printf("Error removing group assignment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unassign module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module unassigned from group successfully.", nil)
}

func DeleteGroup(c *fiber.Ctx) error {
	groupID, ok := c.Locals("groupID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var group models.UserGroup
	if err := db.Where("id = ? AND is_deleted = ?", groupID, false).First(&group).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Group not found!", nil)
	}

	group.IsDeleted = true
	if err := db.Save(&group).Error; err != nil {
		log.Printf("Error deleting group: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete group!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Group deleted successfully.", nil)
}
