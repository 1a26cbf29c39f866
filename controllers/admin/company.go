package adminController

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

func CreateCompany(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCompany").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if company name already exists
	if err := db.Where("name = ? AND is_deleted = ?", reqData.Name, false).First(&models.Company{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Company name already exists!", nil)
	}

	newCompany := models.Company{
		Name:        reqData.Name,
		Description: reqData.Description,
		IsActive:    true,
	}

	if err := db.Create(&newCompany).Error; err != nil {
		log.Printf("Error saving company to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Company created successfully.", newCompany)
}

func CompanyList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPagination").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	db := database.Database.Db

	var companies []models.Company
	var total int64

	if err := db.Where("is_deleted = ?", false).
		Order("name asc").
		Offset(offset).
		Limit(*reqData.Limit).
		Find(&companies).
		Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch companies!", nil)
	}

	db.Model(&models.Company{}).Where("is_deleted = ?", false).Count(&total)

	response := map[string]interface{}{
		"companies": companies,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company List.", response)
}

func GetCompany(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var company models.Company
	if err := db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	var memberCount int64
	db.Model(&models.User{}).Where("company_id = ? AND is_deleted = ?", companyID, false).Count(&memberCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company details.", fiber.Map{
		"company":     company,
		"memberCount": memberCount,
	})
}

func UpdateCompany(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedCompanyUpdate").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		IsActive    *bool  `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var company models.Company
	if err := db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	if reqData.Name != "" {
		company.Name = reqData.Name
	}
	if reqData.Description != "" {
		company.Description = reqData.Description
	}
	if reqData.IsActive != nil {
		company.IsActive = *reqData.IsActive
	}

	if err := db.Save(&company).Error; err != nil {
		log.Printf("Error updating company: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company updated successfully.", company)
}

func DeleteCompany(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var company models.Company
	if err := db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	company.IsDeleted = true
	if err := db.Save(&company).Error; err != nil {
		log.Printf("Error deleting company: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company deleted successfully.", nil)
}
