package adminValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// idParam validates a positive integer route parameter and stores it in
// locals under the given key
func idParam(param, localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "ID is required!", nil)
		}

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}

		c.Locals(localKey, id)
		return c.Next()
	}
}

// CompanyID validates the company route parameter
func CompanyID() fiber.Handler {
	return idParam("id", "companyID")
}

// CreateCompany validates a company create request
func CreateCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Company name must be at least 2 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompany", reqData)
		return c.Next()
	}
}

// UpdateCompany validates a company update request; fields are optional
func UpdateCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			IsActive    *bool  `json:"is_active"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Name != "" && len(strings.TrimSpace(reqData.Name)) < 2 {
			return middleware.ValidationErrorResponse(c, map[string]string{"name": "Company name must be at least 2 characters long!"})
		}

		c.Locals("validatedCompanyUpdate", reqData)
		return c.Next()
	}
}

// ListPagination validates optional page/limit query parameters shared
// by the admin list endpoints
func ListPagination(localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Page != nil && *reqData.Page < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{"page": "Page must be greater than 0!"})
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{"limit": "Limit must be greater than 0!"})
		}

		if reqData.Page == nil {
			defaultPage := 1
			reqData.Page = &defaultPage
		}
		if reqData.Limit == nil {
			defaultLimit := 10
			reqData.Limit = &defaultLimit
		}

		c.Locals(localKey, reqData)
		return c.Next()
	}
}
