package adminValidator

import (
	"strings"
	"time"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// GroupID validates the group route parameter
func GroupID() fiber.Handler {
	return idParam("id", "groupID")
}

// AssignedModuleID validates the module route parameter on assignment
// routes, where :id already names the group or user
func AssignedModuleID() fiber.Handler {
	return idParam("module_id", "moduleID")
}

// CreateGroup validates a group create request
func CreateGroup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			CompanyID   *uint  `json:"company_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Group name must be at least 2 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGroup", reqData)
		return c.Next()
	}
}

// AddGroupMember validates a membership add request
func AddGroupMember() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID uint `json:"user_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.UserID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"user_id": "User ID is required!"})
		}

		c.Locals("validatedMember", reqData)
		return c.Next()
	}
}

// SetMembershipActive validates a membership activate/deactivate request
func SetMembershipActive() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID   uint  `json:"user_id"`
			IsActive *bool `json:"is_active"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.UserID == 0 {
			errors["user_id"] = "User ID is required!"
		}
		if reqData.IsActive == nil {
			errors["is_active"] = "is_active is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMembership", reqData)
		return c.Next()
	}
}

// AssignModule validates a module assignment request for groups and for
// single learners
func AssignModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ModuleID uint       `json:"module_id"`
			DueDate  *time.Time `json:"due_date"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ModuleID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"module_id": "Module ID is required!"})
		}

		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}
