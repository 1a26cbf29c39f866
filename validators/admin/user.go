package adminValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// UserID validates the user route parameter
func UserID() fiber.Handler {
	return idParam("user_id", "targetUserID")
}

// UpdateUserRole validates a role change request
func UpdateUserRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Role string `json:"role"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Role != middleware.RoleAdmin && reqData.Role != middleware.RoleUser {
			return middleware.ValidationErrorResponse(c, map[string]string{"role": "Role must be ADMIN or USER!"})
		}

		c.Locals("validatedRole", reqData)
		return c.Next()
	}
}
