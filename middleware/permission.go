package middleware

import (
	"lms/database"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// Roles understood by the capability check
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Actions gated by role
const (
	ActionManageCompanies = "manage-companies"
	ActionManageGroups    = "manage-groups"
	ActionManageModules   = "manage-modules"
	ActionManageUsers     = "manage-users"
	ActionViewReports     = "view-reports"
	ActionTakeTraining    = "take-training"
	ActionViewOwnProgress = "view-own-progress"
	ActionDownloadOwnCert = "download-own-certificate"
)

// roleCapabilities maps each role to the actions it may perform
var roleCapabilities = map[string]map[string]bool{
	RoleAdmin: {
		ActionManageCompanies: true,
		ActionManageGroups:    true,
		ActionManageModules:   true,
		ActionManageUsers:     true,
		ActionViewReports:     true,
		ActionTakeTraining:    true,
		ActionViewOwnProgress: true,
		ActionDownloadOwnCert: true,
	},
	RoleUser: {
		ActionTakeTraining:    true,
		ActionViewOwnProgress: true,
		ActionDownloadOwnCert: true,
	},
}

// Can reports whether a role is allowed to perform an action
func Can(role, action string) bool {
	caps, ok := roleCapabilities[role]
	if !ok {
		return false
	}
	return caps[action]
}

// RequireAction returns a middleware that checks the authenticated user's
// role against the capability table. The role stored in the token is
// re-checked against the database so revoked admins are cut off without
// waiting for token expiry.
func RequireAction(action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: User ID not found",
				"data":    nil,
			})
		}

		var user models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "User not found!",
				"data":    nil,
			})
		}

		if !Can(user.Role, action) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "You do not have permission to access this resource!",
				"data":    nil,
			})
		}

		c.Locals("userRole", user.Role)
		return c.Next()
	}
}
