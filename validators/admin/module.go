package adminValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// ModuleID validates the module route parameter
func ModuleID() fiber.Handler {
	return idParam("id", "moduleID")
}

// LessonID validates the lesson route parameter
func LessonID() fiber.Handler {
	return idParam("lesson_id", "lessonID")
}

// CreateModule validates a module create request
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateModule validates a module update request; fields are optional
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
			IsActive    *bool  `json:"is_active"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Title != "" && len(strings.TrimSpace(reqData.Title)) < 3 {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title must be at least 3 characters long!"})
		}

		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

// CreateLesson validates a lesson create request
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title      string `json:"title"`
			Content    string `json:"content"`
			OrderIndex int    `json:"order_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Lesson content is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// UpdateLesson validates a lesson update request; fields are optional
func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title      string `json:"title"`
			Content    string `json:"content"`
			OrderIndex int    `json:"order_index"`
			IsActive   *bool  `json:"is_active"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Title != "" && len(strings.TrimSpace(reqData.Title)) < 3 {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title must be at least 3 characters long!"})
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

// MoveLesson validates a lesson move request
func MoveLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TargetModuleID uint `json:"target_module_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.TargetModuleID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"target_module_id": "Target module ID is required!"})
		}

		c.Locals("validatedMove", reqData)
		return c.Next()
	}
}
