package trainingValidator

import (
	"strconv"
	"strings"

	"lms/middleware"
	"lms/models/training"
	"lms/services"

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

// ModuleID validates the module route parameter
func ModuleID() fiber.Handler {
	return idParam("id", "moduleID")
}

// LessonID validates the lesson route parameter
func LessonID() fiber.Handler {
	return idParam("id", "lessonID")
}

// QuizID validates the quiz route parameter
func QuizID() fiber.Handler {
	return idParam("id", "quizID")
}

// RecordProgress validates a lesson progress update
func RecordProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status         string `json:"status"`
			ScrollPosition int    `json:"scroll_position"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch reqData.Status {
		case training.StatusNotStarted, training.StatusInProgress, training.StatusCompleted:
		default:
			errors["status"] = "Status must be NOT_STARTED, IN_PROGRESS or COMPLETED!"
		}
		if reqData.ScrollPosition < 0 {
			errors["scroll_position"] = "Scroll position cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// SubmitQuiz validates the shape of a quiz submission. Completeness
// against the quiz's question set is checked by the grader.
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers []services.SubmittedAnswer `json:"answers"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Answers) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"answers": "Please answer all questions before submitting!"})
		}
		for _, a := range reqData.Answers {
			if a.QuestionID == 0 || a.SelectedOptionID == 0 {
				return middleware.ValidationErrorResponse(c, map[string]string{"answers": "Every answer needs a question and a selected option!"})
			}
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
