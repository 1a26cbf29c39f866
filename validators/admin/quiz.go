package adminValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// QuizID validates the quiz route parameter
func QuizID() fiber.Handler {
	return idParam("quiz_id", "quizID")
}

// QuestionID validates the question route parameter
func QuestionID() fiber.Handler {
	return idParam("question_id", "questionID")
}

// CreateQuiz validates a quiz create request
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			PassingScore int    `json:"passing_score"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.PassingScore < 0 || reqData.PassingScore > 100 {
			errors["passing_score"] = "Passing score must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// CreateQuestion validates a question create request, including its
// options. At least two options are required and exactly one must be
// marked correct.
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Text       string `json:"text"`
			OrderIndex int    `json:"order_index"`
			Options    []struct {
				Text      string `json:"text"`
				IsCorrect bool   `json:"is_correct"`
			} `json:"options"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Text) == "" {
			errors["text"] = "Question text is required!"
		}
		if len(reqData.Options) < 2 {
			errors["options"] = "At least two options are required!"
		} else {
			correctCount := 0
			for _, opt := range reqData.Options {
				if strings.TrimSpace(opt.Text) == "" {
					errors["options"] = "Option text cannot be empty!"
					break
				}
				if opt.IsCorrect {
					correctCount++
				}
			}
			if correctCount != 1 && errors["options"] == "" {
				errors["options"] = "Exactly one option must be marked correct!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}
