package trainingController

import (
	"log"
	"math/rand"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/models/training"
	"lms/services"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// GetQuiz returns a quiz for taking. Options are shuffled and the
// correct flags stripped.
func GetQuiz(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID, ok := c.Locals("quizID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var quiz training.Quiz
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", quizID, true, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var lesson training.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", quiz.LessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	hasAccess, err := services.HasModuleAccess(db, userId, lesson.ModuleID)
	if err != nil {
		log.Printf("Error checking module access for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz!", nil)
	}
	if !hasAccess {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Module is not assigned to you!", nil)
	}

	var questions []training.Question
	if err := db.Where("quiz_id = ? AND is_deleted = ?", quizID, false).
		Order("order_index asc").
		Find(&questions).
		Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	type optionView struct {
		ID   uint   `json:"id"`
		Text string `json:"text"`
	}
	type questionView struct {
		ID      uint         `json:"id"`
		Text    string       `json:"text"`
		Options []optionView `json:"options"`
	}

	questionViews := make([]questionView, 0, len(questions))
	for _, q := range questions {
		var options []training.QuestionOption
		if err := db.Where("question_id = ? AND is_deleted = ?", q.ID, false).
			Order("order_index asc").
			Find(&options).
			Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch options!", nil)
		}

		views := make([]optionView, len(options))
		for i, opt := range options {
			views[i] = optionView{ID: opt.ID, Text: opt.Text}
		}
		rand.Shuffle(len(views), func(i, j int) {
			views[i], views[j] = views[j], views[i]
		})

		questionViews = append(questionViews, questionView{
			ID:      q.ID,
			Text:    q.Text,
			Options: views,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz details.", fiber.Map{
		"quiz": fiber.Map{
			"id":            quiz.ID,
			"lesson_id":     quiz.LessonID,
			"title":         quiz.Title,
			"description":   quiz.Description,
			"passing_score": quiz.PassingScore,
		},
		"questions": questionViews,
	})
}

// SubmitQuiz grades a submission and records the attempt
func SubmitQuiz(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID, ok := c.Locals("quizID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedSubmission").(*struct {
		Answers []services.SubmittedAnswer `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var quiz training.Quiz
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", quizID, true, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var lesson training.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", quiz.LessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	hasAccess, err := services.HasModuleAccess(db, userId, lesson.ModuleID)
	if err != nil {
		log.Printf("Error checking module access for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}
	if !hasAccess {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Module is not assigned to you!", nil)
	}

	_, certErr := services.GetComprehensiveCertificate(db, userId)
	hadCertificate := certErr == nil

	result, err := services.GradeQuizSubmission(db, userId, uint(quizID), reqData.Answers)
	if err != nil {
		if err == services.ErrValidation {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Please answer every question exactly once!", nil)
		}
		if err == services.ErrNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
		}
		log.Printf("Error grading quiz submission for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	// Notify when the pass finished the whole module
	if result.Passed {
		var progress training.ModuleProgress
		if err := db.Where("user_id = ? AND module_id = ? AND status = ? AND is_deleted = ?",
			userId, lesson.ModuleID, training.StatusCompleted, false).First(&progress).Error; err == nil {
			var module training.Module
			var user models.User
			if db.Where("id = ?", lesson.ModuleID).First(&module).Error == nil &&
				db.Where("id = ?", userId).First(&user).Error == nil {
				go utils.SendModuleCompletedEmail(user.Email, user.FullName(), module.Title)

				// The pass may also have triggered the aggregate certificate
				if !hadCertificate {
					if cert, err := services.GetComprehensiveCertificate(db, userId); err == nil {
						go utils.SendCertificateIssuedEmail(user.Email, user.FullName(), cert.TotalModulesCompleted)
					}
				}
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted.", fiber.Map{
		"score":         result.Score,
		"passed":        result.Passed,
		"passing_score": quiz.PassingScore,
		"completed_at":  result.CompletedAt,
	})
}

// QuizResults lists the learner's attempts for a quiz, newest first
func QuizResults(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID, ok := c.Locals("quizID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var results []training.QuizResult
	if err := db.Where("user_id = ? AND quiz_id = ? AND is_deleted = ?", userId, quizID, false).
		Order("completed_at desc").
		Find(&results).
		Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz results!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz results.", results)
}
