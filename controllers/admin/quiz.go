package adminController

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models/training"

	"github.com/gofiber/fiber/v2"
)

func CreateQuiz(c *fiber.Ctx) error {
	lessonID, ok := c.Locals("lessonID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		PassingScore int    `json:"passing_score"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson training.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	// One quiz per lesson
	if err := db.Where("lesson_id = ? AND is_deleted = ?", lessonID, false).First(&training.Quiz{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Lesson already has a quiz!", nil)
	}

	passingScore := reqData.PassingScore
	if passingScore == 0 {
		passingScore = 70
	}

	newQuiz := training.Quiz{
		LessonID:     uint(lessonID),
		Title:        reqData.Title,
		Description:  reqData.Description,
		PassingScore: passingScore,
		IsActive:     true,
	}

	if err := db.Create(&newQuiz).Error; err != nil {
		log.Printf("Error saving quiz to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully.", newQuiz)
}

func GetQuiz(c *fiber.Ctx) error {
	quizID, ok := c.Locals("quizID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var quiz training.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var questions []training.Question
	if err := db.Where("quiz_id = ? AND is_deleted = ?", quizID, false).
		Order("order_index asc").
		Find(&questions).
		Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	type questionWithOptions struct {
		training.Question
		Options []training.QuestionOption `json:"options"`
	}

	detailed := make([]questionWithOptions, 0, len(questions))
	for _, q := range questions {
		var options []training.QuestionOption
		if err := db.Where("question_id = ? AND is_deleted = ?", q.ID, false).
			Order("order_index asc").
			Find(&options).
			Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch options!", nil)
		}
		detailed = append(detailed, questionWithOptions{Question: q, Options: options})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz details.", fiber.Map{
		"quiz":      quiz,
		"questions": detailed,
	})
}

func CreateQuestion(c *fiber.Ctx) error {
	quizID, ok := c.Locals("quizID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*struct {
		Text       string `json:"text"`
		OrderIndex int    `json:"order_index"`
		Options    []struct {
			Text      string `json:"text"`
			IsCorrect bool   `json:"is_correct"`
		} `json:"options"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var quiz training.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	orderIndex := reqData.OrderIndex
	if orderIndex == 0 {
		var maxOrder int
		db.Model(&training.Question{}).Where("quiz_id = ? AND is_deleted = ?", quizID, false).
			Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	question := training.Question{
		QuizID:     uint(quizID),
		Text:       reqData.Text,
		OrderIndex: orderIndex,
	}

	tx := db.Begin()
	if err := tx.Create(&question).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving question to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	options := make([]training.QuestionOption, 0, len(reqData.Options))
	for i, opt := range reqData.Options {
		options = append(options, training.QuestionOption{
			QuestionID: question.ID,
			Text:       opt.Text,
			IsCorrect:  opt.IsCorrect,
			OrderIndex: i + 1,
		})
	}
	if err := tx.Create(&options).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving options to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully.", fiber.Map{
		"question": question,
		"options":  options,
	})
}

func DeleteQuestion(c *fiber.Ctx) error {
	questionID, ok := c.Locals("questionID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var question training.Question
	if err := db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	tx := db.Begin()
	question.IsDeleted = true
	if err := tx.Save(&question).Error; err != nil {
		tx.Rollback()
		log.Printf("Error deleting question: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}
	if err := tx.Model(&training.QuestionOption{}).
		Where("question_id = ?", questionID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		log.Printf("Error deleting question options: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully.", nil)
}

func UpdateQuiz(c *fiber.Ctx) error {
	quizID, ok := c.Locals("quizID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		PassingScore int    `json:"passing_score"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var quiz training.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	quiz.Title = reqData.Title
	if reqData.Description != "" {
		quiz.Description = reqData.Description
	}
	if reqData.PassingScore > 0 {
		quiz.PassingScore = reqData.PassingScore
	}

	if err := db.Save(&quiz).Error; err != nil {
		log.Printf("Error updating quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully.", quiz)
}

func DeleteQuiz(c *fiber.Ctx) error {
	quizID, ok := c.Locals("quizID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var quiz training.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	quiz.IsDeleted = true
	quiz.IsActive = false
	if err := db.Save(&quiz).Error; err != nil {
		log.Printf("Error deleting quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully.", nil)
}
