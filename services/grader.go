package services

import (
	"time"

	"lms/models/training"

	"gorm.io/gorm"
)

// SubmittedAnswer is one learner choice in a quiz submission
type SubmittedAnswer struct {
	QuestionID       uint `json:"question_id"`
	SelectedOptionID uint `json:"selected_option_id"`
}

// GradeQuizSubmission validates and scores a submission against the
// stored correct options. Every question must be answered exactly once
// and every selected option must belong to its question; any violation
// rejects the whole submission before anything is persisted. The score
// is an integer percentage (truncating division). Each call appends a
// new result row; retakes are never merged. A passing grade marks the
// quiz's owning lesson completed.
func GradeQuizSubmission(db *gorm.DB, userID, quizID uint, answers []SubmittedAnswer) (*training.QuizResult, error) {
	var quiz training.Quiz
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", quizID, true, false).First(&quiz).Error; err != nil {
		return nil, ErrNotFound
	}

	var questions []training.Question
	if err := db.Where("quiz_id = ? AND is_deleted = ?", quizID, false).Order("order_index asc").Find(&questions).Error; err != nil {
		return nil, err
	}

	if len(answers) != len(questions) {
		return nil, ErrValidation
	}

	// Exactly one answer per question
	selected := make(map[uint]uint, len(answers))
	for _, a := range answers {
		if _, dup := selected[a.QuestionID]; dup {
			return nil, ErrValidation
		}
		selected[a.QuestionID] = a.SelectedOptionID
	}

	correctCount := 0
	questionAnswers := make([]training.QuestionAnswer, 0, len(questions))

	for _, question := range questions {
		optionID, ok := selected[question.ID]
		if !ok {
			return nil, ErrValidation
		}

		var option training.QuestionOption
		if err := db.Where("id = ? AND question_id = ? AND is_deleted = ?", optionID, question.ID, false).First(&option).Error; err != nil {
			// Option does not exist or belongs to another question
			return nil, ErrValidation
		}

		if option.IsCorrect {
			correctCount++
		}

		questionAnswers = append(questionAnswers, training.QuestionAnswer{
			QuestionID:       question.ID,
			SelectedOptionID: optionID,
			IsCorrect:        option.IsCorrect,
		})
	}

	score := 0
	if len(questions) > 0 {
		score = (correctCount * 100) / len(questions) // truncating, not rounding
	}
	passed := score >= quiz.PassingScore

	result := training.QuizResult{
		UserID:      userID,
		QuizID:      quizID,
		Score:       score,
		Passed:      passed,
		CompletedAt: time.Now(),
	}

	tx := db.Begin()
	if err := tx.Create(&result).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for i := range questionAnswers {
		questionAnswers[i].QuizResultID = result.ID
	}
	if len(questionAnswers) > 0 {
		if err := tx.Create(&questionAnswers).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	tx.Commit()

	// A pass completes the owning lesson (upgrade only)
	if passed {
		if err := MarkLessonCompleted(db, userID, quiz.LessonID); err != nil && err != ErrNotFound {
			return nil, err
		}
	}

	return &result, nil
}

// LatestQuizResult returns the learner's most recent attempt, or
// ErrNotFound when there is none
func LatestQuizResult(db *gorm.DB, userID, quizID uint) (*training.QuizResult, error) {
	var result training.QuizResult
	err := db.Where("user_id = ? AND quiz_id = ? AND is_deleted = ?", userID, quizID, false).
		Order("completed_at desc").First(&result).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
