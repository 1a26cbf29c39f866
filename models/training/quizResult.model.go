package training

import (
	"time"

	"gorm.io/gorm"
)

// QuizResult is one graded attempt; append-only, retakes create new rows
type QuizResult struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	QuizID      uint      `json:"quiz_id" gorm:"index;not null"`
	Score       int       `json:"score"` // Integer percentage 0-100
	Passed      bool      `json:"passed" gorm:"default:false"`
	CompletedAt time.Time `json:"completed_at"`
	IsDeleted   bool      `gorm:"default:false"`
}

// QuestionAnswer records the choice made for one question at grading
// time; immutable even if the question changes later
type QuestionAnswer struct {
	gorm.Model
	QuizResultID     uint `json:"quiz_result_id" gorm:"index;not null"`
	QuestionID       uint `json:"question_id" gorm:"not null"`
	SelectedOptionID uint `json:"selected_option_id" gorm:"not null"`
	IsCorrect        bool `json:"is_correct" gorm:"default:false"`
	IsDeleted        bool `gorm:"default:false"`
}
