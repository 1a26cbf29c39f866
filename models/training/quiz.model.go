package training

import "gorm.io/gorm"

// Quiz is an assessment attached to a lesson
type Quiz struct {
	gorm.Model
	LessonID     uint   `json:"lesson_id" gorm:"index;not null"`
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description"`
	PassingScore int    `json:"passing_score" gorm:"default:70"` // Percentage needed to pass
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	IsDeleted    bool   `gorm:"default:false"`
}

// Question belongs to a quiz and carries multiple-choice options
type Question struct {
	gorm.Model
	QuizID     uint   `json:"quiz_id" gorm:"index;not null"`
	Text       string `json:"text" gorm:"type:text;not null"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// QuestionOption is a single choice for a question
type QuestionOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	Text       string `json:"text" gorm:"not null"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}
