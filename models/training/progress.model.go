package training

import (
	"time"

	"gorm.io/gorm"
)

// Progress status values. Transitions only move forward:
// NOT_STARTED -> IN_PROGRESS -> COMPLETED.
const (
	StatusNotStarted = "NOT_STARTED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

// StatusRank orders progress statuses so regressions can be rejected
func StatusRank(status string) int {
	switch status {
	case StatusInProgress:
		return 1
	case StatusCompleted:
		return 2
	}
	return 0
}

// LessonProgress tracks a learner's state in one lesson; created lazily
// on first access
type LessonProgress struct {
	gorm.Model
	UserID         uint       `json:"user_id" gorm:"index:idx_user_lesson,unique;not null"`
	LessonID       uint       `json:"lesson_id" gorm:"index:idx_user_lesson,unique;not null"`
	Status         string     `json:"status" gorm:"default:'NOT_STARTED'"`
	StartedAt      *time.Time `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	LastAccessedAt time.Time  `json:"last_accessed_at"`
	ScrollPosition int        `json:"scroll_position" gorm:"default:0"`
	IsDeleted      bool       `gorm:"default:false"`
}

// ModuleProgress is derived from lesson progress within the module
type ModuleProgress struct {
	gorm.Model
	UserID              uint       `json:"user_id" gorm:"index:idx_user_module_progress,unique;not null"`
	ModuleID            uint       `json:"module_id" gorm:"index:idx_user_module_progress,unique;not null"`
	Status              string     `json:"status" gorm:"default:'NOT_STARTED'"`
	CompletedLessons    int        `json:"completed_lessons" gorm:"default:0"`
	TotalLessons        int        `json:"total_lessons" gorm:"default:0"`
	StartedAt           *time.Time `json:"started_at"`
	CompletedAt         *time.Time `json:"completed_at"`
	LastAccessedAt      time.Time  `json:"last_accessed_at"`
	CertificateIssued   bool       `json:"certificate_issued" gorm:"default:false"`
	CertificateIssuedAt *time.Time `json:"certificate_issued_at"`
	IsDeleted           bool       `gorm:"default:false"`
}

// CompletionPercentage reports module progress as 0-100
func (p *ModuleProgress) CompletionPercentage() float64 {
	if p.TotalLessons == 0 {
		return 0
	}
	return float64(p.CompletedLessons) / float64(p.TotalLessons) * 100
}
