package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage        string     `gorm:"default:''"`
	FirstName           string     `gorm:"default:''"`
	LastName            string     `gorm:"default:''"`
	Email               string     `gorm:"unique;not null"`
	Role                string     `gorm:"default:'USER'"` // USER, ADMIN
	Password            string     `gorm:"not null"`
	CompanyID           *uint      `gorm:"index" json:"company_id"`
	JobTitle            string     `gorm:"default:''"`
	IsEmailVerified     bool       `gorm:"default:false"`
	IsProfileComplete   bool       `gorm:"default:false"`
	LastLogin           time.Time  `gorm:"default:NULL"`
	FailedLoginAttempts int        `gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"last_failed_login"`
	IsBlocked           bool       `gorm:"default:false"`
	BlockedUntil        *time.Time `json:"blocked_until"`
	IsDeleted           bool       `gorm:"default:false"`
}

// FullName joins first and last name for certificates and emails.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
