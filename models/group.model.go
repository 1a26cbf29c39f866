package models

import (
	"time"

	"gorm.io/gorm"
)

// UserGroup bundles learners so modules can be assigned to them in one go
type UserGroup struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	CompanyID   *uint  `json:"company_id" gorm:"index"`
	IsDeleted   bool   `gorm:"default:false"`
}

// GroupMembership links a learner to a group; only active memberships
// count toward assignment resolution
type GroupMembership struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"index:idx_group_member,unique;not null"`
	GroupID    uint      `json:"group_id" gorm:"index:idx_group_member,unique;not null"`
	IsActive   bool      `json:"is_active" gorm:"default:true"`
	DateJoined time.Time `json:"date_joined"`
	IsDeleted  bool      `gorm:"default:false"`
}
