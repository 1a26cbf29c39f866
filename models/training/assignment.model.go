package training

import (
	"time"

	"gorm.io/gorm"
)

// ModuleAssignment grants a single learner access to a module
type ModuleAssignment struct {
	gorm.Model
	UserID     uint       `json:"user_id" gorm:"index:idx_user_module,unique;not null"`
	ModuleID   uint       `json:"module_id" gorm:"index:idx_user_module,unique;not null"`
	AssignedAt time.Time  `json:"assigned_at"`
	AssignedBy uint       `json:"assigned_by"`
	DueDate    *time.Time `json:"due_date"`
	IsDeleted  bool       `gorm:"default:false"`
}

// GroupAssignment grants every active member of a group access to a module
type GroupAssignment struct {
	gorm.Model
	GroupID    uint       `json:"group_id" gorm:"index:idx_group_module,unique;not null"`
	ModuleID   uint       `json:"module_id" gorm:"index:idx_group_module,unique;not null"`
	AssignedAt time.Time  `json:"assigned_at"`
	AssignedBy uint       `json:"assigned_by"`
	DueDate    *time.Time `json:"due_date"`
	IsDeleted  bool       `gorm:"default:false"`
}
