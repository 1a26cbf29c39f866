package models

import "gorm.io/gorm"

// Company represents an organization whose employees take training
type Company struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}
