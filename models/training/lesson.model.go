package training

import "gorm.io/gorm"

// Lesson is a markdown content unit within a module, unlocked sequentially
type Lesson struct {
	gorm.Model
	ModuleID   uint   `json:"module_id" gorm:"index;not null"`
	Title      string `json:"title" gorm:"not null"`
	Content    string `json:"content" gorm:"type:text"` // Markdown source
	OrderIndex int    `json:"order_index" gorm:"default:0"` // Order within the module, 1-based
	IsActive   bool   `json:"is_active" gorm:"default:true"`
	IsDeleted  bool   `gorm:"default:false"`
}
