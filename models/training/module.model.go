package training

import "gorm.io/gorm"

// Module is a top-level training unit containing ordered lessons
type Module struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // Display order on the dashboard
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}
