package training

import (
	"time"

	"gorm.io/gorm"
)

// ComprehensiveCertificate is issued once a learner completes every
// assigned module. At most one per learner, enforced by the unique
// index on user_id; first issuance wins and is never recomputed.
type ComprehensiveCertificate struct {
	gorm.Model
	UserID                uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	CertificateNumber     string     `json:"certificate_number" gorm:"unique"`
	IssuedAt              time.Time  `json:"issued_at"`
	CompletedModuleIDs    string     `json:"completed_module_ids" gorm:"type:text"` // JSON array of module IDs
	TotalModulesCompleted int        `json:"total_modules_completed"`
	DownloadedAt          *time.Time `json:"downloaded_at"`
	DownloadCount         int        `json:"download_count" gorm:"default:0"`
	IsDeleted             bool       `gorm:"default:false"`
}
