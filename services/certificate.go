package services

import (
	"encoding/json"
	"log"
	"time"

	"lms/models/training"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetComprehensiveCertificate returns the learner's certificate, or
// ErrNotFound when none has been issued
func GetComprehensiveCertificate(db *gorm.DB, userID uint) (*training.ComprehensiveCertificate, error) {
	var cert training.ComprehensiveCertificate
	err := db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&cert).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

// AreAllAssignedModulesCompleted reports whether every module in the
// learner's resolved assignment set is completed, short-circuiting on
// the first incomplete one. A learner with no assignments never
// qualifies. The assigned modules are returned for snapshotting.
func AreAllAssignedModulesCompleted(db *gorm.DB, userID uint) (bool, []training.Module, error) {
	assigned, err := ResolveAssignedModules(db, userID)
	if err != nil {
		return false, nil, err
	}
	if len(assigned) == 0 {
		return false, assigned, nil
	}

	for _, module := range assigned {
		var progress training.ModuleProgress
		err := db.Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, module.ID, false).First(&progress).Error
		if err == gorm.ErrRecordNotFound {
			return false, assigned, nil
		}
		if err != nil {
			return false, nil, err
		}
		if progress.Status != training.StatusCompleted {
			return false, assigned, nil
		}
	}

	return true, assigned, nil
}

// CheckAndIssueComprehensiveCertificate issues the one-off aggregate
// certificate when the learner has completed every assigned module.
// Idempotent: an existing certificate is returned unchanged and never
// recomputed, even if more modules are assigned later. The existence
// check and insert run inside a transaction, with the unique index on
// user_id as the backstop against concurrent double issuance. Returns
// nil (no error) when the learner is not yet eligible.
func CheckAndIssueComprehensiveCertificate(db *gorm.DB, userID uint) (*training.ComprehensiveCertificate, error) {
	if existing, err := GetComprehensiveCertificate(db, userID); err == nil {
		return existing, nil
	} else if err != ErrNotFound {
		return nil, err
	}

	allCompleted, assigned, err := AreAllAssignedModulesCompleted(db, userID)
	if err != nil {
		return nil, err
	}
	if !allCompleted {
		return nil, nil
	}

	moduleIDs := make([]uint, len(assigned))
	for i, m := range assigned {
		moduleIDs[i] = m.ID
	}
	idsJSON, err := json.Marshal(moduleIDs)
	if err != nil {
		return nil, err
	}

	cert := training.ComprehensiveCertificate{
		UserID:                userID,
		CertificateNumber:     uuid.NewString(),
		IssuedAt:              time.Now(),
		CompletedModuleIDs:    string(idsJSON),
		TotalModulesCompleted: len(moduleIDs),
	}

	tx := db.Begin()

	// Re-check inside the transaction; the unique index catches the
	// remaining race window
	var existing training.ComprehensiveCertificate
	if err := tx.Where("user_id = ? AND is_deleted = ?", userID, false).First(&existing).Error; err == nil {
		tx.Rollback()
		return &existing, nil
	}

	if err := tx.Create(&cert).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	tx.Commit()

	log.Printf("[CERTIFICATE] issued comprehensive certificate %s for user %d covering %d modules",
		cert.CertificateNumber, userID, cert.TotalModulesCompleted)

	return &cert, nil
}

// CompletedModuleIDList decodes the snapshot stored on the certificate
func CompletedModuleIDList(cert *training.ComprehensiveCertificate) ([]uint, error) {
	var ids []uint
	if err := json.Unmarshal([]byte(cert.CompletedModuleIDs), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// RecordCertificateDownload stamps the download time and bumps the
// counter
func RecordCertificateDownload(db *gorm.DB, cert *training.ComprehensiveCertificate) error {
	now := time.Now()
	cert.DownloadedAt = &now
	cert.DownloadCount++
	return db.Save(cert).Error
}

// RepairModuleCertificates backfills the per-module certificate flags
// on completed progress rows that missed them. Run nightly.
func RepairModuleCertificates(db *gorm.DB) (int, error) {
	var rows []training.ModuleProgress
	if err := db.Where("status = ? AND certificate_issued = ? AND is_deleted = ?",
		training.StatusCompleted, false, false).Find(&rows).Error; err != nil {
		return 0, err
	}

	for i := range rows {
		issuedAt := rows[i].CompletedAt
		if issuedAt == nil {
			now := time.Now()
			issuedAt = &now
		}
		rows[i].CertificateIssued = true
		rows[i].CertificateIssuedAt = issuedAt
		if err := db.Save(&rows[i]).Error; err != nil {
			return 0, err
		}
	}

	return len(rows), nil
}
