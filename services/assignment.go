package services

import (
	"lms/models"
	"lms/models/training"

	"gorm.io/gorm"
)

// ResolveAssignedModules computes the set of modules a learner may
// access: direct assignments unioned with assignments inherited through
// active group memberships, filtered to active modules, ordered by
// display order (title breaks ties). An unknown learner yields an empty
// slice, not an error.
func ResolveAssignedModules(db *gorm.DB, userID uint) ([]training.Module, error) {
	var directIDs []uint
	if err := db.Model(&training.ModuleAssignment{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Pluck("module_id", &directIDs).Error; err != nil {
		return nil, err
	}

	var groupIDs []uint
	if err := db.Model(&models.GroupMembership{}).
		Where("user_id = ? AND is_active = ? AND is_deleted = ?", userID, true, false).
		Pluck("group_id", &groupIDs).Error; err != nil {
		return nil, err
	}

	var inheritedIDs []uint
	if len(groupIDs) > 0 {
		if err := db.Model(&training.GroupAssignment{}).
			Where("group_id IN ? AND is_deleted = ?", groupIDs, false).
			Pluck("module_id", &inheritedIDs).Error; err != nil {
			return nil, err
		}
	}

	// Dedupe the union
	seen := make(map[uint]bool)
	moduleIDs := make([]uint, 0, len(directIDs)+len(inheritedIDs))
	for _, id := range append(directIDs, inheritedIDs...) {
		if !seen[id] {
			seen[id] = true
			moduleIDs = append(moduleIDs, id)
		}
	}

	if len(moduleIDs) == 0 {
		return []training.Module{}, nil
	}

	var modules []training.Module
	if err := db.Where("id IN ? AND is_active = ? AND is_deleted = ?", moduleIDs, true, false).
		Order("order_index asc, title asc").
		Find(&modules).Error; err != nil {
		return nil, err
	}

	return modules, nil
}

// HasModuleAccess reports whether the learner's resolved assignment set
// contains the module
func HasModuleAccess(db *gorm.DB, userID uint, moduleID uint) (bool, error) {
	modules, err := ResolveAssignedModules(db, userID)
	if err != nil {
		return false, err
	}
	for _, m := range modules {
		if m.ID == moduleID {
			return true, nil
		}
	}
	return false, nil
}
