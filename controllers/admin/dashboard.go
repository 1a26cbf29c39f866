package adminController

import (
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/models/training"

	"github.com/gofiber/fiber/v2"
)

// DashboardStats gets aggregate statistics for the admin dashboard
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalCompanies, totalGroups, totalModules, activeModules int64
	var modulesInProgress, modulesCompleted, certificatesIssued int64

	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.Company{}).Where("is_deleted = ?", false).Count(&totalCompanies)
	db.Model(&models.UserGroup{}).Where("is_deleted = ?", false).Count(&totalGroups)
	db.Model(&training.Module{}).Where("is_deleted = ?", false).Count(&totalModules)
	db.Model(&training.Module{}).Where("is_deleted = ? AND is_active = ?", false, true).Count(&activeModules)
	db.Model(&training.ModuleProgress{}).Where("is_deleted = ? AND status = ?", false, training.StatusInProgress).Count(&modulesInProgress)
	db.Model(&training.ModuleProgress{}).Where("is_deleted = ? AND status = ?", false, training.StatusCompleted).Count(&modulesCompleted)
	db.Model(&training.ComprehensiveCertificate{}).Where("is_deleted = ?", false).Count(&certificatesIssued)

	// Recent module completions
	type RecentCompletion struct {
		UserName    string     `json:"user_name"`
		ModuleTitle string     `json:"module_title"`
		CompletedAt *time.Time `json:"completed_at"`
	}

	var recentProgress []training.ModuleProgress
	db.Where("is_deleted = ? AND status = ?", false, training.StatusCompleted).
		Order("completed_at desc").Limit(5).Find(&recentProgress)

	recent := make([]RecentCompletion, len(recentProgress))
	for i, p := range recentProgress {
		var completedUser models.User
		var module training.Module
		db.Where("id = ?", p.UserID).First(&completedUser)
		db.Where("id = ?", p.ModuleID).First(&module)
		recent[i] = RecentCompletion{
			UserName:    completedUser.FullName(),
			ModuleTitle: module.Title,
			CompletedAt: p.CompletedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"stats": fiber.Map{
			"total_users":         totalUsers,
			"total_companies":     totalCompanies,
			"total_groups":        totalGroups,
			"total_modules":       totalModules,
			"active_modules":      activeModules,
			"modules_in_progress": modulesInProgress,
			"modules_completed":   modulesCompleted,
			"certificates_issued": certificatesIssued,
		},
		"recent_completions": recent,
	})
}
