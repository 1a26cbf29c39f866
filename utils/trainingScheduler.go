package utils

import (
	"log"
	"time"

	"lms/config"
	"lms/database"
	"lms/models"
	"lms/models/training"
	"lms/services"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[TRAINING-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// InitializeTrainingScheduler sets up the nightly maintenance jobs:
// certificate flag repair and assignment due-date reminders.
func InitializeTrainingScheduler() {
	logScheduler("Initializing training scheduler...")

	c := cron.New()

	// Nightly at 02:00 - backfill certificate flags on completed modules
	_, err := c.AddFunc("0 2 * * *", func() {
		repaired, err := services.RepairModuleCertificates(database.Database.Db)
		if err != nil {
			logScheduler("Certificate repair failed: " + err.Error())
			return
		}
		if repaired > 0 {
			logScheduler("Repaired certificate flags on completed modules")
		}
	})
	if err != nil {
		logScheduler("Failed to schedule certificate repair: " + err.Error())
	}

	// Daily at 08:00 - remind learners of assignments due soon
	_, err = c.AddFunc("0 8 * * *", func() {
		sendDueDateReminders()
	})
	if err != nil {
		logScheduler("Failed to schedule due date reminders: " + err.Error())
	}

	c.Start()
	logScheduler("Training scheduler started")
}

// sendDueDateReminders emails every learner holding a direct assignment
// that is due within the reminder window and not yet completed
func sendDueDateReminders() {
	db := database.Database.Db
	window := time.Now().AddDate(0, 0, config.AppConfig.ReminderDays)

	var assignments []training.ModuleAssignment
	if err := db.Where("due_date IS NOT NULL AND due_date <= ? AND due_date >= ? AND is_deleted = ?",
		window, time.Now(), false).Find(&assignments).Error; err != nil {
		logScheduler("Failed to fetch due assignments: " + err.Error())
		return
	}

	reminded := 0
	for _, assignment := range assignments {
		var progress training.ModuleProgress
		err := db.Where("user_id = ? AND module_id = ? AND status = ? AND is_deleted = ?",
			assignment.UserID, assignment.ModuleID, training.StatusCompleted, false).First(&progress).Error
		if err == nil {
			continue // already completed
		}

		var user models.User
		if err := db.Where("id = ? AND is_deleted = ?", assignment.UserID, false).First(&user).Error; err != nil {
			continue
		}

		var module training.Module
		if err := db.Where("id = ? AND is_deleted = ?", assignment.ModuleID, false).First(&module).Error; err != nil {
			continue
		}

		SendDueDateReminderEmail(user.Email, user.FullName(), module.Title, *assignment.DueDate)
		reminded++
	}

	if reminded > 0 {
		logScheduler("Sent due date reminders")
	}
}
