package utils

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"lms/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: %s <%s>\r\n", config.AppConfig.PlatformName, from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all platform emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B2A4A; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B2A4A; line-height: 1.6; }
			.content h2 { color: #1B2A4A; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #2E86AB; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #2E86AB; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>%s</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message from your training platform.
			</div>
		</div>
	</body>
	</html>
	`, strings.ToUpper(config.AppConfig.PlatformName), title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to " + config.AppConfig.PlatformName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your training account has been created.</p>
		<p>Log in to see the modules assigned to you and start your first lesson.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Module Assigned
func SendModuleAssignedEmail(email, name, moduleTitle string, dueDate *time.Time) {
	subject := "New Training Assigned: " + moduleTitle
	due := ""
	if dueDate != nil {
		due = fmt.Sprintf(`<div class="info-box"><strong>Due by:</strong> %s</div>`, dueDate.Format("January 2, 2006"))
	}
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>The module <strong>%s</strong> has been assigned to you.</p>
		%s
		<p>Log in to your dashboard to begin.</p>
	`, name, moduleTitle, due)

	go SendEmail([]string{email}, subject, getEmailTemplate("New Training Assigned", body))
}

// 3. Module Completed
func SendModuleCompletedEmail(email, name, moduleTitle string) {
	subject := "Module Completed: " + moduleTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! You have completed <strong>%s</strong>.</p>
		<p>Your module certificate is available from your dashboard.</p>
	`, name, moduleTitle)

	go SendEmail([]string{email}, subject, getEmailTemplate("Module Completed", body))
}

// 4. Comprehensive Certificate Issued
func SendCertificateIssuedEmail(email, name string, totalModules int) {
	subject := "Your Completion Certificate is Ready"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have completed all <strong>%d</strong> training modules assigned to you.</p>
		<p>Your comprehensive completion certificate is now available for download.</p>
		<a href="#" class="btn">Download Certificate</a>
	`, name, totalModules)

	go SendEmail([]string{email}, subject, getEmailTemplate("Training Complete!", body))
}

// 5. Due Date Reminder
func SendDueDateReminderEmail(email, name, moduleTitle string, dueDate time.Time) {
	subject := "Reminder: " + moduleTitle + " is due soon"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>The module <strong>%s</strong> is due by <strong>%s</strong> and is not yet complete.</p>
		<p>Please log in and finish the remaining lessons.</p>
	`, name, moduleTitle, dueDate.Format("January 2, 2006"))

	go SendEmail([]string{email}, subject, getEmailTemplate("Training Due Soon", body))
}

// 6. Login Notification
func SendLoginNotificationEmail(email, name, ip, device, timeStr string) {
	subject := "New Login Alert"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We noticed a new login to your account.</p>
		<div class="info-box" style="background: #FFFFFF; border: 1px solid #E0E0E0; border-left: 4px solid #2E86AB;">
			<ul style="list-style: none; padding: 0; margin: 0;">
				<li style="margin-bottom: 8px;"><strong>Time:</strong> %s</li>
				<li style="margin-bottom: 8px;"><strong>IP Address:</strong> %s</li>
				<li><strong>Device:</strong> %s</li>
			</ul>
		</div>
		<p>If this was you, you can safely ignore this email.</p>
	`, name, timeStr, ip, device)

	go SendEmail([]string{email}, subject, getEmailTemplate("New Login Detected", body))
}
