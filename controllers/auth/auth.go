package authController

import (
	"log"
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"

	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		CompanyID *uint  `json:"company_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	if reqData.CompanyID != nil {
		var company models.Company
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.CompanyID, false).First(&company).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Company not found!", nil)
		}
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Email:     reqData.Email,
		Password:  string(hashedPassword),
		CompanyID: reqData.CompanyID,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	go utils.SendWelcomeEmail(newUser.Email, newUser.FullName())

	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Check if the user is blocked
	if user.IsBlocked && user.BlockedUntil != nil && user.BlockedUntil.After(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Your account is temporarily blocked. Try again later.", nil)
	}

	if user.LastFailedLogin != nil && time.Since(*user.LastFailedLogin) > 15*time.Minute {
		user.FailedLoginAttempts = 0
		user.LastFailedLogin = nil
		db.Save(&user)
	}

	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = forwarded
	}
	userAgent := c.Get("User-Agent")

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		user.FailedLoginAttempts++
		now := time.Now()
		user.LastFailedLogin = &now

		// Block user after 3 failed attempts
		if user.FailedLoginAttempts >= 3 {
			user.IsBlocked = true

			unblockTime := now.Add(15 * time.Minute)
			user.BlockedUntil = &unblockTime
		}

		if err := db.Save(&user).Error; err != nil {
			log.Printf("Error updating failed login attempts: %v", err)
		}

		failedTracking := models.LoginTracking{
			UserID:    user.ID,
			IPAddress: ip,
			Device:    userAgent,
			Timestamp: now,
			Success:   false,
		}
		if err := db.Create(&failedTracking).Error; err != nil {
			log.Printf("Error saving login tracking details: %v", err)
		}

		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Wrong Password", nil)
	}

	// Update last login time
	user.LastLogin = time.Now()
	user.FailedLoginAttempts = 0
	user.IsBlocked = false
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	loginTracking := models.LoginTracking{
		UserID:    user.ID,
		IPAddress: ip,
		Device:    userAgent,
		Timestamp: time.Now(),
		Success:   true,
	}

	log.Printf("User %d logged in from IP: %s", user.ID, loginTracking.IPAddress)

	if err := db.Create(&loginTracking).Error; err != nil {
		log.Printf("Error saving login tracking details: %v", err)
	}

	go utils.SendLoginNotificationEmail(user.Email, user.FullName(), ip, userAgent, loginTracking.Timestamp.Format(time.RFC1123))

	// Sanitize user data (remove sensitive fields)
	user.Password = ""
	user.ProfileImage = ""

	// Generate JWT token
	token, err := middleware.GenerateJWT(user.ID, user.FullName(), user.Role, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

func GetProfile(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User profile.", user)
}

func UpdateProfile(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		JobTitle  string `json:"job_title"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if reqData.FirstName != "" {
		user.FirstName = reqData.FirstName
	}
	if reqData.LastName != "" {
		user.LastName = reqData.LastName
	}
	if reqData.JobTitle != "" {
		user.JobTitle = reqData.JobTitle
	}
	user.IsProfileComplete = user.FirstName != "" && user.LastName != "" && user.JobTitle != ""

	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", user)
}

func LoginHistoryList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPagination").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	db := database.Database.Db

	var loginTracking []models.LoginTracking
	var total int64

	if err := db.Where("user_id = ? AND is_deleted = ?", userId, false).
		Order("timestamp desc").
		Offset(offset).
		Limit(*reqData.Limit).
		Find(&loginTracking).
		Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch login history!", nil)
	}

	db.Model(&models.LoginTracking{}).Where("user_id = ? AND is_deleted = ?", userId, false).Count(&total)

	response := map[string]interface{}{
		"loginHistory": loginTracking,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login History List.", response)
}
