package authRoutes

import (
	authController "lms/controllers/auth"
	"lms/middleware"
	adminValidator "lms/validators/admin"
	authValidator "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Get("/profile", middleware.JWTMiddleware, authController.GetProfile)
	authGroup.Patch("/profile", middleware.JWTMiddleware, authValidator.UpdateProfile(), authController.UpdateProfile)
	authGroup.Get("/login/history", middleware.JWTMiddleware, adminValidator.ListPagination("validatedPagination"), authController.LoginHistoryList)
}
