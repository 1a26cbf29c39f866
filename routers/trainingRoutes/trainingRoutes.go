package trainingRoutes

import (
	trainingController "lms/controllers/training"
	"lms/middleware"
	trainingValidator "lms/validators/training"

	"github.com/gofiber/fiber/v2"
)

func SetupTrainingRoutes(app *fiber.App) {
	trainingGroup := app.Group("/training", middleware.JWTMiddleware, middleware.RequireAction(middleware.ActionTakeTraining))

	trainingGroup.Get("/dashboard", middleware.RequireAction(middleware.ActionViewOwnProgress), trainingController.Dashboard)
	trainingGroup.Get("/module/:id", trainingValidator.ModuleID(), trainingController.GetModule)
	trainingGroup.Get("/lesson/:id", trainingValidator.LessonID(), trainingController.ViewLesson)
	trainingGroup.Post("/lesson/:id/progress", trainingValidator.LessonID(), trainingValidator.RecordProgress(), trainingController.RecordProgress)
	trainingGroup.Get("/quiz/:id", trainingValidator.QuizID(), trainingController.GetQuiz)
	trainingGroup.Post("/quiz/:id/submit", trainingValidator.QuizID(), trainingValidator.SubmitQuiz(), trainingController.SubmitQuiz)
	trainingGroup.Get("/quiz/:id/results", trainingValidator.QuizID(), trainingController.QuizResults)

	certificateGroup := app.Group("/certificate", middleware.JWTMiddleware, middleware.RequireAction(middleware.ActionDownloadOwnCert))
	certificateGroup.Get("/status", trainingController.CertificateStatus)
	certificateGroup.Get("/module/:id/download", trainingValidator.ModuleID(), trainingController.DownloadModuleCertificate)
	certificateGroup.Get("/download", trainingController.DownloadComprehensiveCertificate)
}
