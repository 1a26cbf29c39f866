package adminRoutes

import (
	adminController "lms/controllers/admin"
	"lms/middleware"
	adminValidator "lms/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.JWTMiddleware)

	// Company management
	companyGroup := admin.Group("/company", middleware.RequireAction(middleware.ActionManageCompanies))
	companyGroup.Post("/create", adminValidator.CreateCompany(), adminController.CreateCompany)
	companyGroup.Get("/list", adminValidator.ListPagination("validatedPagination"), adminController.CompanyList)
	companyGroup.Get("/:id", adminValidator.CompanyID(), adminController.GetCompany)
	companyGroup.Put("/:id", adminValidator.CompanyID(), adminValidator.UpdateCompany(), adminController.UpdateCompany)
	companyGroup.Delete("/:id", adminValidator.CompanyID(), adminController.DeleteCompany)

	// Group and membership management
	groupGroup := admin.Group("/group", middleware.RequireAction(middleware.ActionManageGroups))
	groupGroup.Post("/create", adminValidator.CreateGroup(), adminController.CreateGroup)
	groupGroup.Get("/list", adminValidator.ListPagination("validatedPagination"), adminController.GroupList)
	groupGroup.Get("/:id", adminValidator.GroupID(), adminController.GetGroup)
	groupGroup.Delete("/:id", adminValidator.GroupID(), adminController.DeleteGroup)
	groupGroup.Post("/:id/member", adminValidator.GroupID(), adminValidator.AddGroupMember(), adminController.AddGroupMember)
	groupGroup.Patch("/:id/member", adminValidator.GroupID(), adminValidator.SetMembershipActive(), adminController.SetMembershipActive)
	groupGroup.Post("/:id/assignment", adminValidator.GroupID(), adminValidator.AssignModule(), adminController.AssignModuleToGroup)
	groupGroup.Delete("/:id/assignment/:module_id", adminValidator.GroupID(), adminValidator.AssignedModuleID(), adminController.UnassignModuleFromGroup)

	// Module and lesson management
	moduleGroup := admin.Group("/module", middleware.RequireAction(middleware.ActionManageModules))
	moduleGroup.Post("/create", adminValidator.CreateModule(), adminController.CreateModule)
	moduleGroup.Get("/list", adminController.ModuleList)
	moduleGroup.Get("/:id", adminValidator.ModuleID(), adminController.GetModule)
	moduleGroup.Put("/:id", adminValidator.ModuleID(), adminValidator.UpdateModule(), adminController.UpdateModule)
	moduleGroup.Delete("/:id", adminValidator.ModuleID(), adminController.DeleteModule)
	moduleGroup.Post("/:id/lesson", adminValidator.ModuleID(), adminValidator.CreateLesson(), adminController.CreateLesson)

	lessonGroup := admin.Group("/lesson", middleware.RequireAction(middleware.ActionManageModules))
	lessonGroup.Put("/:lesson_id", adminValidator.LessonID(), adminValidator.UpdateLesson(), adminController.UpdateLesson)
	lessonGroup.Delete("/:lesson_id", adminValidator.LessonID(), adminController.DeleteLesson)
	lessonGroup.Post("/:lesson_id/move", adminValidator.LessonID(), adminValidator.MoveLesson(), adminController.MoveLesson)
	lessonGroup.Post("/:lesson_id/quiz", adminValidator.LessonID(), adminValidator.CreateQuiz(), adminController.CreateQuiz)

	// Quiz management
	quizGroup := admin.Group("/quiz", middleware.RequireAction(middleware.ActionManageModules))
	quizGroup.Get("/:quiz_id", adminValidator.QuizID(), adminController.GetQuiz)
	quizGroup.Put("/:quiz_id", adminValidator.QuizID(), adminValidator.CreateQuiz(), adminController.UpdateQuiz)
	quizGroup.Delete("/:quiz_id", adminValidator.QuizID(), adminController.DeleteQuiz)
	quizGroup.Post("/:quiz_id/question", adminValidator.QuizID(), adminValidator.CreateQuestion(), adminController.CreateQuestion)

	questionGroup := admin.Group("/question", middleware.RequireAction(middleware.ActionManageModules))
	questionGroup.Delete("/:question_id", adminValidator.QuestionID(), adminController.DeleteQuestion)

	// User management and direct assignments
	userGroup := admin.Group("/user", middleware.RequireAction(middleware.ActionManageUsers))
	userGroup.Get("/list", adminValidator.ListPagination("validatedPagination"), adminController.UserList)
	userGroup.Patch("/:user_id/role", adminValidator.UserID(), adminValidator.UpdateUserRole(), adminController.UpdateUserRole)
	userGroup.Post("/:user_id/assignment", adminValidator.UserID(), adminValidator.AssignModule(), adminController.AssignModuleToUser)
	userGroup.Delete("/:user_id/assignment/:module_id", adminValidator.UserID(), adminValidator.AssignedModuleID(), adminController.UnassignModuleFromUser)

	// Reports
	reportGroup := admin.Group("/reports", middleware.RequireAction(middleware.ActionViewReports))
	reportGroup.Get("/dashboard", adminController.DashboardStats)
	reportGroup.Get("/module/:id", adminValidator.ModuleID(), adminController.ModuleReport)
	reportGroup.Get("/user/:user_id", adminValidator.UserID(), adminController.UserProgressReport)
}
