package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mukundi-dev/mentor_bridge/handlers"
	"github.com/mukundi-dev/mentor_bridge/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/mentor-applications", handlers.ListPendingMentorApplications)
	admin.Post("/mentor-applications/:mentorId", handlers.ManageMentorApplication)
	admin.Get("/users", handlers.GetAllUsers)
	admin.Patch("/users/:userId/status", handlers.ToggleUserStatus)
}
