package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mukundi-dev/mentor_bridge/handlers"
	"github.com/mukundi-dev/mentor_bridge/middleware"
)

func MenteeRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	mentee := api.Group("/mentee", middleware.Protected(), middleware.MenteeRequired())
	mentee.Get("/profile/me", handlers.GetMyMenteeProfile)
	mentee.Post("/profile/me", handlers.UpsertMyMenteeProfile)
	mentee.Put("/profile/me", handlers.UpsertMyMenteeProfile)
}
