package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mukundi-dev/mentor_bridge/handlers"
	"github.com/mukundi-dev/mentor_bridge/middleware"
)

func ConnectRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	connections := api.Group("/connections", middleware.Protected())
	connections.Post("", middleware.MenteeRequired(), handlers.CreateConnectRequest)
	connections.Get("", handlers.ListConnectRequests)
	connections.Patch("/:requestId/accept", middleware.MentorRequired(), handlers.AcceptConnectRequest)
	connections.Delete("/:requestId", handlers.DeclineConnectRequest)

	api.Get("/matches", middleware.Protected(), handlers.ListMatches)
}
