package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mukundi-dev/mentor_bridge/handlers"
	"github.com/mukundi-dev/mentor_bridge/middleware"
)

func MeetingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	meetings := api.Group("/meetings", middleware.Protected())
	meetings.Post("", handlers.ProposeMeeting)
	meetings.Get("", handlers.ListMeetings)
	meetings.Patch("/:meetingId", handlers.RespondToMeeting)
	meetings.Post("/:meetingId/review", middleware.MenteeRequired(), handlers.CreateReview)
}
