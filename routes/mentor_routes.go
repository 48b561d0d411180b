package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mukundi-dev/mentor_bridge/handlers"
	"github.com/mukundi-dev/mentor_bridge/middleware"
)

func MentorRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/mentors", handlers.ListApprovedMentors)
	// Registered before the :mentorId wildcard so "recommended" is not read as an id.
	api.Get("/mentors/recommended", middleware.Protected(), middleware.MenteeRequired(), handlers.GetRecommendedMentors)
	api.Get("/mentors/:mentorId", handlers.GetMentorProfile)
	api.Get("/mentors/:mentorId/reviews", handlers.GetMentorReviews)

	mentor := api.Group("/mentor", middleware.Protected())
	mentor.Post("/apply", handlers.ApplyToBeAMentor)

	mentorProfile := mentor.Group("/profile", middleware.MentorRequired())
	mentorProfile.Get("/me", handlers.GetMyMentorProfile)
	mentorProfile.Put("/me", handlers.UpdateMyMentorProfile)
}
