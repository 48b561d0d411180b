package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mukundi-dev/mentor_bridge/apperrors"
	"github.com/mukundi-dev/mentor_bridge/cache"
	"github.com/mukundi-dev/mentor_bridge/database"
	"github.com/mukundi-dev/mentor_bridge/models"
)

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// CreateReview lets the mentee rate the mentor after an accepted meeting
// has ended. The mentor's aggregate rating fields are updated in a single
// SQL statement so concurrent reviews cannot lose increments.
func CreateReview(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	menteeID, _ := uuid.Parse(claims["user_id"].(string))
	meetingID := c.Params("meetingId")

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var newReview models.Review
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var meeting models.Meeting
		if err := tx.First(&meeting, "id = ?", meetingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("meeting not found")
			}
			return err
		}
		if meeting.MenteeID != menteeID {
			return apperrors.Unauthorized("you are not the mentee for this meeting")
		}
		if meeting.Status != models.MeetingStatusAccepted {
			return apperrors.InvalidInput("reviews can only be submitted for accepted meetings")
		}
		if meeting.EndTime.After(time.Now()) {
			return apperrors.InvalidInput("reviews can only be submitted after the meeting has ended")
		}

		var existingReview models.Review
		if err := tx.Where("meeting_id = ?", meetingID).First(&existingReview).Error; err == nil {
			return apperrors.Conflict("a review for this meeting has already been submitted")
		}

		newReview = models.Review{
			MeetingID: meeting.ID,
			MenteeID:  menteeID,
			MentorID:  meeting.MentorID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}
		if err := tx.Create(&newReview).Error; err != nil {
			return err
		}

		// one statement keeps total/count/average consistent under
		// concurrent submissions
		return tx.Model(&models.MentorProfile{}).
			Where("user_id = ?", meeting.MentorID).
			Updates(map[string]interface{}{
				"total_rating":   gorm.Expr("total_rating + ?", req.Rating),
				"rating_count":   gorm.Expr("rating_count + 1"),
				"average_rating": gorm.Expr("(total_rating + ?) / (rating_count + 1)", req.Rating),
			}).Error
	})
	if err != nil {
		return respondAppError(c, err)
	}

	go cache.Rankings.Invalidate(context.Background())

	return c.Status(fiber.StatusCreated).JSON(newReview)
}

// GetMentorReviews lists the reviews received by a mentor.
func GetMentorReviews(c *fiber.Ctx) error {
	mentorID := c.Params("mentorId")

	var reviews []models.Review
	if err := database.DB.Preload("Mentee").
		Where("mentor_id = ?", mentorID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list reviews"})
	}

	return c.JSON(reviews)
}
