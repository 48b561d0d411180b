package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mukundi-dev/mentor_bridge/apperrors"
	config "github.com/mukundi-dev/mentor_bridge/configs"
	"github.com/mukundi-dev/mentor_bridge/database"
	"github.com/mukundi-dev/mentor_bridge/models"
	"github.com/mukundi-dev/mentor_bridge/notifications"
	"github.com/mukundi-dev/mentor_bridge/services"
	"github.com/mukundi-dev/mentor_bridge/utils"
	"github.com/mukundi-dev/mentor_bridge/websocket"
)

type ProposeMeetingRequest struct {
	MentorID        string `json:"mentor_id" validate:"required,uuid"`
	MenteeID        string `json:"mentee_id" validate:"required,uuid"`
	ScheduledTime   string `json:"scheduled_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Topic           string `json:"topic" validate:"required,min=3,max=255"`
}

// ProposeMeeting creates a pending meeting between an accepted pair. The
// caller must be one of the two parties, the pair must hold a mentorship
// match, and the start must fall inside both preferred-hours windows.
func ProposeMeeting(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	callerID, _ := uuid.Parse(claims["user_id"].(string))

	var req ProposeMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	mentorID, _ := uuid.Parse(req.MentorID)
	menteeID, _ := uuid.Parse(req.MenteeID)
	if callerID != mentorID && callerID != menteeID {
		return respondAppError(c, apperrors.Unauthorized("you are not a party to this mentorship"))
	}

	scheduledTime, _ := time.Parse(time.RFC3339, req.ScheduledTime)
	if scheduledTime.Before(time.Now()) {
		return respondAppError(c, apperrors.InvalidInput("scheduled time cannot be in the past"))
	}

	var match models.MentorshipMatch
	if err := database.DB.Where("mentor_id = ? AND mentee_id = ?", mentorID, menteeID).
		First(&match).Error; err != nil {
		return respondAppError(c, apperrors.Unauthorized("no accepted connection exists between these parties"))
	}

	var mentorProfile models.MentorProfile
	if err := database.DB.Where("user_id = ?", mentorID).First(&mentorProfile).Error; err != nil {
		return respondAppError(c, apperrors.NotFound("mentor profile not found"))
	}
	var menteeProfile models.MenteeProfile
	if err := database.DB.Where("user_id = ?", menteeID).First(&menteeProfile).Error; err != nil {
		return respondAppError(c, apperrors.NotFound("mentee profile not found"))
	}

	if err := services.CheckMeetingWindow(scheduledTime, mentorProfile, menteeProfile); err != nil {
		return respondAppError(c, err)
	}

	endTime, err := services.MeetingEndTime(scheduledTime, req.DurationMinutes)
	if err != nil {
		return respondAppError(c, err)
	}

	meeting := models.Meeting{
		MentorID:      mentorID,
		MenteeID:      menteeID,
		ProposedByID:  callerID,
		ScheduledTime: scheduledTime,
		EndTime:       endTime,
		Topic:         req.Topic,
	}
	if err := database.DB.Create(&meeting).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create meeting"})
	}

	counterpartID := mentorID
	if callerID == mentorID {
		counterpartID = menteeID
	}
	var counterpart models.User
	if err := database.DB.First(&counterpart, "id = ?", counterpartID).Error; err == nil {
		go notifications.SendEmail(counterpart.FullName, counterpart.Email,
			"New Meeting Proposal",
			fmt.Sprintf("<h1>Meeting Proposed</h1><p>Topic: %s</p><p>Proposed time: %s</p><p>Log in to accept or reject it.</p>",
				meeting.Topic, meeting.ScheduledTime.Format(time.RFC1123)))
	}
	websocket.Notify(counterpartID, websocket.EventMeetingProposed, meeting)

	return c.Status(fiber.StatusCreated).JSON(meeting)
}

type RespondToMeetingRequest struct {
	Decision string `json:"decision" validate:"required"`
}

// RespondToMeeting resolves a pending meeting. Only the counterparty of the
// proposer may respond, and the decision is terminal.
func RespondToMeeting(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	callerID, _ := uuid.Parse(claims["user_id"].(string))
	meetingID := c.Params("meetingId")

	var req RespondToMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !services.IsMeetingDecision(req.Decision) {
		return respondAppError(c, apperrors.InvalidInput("decision must be accepted or rejected"))
	}

	var meeting models.Meeting
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&meeting, "id = ?", meetingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("meeting not found")
			}
			return err
		}
		if meeting.MentorID != callerID && meeting.MenteeID != callerID {
			return apperrors.Unauthorized("you are not a party to this meeting")
		}
		if meeting.ProposedByID == callerID {
			return apperrors.Unauthorized("the proposing party cannot respond to its own meeting")
		}
		if err := services.CanRespondToMeeting(meeting.Status); err != nil {
			return err
		}

		meeting.Status = req.Decision
		if req.Decision == models.MeetingStatusAccepted {
			code, err := utils.GenerateUniqueRoomCode(tx)
			if err != nil {
				return err
			}
			link := fmt.Sprintf("%s/%s", config.Config("MEETING_BASE_URL"), code)
			meeting.RoomCode = &code
			meeting.MeetingLink = &link
		}
		return tx.Save(&meeting).Error
	})
	if err != nil {
		return respondAppError(c, err)
	}

	eventType := websocket.EventMeetingRejected
	if meeting.Status == models.MeetingStatusAccepted {
		eventType = websocket.EventMeetingAccepted
		go services.CheckAndGenerateCertificate(meeting)
	}
	websocket.Notify(meeting.ProposedByID, eventType, meeting)

	var proposer models.User
	if err := database.DB.First(&proposer, "id = ?", meeting.ProposedByID).Error; err == nil {
		go notifications.SendEmail(proposer.FullName, proposer.Email,
			fmt.Sprintf("Your Meeting was %s", meeting.Status),
			fmt.Sprintf("<h1>Meeting %s</h1><p>Topic: %s</p>", meeting.Status, meeting.Topic))
	}

	return c.JSON(meeting)
}

// ListMeetings returns the caller's meetings sorted by scheduled time
// ascending for stable calendar rendering.
func ListMeetings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	callerID, _ := uuid.Parse(claims["user_id"].(string))

	role := c.Query("role", claims["role"].(string))
	status := c.Query("status")

	query := database.DB.Preload("Mentor").Preload("Mentee")
	switch role {
	case "mentor":
		query = query.Where("mentor_id = ?", callerID)
	case "mentee":
		query = query.Where("mentee_id = ?", callerID)
	default:
		return respondAppError(c, apperrors.InvalidInput("role must be mentor or mentee"))
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var meetings []models.Meeting
	if err := query.Order("scheduled_time asc").Find(&meetings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list meetings"})
	}

	return c.JSON(meetings)
}
