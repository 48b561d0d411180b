package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mukundi-dev/mentor_bridge/apperrors"
	"github.com/mukundi-dev/mentor_bridge/database"
	"github.com/mukundi-dev/mentor_bridge/models"
	"github.com/mukundi-dev/mentor_bridge/notifications"
	"github.com/mukundi-dev/mentor_bridge/services"
	"github.com/mukundi-dev/mentor_bridge/websocket"
)

type CreateConnectRequestBody struct {
	MentorID string  `json:"mentor_id" validate:"required,uuid"`
	Message  *string `json:"message"`
}

// CreateConnectRequest opens a pending request from the calling mentee to a
// mentor. At most one active (pending or accepted) request may exist per
// pair. The existence check gives a clean error message; the unique pair
// index is the real guard, since FOR UPDATE locks nothing when no row
// exists yet and two concurrent creates can both reach the insert.
func CreateConnectRequest(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	menteeID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateConnectRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	mentorID, _ := uuid.Parse(req.MentorID)

	var mentorProfile models.MentorProfile
	if err := database.DB.Preload("User").
		Where("user_id = ? AND status = ?", mentorID, "approved").
		First(&mentorProfile).Error; err != nil {
		return respondAppError(c, apperrors.NotFound("mentor not found or not yet approved"))
	}
	if !mentorProfile.User.IsActive {
		return respondAppError(c, apperrors.NotFound("mentor not found or not yet approved"))
	}

	var newRequest models.ConnectRequest
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.ConnectRequest
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("mentor_id = ? AND mentee_id = ?", mentorID, menteeID).
			First(&existing).Error
		if err == nil {
			return apperrors.Conflict("an active request already exists for this mentor")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// declined requests are deleted, so a match without a request
		// row can only mean a prior acceptance
		var matchCount int64
		if err := tx.Model(&models.MentorshipMatch{}).
			Where("mentor_id = ? AND mentee_id = ?", mentorID, menteeID).
			Count(&matchCount).Error; err != nil {
			return err
		}
		if matchCount > 0 {
			return apperrors.Conflict("you are already matched with this mentor")
		}

		newRequest = models.ConnectRequest{
			MentorID: mentorID,
			MenteeID: menteeID,
			Message:  req.Message,
		}
		if err := tx.Create(&newRequest).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Conflict("an active request already exists for this mentor")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return respondAppError(c, err)
	}

	go notifications.SendEmail(mentorProfile.User.FullName, mentorProfile.User.Email,
		"New Mentorship Request",
		"<h1>New Request</h1><p>A mentee has asked to connect with you. Log in to respond.</p>")
	websocket.Notify(mentorID, websocket.EventConnectionRequested, newRequest)

	return c.Status(fiber.StatusCreated).JSON(newRequest)
}

// AcceptConnectRequest moves a pending request to accepted and materializes
// the durable MentorshipMatch. The row is locked for the whole transition,
// so of two concurrent accepts exactly one succeeds.
func AcceptConnectRequest(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	callerID, _ := uuid.Parse(claims["user_id"].(string))
	requestID := c.Params("requestId")

	var request models.ConnectRequest
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&request, "id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("connect request not found")
			}
			return err
		}
		if request.MentorID != callerID {
			return apperrors.Unauthorized("only the requested mentor can accept this request")
		}
		if err := services.CanAcceptRequest(request.Status); err != nil {
			return err
		}

		request.Status = models.RequestStatusAccepted
		if err := tx.Save(&request).Error; err != nil {
			return err
		}

		match := models.MentorshipMatch{
			MentorID:         request.MentorID,
			MenteeID:         request.MenteeID,
			ConnectRequestID: request.ID,
		}
		return tx.Create(&match).Error
	})
	if err != nil {
		return respondAppError(c, err)
	}

	var mentee models.User
	if err := database.DB.First(&mentee, "id = ?", request.MenteeID).Error; err == nil {
		go notifications.SendEmail(mentee.FullName, mentee.Email,
			"Your Mentorship Request was Accepted!",
			"<h1>Request Accepted</h1><p>Your mentor accepted your request. You can now schedule meetings together.</p>")
	}
	websocket.Notify(request.MenteeID, websocket.EventConnectionAccepted, request)

	return c.JSON(request)
}

// DeclineConnectRequest removes a pending request entirely. Deletion is
// irreversible and does not resurrect any prior match.
func DeclineConnectRequest(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	callerID, _ := uuid.Parse(claims["user_id"].(string))
	requestID := c.Params("requestId")

	var request models.ConnectRequest
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&request, "id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("connect request not found")
			}
			return err
		}
		if request.MentorID != callerID && request.MenteeID != callerID {
			return apperrors.Unauthorized("you are not a party to this request")
		}
		if err := services.CanDeclineRequest(request.Status); err != nil {
			return err
		}

		return tx.Delete(&request).Error
	})
	if err != nil {
		return respondAppError(c, err)
	}

	counterpartID := request.MenteeID
	if callerID == request.MenteeID {
		counterpartID = request.MentorID
	}
	websocket.Notify(counterpartID, websocket.EventConnectionDeclined, fiber.Map{"request_id": request.ID})

	return c.SendStatus(fiber.StatusNoContent)
}

// ListConnectRequests returns the caller's requests, most recent first,
// optionally filtered by status.
func ListConnectRequests(c *fiber.Ctx) error {
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

	var requests []models.ConnectRequest
	if err := query.Order("created_at desc").Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list requests"})
	}

	return c.JSON(requests)
}

// ListMatches returns the caller's accepted mentorships.
func ListMatches(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	callerID, _ := uuid.Parse(claims["user_id"].(string))

	var matches []models.MentorshipMatch
	if err := database.DB.Preload("Mentor").Preload("Mentee").
		Where("mentor_id = ? OR mentee_id = ?", callerID, callerID).
		Order("created_at desc").
		Find(&matches).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list matches"})
	}

	return c.JSON(matches)
}
