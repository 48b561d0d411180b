package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mukundi-dev/mentor_bridge/database"
	"github.com/mukundi-dev/mentor_bridge/models"
)

type MenteeProfileRequest struct {
	School             string  `json:"school" validate:"required"`
	Major              string  `json:"major" validate:"required"`
	CareerGoals        *string `json:"career_goals"`
	Skills             string  `json:"skills" validate:"required"`
	Bio                *string `json:"bio"`
	PreferredStartHour *int    `json:"preferred_start_hour" validate:"omitempty,min=0,max=23"`
	PreferredEndHour   *int    `json:"preferred_end_hour" validate:"omitempty,min=0,max=23"`
}

// UpsertMyMenteeProfile creates the mentee profile on first save and
// replaces it afterwards.
func UpsertMyMenteeProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req MenteeProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	startHour, endHour, err := resolveWindow(req.PreferredStartHour, req.PreferredEndHour)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var profile models.MenteeProfile
	dbErr := database.DB.Where("user_id = ?", userID).First(&profile).Error
	isNew := errors.Is(dbErr, gorm.ErrRecordNotFound)
	if dbErr != nil && !isNew {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	profile.UserID = userID
	profile.School = req.School
	profile.Major = req.Major
	profile.CareerGoals = req.CareerGoals
	profile.Skills = &req.Skills
	profile.Bio = req.Bio
	profile.PreferredStartHour = startHour
	profile.PreferredEndHour = endHour

	if isNew {
		if err := database.DB.Create(&profile).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create mentee profile"})
		}
		return c.Status(fiber.StatusCreated).JSON(profile)
	}

	if err := database.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update mentee profile"})
	}
	return c.JSON(profile)
}

func GetMyMenteeProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var profile models.MenteeProfile
	if err := database.DB.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentee profile not found"})
	}

	return c.JSON(profile)
}
