package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mukundi-dev/mentor_bridge/cache"
	"github.com/mukundi-dev/mentor_bridge/database"
	"github.com/mukundi-dev/mentor_bridge/models"
)

type MentorProfileRequest struct {
	School             string  `json:"school" validate:"required"`
	Industry           string  `json:"industry" validate:"required"`
	Company            string  `json:"company" validate:"required"`
	JobTitle           string  `json:"job_title" validate:"required"`
	YearsExperience    int     `json:"years_experience" validate:"required,min=1,max=5"`
	Skills             string  `json:"skills" validate:"required"`
	Bio                *string `json:"bio"`
	PreferredStartHour *int    `json:"preferred_start_hour" validate:"omitempty,min=0,max=23"`
	PreferredEndHour   *int    `json:"preferred_end_hour" validate:"omitempty,min=0,max=23"`
}

func ApplyToBeAMentor(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req MentorProfileRequest
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

	var existingProfile models.MentorProfile
	dbErr := database.DB.Where("user_id = ?", userID).First(&existingProfile).Error
	if dbErr == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already submitted a mentor application."})
	}
	if !errors.Is(dbErr, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	newProfile := models.MentorProfile{
		UserID:             userID,
		School:             req.School,
		Industry:           req.Industry,
		Company:            req.Company,
		JobTitle:           req.JobTitle,
		YearsExperience:    req.YearsExperience,
		Skills:             &req.Skills,
		Bio:                req.Bio,
		PreferredStartHour: startHour,
		PreferredEndHour:   endHour,
	}
	if err := database.DB.Create(&newProfile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create mentor application"})
	}

	return c.Status(fiber.StatusCreated).JSON(newProfile)
}

func GetMyMentorProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var profile models.MentorProfile
	if err := database.DB.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor profile not found"})
	}

	return c.JSON(profile)
}

func UpdateMyMentorProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var profile models.MentorProfile
	if err := database.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor profile not found"})
	}

	var req MentorProfileRequest
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

	profile.School = req.School
	profile.Industry = req.Industry
	profile.Company = req.Company
	profile.JobTitle = req.JobTitle
	profile.YearsExperience = req.YearsExperience
	profile.Skills = &req.Skills
	profile.Bio = req.Bio
	profile.PreferredStartHour = startHour
	profile.PreferredEndHour = endHour

	if err := database.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update mentor profile"})
	}

	go cache.Rankings.Invalidate(context.Background())

	return c.JSON(profile)
}

func GetMentorProfile(c *fiber.Ctx) error {
	mentorID := c.Params("mentorId")

	var profile models.MentorProfile
	if err := database.DB.Preload("User").
		Where("user_id = ? AND status = ?", mentorID, "approved").
		First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor not found"})
	}

	return c.JSON(profile)
}

func ListApprovedMentors(c *fiber.Ctx) error {
	var mentors []models.MentorProfile
	if err := database.DB.Preload("User").
		Joins("JOIN users ON users.id = mentor_profiles.user_id").
		Where("mentor_profiles.status = ? AND users.is_active = ?", "approved", true).
		Order("mentor_profiles.average_rating desc").
		Find(&mentors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list mentors"})
	}

	return c.JSON(mentors)
}

func resolveWindow(start, end *int) (int, int, error) {
	startHour, endHour := 0, 23
	if start != nil {
		startHour = *start
	}
	if end != nil {
		endHour = *end
	}
	if startHour > endHour {
		return 0, 0, errors.New("preferred_start_hour must not be after preferred_end_hour")
	}
	return startHour, endHour, nil
}
