package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/mukundi-dev/mentor_bridge/apperrors"
	"github.com/mukundi-dev/mentor_bridge/cache"
	"github.com/mukundi-dev/mentor_bridge/database"
	"github.com/mukundi-dev/mentor_bridge/models"
	"github.com/mukundi-dev/mentor_bridge/services"
)

// GetRecommendedMentors ranks every approved, active mentor against the
// calling mentee and returns the top five. Results are cached briefly; any
// mentor-side change invalidates the cache.
func GetRecommendedMentors(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	menteeID, _ := uuid.Parse(claims["user_id"].(string))

	var menteeProfile models.MenteeProfile
	if err := database.DB.Where("user_id = ?", menteeID).First(&menteeProfile).Error; err != nil {
		return respondAppError(c, apperrors.NotFound("complete your mentee profile before requesting recommendations"))
	}
	if menteeProfile.Skills == nil {
		return respondAppError(c, apperrors.InvalidInput("your profile must declare a skill set"))
	}

	if ranked, ok := cache.Rankings.Get(c.Context(), menteeID); ok {
		return c.JSON(fiber.Map{"recommendations": ranked, "cached": true})
	}

	var candidates []models.MentorProfile
	if err := database.DB.Preload("User").
		Joins("JOIN users ON users.id = mentor_profiles.user_id").
		Where("mentor_profiles.status = ? AND users.is_active = ? AND mentor_profiles.skills IS NOT NULL", "approved", true).
		Order("mentor_profiles.created_at asc").
		Find(&candidates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load mentor candidates"})
	}

	ranked, err := services.RankTopMentors(candidates, menteeProfile)
	if err != nil {
		return respondAppError(c, err)
	}

	cache.Rankings.Set(c.Context(), menteeID, ranked)

	return c.JSON(fiber.Map{"recommendations": ranked, "cached": false})
}
