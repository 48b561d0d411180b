package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/mukundi-dev/mentor_bridge/apperrors"
	config "github.com/mukundi-dev/mentor_bridge/configs"
)

// respondAppError writes a taxonomy error as {code, message} with its
// mapped HTTP status. Unique-index violations become CONFLICT so the
// database-enforced invariants speak the same taxonomy; anything else
// becomes a 500 so no failure is silently swallowed.
func respondAppError(c *fiber.Ctx, err error) error {
	if appErr, ok := apperrors.As(err); ok {
		return c.Status(appErr.HTTPStatus()).JSON(appErr)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		appErr := apperrors.Conflict("a conflicting record already exists")
		return c.Status(appErr.HTTPStatus()).JSON(appErr)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"code":    "INTERNAL",
		"message": err.Error(),
	})
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
