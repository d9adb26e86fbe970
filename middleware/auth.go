package middleware

import (
	"strings"

	"monaco_payslip/config"
	"monaco_payslip/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func extractToken(c *fiber.Ctx) (string, error) {
	auth := c.Get("Authorization")
	if auth == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "No token provided")
	}

	parts := strings.Split(auth, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token format")
	}

	return parts[1], nil
}

func RequireAuth(c *fiber.Ctx) error {
	token, err := extractToken(c)
	if err != nil {
		return err
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTSecret), nil
	})

	if err != nil {
		return c.Status(401).JSON(fiber.Map{
			"error": types.ErrUnauthorized,
		})
	}

	// Add claims to context for use in handlers
	c.Locals("username", claims["username"])
	c.Locals("role", claims["role"])

	return c.Next()
}

// RequireRoot must run after RequireAuth in the handler chain.
func RequireRoot(c *fiber.Ctx) error {
	if c.Locals("role") != "root" {
		return c.Status(403).JSON(fiber.Map{
			"error": "Root access required",
		})
	}

	return c.Next()
}
