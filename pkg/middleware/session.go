package middleware

import (
	"financas/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const SessionCookie = "session"

// Session authenticates a request from either the session cookie or an
// Authorization: Bearer header and stores the user identity in locals.
func Session(jwtManager *auth.JWTManager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			header := c.Get("Authorization")
			if len(header) > 7 && header[:7] == "Bearer " {
				token = header[7:]
			}
		}

		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			logger.Warn("Invalid session token", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("displayName", claims.DisplayName)

		return c.Next()
	}
}

// UserID returns the authenticated user id stored by Session.
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals("userID").(int64)
	return id
}
