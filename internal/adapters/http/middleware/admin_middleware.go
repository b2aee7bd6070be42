package middleware

import (
	"strings"

	"hbt-medrefill/internal/config"
	"hbt-medrefill/internal/core/services"
	"hbt-medrefill/internal/pkg/jwt"
	"hbt-medrefill/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminGate guards the staff panel routes. It requires both a valid
// session token and an open gate, so an explicit logout cuts off every
// outstanding token immediately. This is a UI-layer guard in front of a
// shared-secret login, not an access-control boundary.
func AdminGate(cfg *config.Config, sessions *services.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string

		// 1. Try to get the token from the cookie first
		token = c.Cookies("session_token")

		// 2. If not in cookie, try Authorization header
		if token == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if token == "" {
			return response.Unauthorized(c, "Session token required")
		}

		// 4. Validate token
		claims, err := jwt.ValidateSessionToken(token, cfg.Session.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Session token expired")
			}
			return response.Unauthorized(c, "Invalid session token")
		}

		// 5. Gate must still be open
		if !sessions.LoggedIn() {
			return response.Unauthorized(c, "Admin session is closed")
		}

		c.Locals("role", claims.Role)
		return c.Next()
	}
}
