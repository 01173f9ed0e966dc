package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// DefaultActor is recorded on writes when the caller did not identify itself.
const DefaultActor = "System"

const actorLocalsKey = "actor"

// Identity resolves the caller identity for audit fields. Order: a valid
// bearer token, then the X-Actor header, then DefaultActor. Invalid or absent
// credentials never reject the request; enforcement is out of scope.
func Identity(tm *TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := DefaultActor

		if header := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(header, "Bearer ") {
			if claims, err := tm.ParseToken(strings.TrimPrefix(header, "Bearer ")); err == nil {
				actor = claims.Email
			}
		} else if xActor := c.Get("X-Actor"); xActor != "" {
			actor = xActor
		}

		c.Locals(actorLocalsKey, actor)
		return c.Next()
	}
}

// Actor returns the caller identity resolved by the Identity middleware.
func Actor(c *fiber.Ctx) string {
	if actor, ok := c.Locals(actorLocalsKey).(string); ok && actor != "" {
		return actor
	}
	return DefaultActor
}
