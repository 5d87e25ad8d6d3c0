package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/karimsaad/wasel_backend/pkg/reqctx"
)

// Identity is resolved by the gateway in front of this service; these
// trusted headers carry the result.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserRoles = "X-User-Roles"
)

// Actor translates the identity headers into a reqctx.Actor on the request
// context. Requests without the headers pass through anonymous.
func Actor() fiber.Handler {
	return func(c fiber.Ctx) error {
		rawID := c.Get(HeaderUserID)
		if rawID == "" {
			return c.Next()
		}

		userID, err := uuid.Parse(rawID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid " + HeaderUserID + " header"})
		}

		var roles []string
		for _, r := range strings.Split(c.Get(HeaderUserRoles), ",") {
			if r = strings.TrimSpace(r); r != "" {
				roles = append(roles, r)
			}
		}

		actor := &reqctx.Actor{UserID: userID, Roles: roles}
		c.Locals("actor", actor)
		c.SetContext(reqctx.WithActor(c.Context(), actor))
		return c.Next()
	}
}

// ActorFromFiber retrieves the acting user from Fiber locals.
func ActorFromFiber(c fiber.Ctx) (*reqctx.Actor, bool) {
	v := c.Locals("actor")
	actor, ok := v.(*reqctx.Actor)
	return actor, ok && actor != nil
}

// RequireRole rejects requests whose actor lacks all of the given roles.
func RequireRole(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		actor, ok := ActorFromFiber(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		for _, role := range roles {
			if actor.HasRole(role) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
	}
}
