package middleware

import (
	"career-compass/internal/domain/authz"

	"github.com/gofiber/fiber/v3"
)

// RequireOperation gates a route group on the authorization table. Usecases
// re-check on their own; this keeps restricted surfaces (pending queue,
// stats, the reviewer websocket) from even reaching them.
func RequireOperation(op authz.Operation) fiber.Handler {
	return func(c fiber.Ctx) error {
		role, ok := c.Locals(CtxRoleKey).(authz.Role)
		if !ok || !authz.Allowed(op, role) {
			return NewAppError(fiber.StatusForbidden, "Forbidden", nil, authz.ErrNotAllowed)
		}
		return c.Next()
	}
}
