package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"quizapp_backend/internals/constants"
	helper "quizapp_backend/internals/helpers"
	helpersAuth "quizapp_backend/internals/helpers/auth"
)

// RoleMiddlewareWithCustomError validasi role + custom error message.
// Harus dipasang setelah AuthMiddleware.
func RoleMiddlewareWithCustomError(allowedRoles []constants.Role, message string) fiber.Handler {
	if message == "" {
		message = constants.MsgUnauthorized
	}
	return func(c *fiber.Ctx) error {
		p, err := helpersAuth.PrincipalFrom(c)
		if err != nil {
			return helper.ResponseFailed(c, constants.MsgUnauthenticated, nil, fiber.StatusUnauthorized)
		}
		if !constants.Allows(p.Role, allowedRoles...) {
			log.Printf("[INFO] role %s ditolak untuk %s %s", p.Role, c.Method(), c.Path())
			return helper.ResponseFailed(c, message, nil, fiber.StatusUnauthorized)
		}
		return c.Next()
	}
}

// OnlyRoles shortcut dengan pesan default "Unauthorized.".
func OnlyRoles(roles ...constants.Role) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, "")
}
