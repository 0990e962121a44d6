package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizapp_backend/internals/constants"
	authService "quizapp_backend/internals/features/users/auth/service"
	helper "quizapp_backend/internals/helpers"
	helpersAuth "quizapp_backend/internals/helpers/auth"
)

// AuthMiddleware memastikan bearer token valid dan belum dicabut,
// lalu menaruh Principal di Locals.
func AuthMiddleware(db *gorm.DB, tokens *authService.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetBearerToken(c)
		if raw == "" {
			return helper.ResponseFailed(c, constants.MsgUnauthenticated, nil, fiber.StatusUnauthorized)
		}

		p, err := tokens.Authenticate(c.UserContext(), db, raw)
		if err != nil {
			if errors.Is(err, authService.ErrInvalidToken) {
				return helper.ResponseFailed(c, constants.MsgUnauthenticated, nil, fiber.StatusUnauthorized)
			}
			log.Printf("[ERROR] AuthMiddleware: %v", err)
			return helper.ResponseFailed(c, constants.MsgFailed, nil, fiber.StatusInternalServerError)
		}

		helpersAuth.SetPrincipal(c, p)
		return c.Next()
	}
}
