package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "quizapp_backend/internals/features/users/auth/service"
	helper "quizapp_backend/internals/helpers"
	"quizapp_backend/internals/helpers/storage"
	authMiddleware "quizapp_backend/internals/middlewares/auth"
)

type Deps struct {
	DB               *gorm.DB
	Store            *storage.LocalStorage
	Validator        *helper.Validator
	Tokens           *authService.TokenIssuer
	MaxImageKB       int
	RateLimitEnabled bool
}

func (d *Deps) Auth() fiber.Handler {
	return authMiddleware.AuthMiddleware(d.DB, d.Tokens)
}
