package details

import (
	"github.com/gofiber/fiber/v2"

	authController "quizapp_backend/internals/features/users/auth/controller"
	authRoute "quizapp_backend/internals/features/users/auth/route"
	authService "quizapp_backend/internals/features/users/auth/service"
	rateLimiter "quizapp_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router, d *Deps) {
	ctrl := authController.NewAuthController(&authService.AuthService{
		DB:         d.DB,
		Store:      d.Store,
		Tokens:     d.Tokens,
		Validator:  d.Validator,
		MaxImageKB: d.MaxImageKB,
	})

	var loginLimiter, registerLimiter fiber.Handler
	if d.RateLimitEnabled {
		loginLimiter = rateLimiter.LoginRateLimiter()
		registerLimiter = rateLimiter.RegisterRateLimiter()
	}

	authRoute.AuthPublicRoutes(api, ctrl, loginLimiter, registerLimiter)
	authRoute.AuthProtectedRoutes(api, ctrl, d.Auth())
}
