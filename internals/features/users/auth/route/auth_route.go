package route

import (
	"github.com/gofiber/fiber/v2"

	"quizapp_backend/internals/features/users/auth/controller"
)

// AuthPublicRoutes tanpa token. limiters boleh kosong (mis. saat test).
func AuthPublicRoutes(api fiber.Router, ctrl *controller.AuthController, loginLimiter, registerLimiter fiber.Handler) {
	api.Post("/login", withLimiter(loginLimiter, ctrl.Login)...)
	api.Post("/register/student", withLimiter(registerLimiter, ctrl.StudentRegister)...)
	api.Post("/register/teacher", withLimiter(registerLimiter, ctrl.TeacherRegister)...)
}

// AuthProtectedRoutes butuh middleware auth.
func AuthProtectedRoutes(api fiber.Router, ctrl *controller.AuthController, authMw fiber.Handler) {
	api.Post("/logout", authMw, ctrl.Logout)
	api.Get("/me", authMw, ctrl.Me)
}

func withLimiter(limiter fiber.Handler, h fiber.Handler) []fiber.Handler {
	if limiter == nil {
		return []fiber.Handler{h}
	}
	return []fiber.Handler{limiter, h}
}
