package details

import (
	"github.com/gofiber/fiber/v2"

	"quizapp_backend/internals/constants"
	quizRoute "quizapp_backend/internals/features/quizzes/route"
	authMiddleware "quizapp_backend/internals/middlewares/auth"
)

// SiswaRoutes /api/siswa/*, hanya role siswa.
func SiswaRoutes(api fiber.Router, d *Deps) {
	siswa := api.Group("/siswa", d.Auth(), authMiddleware.OnlyRoles(constants.SiswaOnly...))
	quizRoute.QuizStudentRoutes(siswa, newQuizController(d))
}
