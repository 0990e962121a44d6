package details

import (
	"github.com/gofiber/fiber/v2"

	"quizapp_backend/internals/constants"
	quizController "quizapp_backend/internals/features/quizzes/controller"
	quizRoute "quizapp_backend/internals/features/quizzes/route"
	quizService "quizapp_backend/internals/features/quizzes/service"
	authMiddleware "quizapp_backend/internals/middlewares/auth"
)

func newQuizController(d *Deps) *quizController.QuizController {
	return quizController.NewQuizController(&quizService.QuizService{
		DB:         d.DB,
		Store:      d.Store,
		Validator:  d.Validator,
		MaxImageKB: d.MaxImageKB,
	})
}

// GuruRoutes /api/guru/*, hanya role guru.
func GuruRoutes(api fiber.Router, d *Deps) {
	guru := api.Group("/guru", d.Auth(), authMiddleware.OnlyRoles(constants.GuruOnly...))
	quizRoute.QuizTeacherRoutes(guru, newQuizController(d))
}
