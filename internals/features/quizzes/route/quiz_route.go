package route

import (
	"github.com/gofiber/fiber/v2"

	"quizapp_backend/internals/features/quizzes/controller"
)

// QuizTeacherRoutes resource penuh untuk guru, dipasang di grup /api/guru.
func QuizTeacherRoutes(guru fiber.Router, ctrl *controller.QuizController) {
	q := guru.Group("/quizzes")
	q.Get("/", ctrl.Index)
	q.Post("/", ctrl.Store)
	q.Get("/:slug", ctrl.Show)
	q.Put("/:slug", ctrl.Update)
	q.Patch("/:slug", ctrl.Update)
	q.Delete("/:slug", ctrl.Destroy)
}

// QuizStudentRoutes baca saja untuk siswa, dipasang di grup /api/siswa.
func QuizStudentRoutes(siswa fiber.Router, ctrl *controller.QuizController) {
	q := siswa.Group("/quizzes")
	q.Get("/", ctrl.Index)
	q.Get("/:slug", ctrl.Show)
}
