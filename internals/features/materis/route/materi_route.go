package route

import (
	"github.com/gofiber/fiber/v2"

	"quizapp_backend/internals/features/materis/controller"
)

func MateriRoutes(api fiber.Router, ctrl *controller.MateriController, authMw fiber.Handler) {
	materis := api.Group("/materis", authMw)
	materis.Get("/", ctrl.Index)
	materis.Get("/:id", ctrl.Show)
}
