package route

import (
	"github.com/gofiber/fiber/v2"

	"quizapp_backend/internals/features/feeds/controller"
)

// FeedRoutes semua user login (siswa & guru).
func FeedRoutes(api fiber.Router, ctrl *controller.FeedController, authMw fiber.Handler) {
	feeds := api.Group("/feeds", authMw)
	feeds.Get("/", ctrl.Index)
	feeds.Post("/", ctrl.Store)
	feeds.Get("/:id", ctrl.Show)
	feeds.Post("/:id/replies", ctrl.StoreReply)
}
