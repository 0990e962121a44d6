package details

import (
	"github.com/gofiber/fiber/v2"

	feedController "quizapp_backend/internals/features/feeds/controller"
	feedRoute "quizapp_backend/internals/features/feeds/route"
	feedService "quizapp_backend/internals/features/feeds/service"
	materiController "quizapp_backend/internals/features/materis/controller"
	materiRoute "quizapp_backend/internals/features/materis/route"
)

// UserRoutes endpoint untuk semua user login.
func UserRoutes(api fiber.Router, d *Deps) {
	feedRoute.FeedRoutes(api, feedController.NewFeedController(&feedService.FeedService{
		DB:         d.DB,
		Store:      d.Store,
		Validator:  d.Validator,
		MaxImageKB: d.MaxImageKB,
	}), d.Auth())

	materiRoute.MateriRoutes(api, materiController.NewMateriController(d.DB), d.Auth())
}
