package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizapp_backend/internals/configs"
	routeDetails "quizapp_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) *routeDetails.Deps {
	startTime = time.Now()
	deps := NewDeps(db, cfg)

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(api, deps)

	log.Println("[INFO] Setting up GURU group...")
	routeDetails.GuruRoutes(api, deps)

	log.Println("[INFO] Setting up SISWA group...")
	routeDetails.SiswaRoutes(api, deps)

	log.Println("[INFO] Setting up UserRoutes (feeds, materis)...")
	routeDetails.UserRoutes(api, deps)

	return deps
}
