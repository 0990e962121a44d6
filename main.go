package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"quizapp_backend/internals/configs"
	database "quizapp_backend/internals/databases"
	scheduler "quizapp_backend/internals/features/users/auth/scheduler"
	helper "quizapp_backend/internals/helpers"
	middlewares "quizapp_backend/internals/middlewares"
	routes "quizapp_backend/internals/route"
	"quizapp_backend/internals/seeds"
)

func main() {
	cfg := configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		BodyLimit:             cfg.BodyLimitMB * 1024 * 1024,
		ErrorHandler:          helper.FiberErrorHandler,
	})

	middlewares.SetupMiddlewares(app, cfg)

	// 🖼️ berkas upload (avatar, gambar soal, gambar feed)
	app.Static("/assets", filepath.Join(cfg.PublicDir, "assets"), fiber.Static{
		Compress: true,
		MaxAge:   3600,
	})

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB(cfg)
	database.TunePool()
	database.WarmUpQueries()
	if cfg.AutoMigrate {
		if err := database.Migrate(database.DB); err != nil {
			log.Fatalf("❌ Migrasi gagal: %v", err)
		}
	}
	if cfg.Seed {
		if err := seeds.RunAllSeeds(database.DB, cfg.SeedDir); err != nil {
			log.Fatalf("❌ Seeding gagal: %v", err)
		}
	}

	// ⏱ scheduler setelah DB siap
	cleanup, err := scheduler.StartTokenCleanupScheduler(database.DB, cfg.TokenCleanupCron)
	if err != nil {
		log.Fatalf("❌ TOKEN_CLEANUP_CRON tidak valid: %v", err)
	}

	routes.SetupRoutes(app, database.DB, cfg)

	app.Server().ReadTimeout = 30 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	<-cleanup.Stop().Done()

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
