package routes

import (
	"gorm.io/gorm"

	"quizapp_backend/internals/configs"
	authService "quizapp_backend/internals/features/users/auth/service"
	helper "quizapp_backend/internals/helpers"
	"quizapp_backend/internals/helpers/storage"
	"quizapp_backend/internals/route/details"
)

// NewDeps merakit dependensi bersama dari config.
func NewDeps(db *gorm.DB, cfg *configs.Config) *details.Deps {
	return &details.Deps{
		DB:               db,
		Store:            storage.NewLocalStorage(cfg.PublicDir, cfg.ImageMaxDimension),
		Validator:        helper.NewValidator(),
		Tokens:           authService.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiration),
		MaxImageKB:       cfg.ImageMaxKB,
		RateLimitEnabled: cfg.RateLimitEnabled,
	}
}
