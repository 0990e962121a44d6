package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string
	App       *Config
)

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret     string
	JWTExpiration time.Duration

	PublicDir         string
	ImageMaxKB        int
	ImageMaxDimension int
	BodyLimitMB       int

	TokenCleanupCron string
	AutoMigrate      bool
	Seed             bool
	SeedDir          string
	RateLimitEnabled bool
	CorsAllowOrigins string
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() *Config {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	cfg := FromEnv()
	if cfg.JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	JWTSecret = cfg.JWTSecret
	App = cfg
	return cfg
}

// FromEnv membaca konfigurasi dari ENV proses tanpa menyentuh file .env.
func FromEnv() *Config {
	return &Config{
		Port: GetEnv("PORT", "3000"),

		DBHost:     GetEnv("DB_HOST", "127.0.0.1"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBUser:     GetEnv("DB_USER", "postgres"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBName:     GetEnv("DB_NAME", "quizapp"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "disable"),

		JWTSecret:     strings.TrimSpace(GetEnv("JWT_SECRET")),
		JWTExpiration: time.Duration(GetEnvInt("JWT_EXPIRATION_HOURS", 72)) * time.Hour,

		PublicDir:         GetEnv("PUBLIC_DIR", "public"),
		ImageMaxKB:        GetEnvInt("IMAGE_MAX_KB", 2048),
		ImageMaxDimension: GetEnvInt("IMAGE_MAX_DIMENSION", 1600),
		BodyLimitMB:       GetEnvInt("BODY_LIMIT_MB", 25),

		TokenCleanupCron: GetEnv("TOKEN_CLEANUP_CRON", "@daily"),
		AutoMigrate:      GetEnvBool("DB_AUTO_MIGRATE", true),
		Seed:             GetEnvBool("DB_SEED", false),
		SeedDir:          GetEnv("SEED_DIR", "internals/seeds"),
		RateLimitEnabled: GetEnvBool("RATE_LIMIT_ENABLED", true),
		CorsAllowOrigins: GetEnv("CORS_ALLOW_ORIGINS", "*"),
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[WARN] %s bukan angka (%q), pakai default %d", key, v, def)
		return def
	}
	return n
}

func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[WARN] %s bukan boolean (%q), pakai default %t", key, v, def)
		return def
	}
	return b
}
