package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	authRepo "quizapp_backend/internals/features/users/auth/repository"
)

// StartTokenCleanupScheduler menjadwalkan penghapusan token kedaluwarsa.
// schedule pakai format cron standar atau descriptor (@daily, @every 1h).
func StartTokenCleanupScheduler(db *gorm.DB, schedule string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { CleanupExpiredTokens(db) }); err != nil {
		return nil, err
	}
	c.Start()
	log.Printf("[CLEANUP] scheduler token aktif (%s)", schedule)
	return c, nil
}

func CleanupExpiredTokens(db *gorm.DB) int64 {
	log.Println("[CLEANUP] Menjalankan pembersihan personal_access_tokens...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := authRepo.DeleteExpiredTokens(ctx, db, time.Now().UTC())
	if err != nil {
		log.Printf("[CLEANUP ERROR] Gagal hapus token: %v", err)
		return 0
	}
	if n > 0 {
		log.Printf("[CLEANUP] %d token kadaluarsa dihapus", n)
	} else {
		log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
	}
	return n
}
