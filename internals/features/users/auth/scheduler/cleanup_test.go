package scheduler

import (
	"testing"
	"time"

	"gorm.io/datatypes"

	"quizapp_backend/internals/constants"
	"quizapp_backend/internals/features/users/auth/model"
	"quizapp_backend/internals/testutil"
)

func TestCleanupExpiredTokens(t *testing.T) {
	db := testutil.SetupTestDB(t)
	user := testutil.CreateUser(t, db, "Sari", "sari@mail.com", "secret123", constants.RoleSiswa)

	now := time.Now().UTC()
	rows := []model.PersonalAccessTokenModel{
		{UserID: user.ID, TokenID: "lama", Name: "t", Abilities: datatypes.JSON(`["*"]`), ExpiresAt: now.Add(-time.Hour)},
		{UserID: user.ID, TokenID: "aktif", Name: "t", Abilities: datatypes.JSON(`["*"]`), ExpiresAt: now.Add(time.Hour)},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if n := CleanupExpiredTokens(db); n != 1 {
		t.Fatalf("deleted = %d, want 1", n)
	}
	var left []model.PersonalAccessTokenModel
	db.Find(&left)
	if len(left) != 1 || left[0].TokenID != "aktif" {
		t.Fatalf("remaining tokens = %+v", left)
	}
}

func TestStartTokenCleanupSchedulerRejectsBadSpec(t *testing.T) {
	db := testutil.SetupTestDB(t)

	if _, err := StartTokenCleanupScheduler(db, "bukan cron"); err == nil {
		t.Fatalf("expected error for invalid schedule")
	}
	c, err := StartTokenCleanupScheduler(db, "@every 1h")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	c.Stop()
}
