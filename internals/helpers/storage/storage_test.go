package storage_test

import (
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizapp_backend/internals/helpers/storage"
	"quizapp_backend/internals/testutil"
)

func newStore(t *testing.T, maxDim int) *storage.LocalStorage {
	t.Helper()
	return storage.NewLocalStorage(t.TempDir(), maxDim)
}

func TestBatchCommitMovesStagedAndRemovesRetired(t *testing.T) {
	s := newStore(t, 0)
	png := testutil.PNGBytes(t, 8, 8)

	if err := s.Save(storage.DirQuiz, "old.png", testutil.FileHeader(t, "image", "old.png", png)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	b := s.NewBatch()
	if err := b.Stage(storage.DirQuiz, "new.png", testutil.FileHeader(t, "image", "new.png", png), true); err != nil {
		t.Fatalf("Stage: %v", err)
	}
	b.Retire(storage.DirQuiz, "old.png")
	b.Retire(storage.DirQuiz, "")

	if s.Exists(storage.DirQuiz, "new.png") {
		t.Fatalf("staged file visible before commit")
	}
	if b.Staged() != 1 || b.Retired() != 1 {
		t.Fatalf("staged=%d retired=%d", b.Staged(), b.Retired())
	}

	if err := b.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if !s.Exists(storage.DirQuiz, "new.png") {
		t.Fatalf("new.png missing after commit")
	}
	if s.Exists(storage.DirQuiz, "old.png") {
		t.Fatalf("old.png still present after commit")
	}

	// Discard setelah Commit tidak boleh menyentuh berkas final.
	b.Discard()
	if !s.Exists(storage.DirQuiz, "new.png") {
		t.Fatalf("Discard after Commit removed committed file")
	}
}

func TestBatchDiscardLeavesNothing(t *testing.T) {
	s := newStore(t, 0)

	b := s.NewBatch()
	if err := b.Stage(storage.DirFeed, "a.jpg", testutil.FileHeader(t, "image", "a.png", testutil.PNGBytes(t, 4, 4)), false); err != nil {
		t.Fatalf("Stage: %v", err)
	}
	b.Discard()

	if s.Exists(storage.DirFeed, "a.jpg") {
		t.Fatalf("discarded file reached final location")
	}
	entries, _ := os.ReadDir(filepath.Join(s.Root, ".staging"))
	if len(entries) != 0 {
		t.Fatalf("staging not cleaned: %d entries", len(entries))
	}
	if err := b.Commit(); err != nil {
		t.Fatalf("Commit after Discard should be no-op, got %v", err)
	}
}

func TestStageRejectsUndecodableImage(t *testing.T) {
	s := newStore(t, 0)

	b := s.NewBatch()
	defer b.Discard()
	if err := b.Stage(storage.DirQuiz, "x.png", testutil.FileHeader(t, "image", "x.png", []byte("not an image")), true); err == nil {
		t.Fatalf("expected decode error")
	}
	if b.Staged() != 0 {
		t.Fatalf("failed stage was recorded")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newStore(t, 0)

	if err := s.Delete(storage.DirAvatar, "missing.png"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
	if err := s.Delete(storage.DirAvatar, "  "); err != nil {
		t.Fatalf("Delete blank: %v", err)
	}
}

func TestSaveImageFitsMaxDimension(t *testing.T) {
	s := newStore(t, 16)

	if err := s.SaveImage(storage.DirAvatar, "big.png", testutil.FileHeader(t, "avatar", "big.png", testutil.PNGBytes(t, 64, 32))); err != nil {
		t.Fatalf("SaveImage: %v", err)
	}

	f, err := os.Open(s.FullPath(storage.DirAvatar, "big.png"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 16 || cfg.Height != 8 {
		t.Fatalf("size = %dx%d, want 16x8", cfg.Width, cfg.Height)
	}
}

func TestNamesAndPublicURL(t *testing.T) {
	if n := storage.RandomName(".png"); !strings.HasSuffix(n, ".png") || strings.Contains(n, "-") {
		t.Fatalf("RandomName = %q", n)
	}
	if a, b := storage.TimeName(".jpg"), storage.TimeName(".jpg"); a == b {
		t.Fatalf("TimeName collided: %q", a)
	}

	name := "a.png"
	empty := ""
	if got := storage.PublicURL(storage.DirQuiz, &name); got != "/assets/images/quiz/a.png" {
		t.Fatalf("PublicURL = %q", got)
	}
	if storage.PublicURL(storage.DirQuiz, nil) != "" || storage.PublicURL(storage.DirQuiz, &empty) != "" {
		t.Fatalf("PublicURL of empty name should be empty")
	}
}
