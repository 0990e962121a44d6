package service

import (
	"context"
	"errors"
	"image"
	_ "image/png"
	"os"
	"testing"

	"quizapp_backend/internals/constants"
	"quizapp_backend/internals/features/feeds/dto"
	helper "quizapp_backend/internals/helpers"
	helpersAuth "quizapp_backend/internals/helpers/auth"
	"quizapp_backend/internals/helpers/storage"
	"quizapp_backend/internals/testutil"
)

func newFeedService(t *testing.T, maxDim int) (*FeedService, helpersAuth.Principal) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	user := testutil.CreateUser(t, db, "Sari", "sari@mail.com", "secret123", constants.RoleSiswa)
	svc := &FeedService{
		DB:         db,
		Store:      storage.NewLocalStorage(t.TempDir(), maxDim),
		Validator:  helper.NewValidator(),
		MaxImageKB: 2048,
	}
	return svc, helpersAuth.Principal{UserID: user.ID, Role: user.Role}
}

func TestCreateFeedAndReply(t *testing.T) {
	svc, p := newFeedService(t, 0)
	ctx := context.Background()

	feed, err := svc.Create(ctx, p, dto.FeedRequest{Message: "  Halo kelas  "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if feed.Message != "Halo kelas" || feed.User == nil || feed.User.Name != "Sari" {
		t.Fatalf("unexpected feed %+v", feed)
	}

	reply, err := svc.CreateReply(ctx, p, "1", dto.FeedRequest{Message: "Siap"})
	if err != nil {
		t.Fatalf("CreateReply: %v", err)
	}
	if reply.FeedID != feed.ID || reply.User == nil {
		t.Fatalf("unexpected reply %+v", reply)
	}

	all, err := svc.Index(ctx)
	if err != nil || len(all) != 1 || len(all[0].Replies) != 1 {
		t.Fatalf("Index = %+v, %v", all, err)
	}
}

func TestIndexOrdersByID(t *testing.T) {
	svc, p := newFeedService(t, 0)
	ctx := context.Background()

	for _, msg := range []string{"pertama", "kedua", "ketiga"} {
		if _, err := svc.Create(ctx, p, dto.FeedRequest{Message: msg}); err != nil {
			t.Fatalf("Create(%s): %v", msg, err)
		}
	}

	all, err := svc.Index(ctx)
	if err != nil || len(all) != 3 {
		t.Fatalf("Index = %+v, %v", all, err)
	}
	for i, want := range []string{"pertama", "kedua", "ketiga"} {
		if all[i].Message != want || (i > 0 && all[i].ID <= all[i-1].ID) {
			t.Fatalf("feed %d = %d %q, want %q in id order", i, all[i].ID, all[i].Message, want)
		}
	}
}

func TestFeedNotFound(t *testing.T) {
	svc, p := newFeedService(t, 0)
	ctx := context.Background()

	for _, id := range []string{"99", "abc", "0"} {
		_, err := svc.CreateReply(ctx, p, id, dto.FeedRequest{})
		var ae *helper.AppError
		if !errors.As(err, &ae) || ae.Kind != helper.KindNotFound || ae.Message != constants.MsgFeedNotFound {
			t.Fatalf("CreateReply(%q) = %v, want feed not found", id, err)
		}
		if _, err := svc.Show(ctx, id); !errors.As(err, &ae) || ae.Kind != helper.KindNotFound {
			t.Fatalf("Show(%q) = %v, want not found", id, err)
		}
	}
}

func TestCreateFeedValidation(t *testing.T) {
	svc, p := newFeedService(t, 0)

	_, err := svc.Create(context.Background(), p, dto.FeedRequest{
		Message: " ",
		Image:   testutil.FileHeader(t, "image", "a.gif", []byte("GIF89a")),
	})
	var ae *helper.AppError
	if !errors.As(err, &ae) || len(ae.Fields["message"]) == 0 || len(ae.Fields["image"]) == 0 {
		t.Fatalf("expected message and image errors, got %v", err)
	}
}

func TestCreateFeedReencodesImage(t *testing.T) {
	svc, p := newFeedService(t, 10)

	feed, err := svc.Create(context.Background(), p, dto.FeedRequest{
		Message: "Foto",
		Image:   testutil.FileHeader(t, "image", "foto.png", testutil.PNGBytes(t, 40, 20)),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if feed.Image == nil || feed.ImageURL != "/"+storage.DirFeed+"/"+*feed.Image {
		t.Fatalf("image fields = %v %q", feed.Image, feed.ImageURL)
	}

	f, err := os.Open(svc.Store.FullPath(storage.DirFeed, *feed.Image))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 10 || cfg.Height != 5 {
		t.Fatalf("size = %dx%d, want 10x5", cfg.Width, cfg.Height)
	}
}
