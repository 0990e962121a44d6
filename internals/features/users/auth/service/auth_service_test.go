package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"quizapp_backend/internals/constants"
	"quizapp_backend/internals/features/users/auth/dto"
	"quizapp_backend/internals/features/users/auth/model"
	helper "quizapp_backend/internals/helpers"
	"quizapp_backend/internals/helpers/storage"
	"quizapp_backend/internals/testutil"
)

const testSecret = "rahasia-test"

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return &AuthService{
		DB:         testutil.SetupTestDB(t),
		Store:      storage.NewLocalStorage(t.TempDir(), 0),
		Tokens:     NewTokenIssuer(testSecret, time.Hour),
		Validator:  helper.NewValidator(),
		MaxImageKB: 2048,
		HashCost:   bcrypt.MinCost,
	}
}

func registerReq(email string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:                 "Budi",
		Email:                email,
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	}
}

func fieldErrors(t *testing.T, err error) helper.FieldErrors {
	t.Helper()
	var ae *helper.AppError
	if !errors.As(err, &ae) || ae.Kind != helper.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	return ae.Fields
}

func TestRegister(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, constants.RoleGuru, registerReq(" Budi@Mail.com "))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.Token == "" || res.User.ID == 0 || res.User.Role != constants.RoleGuru || res.User.Email != "budi@mail.com" {
		t.Fatalf("unexpected response %+v", res)
	}
	if res.User.Password == "secret123" {
		t.Fatalf("password stored in plain text")
	}

	p, err := svc.Tokens.Authenticate(ctx, svc.DB, res.Token)
	if err != nil || p.UserID != res.User.ID || p.Role != constants.RoleGuru {
		t.Fatalf("Authenticate = %+v, %v", p, err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, constants.RoleSiswa, registerReq("a@mail.com")); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := svc.Register(ctx, constants.RoleSiswa, registerReq("A@mail.com"))
	if errs := fieldErrors(t, err); len(errs["email"]) == 0 {
		t.Fatalf("expected email error, got %v", errs)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(t)

	req := registerReq("bukan-email")
	req.Name = ""
	req.PasswordConfirmation = "lain"
	req.Number = "12a"

	_, err := svc.Register(context.Background(), constants.RoleSiswa, req)
	errs := fieldErrors(t, err)
	for _, key := range []string{"name", "email", "password", "number"} {
		if len(errs[key]) == 0 {
			t.Errorf("missing error for %q in %v", key, errs)
		}
	}

	var count int64
	svc.DB.Model(&model.UserModel{}).Count(&count)
	if count != 0 {
		t.Fatalf("users = %d, want 0", count)
	}
}

func TestRegisterNumber(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	req := registerReq("besar@mail.com")
	req.Number = "99999999999999999999"
	_, err := svc.Register(ctx, constants.RoleSiswa, req)
	if errs := fieldErrors(t, err); len(errs["number"]) == 0 {
		t.Fatalf("expected number error, got %v", errs)
	}
	var count int64
	svc.DB.Model(&model.UserModel{}).Count(&count)
	if count != 0 {
		t.Fatalf("users = %d, want 0", count)
	}

	req = registerReq("minus@mail.com")
	req.Number = "-5"
	res, err := svc.Register(ctx, constants.RoleSiswa, req)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.User.Number == nil || *res.User.Number != -5 {
		t.Fatalf("number = %v, want -5", res.User.Number)
	}
}

func TestRegisterStoresAvatar(t *testing.T) {
	svc := newAuthService(t)

	req := registerReq("foto@mail.com")
	req.Avatar = testutil.FileHeader(t, "avatar", "me.png", testutil.PNGBytes(t, 4, 4))

	res, err := svc.Register(context.Background(), constants.RoleSiswa, req)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.User.Avatar == nil || !svc.Store.Exists(storage.DirAvatar, *res.User.Avatar) {
		t.Fatalf("avatar not stored")
	}
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	testutil.CreateUser(t, svc.DB, "Sari", "sari@mail.com", "secret123", constants.RoleSiswa)

	res, err := svc.Login(ctx, dto.LoginRequest{Email: "SARI@mail.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token == "" || res.User.LastSeen == nil {
		t.Fatalf("unexpected response %+v", res)
	}

	tests := []dto.LoginRequest{
		{Email: "sari@mail.com", Password: "salah"},
		{Email: "siapa@mail.com", Password: "secret123"},
		{Email: "sari", Password: "secret123"},
	}
	for _, req := range tests {
		_, err := svc.Login(ctx, req)
		var ae *helper.AppError
		if !errors.As(err, &ae) || ae.Kind != helper.KindAuthFailed || ae.Message != constants.MsgLoginFailed {
			t.Fatalf("Login(%s) = %v, want auth failure", req.Email, err)
		}
	}
}

func TestLogoutRevokesTokens(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	testutil.CreateUser(t, svc.DB, "Sari", "sari@mail.com", "secret123", constants.RoleSiswa)

	first, _ := svc.Login(ctx, dto.LoginRequest{Email: "sari@mail.com", Password: "secret123"})
	second, err := svc.Login(ctx, dto.LoginRequest{Email: "sari@mail.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	p, err := svc.Tokens.Authenticate(ctx, svc.DB, second.Token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if err := svc.Logout(ctx, p); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	for _, tok := range []string{first.Token, second.Token} {
		if _, err := svc.Tokens.Authenticate(ctx, svc.DB, tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("revoked token still accepted: %v", err)
		}
	}
}

func TestMe(t *testing.T) {
	svc := newAuthService(t)
	res, err := svc.Register(context.Background(), constants.RoleSiswa, registerReq("me@mail.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	p, _ := svc.Tokens.Authenticate(context.Background(), svc.DB, res.Token)

	user, err := svc.Me(context.Background(), p)
	if err != nil || user.Email != "me@mail.com" {
		t.Fatalf("Me = %+v, %v", user, err)
	}
}
