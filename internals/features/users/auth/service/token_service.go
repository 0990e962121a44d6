package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"quizapp_backend/internals/constants"
	"quizapp_backend/internals/features/users/auth/model"
	authRepo "quizapp_backend/internals/features/users/auth/repository"
	helpersAuth "quizapp_backend/internals/helpers/auth"
)

const (
	accessTTLDefault = 72 * time.Hour
	tokenName        = "quizapptoken"
)

var ErrInvalidToken = errors.New("token tidak valid")

// AccessClaims isi JWT. jti menunjuk baris personal_access_tokens.
type AccessClaims struct {
	UserID uint   `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer menerbitkan & memverifikasi bearer token yang bisa dicabut.
type TokenIssuer struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = accessTTLDefault
	}
	return &TokenIssuer{Secret: []byte(strings.TrimSpace(secret)), TTL: ttl, Now: nowUTC}
}

func nowUTC() time.Time { return time.Now().UTC() }

func (t *TokenIssuer) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return nowUTC()
}

// Issue menyimpan baris token (pakai db/tx yang diberikan) lalu menandatangani JWT.
func (t *TokenIssuer) Issue(ctx context.Context, db *gorm.DB, user *model.UserModel) (string, error) {
	if len(t.Secret) == 0 {
		return "", errors.New("JWT_SECRET belum diset")
	}
	now := t.now()
	jti := uuid.NewString()
	exp := now.Add(t.TTL)

	row := &model.PersonalAccessTokenModel{
		UserID:    user.ID,
		TokenID:   jti,
		Name:      tokenName,
		Abilities: datatypes.JSON(`["*"]`),
		ExpiresAt: exp,
	}
	if err := authRepo.CreateAccessToken(ctx, db, row); err != nil {
		return "", fmt.Errorf("gagal simpan token: %w", err)
	}

	claims := AccessClaims{
		UserID: user.ID,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.Secret)
	if err != nil {
		return "", fmt.Errorf("gagal tanda tangan token: %w", err)
	}
	return signed, nil
}

// Parse verifikasi tanda tangan + exp; tidak menyentuh DB.
func (t *TokenIssuer) Parse(raw string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	tok, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return t.Secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ID == "" || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(t.now()) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Authenticate: JWT valid + baris token masih ada + user masih ada.
func (t *TokenIssuer) Authenticate(ctx context.Context, db *gorm.DB, raw string) (helpersAuth.Principal, error) {
	if strings.TrimSpace(raw) == "" {
		return helpersAuth.Principal{}, ErrInvalidToken
	}
	claims, err := t.Parse(raw)
	if err != nil {
		return helpersAuth.Principal{}, err
	}

	now := t.now()
	row, err := authRepo.FindActiveAccessToken(ctx, db, claims.ID, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpersAuth.Principal{}, ErrInvalidToken
		}
		return helpersAuth.Principal{}, err
	}
	if row.UserID != claims.UserID {
		return helpersAuth.Principal{}, ErrInvalidToken
	}

	user, err := authRepo.FindUserByID(ctx, db, row.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpersAuth.Principal{}, ErrInvalidToken
		}
		return helpersAuth.Principal{}, err
	}

	if err := authRepo.TouchAccessToken(ctx, db, row.ID, now); err != nil {
		log.Printf("[WARN] gagal update last_used_at token %d: %v", row.ID, err)
	}

	// role diambil dari DB, bukan dari claim
	role := user.Role
	if !role.Valid() {
		role = constants.RoleSiswa
	}
	return helpersAuth.Principal{UserID: user.ID, Role: role, TokenID: row.TokenID}, nil
}
