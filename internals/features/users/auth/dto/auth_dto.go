package dto

import (
	"encoding/json"
	"mime/multipart"
	"strconv"
	"strings"

	"quizapp_backend/internals/features/users/auth/model"
)

type RegisterRequest struct {
	Name                 string      `json:"name" form:"name" validate:"required"`
	Email                string      `json:"email" form:"email" validate:"required,email"`
	Password             string      `json:"password" form:"password" validate:"required"`
	PasswordConfirmation string      `json:"password_confirmation" form:"password_confirmation"`
	Role                 string      `json:"role" form:"role" validate:"required,oneof=siswa guru"`
	Number               json.Number `json:"number" form:"number"`

	Avatar *multipart.FileHeader `json:"-" form:"-"`
}

// NumberValue nil kalau number tidak dikirim atau bukan bilangan bulat int64.
func (r *RegisterRequest) NumberValue() *int64 {
	s := strings.TrimSpace(string(r.Number))
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AuthResponse payload data untuk register & login.
type AuthResponse struct {
	User  model.UserModel `json:"user"`
	Token string          `json:"token"`
}
