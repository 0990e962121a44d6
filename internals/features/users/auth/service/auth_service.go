package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"quizapp_backend/internals/constants"
	"quizapp_backend/internals/features/users/auth/dto"
	"quizapp_backend/internals/features/users/auth/model"
	authRepo "quizapp_backend/internals/features/users/auth/repository"
	helper "quizapp_backend/internals/helpers"
	helpersAuth "quizapp_backend/internals/helpers/auth"
	"quizapp_backend/internals/helpers/storage"
)

const (
	msgEmailTaken      = "email sudah ada sebelumnya."
	msgNumberTaken     = "number sudah ada sebelumnya."
	msgNumberInvalid   = "number harus berupa bilangan bulat."
	msgConfirmMismatch = "konfirmasi password tidak cocok."
)

type AuthService struct {
	DB         *gorm.DB
	Store      *storage.LocalStorage
	Tokens     *TokenIssuer
	Validator  *helper.Validator
	MaxImageKB int
	HashCost   int
}

func (s *AuthService) hashCost() int {
	if s.HashCost > 0 {
		return s.HashCost
	}
	return bcrypt.DefaultCost
}

// Register membuat user dengan role yang sudah ditentukan route, lalu langsung login.
func (s *AuthService) Register(ctx context.Context, role constants.Role, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Role = string(role)

	errs := helper.FieldErrors{}
	errs.Merge(s.Validator.Validate(&req))
	if req.Password != "" && req.Password != req.PasswordConfirmation {
		errs.Add("password", msgConfirmMismatch)
	}
	helper.ValidateImage(errs, "avatar", req.Avatar, s.MaxImageKB)

	if _, failed := errs["email"]; !failed && req.Email != "" {
		taken, err := authRepo.EmailTaken(ctx, s.DB, req.Email)
		if err != nil {
			return nil, helper.ErrPersistence(constants.MsgCreateFailed, err)
		}
		if taken {
			errs.Add("email", msgEmailTaken)
		}
	}
	number := req.NumberValue()
	if number == nil && strings.TrimSpace(string(req.Number)) != "" {
		errs.Add("number", msgNumberInvalid)
	}
	if number != nil {
		taken, err := authRepo.NumberTaken(ctx, s.DB, *number)
		if err != nil {
			return nil, helper.ErrPersistence(constants.MsgCreateFailed, err)
		}
		if taken {
			errs.Add("number", msgNumberTaken)
		}
	}
	if !errs.Empty() {
		return nil, helper.ErrValidation(errs)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost())
	if err != nil {
		return nil, helper.ErrPersistence(constants.MsgCreateFailed, err)
	}

	batch := s.Store.NewBatch()
	defer batch.Discard()

	user := model.UserModel{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
		Number:   number,
	}
	if req.Avatar != nil {
		name := storage.RandomName(storage.ExtOf(req.Avatar))
		if err := batch.Stage(storage.DirAvatar, name, req.Avatar, false); err != nil {
			return nil, helper.ErrPersistence(constants.MsgCreateFailed, err)
		}
		user.Avatar = &name
	}

	var token string
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := authRepo.CreateUser(ctx, tx, &user); err != nil {
			return err
		}
		t, err := s.Tokens.Issue(ctx, tx, &user)
		if err != nil {
			return err
		}
		token = t
		return nil
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			if strings.Contains(strings.ToLower(err.Error()), "number") {
				errs.Add("number", msgNumberTaken)
			} else {
				errs.Add("email", msgEmailTaken)
			}
			return nil, helper.ErrValidation(errs)
		}
		return nil, helper.ErrPersistence(constants.MsgCreateFailed, err)
	}

	if err := batch.Commit(); err != nil {
		log.Printf("[WARN] avatar user %d gagal dipindah: %v", user.ID, err)
	}
	log.Printf("[INFO] user terdaftar id=%d role=%s", user.ID, user.Role)
	return &dto.AuthResponse{User: user, Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if errs := s.Validator.Validate(&req); errs != nil {
		return nil, helper.ErrValidation(errs)
	}

	user, err := authRepo.FindUserByEmail(ctx, s.DB, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrAuthFailed(constants.MsgLoginFailed)
		}
		return nil, helper.ErrPersistence(constants.MsgFailed, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, helper.ErrAuthFailed(constants.MsgLoginFailed)
	}

	token, err := s.Tokens.Issue(ctx, s.DB, user)
	if err != nil {
		return nil, helper.ErrPersistence(constants.MsgFailed, err)
	}

	now := s.Tokens.now()
	if err := authRepo.TouchLastSeen(ctx, s.DB, user.ID, now); err != nil {
		log.Printf("[WARN] gagal update last_seen user %d: %v", user.ID, err)
	} else {
		user.LastSeen = &now
	}
	return &dto.AuthResponse{User: *user, Token: token}, nil
}

// Logout mencabut semua token milik user.
func (s *AuthService) Logout(ctx context.Context, p helpersAuth.Principal) error {
	n, err := authRepo.DeleteUserTokens(ctx, s.DB, p.UserID)
	if err != nil {
		return helper.ErrPersistence(constants.MsgFailed, err)
	}
	log.Printf("[INFO] logout user=%d, %d token dicabut", p.UserID, n)
	return nil
}

func (s *AuthService) Me(ctx context.Context, p helpersAuth.Principal) (*model.UserModel, error) {
	user, err := authRepo.FindUserByID(ctx, s.DB, p.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrUnauthorized(constants.MsgUnauthenticated)
		}
		return nil, helper.ErrPersistence(constants.MsgFailed, err)
	}
	return user, nil
}
