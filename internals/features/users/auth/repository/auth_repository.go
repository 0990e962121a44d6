package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"quizapp_backend/internals/features/users/auth/model"
)

// ===================== USERS =====================

func FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(ctx context.Context, db *gorm.DB, id uint) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func EmailTaken(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func NumberTaken(ctx context.Context, db *gorm.DB, number int64) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.UserModel{}).Where("number = ?", number).Count(&count).Error
	return count > 0, err
}

func CreateUser(ctx context.Context, db *gorm.DB, user *model.UserModel) error {
	return db.WithContext(ctx).Create(user).Error
}

func TouchLastSeen(ctx context.Context, db *gorm.DB, userID uint, at time.Time) error {
	return db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("last_seen", at).Error
}

// ===================== ACCESS TOKENS =====================

func CreateAccessToken(ctx context.Context, db *gorm.DB, token *model.PersonalAccessTokenModel) error {
	return db.WithContext(ctx).Create(token).Error
}

// FindActiveAccessToken token yang belum kedaluwarsa per now.
func FindActiveAccessToken(ctx context.Context, db *gorm.DB, tokenID string, now time.Time) (*model.PersonalAccessTokenModel, error) {
	var tok model.PersonalAccessTokenModel
	if err := db.WithContext(ctx).
		Where("token_id = ? AND expires_at > ?", tokenID, now).
		First(&tok).Error; err != nil {
		return nil, err
	}
	return &tok, nil
}

func TouchAccessToken(ctx context.Context, db *gorm.DB, id uint, at time.Time) error {
	return db.WithContext(ctx).Model(&model.PersonalAccessTokenModel{}).
		Where("id = ?", id).
		Update("last_used_at", at).Error
}

// DeleteUserTokens mencabut semua token milik user (logout semua sesi).
func DeleteUserTokens(ctx context.Context, db *gorm.DB, userID uint) (int64, error) {
	res := db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.PersonalAccessTokenModel{})
	return res.RowsAffected, res.Error
}

func DeleteExpiredTokens(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.PersonalAccessTokenModel{})
	return res.RowsAffected, res.Error
}
