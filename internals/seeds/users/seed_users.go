package users

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"quizapp_backend/internals/constants"
	"quizapp_backend/internals/features/users/auth/model"
)

type UserSeed struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedUsersFromJSON user yang email-nya sudah ada dilewati.
func SeedUsersFromJSON(db *gorm.DB, filePath string) (int, error) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("gagal membaca file JSON: %w", err)
	}
	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("gagal decode JSON: %w", err)
	}

	inserted := 0
	for _, data := range inputs {
		email := strings.ToLower(strings.TrimSpace(data.Email))
		role, ok := constants.ParseRole(data.Role)
		if email == "" || !ok {
			log.Printf("⚠️ Seed user '%s' tidak valid, dilewati.", data.Email)
			continue
		}

		var count int64
		if err := db.Model(&model.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return inserted, err
		}
		if count > 0 {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			return inserted, fmt.Errorf("gagal hash password %s: %w", email, err)
		}
		user := model.UserModel{Name: data.Name, Email: email, Password: string(hashed), Role: role}
		if err := db.Create(&user).Error; err != nil {
			return inserted, fmt.Errorf("gagal insert user %s: %w", email, err)
		}
		log.Printf("✅ Berhasil insert user '%s'", email)
		inserted++
	}
	return inserted, nil
}
