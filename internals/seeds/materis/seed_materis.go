package materis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	"quizapp_backend/internals/features/materis/model"
	authModel "quizapp_backend/internals/features/users/auth/model"
)

type MateriSeed struct {
	OwnerEmail  string `json:"owner_email"`
	Subject     string `json:"subject"`
	Competence  string `json:"competence"`
	Class       string `json:"class"`
	Semester    string `json:"semester"`
	Meet        string `json:"meet"`
	Description string `json:"description"`
}

// SeedMaterisFromJSON materi dengan subject+class+semester+meet yang sama dilewati.
// owner_email harus menunjuk user yang sudah ada.
func SeedMaterisFromJSON(db *gorm.DB, filePath string) (int, error) {
	log.Println("📥 Membaca file materi:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("gagal membaca file JSON: %w", err)
	}
	var inputs []MateriSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("gagal decode JSON: %w", err)
	}

	owners := map[string]uint{}
	inserted := 0
	for _, data := range inputs {
		email := strings.ToLower(strings.TrimSpace(data.OwnerEmail))
		ownerID, ok := owners[email]
		if !ok {
			var owner authModel.UserModel
			if err := db.Where("email = ?", email).First(&owner).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					log.Printf("⚠️ Pemilik '%s' untuk materi '%s' tidak ditemukan, dilewati.", email, data.Subject)
					continue
				}
				return inserted, err
			}
			ownerID = owner.ID
			owners[email] = ownerID
		}

		var count int64
		if err := db.Model(&model.MateriModel{}).
			Where("subject = ? AND class = ? AND semester = ? AND meet = ?", data.Subject, data.Class, data.Semester, data.Meet).
			Count(&count).Error; err != nil {
			return inserted, err
		}
		if count > 0 {
			continue
		}

		materi := model.MateriModel{
			UserID:      ownerID,
			Subject:     data.Subject,
			Competence:  data.Competence,
			Class:       data.Class,
			Semester:    data.Semester,
			Meet:        data.Meet,
			Description: data.Description,
		}
		if err := db.Create(&materi).Error; err != nil {
			return inserted, fmt.Errorf("gagal insert materi %s: %w", data.Subject, err)
		}
		inserted++
	}
	log.Printf("✅ %d materi baru di-seed", inserted)
	return inserted, nil
}
