package seeds

import (
	"log"
	"path/filepath"

	"gorm.io/gorm"

	materis "quizapp_backend/internals/seeds/materis"
	users "quizapp_backend/internals/seeds/users"
)

// RunAllSeeds dir menunjuk folder internals/seeds. Urutan penting:
// materi butuh user pemiliknya.
func RunAllSeeds(db *gorm.DB, dir string) error {

	//* User
	if _, err := users.SeedUsersFromJSON(db, filepath.Join(dir, "users", "data_users.json")); err != nil {
		return err
	}

	//* Materi
	if _, err := materis.SeedMaterisFromJSON(db, filepath.Join(dir, "materis", "data_materis.json")); err != nil {
		return err
	}

	log.Println("✅ Seeding selesai.")
	return nil
}
