package database

import (
	"log"

	"gorm.io/gorm"

	feedModel "quizapp_backend/internals/features/feeds/model"
	materiModel "quizapp_backend/internals/features/materis/model"
	quizModel "quizapp_backend/internals/features/quizzes/model"
	authModel "quizapp_backend/internals/features/users/auth/model"
)

// Models berurutan sesuai dependensi foreign key.
func Models() []any {
	return []any{
		&authModel.UserModel{},
		&authModel.PersonalAccessTokenModel{},
		&quizModel.QuizModel{},
		&quizModel.QuestionModel{},
		&quizModel.OptionModel{},
		&feedModel.FeedModel{},
		&feedModel.FeedReplyModel{},
		&materiModel.MateriModel{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		log.Printf("[ERROR] AutoMigrate gagal: %v", err)
		return err
	}
	log.Println("✅ Skema database siap.")
	return nil
}
