package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quizapp_backend/internals/constants"
	"quizapp_backend/internals/features/quizzes/dto"
	"quizapp_backend/internals/features/quizzes/model"
	helper "quizapp_backend/internals/helpers"
	"quizapp_backend/internals/helpers/storage"
)

const slugMaxLen = 160

type QuizService struct {
	DB         *gorm.DB
	Store      *storage.LocalStorage
	Validator  *helper.Validator
	MaxImageKB int
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// List type=quiz -> kuis pilihan ganda beserta opsi; selain itu -> essay.
func (s *QuizService) List(ctx context.Context, typeFilter string) ([]model.QuizModel, error) {
	typ := model.QuizTypeEssay
	if model.QuizType(strings.TrimSpace(typeFilter)) == model.QuizTypeQuiz {
		typ = model.QuizTypeQuiz
	}

	q := s.DB.WithContext(ctx).
		Where("type = ?", typ).
		Order("id ASC").
		Preload("Questions", orderByID)
	if typ.HasOptions() {
		q = q.Preload("Questions.Options", orderByID)
	}

	quizzes := make([]model.QuizModel, 0)
	if err := q.Find(&quizzes).Error; err != nil {
		return nil, helper.ErrPersistence(constants.MsgFailed, err)
	}
	return quizzes, nil
}

func (s *QuizService) Show(ctx context.Context, slug string) (*model.QuizModel, error) {
	quiz, err := s.load(ctx, s.DB, slug)
	if err != nil {
		return nil, s.lookupError(err)
	}
	return quiz, nil
}

// load satu kuis lengkap dengan soal (dan opsi untuk tipe quiz), anak urut id.
func (s *QuizService) load(ctx context.Context, db *gorm.DB, slug string) (*model.QuizModel, error) {
	var quiz model.QuizModel
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&quiz).Error; err != nil {
		return nil, err
	}
	q := db.WithContext(ctx).Where("quiz_id = ?", quiz.ID).Order("id ASC")
	if quiz.Type.HasOptions() {
		q = q.Preload("Options", orderByID)
	}
	if err := q.Find(&quiz.Questions).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *QuizService) lookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.ErrNotFound(constants.MsgNotFound)
	}
	return helper.ErrPersistence(constants.MsgFailed, err)
}

func (s *QuizService) validateQuestions(errs helper.FieldErrors, qs []dto.QuestionInput, typ model.QuizType) {
	for i, q := range qs {
		helper.ValidateImage(errs, fmt.Sprintf("questions.%d.image", i), q.Image, s.MaxImageKB)
		if typ.HasOptions() && len(q.Options) == 0 {
			errs.Add(fmt.Sprintf("questions.%d.options", i), "options wajib diisi untuk kuis pilihan ganda.")
		}
	}
}

// ===================== CREATE =====================

func (s *QuizService) Create(ctx context.Context, req dto.CreateQuizRequest) (*model.QuizModel, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Type = strings.ToLower(strings.TrimSpace(req.Type))
	typ := model.QuizType(req.Type)

	errs := helper.FieldErrors{}
	errs.Merge(s.Validator.Validate(&req))
	s.validateQuestions(errs, req.Questions, typ)
	if !errs.Empty() {
		return nil, helper.ErrValidation(errs)
	}

	batch := s.Store.NewBatch()
	defer batch.Discard()

	images := make([]*string, len(req.Questions))
	for i, q := range req.Questions {
		if q.Image == nil {
			continue
		}
		name := storage.TimeName(storage.ExtOf(q.Image))
		if err := batch.Stage(storage.DirQuiz, name, q.Image, false); err != nil {
			return nil, helper.ErrPersistence(constants.MsgCreateFailed, err)
		}
		images[i] = &name
	}

	var slug string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		slug, err = helper.EnsureUniqueSlugCI(ctx, tx, model.QuizModel{}.TableName(), "slug",
			helper.Slugify(req.Title, slugMaxLen), nil, slugMaxLen)
		if err != nil {
			return err
		}

		quiz := model.QuizModel{Title: req.Title, Slug: slug, Type: typ}
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}

		for i, in := range req.Questions {
			question := model.QuestionModel{
				QuizID:   quiz.ID,
				Question: strings.TrimSpace(in.Question),
				Image:    images[i],
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
			if !typ.HasOptions() {
				continue
			}
			for _, o := range in.Options {
				opt := model.OptionModel{
					QuestionID: question.ID,
					Title:      strings.TrimSpace(o.Title),
					Correct:    o.Correct.Int(),
				}
				if err := tx.Create(&opt).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, helper.ErrPersistence(constants.MsgCreateFailed, err)
	}

	if err := batch.Commit(); err != nil {
		log.Printf("[WARN] gambar kuis %s gagal dipindah: %v", slug, err)
	}
	log.Printf("[INFO] kuis dibuat slug=%s type=%s soal=%d", slug, typ, len(req.Questions))

	quiz, err := s.load(ctx, s.DB, slug)
	if err != nil {
		return nil, helper.ErrPersistence(constants.MsgCreateFailed, err)
	}
	return quiz, nil
}

// ===================== UPDATE =====================

type optionPlan struct {
	stored model.OptionModel
	input  dto.OptionInput
}

type questionPlan struct {
	stored   model.QuestionModel
	input    dto.QuestionInput
	newImage *string
	options  []optionPlan
}

// Update mengubah judul, teks & gambar soal, serta opsi. Slug tidak berubah.
// Jumlah soal/opsi tidak bisa ditambah atau dikurangi lewat update.
func (s *QuizService) Update(ctx context.Context, slug string, req dto.UpdateQuizRequest) (*model.QuizModel, error) {
	quiz, err := s.load(ctx, s.DB, slug)
	if err != nil {
		return nil, s.lookupError(err)
	}

	req.Title = strings.TrimSpace(req.Title)
	errs := helper.FieldErrors{}
	errs.Merge(s.Validator.Validate(&req))
	s.validateQuestions(errs, req.Questions, quiz.Type)
	if !errs.Empty() {
		return nil, helper.ErrValidation(errs)
	}

	plans, errs := planUpdate(quiz, req)
	if !errs.Empty() {
		return nil, helper.ErrValidation(errs)
	}

	batch := s.Store.NewBatch()
	defer batch.Discard()

	for i := range plans {
		p := &plans[i]
		if p.input.Image == nil {
			continue
		}
		name := storage.TimeName(storage.ExtOf(p.input.Image))
		if err := batch.Stage(storage.DirQuiz, name, p.input.Image, false); err != nil {
			return nil, helper.ErrPersistence(constants.MsgUpdateFailed, err)
		}
		p.newImage = &name
		if p.stored.Image != nil {
			batch.Retire(storage.DirQuiz, *p.stored.Image)
		}
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked model.QuizModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&locked, quiz.ID).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.QuizModel{}).Where("id = ?", quiz.ID).
			Update("title", req.Title).Error; err != nil {
			return err
		}

		for _, p := range plans {
			image := p.stored.Image
			if p.newImage != nil {
				image = p.newImage
			}
			if err := tx.Model(&model.QuestionModel{}).Where("id = ?", p.stored.ID).
				Updates(map[string]any{
					"question": strings.TrimSpace(p.input.Question),
					"image":    image,
				}).Error; err != nil {
				return err
			}
			for _, o := range p.options {
				if err := tx.Model(&model.OptionModel{}).Where("id = ?", o.stored.ID).
					Updates(map[string]any{
						"title":   strings.TrimSpace(o.input.Title),
						"correct": o.input.Correct.Int(),
					}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound(constants.MsgNotFound)
		}
		return nil, helper.ErrPersistence(constants.MsgUpdateFailed, err)
	}

	if err := batch.Commit(); err != nil {
		log.Printf("[WARN] berkas kuis %s gagal diperbarui: %v", slug, err)
	}

	updated, err := s.load(ctx, s.DB, slug)
	if err != nil {
		return nil, helper.ErrPersistence(constants.MsgUpdateFailed, err)
	}
	return updated, nil
}

func planUpdate(quiz *model.QuizModel, req dto.UpdateQuizRequest) ([]questionPlan, helper.FieldErrors) {
	errs := helper.FieldErrors{}

	storedIDs := make([]uint, len(quiz.Questions))
	for i, q := range quiz.Questions {
		storedIDs[i] = q.ID
	}
	inputIDs := make([]*uint, len(req.Questions))
	for i, q := range req.Questions {
		inputIDs[i] = q.ID
	}
	pairs, msg := pairByIDOrPosition(storedIDs, inputIDs, "questions")
	if msg != "" {
		errs.Add("questions", msg)
		return nil, errs
	}

	plans := make([]questionPlan, len(req.Questions))
	for k, in := range req.Questions {
		stored := quiz.Questions[pairs[k]]
		plans[k] = questionPlan{stored: stored, input: in}
		if !quiz.Type.HasOptions() {
			continue
		}

		optIDs := make([]uint, len(stored.Options))
		for i, o := range stored.Options {
			optIDs[i] = o.ID
		}
		inOptIDs := make([]*uint, len(in.Options))
		for i, o := range in.Options {
			inOptIDs[i] = o.ID
		}
		optPairs, msg := pairByIDOrPosition(optIDs, inOptIDs, "options")
		if msg != "" {
			errs.Add(fmt.Sprintf("questions.%d.options", k), msg)
			continue
		}
		for j, o := range in.Options {
			plans[k].options = append(plans[k].options, optionPlan{stored: stored.Options[optPairs[j]], input: o})
		}
	}
	return plans, errs
}

// ===================== DESTROY =====================

func (s *QuizService) Destroy(ctx context.Context, slug string) error {
	quiz, err := s.load(ctx, s.DB, slug)
	if err != nil {
		return s.lookupError(err)
	}

	batch := s.Store.NewBatch()
	defer batch.Discard()

	questionIDs := make([]uint, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questionIDs = append(questionIDs, q.ID)
		if q.Image != nil {
			batch.Retire(storage.DirQuiz, *q.Image)
		}
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.OptionModel{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&model.QuestionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.QuizModel{}, quiz.ID).Error
	})
	if err != nil {
		return helper.ErrPersistence(constants.MsgDeleteFailed, err)
	}

	if err := batch.Commit(); err != nil {
		log.Printf("[WARN] gambar kuis %s gagal dihapus: %v", slug, err)
	}
	log.Printf("[INFO] kuis dihapus slug=%s", slug)
	return nil
}
