package service

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"quizapp_backend/internals/constants"
	"quizapp_backend/internals/features/feeds/dto"
	"quizapp_backend/internals/features/feeds/model"
	helper "quizapp_backend/internals/helpers"
	helpersAuth "quizapp_backend/internals/helpers/auth"
	"quizapp_backend/internals/helpers/storage"
)

type FeedService struct {
	DB         *gorm.DB
	Store      *storage.LocalStorage
	Validator  *helper.Validator
	MaxImageKB int
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func (s *FeedService) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Replies", orderByID).
		Preload("Replies.User")
}

// Index semua feed, urut sesuai urutan simpan.
func (s *FeedService) Index(ctx context.Context) ([]model.FeedModel, error) {
	feeds := make([]model.FeedModel, 0)
	if err := s.withRelations(s.DB.WithContext(ctx)).
		Order("id ASC").
		Find(&feeds).Error; err != nil {
		return nil, helper.ErrPersistence(constants.MsgFailed, err)
	}
	return feeds, nil
}

func (s *FeedService) Show(ctx context.Context, rawID string) (*model.FeedModel, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, helper.ErrNotFound(constants.MsgFeedNotFound)
	}
	var feed model.FeedModel
	if err := s.withRelations(s.DB.WithContext(ctx)).First(&feed, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound(constants.MsgFeedNotFound)
		}
		return nil, helper.ErrPersistence(constants.MsgFailed, err)
	}
	return &feed, nil
}

func (s *FeedService) validate(req *dto.FeedRequest) helper.FieldErrors {
	req.Message = strings.TrimSpace(req.Message)
	errs := helper.FieldErrors{}
	errs.Merge(s.Validator.Validate(req))
	helper.ValidateImage(errs, "image", req.Image, s.MaxImageKB)
	return errs
}

// stageImage gambar feed selalu di-encode ulang (resize ke batas dimensi).
func (s *FeedService) stageImage(batch *storage.Batch, fh *multipart.FileHeader) (*string, error) {
	if fh == nil {
		return nil, nil
	}
	name := storage.TimeName(storage.ExtOf(fh))
	if err := batch.Stage(storage.DirFeed, name, fh, true); err != nil {
		log.Printf("[ERROR] gagal proses gambar feed: %v", err)
		return nil, helper.ErrValidation(helper.FieldErrors{"image": {"image harus berupa gambar."}})
	}
	return &name, nil
}

func (s *FeedService) Create(ctx context.Context, p helpersAuth.Principal, req dto.FeedRequest) (*model.FeedModel, error) {
	if errs := s.validate(&req); !errs.Empty() {
		return nil, helper.ErrValidation(errs)
	}

	batch := s.Store.NewBatch()
	defer batch.Discard()

	image, err := s.stageImage(batch, req.Image)
	if err != nil {
		return nil, err
	}
	feed := model.FeedModel{UserID: p.UserID, Message: req.Message, Image: image}

	if err := s.DB.WithContext(ctx).Create(&feed).Error; err != nil {
		return nil, helper.ErrPersistence(constants.MsgCreateFailed, err)
	}
	if err := batch.Commit(); err != nil {
		log.Printf("[WARN] gambar feed %d gagal dipindah: %v", feed.ID, err)
	}
	return s.Show(ctx, strconv.FormatUint(uint64(feed.ID), 10))
}

// CreateReply cek feed dulu (404) sebelum validasi isi balasan.
func (s *FeedService) CreateReply(ctx context.Context, p helpersAuth.Principal, rawFeedID string, req dto.FeedRequest) (*model.FeedReplyModel, error) {
	feedID, ok := parseID(rawFeedID)
	if !ok {
		return nil, helper.ErrNotFound(constants.MsgFeedNotFound)
	}
	var count int64
	if err := s.DB.WithContext(ctx).Model(&model.FeedModel{}).Where("id = ?", feedID).Count(&count).Error; err != nil {
		return nil, helper.ErrPersistence(constants.MsgFailed, err)
	}
	if count == 0 {
		return nil, helper.ErrNotFound(constants.MsgFeedNotFound)
	}

	if errs := s.validate(&req); !errs.Empty() {
		return nil, helper.ErrValidation(errs)
	}

	batch := s.Store.NewBatch()
	defer batch.Discard()

	image, err := s.stageImage(batch, req.Image)
	if err != nil {
		return nil, err
	}
	reply := model.FeedReplyModel{FeedID: feedID, UserID: p.UserID, Message: req.Message, Image: image}

	if err := s.DB.WithContext(ctx).Create(&reply).Error; err != nil {
		return nil, helper.ErrPersistence(constants.MsgCreateFailed, err)
	}
	if err := batch.Commit(); err != nil {
		log.Printf("[WARN] gambar balasan %d gagal dipindah: %v", reply.ID, err)
	}

	if err := s.DB.WithContext(ctx).Preload("User").First(&reply, reply.ID).Error; err != nil {
		return nil, helper.ErrPersistence(constants.MsgCreateFailed, err)
	}
	return &reply, nil
}

func parseID(raw string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
