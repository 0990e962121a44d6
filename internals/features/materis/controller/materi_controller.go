package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizapp_backend/internals/constants"
	"quizapp_backend/internals/features/materis/model"
	helper "quizapp_backend/internals/helpers"
)

type MateriController struct {
	DB *gorm.DB
}

func NewMateriController(db *gorm.DB) *MateriController {
	return &MateriController{DB: db}
}

// GET /api/materis?class=&semester=
func (mc *MateriController) Index(c *fiber.Ctx) error {
	q := mc.DB.WithContext(c.UserContext()).Model(&model.MateriModel{})
	if v := strings.TrimSpace(c.Query("class")); v != "" {
		q = q.Where("class = ?", v)
	}
	if v := strings.TrimSpace(c.Query("semester")); v != "" {
		q = q.Where("semester = ?", v)
	}

	materis := make([]model.MateriModel, 0)
	if err := q.Order("id ASC").Find(&materis).Error; err != nil {
		return helper.FromError(c, helper.ErrPersistence(constants.MsgFailed, err))
	}
	return helper.JsonOK(c, constants.MsgData, materis)
}

// GET /api/materis/:id
func (mc *MateriController) Show(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.ResponseFailed(c, constants.MsgNotFound, nil, fiber.StatusNotFound)
	}

	var materi model.MateriModel
	if err := mc.DB.WithContext(c.UserContext()).First(&materi, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ResponseFailed(c, constants.MsgNotFound, nil, fiber.StatusNotFound)
		}
		return helper.FromError(c, helper.ErrPersistence(constants.MsgFailed, err))
	}
	return helper.JsonOK(c, constants.MsgDetail, materi)
}
