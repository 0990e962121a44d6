package controller

import (
	"github.com/gofiber/fiber/v2"

	"quizapp_backend/internals/constants"
	"quizapp_backend/internals/features/quizzes/dto"
	"quizapp_backend/internals/features/quizzes/service"
	helper "quizapp_backend/internals/helpers"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

func invalidPayload(c *fiber.Ctx) error {
	return helper.ResponseFailed(c, constants.MsgValidationError,
		helper.FieldErrors{"payload": {"Format request tidak valid."}}, fiber.StatusBadRequest)
}

// GET /quizzes?type=quiz|essay
func (qc *QuizController) Index(c *fiber.Ctx) error {
	quizzes, err := qc.Service.List(c.UserContext(), c.Query("type"))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, constants.MsgData, quizzes)
}

// GET /quizzes/:slug
func (qc *QuizController) Show(c *fiber.Ctx) error {
	quiz, err := qc.Service.Show(c.UserContext(), c.Params("slug"))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, constants.MsgDetail, quiz)
}

// POST /quizzes (multipart bracket notation atau JSON)
func (qc *QuizController) Store(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if form, ok := helper.FormTreeFromRequest(c); ok {
		req = dto.CreateQuizRequestFromForm(form)
	} else if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return invalidPayload(c)
	}

	quiz, err := qc.Service.Create(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, constants.MsgCreated, quiz)
}

// PUT/PATCH /quizzes/:slug
func (qc *QuizController) Update(c *fiber.Ctx) error {
	var req dto.UpdateQuizRequest
	if form, ok := helper.FormTreeFromRequest(c); ok {
		req = dto.UpdateQuizRequestFromForm(form)
	} else if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return invalidPayload(c)
	}

	quiz, err := qc.Service.Update(c.UserContext(), c.Params("slug"), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, constants.MsgUpdated, quiz)
}

// DELETE /quizzes/:slug
func (qc *QuizController) Destroy(c *fiber.Ctx) error {
	if err := qc.Service.Destroy(c.UserContext(), c.Params("slug")); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, constants.MsgDeleted, nil)
}
