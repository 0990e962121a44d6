package controller

import (
	"github.com/gofiber/fiber/v2"

	"quizapp_backend/internals/constants"
	"quizapp_backend/internals/features/feeds/dto"
	"quizapp_backend/internals/features/feeds/service"
	helper "quizapp_backend/internals/helpers"
	helpersAuth "quizapp_backend/internals/helpers/auth"
)

type FeedController struct {
	Service *service.FeedService
}

func NewFeedController(svc *service.FeedService) *FeedController {
	return &FeedController{Service: svc}
}

func bindFeedRequest(c *fiber.Ctx) (dto.FeedRequest, bool) {
	var req dto.FeedRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return req, false
	}
	if fh, err := c.FormFile("image"); err == nil {
		req.Image = fh
	}
	return req, true
}

// GET /api/feeds
func (fc *FeedController) Index(c *fiber.Ctx) error {
	feeds, err := fc.Service.Index(c.UserContext())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, constants.MsgData, feeds)
}

// GET /api/feeds/:id
func (fc *FeedController) Show(c *fiber.Ctx) error {
	feed, err := fc.Service.Show(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, constants.MsgDetail, feed)
}

// POST /api/feeds
func (fc *FeedController) Store(c *fiber.Ctx) error {
	p, err := helpersAuth.PrincipalFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	req, ok := bindFeedRequest(c)
	if !ok {
		return helper.ResponseFailed(c, constants.MsgValidationError,
			helper.FieldErrors{"payload": {"Format request tidak valid."}}, fiber.StatusBadRequest)
	}

	feed, err := fc.Service.Create(c.UserContext(), p, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, constants.MsgCreated, feed)
}

// POST /api/feeds/:id/replies
func (fc *FeedController) StoreReply(c *fiber.Ctx) error {
	p, err := helpersAuth.PrincipalFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	req, ok := bindFeedRequest(c)
	if !ok {
		return helper.ResponseFailed(c, constants.MsgValidationError,
			helper.FieldErrors{"payload": {"Format request tidak valid."}}, fiber.StatusBadRequest)
	}

	reply, err := fc.Service.CreateReply(c.UserContext(), p, c.Params("id"), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, constants.MsgCreated, reply)
}
