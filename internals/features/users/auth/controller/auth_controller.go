package controller

import (
	"github.com/gofiber/fiber/v2"

	"quizapp_backend/internals/constants"
	"quizapp_backend/internals/features/users/auth/dto"
	"quizapp_backend/internals/features/users/auth/service"
	helper "quizapp_backend/internals/helpers"
	helpersAuth "quizapp_backend/internals/helpers/auth"
)

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

// POST /api/register/student
func (ac *AuthController) StudentRegister(c *fiber.Ctx) error {
	return ac.register(c, constants.RoleSiswa)
}

// POST /api/register/teacher
func (ac *AuthController) TeacherRegister(c *fiber.Ctx) error {
	return ac.register(c, constants.RoleGuru)
}

func (ac *AuthController) register(c *fiber.Ctx, role constants.Role) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return helper.ResponseFailed(c, constants.MsgValidationError,
			helper.FieldErrors{"payload": {"Format request tidak valid."}}, fiber.StatusBadRequest)
	}
	if fh, err := c.FormFile("avatar"); err == nil {
		req.Avatar = fh
	}

	res, err := ac.Service.Register(c.UserContext(), role, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, constants.MsgRegistered, res)
}

// POST /api/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return helper.ResponseFailed(c, constants.MsgValidationError,
			helper.FieldErrors{"payload": {"Format request tidak valid."}}, fiber.StatusBadRequest)
	}

	res, err := ac.Service.Login(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, constants.MsgLoginSuccess, res)
}

// POST /api/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	p, err := helpersAuth.PrincipalFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := ac.Service.Logout(c.UserContext(), p); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, constants.MsgLogoutSuccess, nil)
}

// GET /api/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	p, err := helpersAuth.PrincipalFrom(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	user, err := ac.Service.Me(c.UserContext(), p)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, constants.MsgData, user)
}
