package auth

import (
	"github.com/gofiber/fiber/v2"

	"quizapp_backend/internals/constants"
	helper "quizapp_backend/internals/helpers"
)

const LocPrincipal = "principal"

// Principal identitas pemanggil yang sudah terautentikasi.
type Principal struct {
	UserID  uint
	Role    constants.Role
	TokenID string
}

func SetPrincipal(c *fiber.Ctx, p Principal) {
	c.Locals(LocPrincipal, p)
	c.Locals("userRole", string(p.Role))
}

func PrincipalFrom(c *fiber.Ctx) (Principal, error) {
	p, ok := c.Locals(LocPrincipal).(Principal)
	if !ok || p.UserID == 0 {
		return Principal{}, helper.ErrUnauthorized(constants.MsgUnauthenticated)
	}
	return p, nil
}
