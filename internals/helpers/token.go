package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetBearerToken mengambil token dari header "Authorization: Bearer <token>".
func GetBearerToken(c *fiber.Ctx) string {
	const p = "bearer "
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(auth) > len(p) && strings.EqualFold(auth[:len(p)], p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}
