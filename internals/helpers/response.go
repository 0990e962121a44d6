package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"quizapp_backend/internals/constants"
)

// Envelope bentuk standar semua respons JSON.
type Envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func SuccessBody(message string, data any) Envelope {
	if strings.TrimSpace(message) == "" {
		message = constants.MsgSuccess
	}
	return Envelope{Status: true, Message: message, Data: normalizeData(data)}
}

func FailedBody(message string, data any) Envelope {
	if strings.TrimSpace(message) == "" {
		message = constants.MsgFailed
	}
	return Envelope{Status: false, Message: message, Data: normalizeData(data)}
}

// ResponseSuccess status 0 berarti 200.
func ResponseSuccess(c *fiber.Ctx, message string, data any, status int) error {
	if status == 0 {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(SuccessBody(message, data))
}

// ResponseFailed status 0 berarti 500.
func ResponseFailed(c *fiber.Ctx, message string, data any, status int) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(FailedBody(message, data))
}

func JsonOK(c *fiber.Ctx, message string, data any) error {
	return ResponseSuccess(c, message, data, fiber.StatusOK)
}

func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return ResponseSuccess(c, message, data, fiber.StatusCreated)
}

// data kosong ("" atau nil) tidak ikut dikirim
func normalizeData(data any) any {
	switch v := data.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
	case FieldErrors:
		if v == nil {
			return nil
		}
	}
	return data
}
