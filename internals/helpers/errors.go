package helper

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"quizapp_backend/internals/constants"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindAuthFailed
	KindNotFound
	KindUnauthorized
	KindPersistence
)

// AppError error domain yang dipetakan ke status HTTP + envelope gagal.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  FieldErrors
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Status() int {
	switch e.Kind {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindAuthFailed, KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func ErrValidation(fields FieldErrors) *AppError {
	return &AppError{Kind: KindValidation, Message: constants.MsgValidationError, Fields: fields}
}

func ErrAuthFailed(msg string) *AppError {
	return &AppError{Kind: KindAuthFailed, Message: msg}
}

func ErrNotFound(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func ErrUnauthorized(msg string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: msg}
}

func ErrPersistence(msg string, err error) *AppError {
	return &AppError{Kind: KindPersistence, Message: msg, Err: err}
}

// FromError merender error apa pun jadi envelope gagal.
func FromError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var ae *AppError
	if errors.As(err, &ae) {
		if ae.Kind == KindValidation {
			return ResponseFailed(c, ae.Message, ae.Fields, fiber.StatusBadRequest)
		}
		if ae.Kind == KindPersistence {
			log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), ae.Err)
		}
		return ResponseFailed(c, ae.Message, nil, ae.Status())
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return ResponseFailed(c, fe.Message, nil, fe.Code)
	}

	log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
	return ResponseFailed(c, constants.MsgFailed, nil, fiber.StatusInternalServerError)
}

// FiberErrorHandler dipasang di fiber.Config agar error handler & panic
// tetap keluar dalam bentuk envelope.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	return FromError(c, err)
}

func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
