package dto

import "mime/multipart"

type FeedRequest struct {
	Message string                `json:"message" form:"message" validate:"required"`
	Image   *multipart.FileHeader `json:"-" form:"-"`
}
