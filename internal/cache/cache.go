package cache

import (
	"context"

	"github.com/umalmyha/inquiries/internal/model"
)

// InquiryCache keeps recently read inquiries. FindByID returns nil inquiry without error on cache miss.
type InquiryCache interface {
	FindByID(context.Context, string) (*model.Inquiry, error)
	Create(context.Context, *model.Inquiry) error
}
