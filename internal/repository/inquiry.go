package repository

import (
	"context"

	"github.com/umalmyha/inquiries/internal/model"
)

// InquiryRepository persists inquiries. FindByID returns nil inquiry without error if nothing found.
type InquiryRepository interface {
	Create(context.Context, *model.Inquiry) error
	FindAll(context.Context) ([]*model.Inquiry, error)
	FindByID(context.Context, string) (*model.Inquiry, error)
}
