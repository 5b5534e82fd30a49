package repository

import (
	"context"
	"errors"

	"github.com/umalmyha/inquiries/internal/model"
	"gorm.io/gorm"
)

type sqliteInquiryRepository struct {
	db *gorm.DB
}

// NewSqliteInquiryRepository builds file-backed repository, db must be migrated for model.Inquiry
func NewSqliteInquiryRepository(db *gorm.DB) InquiryRepository {
	return &sqliteInquiryRepository{db: db}
}

func (r *sqliteInquiryRepository) Create(ctx context.Context, i *model.Inquiry) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *sqliteInquiryRepository) FindAll(ctx context.Context) ([]*model.Inquiry, error) {
	inquiries := make([]*model.Inquiry, 0)
	if err := r.db.WithContext(ctx).Order("rowid").Find(&inquiries).Error; err != nil {
		return nil, err
	}

	for _, i := range inquiries {
		i.CreatedAt = i.CreatedAt.UTC()
	}
	return inquiries, nil
}

func (r *sqliteInquiryRepository) FindByID(ctx context.Context, id string) (*model.Inquiry, error) {
	var i model.Inquiry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&i).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	i.CreatedAt = i.CreatedAt.UTC()
	return &i, nil
}
