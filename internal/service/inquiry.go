package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/inquiries/internal/cache"
	apperrors "github.com/umalmyha/inquiries/internal/errors"
	"github.com/umalmyha/inquiries/internal/metrics"
	"github.com/umalmyha/inquiries/internal/model"
	"github.com/umalmyha/inquiries/internal/repository"
)

// InquiryService is a store of submitted inquiries
type InquiryService interface {
	Create(context.Context, *model.NewInquiry) (*model.Inquiry, error)
	FindAll(context.Context) ([]*model.Inquiry, error)
	FindByID(context.Context, string) (*model.Inquiry, error)
}

type inquiryService struct {
	inquiryRps   repository.InquiryRepository
	inquiryCache cache.InquiryCache
	now          func() time.Time
}

// NewInquiryService builds InquiryService, inquiryCache is optional and can be nil
func NewInquiryService(inquiryRps repository.InquiryRepository, inquiryCache cache.InquiryCache) InquiryService {
	return &inquiryService{
		inquiryRps:   inquiryRps,
		inquiryCache: inquiryCache,
		now:          time.Now,
	}
}

func (s *inquiryService) Create(ctx context.Context, ni *model.NewInquiry) (*model.Inquiry, error) {
	i := &model.Inquiry{
		ID:          uuid.NewString(),
		FirstName:   ni.FirstName,
		LastName:    ni.LastName,
		Email:       ni.Email,
		Company:     ni.Company,
		InquiryType: ni.InquiryType,
		Message:     ni.Message,
		CreatedAt:   s.now().UTC().Truncate(time.Millisecond),
	}

	if err := s.inquiryRps.Create(ctx, i); err != nil {
		return nil, apperrors.NewStorageErr("create inquiry", err)
	}

	metrics.RecordInquiry(string(i.InquiryType))
	return i, nil
}

func (s *inquiryService) FindAll(ctx context.Context) ([]*model.Inquiry, error) {
	inquiries, err := s.inquiryRps.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageErr("read inquiries", err)
	}

	if inquiries == nil {
		inquiries = make([]*model.Inquiry, 0)
	}
	return inquiries, nil
}

func (s *inquiryService) FindByID(ctx context.Context, id string) (*model.Inquiry, error) {
	if s.inquiryCache != nil {
		cached, err := s.inquiryCache.FindByID(ctx, id)
		if err != nil {
			logrus.Warnf("failed to read inquiry %s from cache - %v", id, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	i, err := s.inquiryRps.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewStorageErr("read inquiry", err)
	}

	if i != nil && s.inquiryCache != nil {
		if err := s.inquiryCache.Create(ctx, i); err != nil {
			logrus.Warnf("failed to cache inquiry %s - %v", id, err)
		}
	}
	return i, nil
}
