package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/umalmyha/inquiries/internal/model"
)

type memoryInquiryRepository struct {
	mu        sync.RWMutex
	inquiries []*model.Inquiry
	byID      map[string]*model.Inquiry
}

// NewMemoryInquiryRepository builds in-process repository, content is lost on exit
func NewMemoryInquiryRepository() InquiryRepository {
	return &memoryInquiryRepository{
		inquiries: make([]*model.Inquiry, 0),
		byID:      make(map[string]*model.Inquiry),
	}
}

func (r *memoryInquiryRepository) Create(_ context.Context, i *model.Inquiry) error {
	stored := *i

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[stored.ID]; ok {
		return fmt.Errorf("inquiry with id %s already exists", stored.ID)
	}

	r.inquiries = append(r.inquiries, &stored)
	r.byID[stored.ID] = &stored
	return nil
}

func (r *memoryInquiryRepository) FindAll(_ context.Context) ([]*model.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inquiries := make([]*model.Inquiry, 0, len(r.inquiries))
	for _, i := range r.inquiries {
		c := *i
		inquiries = append(inquiries, &c)
	}
	return inquiries, nil
}

func (r *memoryInquiryRepository) FindByID(_ context.Context, id string) (*model.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, nil
	}

	c := *i
	return &c, nil
}
