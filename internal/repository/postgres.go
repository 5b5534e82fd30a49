package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/umalmyha/inquiries/internal/model"
)

type postgresInquiryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresInquiryRepository builds repository on top of inquiries table
func NewPostgresInquiryRepository(p *pgxpool.Pool) InquiryRepository {
	return &postgresInquiryRepository{pool: p}
}

func (r *postgresInquiryRepository) Create(ctx context.Context, i *model.Inquiry) error {
	q := `INSERT INTO inquiries(id, first_name, last_name, email, company, inquiry_type, message, created_at)
		  VALUES($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := r.pool.Exec(ctx, q, i.ID, i.FirstName, i.LastName, i.Email, i.Company, string(i.InquiryType), i.Message, i.CreatedAt); err != nil {
		return err
	}
	return nil
}

func (r *postgresInquiryRepository) FindAll(ctx context.Context) ([]*model.Inquiry, error) {
	q := `SELECT id, first_name, last_name, email, company, inquiry_type, message, created_at
		  FROM inquiries ORDER BY seq`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inquiries := make([]*model.Inquiry, 0)
	for rows.Next() {
		i, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *postgresInquiryRepository) FindByID(ctx context.Context, id string) (*model.Inquiry, error) {
	q := `SELECT id, first_name, last_name, email, company, inquiry_type, message, created_at
		  FROM inquiries WHERE id = $1`

	i, err := r.scanRow(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return i, nil
}

func (r *postgresInquiryRepository) scanRow(row pgx.Row) (*model.Inquiry, error) {
	var i model.Inquiry
	var inquiryType string
	if err := row.Scan(&i.ID, &i.FirstName, &i.LastName, &i.Email, &i.Company, &inquiryType, &i.Message, &i.CreatedAt); err != nil {
		return nil, err
	}

	i.InquiryType = model.InquiryType(inquiryType)
	i.CreatedAt = i.CreatedAt.UTC()
	return &i, nil
}
