package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	supplierdomain "github.com/gridbill/gridbill/internal/supplier/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() supplierdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, s *supplierdomain.Supplier) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO suppliers (id, name, address, client_number, monthly_payment, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID,
		s.Name,
		s.Address,
		s.ClientNumber,
		s.MonthlyPayment,
		s.CreatedAt,
		s.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*supplierdomain.Supplier, error) {
	var supplier supplierdomain.Supplier
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, address, client_number, monthly_payment, created_at, updated_at
		 FROM suppliers WHERE id = ?`,
		id,
	).Scan(&supplier).Error
	if err != nil {
		return nil, err
	}
	if supplier.ID == 0 {
		return nil, nil
	}
	return &supplier, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]supplierdomain.Supplier, error) {
	var suppliers []supplierdomain.Supplier
	err := db.WithContext(ctx).
		Model(&supplierdomain.Supplier{}).
		Order("created_at asc, id asc").
		Find(&suppliers).Error
	if err != nil {
		return nil, err
	}
	return suppliers, nil
}
