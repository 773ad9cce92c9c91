package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	contractdomain "github.com/gridbill/gridbill/internal/contract/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() contractdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, c *contractdomain.Contract) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO contracts (id, name, description, start_date, end_date, monthly_payment, settlement_pdf, contract_pdf, supplier_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID,
		c.Name,
		c.Description,
		c.StartDate,
		c.EndDate,
		c.MonthlyPayment,
		c.SettlementPDF,
		c.ContractPDF,
		c.SupplierID,
		c.CreatedAt,
		c.UpdatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, c *contractdomain.Contract) error {
	return db.WithContext(ctx).Exec(
		`UPDATE contracts
		 SET name = ?, description = ?, monthly_payment = ?, settlement_pdf = ?, contract_pdf = ?, updated_at = ?
		 WHERE id = ?`,
		c.Name,
		c.Description,
		c.MonthlyPayment,
		c.SettlementPDF,
		c.ContractPDF,
		c.UpdatedAt,
		c.ID,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*contractdomain.Contract, error) {
	var contract contractdomain.Contract
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, description, start_date, end_date, monthly_payment, settlement_pdf, contract_pdf, supplier_id, created_at, updated_at
		 FROM contracts WHERE id = ?`,
		id,
	).Scan(&contract).Error
	if err != nil {
		return nil, err
	}
	if contract.ID == 0 {
		return nil, nil
	}
	return &contract, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]contractdomain.Contract, error) {
	var contracts []contractdomain.Contract
	err := db.WithContext(ctx).
		Model(&contractdomain.Contract{}).
		Order("start_date asc, id asc").
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *repo) ListBySupplier(ctx context.Context, db *gorm.DB, supplierID snowflake.ID) ([]contractdomain.Contract, error) {
	var contracts []contractdomain.Contract
	err := db.WithContext(ctx).
		Model(&contractdomain.Contract{}).
		Where("supplier_id = ?", supplierID).
		Order("start_date asc, id asc").
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}
