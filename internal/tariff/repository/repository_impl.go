package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	tariffdomain "github.com/gridbill/gridbill/internal/tariff/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() tariffdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, t *tariffdomain.Tariff) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO tariffs (id, description, amount, sort, frequency, start_date, end_date, is_active, contract_id, utility_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID,
		t.Description,
		t.Amount,
		t.Sort,
		t.Frequency,
		t.StartDate,
		t.EndDate,
		t.IsActive,
		t.ContractID,
		t.UtilityID,
		t.CreatedAt,
		t.UpdatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, t *tariffdomain.Tariff) error {
	return db.WithContext(ctx).Exec(
		`UPDATE tariffs
		 SET description = ?, amount = ?, start_date = ?, end_date = ?, is_active = ?, updated_at = ?
		 WHERE id = ?`,
		t.Description,
		t.Amount,
		t.StartDate,
		t.EndDate,
		t.IsActive,
		t.UpdatedAt,
		t.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM tariffs WHERE id = ?`,
		id,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*tariffdomain.Tariff, error) {
	var tariff tariffdomain.Tariff
	err := db.WithContext(ctx).Raw(
		`SELECT id, description, amount, sort, frequency, start_date, end_date, is_active, contract_id, utility_id, created_at, updated_at
		 FROM tariffs WHERE id = ?`,
		id,
	).Scan(&tariff).Error
	if err != nil {
		return nil, err
	}
	if tariff.ID == 0 {
		return nil, nil
	}
	return &tariff, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]tariffdomain.Tariff, error) {
	var tariffs []tariffdomain.Tariff
	err := db.WithContext(ctx).
		Model(&tariffdomain.Tariff{}).
		Order("created_at asc, id asc").
		Find(&tariffs).Error
	if err != nil {
		return nil, err
	}
	return tariffs, nil
}

func (r *repo) ListByContract(ctx context.Context, db *gorm.DB, contractID snowflake.ID) ([]tariffdomain.Tariff, error) {
	var tariffs []tariffdomain.Tariff
	err := db.WithContext(ctx).
		Model(&tariffdomain.Tariff{}).
		Where("contract_id = ?", contractID).
		Order("created_at asc, id asc").
		Find(&tariffs).Error
	if err != nil {
		return nil, err
	}
	return tariffs, nil
}

func (r *repo) ListByUtility(ctx context.Context, db *gorm.DB, utilityID snowflake.ID) ([]tariffdomain.Tariff, error) {
	var tariffs []tariffdomain.Tariff
	err := db.WithContext(ctx).
		Model(&tariffdomain.Tariff{}).
		Where("utility_id = ?", utilityID).
		Order("created_at asc, id asc").
		Find(&tariffs).Error
	if err != nil {
		return nil, err
	}
	return tariffs, nil
}
