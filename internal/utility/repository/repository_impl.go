package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	utilitydomain "github.com/gridbill/gridbill/internal/utility/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() utilitydomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, u *utilitydomain.Utility) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO utilities (id, category, text, description, start_reading, end_reading, start_reading_reduced, end_reading_reduced, estimated_use, contract_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Category,
		u.Text,
		u.Description,
		u.StartReading,
		u.EndReading,
		u.StartReadingReduced,
		u.EndReadingReduced,
		u.EstimatedUse,
		u.ContractID,
		u.CreatedAt,
		u.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*utilitydomain.Utility, error) {
	var utility utilitydomain.Utility
	err := db.WithContext(ctx).Raw(
		`SELECT id, category, text, description, start_reading, end_reading, start_reading_reduced, end_reading_reduced, estimated_use, contract_id, created_at, updated_at
		 FROM utilities WHERE id = ?`,
		id,
	).Scan(&utility).Error
	if err != nil {
		return nil, err
	}
	if utility.ID == 0 {
		return nil, nil
	}
	return &utility, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]utilitydomain.Utility, error) {
	var utilities []utilitydomain.Utility
	err := db.WithContext(ctx).
		Model(&utilitydomain.Utility{}).
		Order("category asc, id asc").
		Find(&utilities).Error
	if err != nil {
		return nil, err
	}
	return utilities, nil
}

func (r *repo) ListByContract(ctx context.Context, db *gorm.DB, contractID snowflake.ID) ([]utilitydomain.Utility, error) {
	var utilities []utilitydomain.Utility
	err := db.WithContext(ctx).
		Model(&utilitydomain.Utility{}).
		Where("contract_id = ?", contractID).
		Order("category asc, id asc").
		Find(&utilities).Error
	if err != nil {
		return nil, err
	}
	return utilities, nil
}
