package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	costdomain "github.com/gridbill/gridbill/internal/cost/domain"
	tariffdomain "github.com/gridbill/gridbill/internal/tariff/domain"
	utilitydomain "github.com/gridbill/gridbill/internal/utility/domain"
)

type costRepository struct{}

func Provide() costdomain.Repository {
	return &costRepository{}
}

func (r *costRepository) GetUtility(ctx context.Context, db *gorm.DB, id snowflake.ID) (*utilitydomain.Utility, error) {
	var utility utilitydomain.Utility
	err := db.WithContext(ctx).Raw(`
		SELECT * FROM utilities WHERE id = ? LIMIT 1
	`, id).Scan(&utility).Error
	if err != nil {
		return nil, err
	}
	if utility.ID == 0 {
		return nil, nil
	}
	return &utility, nil
}

func (r *costRepository) ListUtilitiesByContract(ctx context.Context, db *gorm.DB, contractID snowflake.ID) ([]utilitydomain.Utility, error) {
	var utilities []utilitydomain.Utility
	err := db.WithContext(ctx).Raw(`
		SELECT * FROM utilities WHERE contract_id = ? ORDER BY id ASC
	`, contractID).Scan(&utilities).Error
	if err != nil {
		return nil, err
	}
	return utilities, nil
}

func (r *costRepository) ListActiveUtilityTariffs(ctx context.Context, db *gorm.DB, utilityID snowflake.ID) ([]tariffdomain.Tariff, error) {
	var tariffs []tariffdomain.Tariff
	err := db.WithContext(ctx).Raw(`
		SELECT * FROM tariffs WHERE is_active = ? AND utility_id = ? ORDER BY id ASC
	`, true, utilityID).Scan(&tariffs).Error
	if err != nil {
		return nil, err
	}
	return tariffs, nil
}

func (r *costRepository) ListActiveContractTariffs(ctx context.Context, db *gorm.DB, contractID snowflake.ID) ([]tariffdomain.Tariff, error) {
	var tariffs []tariffdomain.Tariff
	err := db.WithContext(ctx).Raw(`
		SELECT * FROM tariffs WHERE is_active = ? AND contract_id = ? AND utility_id IS NULL ORDER BY id ASC
	`, true, contractID).Scan(&tariffs).Error
	if err != nil {
		return nil, err
	}
	return tariffs, nil
}

func (r *costRepository) LatestReadingBefore(ctx context.Context, db *gorm.DB, utilityID snowflake.ID, unit string, before time.Time) (*decimal.Decimal, error) {
	var values []decimal.Decimal
	err := db.WithContext(ctx).Raw(`
		SELECT value FROM readings
		WHERE utility_id = ? AND unit = ? AND timestamp < ?
		ORDER BY timestamp DESC
		LIMIT 1
	`, utilityID, unit, before).Scan(&values).Error
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}
	return &values[0], nil
}

func (r *costRepository) EarliestReadingWithin(ctx context.Context, db *gorm.DB, utilityID snowflake.ID, unit string, start, end time.Time) (*decimal.Decimal, error) {
	var values []decimal.Decimal
	err := db.WithContext(ctx).Raw(`
		SELECT value FROM readings
		WHERE utility_id = ? AND unit = ? AND timestamp >= ? AND timestamp < ?
		ORDER BY timestamp ASC
		LIMIT 1
	`, utilityID, unit, start, end).Scan(&values).Error
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}
	return &values[0], nil
}
