package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	analyticsdomain "github.com/gridbill/gridbill/internal/analytics/domain"
	readingdomain "github.com/gridbill/gridbill/internal/reading/domain"
	solardomain "github.com/gridbill/gridbill/internal/solar/domain"
)

type analyticsRepository struct{}

func Provide() analyticsdomain.Repository {
	return &analyticsRepository{}
}

func (r *analyticsRepository) ListUtilityIDsByCategory(ctx context.Context, db *gorm.DB, category string) ([]snowflake.ID, error) {
	var ids []snowflake.ID
	err := db.WithContext(ctx).Raw(`
		SELECT id FROM utilities WHERE category = ? ORDER BY id ASC
	`, category).Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *analyticsRepository) ListReadingsWithin(ctx context.Context, db *gorm.DB, utilityIDs []snowflake.ID, unit string, start, end time.Time) ([]readingdomain.Reading, error) {
	if len(utilityIDs) == 0 {
		return nil, nil
	}
	var readings []readingdomain.Reading
	err := db.WithContext(ctx).Raw(`
		SELECT * FROM readings
		WHERE utility_id IN ? AND unit = ? AND timestamp >= ? AND timestamp < ?
		ORDER BY utility_id ASC, timestamp ASC
	`, utilityIDs, unit, start, end).Scan(&readings).Error
	if err != nil {
		return nil, err
	}
	return readings, nil
}

func (r *analyticsRepository) ListSolarWithin(ctx context.Context, db *gorm.DB, start, end time.Time) ([]solardomain.SolarReading, error) {
	var readings []solardomain.SolarReading
	err := db.WithContext(ctx).Raw(`
		SELECT * FROM solar_readings
		WHERE production_date >= ? AND production_date < ?
		ORDER BY production_date ASC
	`, start, end).Scan(&readings).Error
	if err != nil {
		return nil, err
	}
	return readings, nil
}
