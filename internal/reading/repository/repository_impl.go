package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	readingdomain "github.com/gridbill/gridbill/internal/reading/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() readingdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, reading *readingdomain.Reading) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO readings (id, timestamp, value, unit, source, utility_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		reading.ID,
		reading.Timestamp,
		reading.Value,
		reading.Unit,
		reading.Source,
		reading.UtilityID,
		reading.CreatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*readingdomain.Reading, error) {
	var reading readingdomain.Reading
	err := db.WithContext(ctx).Raw(
		`SELECT id, timestamp, value, unit, source, utility_id, created_at
		 FROM readings WHERE id = ?`,
		id,
	).Scan(&reading).Error
	if err != nil {
		return nil, err
	}
	if reading.ID == 0 {
		return nil, nil
	}
	return &reading, nil
}

func (r *repo) ResolveUtilityAt(ctx context.Context, db *gorm.DB, category string, at time.Time) (snowflake.ID, error) {
	var utilityID snowflake.ID
	err := db.WithContext(ctx).Raw(
		`SELECT u.id FROM utilities u
		 JOIN contracts c ON c.id = u.contract_id
		 WHERE u.category = ? AND c.start_date <= ? AND c.end_date >= ?
		 ORDER BY u.id ASC LIMIT 1`,
		category,
		at,
		at,
	).Scan(&utilityID).Error
	if err != nil {
		return 0, err
	}
	return utilityID, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]readingdomain.Reading, error) {
	var readings []readingdomain.Reading
	err := db.WithContext(ctx).
		Model(&readingdomain.Reading{}).
		Order("timestamp asc, id asc").
		Find(&readings).Error
	if err != nil {
		return nil, err
	}
	return readings, nil
}

func (r *repo) ListByUtility(ctx context.Context, db *gorm.DB, utilityID snowflake.ID) ([]readingdomain.Reading, error) {
	var readings []readingdomain.Reading
	err := db.WithContext(ctx).
		Model(&readingdomain.Reading{}).
		Where("utility_id = ?", utilityID).
		Order("timestamp asc, id asc").
		Find(&readings).Error
	if err != nil {
		return nil, err
	}
	return readings, nil
}

func (r *repo) LatestBefore(ctx context.Context, db *gorm.DB, utilityID snowflake.ID, unit string, before time.Time) (*readingdomain.Reading, error) {
	var reading readingdomain.Reading
	query := db.WithContext(ctx).
		Model(&readingdomain.Reading{}).
		Where("utility_id = ? AND timestamp < ?", utilityID, before)
	if unit != "" {
		query = query.Where("unit = ?", unit)
	}
	err := query.Order("timestamp desc, id desc").Limit(1).Find(&reading).Error
	if err != nil {
		return nil, err
	}
	if reading.ID == 0 {
		return nil, nil
	}
	return &reading, nil
}
