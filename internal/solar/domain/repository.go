package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, reading *SolarReading) error
	List(ctx context.Context, db *gorm.DB) ([]SolarReading, error)
}
