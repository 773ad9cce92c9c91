package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	readingdomain "github.com/gridbill/gridbill/internal/reading/domain"
	solardomain "github.com/gridbill/gridbill/internal/solar/domain"
)

type Repository interface {
	ListUtilityIDsByCategory(ctx context.Context, db *gorm.DB, category string) ([]snowflake.ID, error)
	// ListReadingsWithin returns readings for the utilities in the unit,
	// ordered by utility then timestamp ascending.
	ListReadingsWithin(ctx context.Context, db *gorm.DB, utilityIDs []snowflake.ID, unit string, start, end time.Time) ([]readingdomain.Reading, error)
	ListSolarWithin(ctx context.Context, db *gorm.DB, start, end time.Time) ([]solardomain.SolarReading, error)
}
