package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, reading *Reading) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Reading, error)
	List(ctx context.Context, db *gorm.DB) ([]Reading, error)
	ListByUtility(ctx context.Context, db *gorm.DB, utilityID snowflake.ID) ([]Reading, error)
	// LatestBefore returns the newest reading with timestamp < before, or nil.
	LatestBefore(ctx context.Context, db *gorm.DB, utilityID snowflake.ID, unit string, before time.Time) (*Reading, error)
	// ResolveUtilityAt finds the utility of the given category whose contract
	// window covers the instant, or 0 when none matches.
	ResolveUtilityAt(ctx context.Context, db *gorm.DB, category string, at time.Time) (snowflake.ID, error)
}
