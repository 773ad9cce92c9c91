package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	tariffdomain "github.com/gridbill/gridbill/internal/tariff/domain"
	utilitydomain "github.com/gridbill/gridbill/internal/utility/domain"
)

// Repository is the engine's read-only view of the billing graph.
type Repository interface {
	GetUtility(ctx context.Context, db *gorm.DB, id snowflake.ID) (*utilitydomain.Utility, error)
	ListUtilitiesByContract(ctx context.Context, db *gorm.DB, contractID snowflake.ID) ([]utilitydomain.Utility, error)
	// ListActiveUtilityTariffs returns active tariffs scoped to the utility,
	// in insertion order.
	ListActiveUtilityTariffs(ctx context.Context, db *gorm.DB, utilityID snowflake.ID) ([]tariffdomain.Tariff, error)
	// ListActiveContractTariffs returns active tariffs scoped to the whole
	// contract, in insertion order.
	ListActiveContractTariffs(ctx context.Context, db *gorm.DB, contractID snowflake.ID) ([]tariffdomain.Tariff, error)
	// LatestReadingBefore returns the value of the newest reading with
	// timestamp < before, or nil when there is none.
	LatestReadingBefore(ctx context.Context, db *gorm.DB, utilityID snowflake.ID, unit string, before time.Time) (*decimal.Decimal, error)
	// EarliestReadingWithin returns the value of the oldest reading with
	// start <= timestamp < end, or nil when there is none.
	EarliestReadingWithin(ctx context.Context, db *gorm.DB, utilityID snowflake.ID, unit string, start, end time.Time) (*decimal.Decimal, error)
}
