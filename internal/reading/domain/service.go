package domain

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

type CreateReadingRequest struct {
	Timestamp time.Time       `json:"timestamp" validate:"required"`
	Value     decimal.Decimal `json:"value"`
	Unit      string          `json:"unit"`
	Source    string          `json:"source"`
	UtilityID string          `json:"utility_id" validate:"required"`
}

// ImportResult reports how a CSV batch went. Skipped rows never abort the
// batch; they are counted and logged.
type ImportResult struct {
	BatchID  string `json:"batch_id"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}

type Service interface {
	Create(ctx context.Context, req CreateReadingRequest) (Reading, error)
	List(ctx context.Context) ([]Reading, error)
	ListByUtility(ctx context.Context, utilityID string) ([]Reading, error)
	// ImportCSV ingests a meter export with columns
	// consumption_date,gas,stand_i,stand_ii. Each column lands on the
	// matching utility whose contract covers the row's timestamp.
	ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error)
}

var (
	ErrNotFound         = errors.New("reading_not_found")
	ErrInvalidValue     = errors.New("invalid_reading_value")
	ErrInvalidTimestamp = errors.New("invalid_reading_timestamp")
	ErrInvalidUnit      = errors.New("invalid_reading_unit")
	ErrNoMatchingMeter  = errors.New("no_matching_meter")
	ErrNonMonotonic     = errors.New("non_monotonic_reading")
)
