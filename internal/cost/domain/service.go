package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	// Compute bills the utility over [start, end). Contract-scoped tariffs
	// of the utility's contract are included unless disabled.
	Compute(ctx context.Context, utilityID string, start, end time.Time, includeContractTariffs bool) (Cost, error)
}

var (
	ErrUnsupportedSort      = errors.New("unsupported_tariff_sort")
	ErrUnsupportedFrequency = errors.New("unsupported_tariff_frequency")
)
