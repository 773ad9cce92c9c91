package domain

import (
	"context"
	"errors"
)

type Service interface {
	// MonthlyUsage aggregates consumption and solar production per calendar
	// month of the given year.
	MonthlyUsage(ctx context.Context, year int) (MonthlyUsage, error)
}

var ErrInvalidYear = errors.New("invalid_year")
