package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"github.com/gridbill/gridbill/internal/cost/domain"
	readingdomain "github.com/gridbill/gridbill/internal/reading/domain"
	tariffdomain "github.com/gridbill/gridbill/internal/tariff/domain"
	utilitydomain "github.com/gridbill/gridbill/internal/utility/domain"
)

var (
	daysPerMonth = decimal.NewFromInt(30)
	daysPerYear  = decimal.NewFromInt(365)
	oneHundred   = decimal.NewFromInt(100)
)

// periodDays counts whole days in [start, end). Periods are date granular;
// a partial trailing day does not bill.
func periodDays(start, end time.Time) decimal.Decimal {
	return decimal.NewFromInt(int64(end.Sub(start) / (24 * time.Hour)))
}

// resolveQuantity derives the figure a tariff's amount multiplies with.
// Time frequencies come from the calendar length of the clipped period with
// fixed 30-day months and 365-day years. Metered frequencies come from
// reading deltas.
func (s *Service) resolveQuantity(ctx context.Context, tariff tariffdomain.Tariff, utility *utilitydomain.Utility, start, end time.Time) (decimal.Decimal, error) {
	switch tariff.Frequency {
	case tariffdomain.FrequencyDay:
		return periodDays(start, end), nil
	case tariffdomain.FrequencyMonth:
		return periodDays(start, end).Div(daysPerMonth), nil
	case tariffdomain.FrequencyYear:
		return periodDays(start, end).Div(daysPerYear), nil
	case tariffdomain.FrequencyM3:
		return s.meteredUsage(ctx, tariff, utility, readingdomain.UnitM3, start, end)
	case tariffdomain.FrequencyKWH:
		return s.meteredUsage(ctx, tariff, utility, readingdomain.UnitKWH, start, end)
	default:
		return decimal.Zero, domain.ErrUnsupportedFrequency
	}
}

// meteredUsage resolves counter-delta usage in the given unit. Contract
// scoped tariffs sum across every utility of the contract whose category
// meters in that unit.
func (s *Service) meteredUsage(ctx context.Context, tariff tariffdomain.Tariff, utility *utilitydomain.Utility, unit string, start, end time.Time) (decimal.Decimal, error) {
	if tariff.ContractScoped() {
		utilities, err := s.repo.ListUtilitiesByContract(ctx, s.db, *tariff.ContractID)
		if err != nil {
			return decimal.Zero, err
		}
		total := decimal.Zero
		for _, u := range utilities {
			if u.Category.Unit() != unit {
				continue
			}
			delta, err := s.utilityDelta(ctx, u.ID, unit, start, end)
			if err != nil {
				return decimal.Zero, err
			}
			total = total.Add(delta)
		}
		return total, nil
	}

	if utility.Category.Unit() != unit {
		return decimal.Zero, nil
	}
	return s.utilityDelta(ctx, utility.ID, unit, start, end)
}

// utilityDelta is final minus baseline over [start, end). The baseline is the
// latest reading before start, falling back to the earliest reading inside
// the window. Missing data means zero usage, never an error; negative deltas
// (meter resets, corrections) clamp to zero.
func (s *Service) utilityDelta(ctx context.Context, utilityID snowflake.ID, unit string, start, end time.Time) (decimal.Decimal, error) {
	final, err := s.repo.LatestReadingBefore(ctx, s.db, utilityID, unit, end)
	if err != nil {
		return decimal.Zero, err
	}
	if final == nil {
		return decimal.Zero, nil
	}

	baseline, err := s.repo.LatestReadingBefore(ctx, s.db, utilityID, unit, start)
	if err != nil {
		return decimal.Zero, err
	}
	if baseline == nil {
		baseline, err = s.repo.EarliestReadingWithin(ctx, s.db, utilityID, unit, start, end)
		if err != nil {
			return decimal.Zero, err
		}
	}
	if baseline == nil {
		return decimal.Zero, nil
	}

	usage := final.Sub(*baseline)
	if usage.IsNegative() {
		return decimal.Zero, nil
	}
	return usage, nil
}
