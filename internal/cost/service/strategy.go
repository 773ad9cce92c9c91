package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gridbill/gridbill/internal/cost/domain"
	tariffdomain "github.com/gridbill/gridbill/internal/tariff/domain"
	utilitydomain "github.com/gridbill/gridbill/internal/utility/domain"
)

// sortBuckets maps each time/quantity-priced sort to the bucket it feeds.
// The bucket is fixed per sort; a utility's category never redirects it.
// Adding a sort means adding an entry here. Percentage tariffs are handled
// separately because they read the running bucket state.
var sortBuckets = map[tariffdomain.Sort]func(c *domain.Cost, v decimal.Decimal){
	tariffdomain.SortNormal:   func(c *domain.Cost, v decimal.Decimal) { c.StandII = c.StandII.Add(v) },
	tariffdomain.SortReduced:  func(c *domain.Cost, v decimal.Decimal) { c.StandI = c.StandI.Add(v) },
	tariffdomain.SortSingle:   func(c *domain.Cost, v decimal.Decimal) { c.Single = c.Single.Add(v) },
	tariffdomain.SortFixed:    func(c *domain.Cost, v decimal.Decimal) { c.Fixed = c.Fixed.Add(v) },
	tariffdomain.SortVariable: func(c *domain.Cost, v decimal.Decimal) { c.Variable = c.Variable.Add(v) },
	tariffdomain.SortTax:      func(c *domain.Cost, v decimal.Decimal) { c.Tax = c.Tax.Add(v) },
	tariffdomain.SortNetwork:  func(c *domain.Cost, v decimal.Decimal) { c.Network = c.Network.Add(v) },
}

// applyTariff computes one tariff's contribution over its clipped period and
// mutates the accumulator. An unknown sort or frequency is a configuration
// defect and fails the whole computation rather than dropping the tariff.
func (s *Service) applyTariff(ctx context.Context, cost *domain.Cost, tariff tariffdomain.Tariff, utility *utilitydomain.Utility, pStart, pEnd time.Time) error {
	if tariff.Sort == tariffdomain.SortPercentage {
		contribution := cost.PercentageBase().Mul(tariff.Amount).Div(oneHundred)
		cost.Discount = cost.Discount.Add(contribution)
		cost.Specification = append(cost.Specification, domain.SpecLine{
			Sort:         string(tariff.Sort),
			Description:  tariff.Description,
			Amount:       contribution.Round(2),
			PeriodStart:  pStart,
			PeriodEnd:    pEnd,
			QuantityUsed: tariff.Amount,
			Frequency:    domain.FrequencyPercent,
		})
		return nil
	}

	apply, ok := sortBuckets[tariff.Sort]
	if !ok {
		return domain.ErrUnsupportedSort
	}

	quantity, err := s.resolveQuantity(ctx, tariff, utility, pStart, pEnd)
	if err != nil {
		return err
	}

	contribution := tariff.Amount.Mul(quantity)
	apply(cost, contribution)
	cost.Specification = append(cost.Specification, domain.SpecLine{
		Sort:         string(tariff.Sort),
		Description:  tariff.Description,
		Amount:       contribution.Round(2),
		PeriodStart:  pStart,
		PeriodEnd:    pEnd,
		QuantityUsed: quantity,
		Frequency:    string(tariff.Frequency),
	})
	return nil
}
