package server

import (
	"github.com/shopspring/decimal"

	costdomain "github.com/gridbill/gridbill/internal/cost/domain"
)

// costResponse presents a Cost with every bucket rounded to 2 decimals.
// Rounding happens only here; the engine keeps full precision internally.
type costResponse struct {
	Gas           decimal.Decimal       `json:"gas"`
	StandI        decimal.Decimal       `json:"stand_i"`
	StandII       decimal.Decimal       `json:"stand_ii"`
	Single        decimal.Decimal       `json:"single"`
	Fixed         decimal.Decimal       `json:"fixed"`
	Variable      decimal.Decimal       `json:"variable"`
	Tax           decimal.Decimal       `json:"tax"`
	Network       decimal.Decimal       `json:"network"`
	Discount      decimal.Decimal       `json:"discount"`
	Total         decimal.Decimal       `json:"total"`
	Specification []costdomain.SpecLine `json:"tariff_specification"`
}

func newCostResponse(c costdomain.Cost) costResponse {
	return costResponse{
		Gas:           c.Gas.Round(2),
		StandI:        c.StandI.Round(2),
		StandII:       c.StandII.Round(2),
		Single:        c.Single.Round(2),
		Fixed:         c.Fixed.Round(2),
		Variable:      c.Variable.Round(2),
		Tax:           c.Tax.Round(2),
		Network:       c.Network.Round(2),
		Discount:      c.Discount.Round(2),
		Total:         c.Total(),
		Specification: c.Specification,
	}
}
