// Package domain contains the cost computation result types. A Cost is built
// fresh per request and never persisted.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FrequencyPercent marks specification lines produced by percentage tariffs,
// which are not period or quantity priced.
const FrequencyPercent = "PERCENT"

// SpecLine records one tariff actually applied: its clipped period, the
// quantity it was billed over and its rounded monetary contribution. For
// percentage tariffs QuantityUsed carries the raw percentage.
type SpecLine struct {
	Sort         string          `json:"sort"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"tariff_cost"`
	PeriodStart  time.Time       `json:"start_date"`
	PeriodEnd    time.Time       `json:"end_date"`
	QuantityUsed decimal.Decimal `json:"amount_used"`
	Frequency    string          `json:"frequency"`
}

// Cost accumulates tariff contributions into nine named buckets plus an
// ordered specification log. StandI is the reduced (night) electricity
// bucket, StandII the normal (day) one; the names are historical.
type Cost struct {
	Gas           decimal.Decimal `json:"gas"`
	StandI        decimal.Decimal `json:"stand_i"`
	StandII       decimal.Decimal `json:"stand_ii"`
	Single        decimal.Decimal `json:"single"`
	Fixed         decimal.Decimal `json:"fixed"`
	Variable      decimal.Decimal `json:"variable"`
	Tax           decimal.Decimal `json:"tax"`
	Network       decimal.Decimal `json:"network"`
	Discount      decimal.Decimal `json:"discount"`
	Specification []SpecLine      `json:"tariff_specification"`
}

// Total sums all nine buckets rounded to 2 decimals.
func (c Cost) Total() decimal.Decimal {
	return c.Gas.
		Add(c.StandI).
		Add(c.StandII).
		Add(c.Single).
		Add(c.Fixed).
		Add(c.Variable).
		Add(c.Tax).
		Add(c.Network).
		Add(c.Discount).
		Round(2)
}

// PercentageBase is the running subtotal a percentage tariff applies to:
// everything accumulated so far except tax, network and prior discounts.
func (c Cost) PercentageBase() decimal.Decimal {
	return c.Gas.
		Add(c.StandI).
		Add(c.StandII).
		Add(c.Single).
		Add(c.Fixed).
		Add(c.Variable)
}
