// Package domain contains the monthly usage series returned by the
// analytics endpoints.
package domain

import "github.com/shopspring/decimal"

// MonthLabels are the fixed chart labels, January first.
var MonthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthlyUsage holds one calendar year of consumption per class, twelve
// slots per series. StandI is reduced (night) electricity and StandII normal
// (day) electricity, matching the cost bucket naming.
type MonthlyUsage struct {
	Labels  []string          `json:"labels"`
	Gas     []decimal.Decimal `json:"gas"`
	StandI  []decimal.Decimal `json:"stand_i"`
	StandII []decimal.Decimal `json:"stand_ii"`
	Solar   []decimal.Decimal `json:"solar"`
}

func zeroSeries() []decimal.Decimal {
	series := make([]decimal.Decimal, 12)
	for i := range series {
		series[i] = decimal.Zero
	}
	return series
}

// NewMonthlyUsage returns an all-zero series set.
func NewMonthlyUsage() MonthlyUsage {
	return MonthlyUsage{
		Labels:  MonthLabels,
		Gas:     zeroSeries(),
		StandI:  zeroSeries(),
		StandII: zeroSeries(),
		Solar:   zeroSeries(),
	}
}
