// Package domain contains the tariff model: a priced rule scoped to either a
// contract or a single utility, never both.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Sort is the category of a priced rule. It determines which cost bucket the
// rule feeds and how its amount combines with quantity.
type Sort string

const (
	SortNormal     Sort = "NORMAL"
	SortReduced    Sort = "REDUCED"
	SortSingle     Sort = "SINGLE"
	SortFixed      Sort = "FIXED"
	SortVariable   Sort = "VARIABLE"
	SortTax        Sort = "TAX"
	SortNetwork    Sort = "NETWORK"
	SortPercentage Sort = "PERCENTAGE"
)

// Frequency is the unit a tariff's amount is priced per.
type Frequency string

const (
	FrequencyDay   Frequency = "DAY"
	FrequencyMonth Frequency = "MONTH"
	FrequencyYear  Frequency = "YEAR"
	FrequencyM3    Frequency = "M3"
	FrequencyKWH   Frequency = "KWH"
)

// Tariff prices one rule. Amount carries up to 4 decimals; negative amounts
// are rebates. The validity window is inclusive on both ends and open-ended
// where a bound is absent.
type Tariff struct {
	ID          snowflake.ID    `gorm:"primaryKey" json:"id"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,4);not null" json:"amount"`
	Sort        Sort            `gorm:"type:text;not null" json:"tariff_sort"`
	Frequency   Frequency       `gorm:"type:text;not null" json:"frequency"`
	StartDate   *time.Time      `gorm:"type:date" json:"start_date,omitempty"`
	EndDate     *time.Time      `gorm:"type:date" json:"end_date,omitempty"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
	ContractID  *snowflake.ID   `gorm:"index" json:"contract_id,omitempty"`
	UtilityID   *snowflake.ID   `gorm:"index" json:"utility_id,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName sets the database table name.
func (Tariff) TableName() string { return "tariffs" }

// ValidateScope enforces that exactly one of contract or utility is set.
func (t Tariff) ValidateScope() error {
	hasContract := t.ContractID != nil && *t.ContractID != 0
	hasUtility := t.UtilityID != nil && *t.UtilityID != 0
	if hasContract == hasUtility {
		return ErrScopeViolation
	}
	return nil
}

// ContractScoped reports whether the tariff applies to a whole contract.
func (t Tariff) ContractScoped() bool {
	return t.ContractID != nil && *t.ContractID != 0
}
