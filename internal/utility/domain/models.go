// Package domain contains the utility (metered service) model.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Category tags the kind of metered service. The set is open: unknown values
// are billed as electricity (anything that is not gas meters in kWh).
type Category string

const (
	CategoryNormal  Category = "NORMAL"
	CategoryReduced Category = "REDUCED"
	CategoryGas     Category = "GAS"
	CategorySolar   Category = "SOLAR"
)

// Unit returns the physical unit this category's readings are expressed in.
func (c Category) Unit() string {
	if c == CategoryGas {
		return "m3"
	}
	return "kWh"
}

// Utility is a meter/service scoped to exactly one contract. The legacy
// start/end register fields are display-only and never feed billing.
type Utility struct {
	ID                  snowflake.ID     `gorm:"primaryKey" json:"id"`
	Category            Category         `gorm:"type:text;not null;index" json:"category"`
	Text                string           `gorm:"type:text" json:"text"`
	Description         string           `gorm:"type:text" json:"description"`
	StartReading        *decimal.Decimal `gorm:"type:numeric(10,3)" json:"start_reading,omitempty"`
	EndReading          *decimal.Decimal `gorm:"type:numeric(10,3)" json:"end_reading,omitempty"`
	StartReadingReduced *decimal.Decimal `gorm:"type:numeric(10,3)" json:"start_reading_reduced,omitempty"`
	EndReadingReduced   *decimal.Decimal `gorm:"type:numeric(10,3)" json:"end_reading_reduced,omitempty"`
	EstimatedUse        *decimal.Decimal `gorm:"type:numeric(10,3)" json:"estimated_use,omitempty"`
	ContractID          snowflake.ID     `gorm:"not null;index" json:"contract_id"`
	CreatedAt           time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time        `gorm:"not null" json:"updated_at"`
}

// TableName sets the database table name.
func (Utility) TableName() string { return "utilities" }
