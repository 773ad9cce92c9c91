// Package domain contains the meter reading model. Readings are raw counter
// samples; they are appended by manual entry or import and never deleted.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

const (
	UnitKWH = "kWh"
	UnitM3  = "m3"

	SourceManual = "manual"
	SourceImport = "import"
	SourceSolar  = "solar-aggregate"
)

// Reading is a timestamped counter sample for a utility. Values are expected
// to be non-decreasing but consumers must tolerate corrections and meter
// swaps.
type Reading struct {
	ID        snowflake.ID    `gorm:"primaryKey" json:"id"`
	Timestamp time.Time       `gorm:"not null;index" json:"timestamp"`
	Value     decimal.Decimal `gorm:"type:numeric(10,3);not null" json:"value"`
	Unit      string          `gorm:"type:text;not null;default:kWh" json:"unit"`
	Source    string          `gorm:"type:text;not null;default:manual" json:"source"`
	UtilityID snowflake.ID    `gorm:"not null;index" json:"utility_id"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
}

// TableName sets the database table name.
func (Reading) TableName() string { return "readings" }
