// Package domain contains the solar production sample model. Unlike meter
// readings these are per-day production figures, not counter values.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// SolarReading is one panel's production for one day.
type SolarReading struct {
	ID             snowflake.ID    `gorm:"primaryKey" json:"id"`
	ProductionDate time.Time       `gorm:"type:date;not null;index" json:"production_date"`
	PanelSerialNbr string          `gorm:"type:text;not null;index" json:"panel_serial_nbr"`
	EnergyProduced decimal.Decimal `gorm:"type:numeric(10,3);not null" json:"energy_produced"`
	Unit           string          `gorm:"type:text;not null;default:kWh" json:"unit"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
}

// TableName sets the database table name.
func (SolarReading) TableName() string { return "solar_readings" }
