// Package domain contains the supplier model and contracts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Supplier is an energy company a contract is held with.
type Supplier struct {
	ID             snowflake.ID    `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"type:text;not null" json:"name"`
	Address        string          `gorm:"type:text" json:"address"`
	ClientNumber   string          `gorm:"type:text" json:"client_number"`
	MonthlyPayment decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"monthly_payment"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName sets the database table name.
func (Supplier) TableName() string { return "suppliers" }
