// Package domain contains the contract model and the supplier-exclusivity rules.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Contract is a supply agreement with a supplier. Validity dates are inclusive
// on both ends; per supplier no two contract windows may overlap.
type Contract struct {
	ID             snowflake.ID    `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"type:text;not null" json:"name"`
	Description    string          `gorm:"type:text" json:"description"`
	StartDate      time.Time       `gorm:"type:date;not null" json:"start_date"`
	EndDate        time.Time       `gorm:"type:date;not null" json:"end_date"`
	MonthlyPayment decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"monthly_payment"`
	SettlementPDF  string          `gorm:"type:text" json:"settlement_pdf"`
	ContractPDF    string          `gorm:"type:text" json:"contract_pdf"`
	SupplierID     snowflake.ID    `gorm:"not null;index" json:"supplier_id"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName sets the database table name.
func (Contract) TableName() string { return "contracts" }

func (c Contract) Window() Window {
	return Window{Start: c.StartDate, End: c.EndDate}
}
