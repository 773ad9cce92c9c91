package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type CreateContractRequest struct {
	Name           string          `json:"name" validate:"required,min=1"`
	Description    string          `json:"description"`
	StartDate      time.Time       `json:"start_date" validate:"required"`
	EndDate        time.Time       `json:"end_date" validate:"required"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	SettlementPDF  string          `json:"settlement_pdf"`
	ContractPDF    string          `json:"contract_pdf"`
	SupplierID     string          `json:"supplier_id" validate:"required"`
}

type UpdateContractRequest struct {
	ID             string           `json:"-"`
	Name           *string          `json:"name,omitempty"`
	Description    *string          `json:"description,omitempty"`
	MonthlyPayment *decimal.Decimal `json:"monthly_payment,omitempty"`
	SettlementPDF  *string          `json:"settlement_pdf,omitempty"`
	ContractPDF    *string          `json:"contract_pdf,omitempty"`
}

type Service interface {
	Create(ctx context.Context, req CreateContractRequest) (Contract, error)
	Update(ctx context.Context, req UpdateContractRequest) (Contract, error)
	GetByID(ctx context.Context, id string) (Contract, error)
	List(ctx context.Context) ([]Contract, error)
}

var (
	ErrNotFound      = errors.New("contract_not_found")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidWindow = errors.New("invalid_window")
	ErrInvalidID     = errors.New("invalid_contract_id")
)
