package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

type CreateSupplierRequest struct {
	Name           string          `json:"name" validate:"required,min=1"`
	Address        string          `json:"address"`
	ClientNumber   string          `json:"client_number"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
}

type Service interface {
	Create(ctx context.Context, req CreateSupplierRequest) (Supplier, error)
	GetByID(ctx context.Context, id string) (Supplier, error)
	List(ctx context.Context) ([]Supplier, error)
}

var (
	ErrNotFound    = errors.New("supplier_not_found")
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidID   = errors.New("invalid_supplier_id")
)
