package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

type CreateUtilityRequest struct {
	Category     string           `json:"category" validate:"required,min=1"`
	Text         string           `json:"text"`
	Description  string           `json:"description"`
	EstimatedUse *decimal.Decimal `json:"estimated_use,omitempty"`
	ContractID   string           `json:"contract_id" validate:"required"`
}

type Service interface {
	Create(ctx context.Context, req CreateUtilityRequest) (Utility, error)
	GetByID(ctx context.Context, id string) (Utility, error)
	List(ctx context.Context) ([]Utility, error)
	ListByContract(ctx context.Context, contractID string) ([]Utility, error)
}

var (
	ErrNotFound        = errors.New("utility_not_found")
	ErrInvalidCategory = errors.New("invalid_category")
	ErrInvalidID       = errors.New("invalid_utility_id")
)
