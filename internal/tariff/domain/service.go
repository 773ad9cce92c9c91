package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type CreateTariffRequest struct {
	Description string          `json:"description" validate:"required,min=1"`
	Amount      decimal.Decimal `json:"amount"`
	Sort        string          `json:"tariff_sort" validate:"required"`
	Frequency   string          `json:"frequency" validate:"required"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	IsActive    *bool           `json:"is_active,omitempty"`
	ContractID  string          `json:"contract_id,omitempty"`
	UtilityID   string          `json:"utility_id,omitempty"`
}

type UpdateTariffRequest struct {
	ID          string           `json:"-"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	StartDate   *time.Time       `json:"start_date,omitempty"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

type Service interface {
	Create(ctx context.Context, req CreateTariffRequest) (Tariff, error)
	Update(ctx context.Context, req UpdateTariffRequest) (Tariff, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Tariff, error)
	List(ctx context.Context) ([]Tariff, error)
	ListByContract(ctx context.Context, contractID string) ([]Tariff, error)
	ListByUtility(ctx context.Context, utilityID string) ([]Tariff, error)
}

var (
	ErrNotFound           = errors.New("tariff_not_found")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrScopeViolation     = errors.New("tariff_scope_violation")
	ErrInvalidSort        = errors.New("invalid_tariff_sort")
	ErrInvalidFrequency   = errors.New("invalid_frequency")
	ErrInvalidID          = errors.New("invalid_tariff_id")
)

// KnownSort reports whether the sort has a registered computation rule.
func KnownSort(s Sort) bool {
	switch s {
	case SortNormal, SortReduced, SortSingle, SortFixed, SortVariable, SortTax, SortNetwork, SortPercentage:
		return true
	}
	return false
}

// KnownFrequency reports whether the pricing unit is supported.
func KnownFrequency(f Frequency) bool {
	switch f {
	case FrequencyDay, FrequencyMonth, FrequencyYear, FrequencyM3, FrequencyKWH:
		return true
	}
	return false
}
