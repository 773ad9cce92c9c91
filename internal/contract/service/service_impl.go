package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gridbill/gridbill/internal/contract/domain"
	supplierdomain "github.com/gridbill/gridbill/internal/supplier/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Repo         domain.Repository
	SupplierRepo supplierdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	repo         domain.Repository
	supplierRepo supplierdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("contract.service"),
		genID:        p.GenID,
		repo:         p.Repo,
		supplierRepo: p.SupplierRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateContractRequest) (domain.Contract, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Contract{}, domain.ErrInvalidName
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() || !req.StartDate.Before(req.EndDate) {
		return domain.Contract{}, domain.ErrInvalidWindow
	}

	supplierID, err := snowflake.ParseString(strings.TrimSpace(req.SupplierID))
	if err != nil {
		return domain.Contract{}, supplierdomain.ErrInvalidID
	}
	supplier, err := s.supplierRepo.FindByID(ctx, s.db, supplierID)
	if err != nil {
		return domain.Contract{}, err
	}
	if supplier == nil {
		return domain.Contract{}, supplierdomain.ErrNotFound
	}

	existing, err := s.repo.ListBySupplier(ctx, s.db, supplierID)
	if err != nil {
		return domain.Contract{}, err
	}
	windows := make([]domain.Window, 0, len(existing))
	for _, c := range existing {
		windows = append(windows, c.Window())
	}
	candidate := domain.Window{Start: req.StartDate, End: req.EndDate}
	if err := domain.ValidateNoOverlap(candidate, windows); err != nil {
		return domain.Contract{}, err
	}

	now := time.Now().UTC()
	contract := domain.Contract{
		ID:             s.genID.Generate(),
		Name:           name,
		Description:    strings.TrimSpace(req.Description),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		MonthlyPayment: req.MonthlyPayment,
		SettlementPDF:  req.SettlementPDF,
		ContractPDF:    req.ContractPDF,
		SupplierID:     supplierID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Insert(ctx, s.db, &contract); err != nil {
		return domain.Contract{}, err
	}

	return contract, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateContractRequest) (domain.Contract, error) {
	contractID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return domain.Contract{}, domain.ErrInvalidID
	}

	contract, err := s.repo.FindByID(ctx, s.db, contractID)
	if err != nil {
		return domain.Contract{}, err
	}
	if contract == nil {
		return domain.Contract{}, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Contract{}, domain.ErrInvalidName
		}
		contract.Name = name
	}
	if req.Description != nil {
		contract.Description = strings.TrimSpace(*req.Description)
	}
	if req.MonthlyPayment != nil {
		contract.MonthlyPayment = *req.MonthlyPayment
	}
	if req.SettlementPDF != nil {
		contract.SettlementPDF = *req.SettlementPDF
	}
	if req.ContractPDF != nil {
		contract.ContractPDF = *req.ContractPDF
	}
	contract.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, contract); err != nil {
		return domain.Contract{}, err
	}

	return *contract, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Contract, error) {
	contractID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.Contract{}, domain.ErrInvalidID
	}

	contract, err := s.repo.FindByID(ctx, s.db, contractID)
	if err != nil {
		return domain.Contract{}, err
	}
	if contract == nil {
		return domain.Contract{}, domain.ErrNotFound
	}
	return *contract, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Contract, error) {
	return s.repo.List(ctx, s.db)
}
