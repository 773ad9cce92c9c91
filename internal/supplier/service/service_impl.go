package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gridbill/gridbill/internal/supplier/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("supplier.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateSupplierRequest) (domain.Supplier, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Supplier{}, domain.ErrInvalidName
	}

	now := time.Now().UTC()
	supplier := domain.Supplier{
		ID:             s.genID.Generate(),
		Name:           name,
		Address:        strings.TrimSpace(req.Address),
		ClientNumber:   strings.TrimSpace(req.ClientNumber),
		MonthlyPayment: req.MonthlyPayment,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Insert(ctx, s.db, &supplier); err != nil {
		return domain.Supplier{}, err
	}

	return supplier, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Supplier, error) {
	supplierID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.Supplier{}, domain.ErrInvalidID
	}

	supplier, err := s.repo.FindByID(ctx, s.db, supplierID)
	if err != nil {
		return domain.Supplier{}, err
	}
	if supplier == nil {
		return domain.Supplier{}, domain.ErrNotFound
	}
	return *supplier, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Supplier, error) {
	return s.repo.List(ctx, s.db)
}
