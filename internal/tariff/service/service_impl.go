package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	contractdomain "github.com/gridbill/gridbill/internal/contract/domain"
	"github.com/gridbill/gridbill/internal/tariff/domain"
	utilitydomain "github.com/gridbill/gridbill/internal/utility/domain"
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
	ContractRepo contractdomain.Repository
	UtilityRepo  utilitydomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	repo         domain.Repository
	contractRepo contractdomain.Repository
	utilityRepo  utilitydomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("tariff.service"),
		genID:        p.GenID,
		repo:         p.Repo,
		contractRepo: p.ContractRepo,
		utilityRepo:  p.UtilityRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateTariffRequest) (domain.Tariff, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return domain.Tariff{}, domain.ErrInvalidDescription
	}

	sort := domain.Sort(strings.ToUpper(strings.TrimSpace(req.Sort)))
	if !domain.KnownSort(sort) {
		return domain.Tariff{}, domain.ErrInvalidSort
	}
	frequency := domain.Frequency(strings.ToUpper(strings.TrimSpace(req.Frequency)))
	if !domain.KnownFrequency(frequency) {
		return domain.Tariff{}, domain.ErrInvalidFrequency
	}

	contractID, utilityID, err := s.resolveScope(ctx, req.ContractID, req.UtilityID)
	if err != nil {
		return domain.Tariff{}, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	now := time.Now().UTC()
	tariff := domain.Tariff{
		ID:          s.genID.Generate(),
		Description: description,
		Amount:      req.Amount,
		Sort:        sort,
		Frequency:   frequency,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    active,
		ContractID:  contractID,
		UtilityID:   utilityID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := tariff.ValidateScope(); err != nil {
		return domain.Tariff{}, err
	}

	if err := s.repo.Insert(ctx, s.db, &tariff); err != nil {
		return domain.Tariff{}, err
	}

	return tariff, nil
}

// resolveScope validates the exactly-one-of contract/utility rule and checks
// that the referenced parent exists.
func (s *Service) resolveScope(ctx context.Context, contractRef, utilityRef string) (*snowflake.ID, *snowflake.ID, error) {
	contractRef = strings.TrimSpace(contractRef)
	utilityRef = strings.TrimSpace(utilityRef)

	if (contractRef == "") == (utilityRef == "") {
		return nil, nil, domain.ErrScopeViolation
	}

	if contractRef != "" {
		id, err := snowflake.ParseString(contractRef)
		if err != nil {
			return nil, nil, contractdomain.ErrInvalidID
		}
		contract, err := s.contractRepo.FindByID(ctx, s.db, id)
		if err != nil {
			return nil, nil, err
		}
		if contract == nil {
			return nil, nil, contractdomain.ErrNotFound
		}
		return &id, nil, nil
	}

	id, err := snowflake.ParseString(utilityRef)
	if err != nil {
		return nil, nil, utilitydomain.ErrInvalidID
	}
	utility, err := s.utilityRepo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, nil, err
	}
	if utility == nil {
		return nil, nil, utilitydomain.ErrNotFound
	}
	return nil, &id, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateTariffRequest) (domain.Tariff, error) {
	tariffID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return domain.Tariff{}, domain.ErrInvalidID
	}

	tariff, err := s.repo.FindByID(ctx, s.db, tariffID)
	if err != nil {
		return domain.Tariff{}, err
	}
	if tariff == nil {
		return domain.Tariff{}, domain.ErrNotFound
	}

	if req.Description != nil {
		tariff.Description = strings.TrimSpace(*req.Description)
	}
	if req.Amount != nil {
		tariff.Amount = *req.Amount
	}
	if req.StartDate != nil {
		tariff.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		tariff.EndDate = req.EndDate
	}
	if req.IsActive != nil {
		tariff.IsActive = *req.IsActive
	}
	tariff.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, tariff); err != nil {
		return domain.Tariff{}, err
	}

	return *tariff, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	tariffID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	tariff, err := s.repo.FindByID(ctx, s.db, tariffID)
	if err != nil {
		return err
	}
	if tariff == nil {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, s.db, tariffID)
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Tariff, error) {
	tariffID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.Tariff{}, domain.ErrInvalidID
	}

	tariff, err := s.repo.FindByID(ctx, s.db, tariffID)
	if err != nil {
		return domain.Tariff{}, err
	}
	if tariff == nil {
		return domain.Tariff{}, domain.ErrNotFound
	}
	return *tariff, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Tariff, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) ListByContract(ctx context.Context, contractID string) ([]domain.Tariff, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(contractID))
	if err != nil {
		return nil, contractdomain.ErrInvalidID
	}
	return s.repo.ListByContract(ctx, s.db, id)
}

func (s *Service) ListByUtility(ctx context.Context, utilityID string) ([]domain.Tariff, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(utilityID))
	if err != nil {
		return nil, utilitydomain.ErrInvalidID
	}
	return s.repo.ListByUtility(ctx, s.db, id)
}
