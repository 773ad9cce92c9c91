package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	contractdomain "github.com/gridbill/gridbill/internal/contract/domain"
	"github.com/gridbill/gridbill/internal/utility/domain"
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
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	repo         domain.Repository
	contractRepo contractdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("utility.service"),
		genID:        p.GenID,
		repo:         p.Repo,
		contractRepo: p.ContractRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateUtilityRequest) (domain.Utility, error) {
	category := domain.Category(strings.ToUpper(strings.TrimSpace(req.Category)))
	if category == "" {
		return domain.Utility{}, domain.ErrInvalidCategory
	}

	contractID, err := snowflake.ParseString(strings.TrimSpace(req.ContractID))
	if err != nil {
		return domain.Utility{}, contractdomain.ErrInvalidID
	}
	contract, err := s.contractRepo.FindByID(ctx, s.db, contractID)
	if err != nil {
		return domain.Utility{}, err
	}
	if contract == nil {
		return domain.Utility{}, contractdomain.ErrNotFound
	}

	now := time.Now().UTC()
	utility := domain.Utility{
		ID:           s.genID.Generate(),
		Category:     category,
		Text:         strings.TrimSpace(req.Text),
		Description:  strings.TrimSpace(req.Description),
		EstimatedUse: req.EstimatedUse,
		ContractID:   contractID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, s.db, &utility); err != nil {
		return domain.Utility{}, err
	}

	return utility, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Utility, error) {
	utilityID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.Utility{}, domain.ErrInvalidID
	}

	utility, err := s.repo.FindByID(ctx, s.db, utilityID)
	if err != nil {
		return domain.Utility{}, err
	}
	if utility == nil {
		return domain.Utility{}, domain.ErrNotFound
	}
	return *utility, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Utility, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) ListByContract(ctx context.Context, contractID string) ([]domain.Utility, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(contractID))
	if err != nil {
		return nil, contractdomain.ErrInvalidID
	}

	contract, err := s.contractRepo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, contractdomain.ErrNotFound
	}

	return s.repo.ListByContract(ctx, s.db, id)
}
