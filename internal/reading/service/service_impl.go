package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gridbill/gridbill/internal/reading/domain"
	utilitydomain "github.com/gridbill/gridbill/internal/utility/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Repo        domain.Repository
	UtilityRepo utilitydomain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	repo        domain.Repository
	utilityRepo utilitydomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("reading.service"),
		genID:       p.GenID,
		repo:        p.Repo,
		utilityRepo: p.UtilityRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateReadingRequest) (domain.Reading, error) {
	if req.Timestamp.IsZero() {
		return domain.Reading{}, domain.ErrInvalidTimestamp
	}
	if req.Value.IsNegative() {
		return domain.Reading{}, domain.ErrInvalidValue
	}

	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		unit = domain.UnitKWH
	}
	if unit != domain.UnitKWH && unit != domain.UnitM3 {
		return domain.Reading{}, domain.ErrInvalidUnit
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = domain.SourceManual
	}

	utilityID, err := snowflake.ParseString(strings.TrimSpace(req.UtilityID))
	if err != nil {
		return domain.Reading{}, utilitydomain.ErrInvalidID
	}
	utility, err := s.utilityRepo.FindByID(ctx, s.db, utilityID)
	if err != nil {
		return domain.Reading{}, err
	}
	if utility == nil {
		return domain.Reading{}, utilitydomain.ErrNotFound
	}

	reading := domain.Reading{
		ID:        s.genID.Generate(),
		Timestamp: req.Timestamp.UTC(),
		Value:     req.Value,
		Unit:      unit,
		Source:    source,
		UtilityID: utilityID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &reading); err != nil {
		return domain.Reading{}, err
	}

	return reading, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Reading, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) ListByUtility(ctx context.Context, utilityID string) ([]domain.Reading, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(utilityID))
	if err != nil {
		return nil, utilitydomain.ErrInvalidID
	}
	return s.repo.ListByUtility(ctx, s.db, id)
}
