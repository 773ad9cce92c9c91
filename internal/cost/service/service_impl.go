package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gridbill/gridbill/internal/clock"
	"github.com/gridbill/gridbill/internal/cost/domain"
	tariffdomain "github.com/gridbill/gridbill/internal/tariff/domain"
	utilitydomain "github.com/gridbill/gridbill/internal/utility/domain"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Repo  domain.Repository
	Clock clock.Clock
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	clock clock.Clock
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("cost.service"),
		repo:  p.Repo,
		clock: p.Clock,
	}
}

// Compute bills one utility over [start, end). The computation is a pure
// function of the storage snapshot: it reads tariffs, the contract graph and
// readings, and returns a fresh accumulator.
func (s *Service) Compute(ctx context.Context, utilityID string, start, end time.Time, includeContractTariffs bool) (domain.Cost, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(utilityID))
	if err != nil {
		return domain.Cost{}, utilitydomain.ErrInvalidID
	}

	utility, err := s.repo.GetUtility(ctx, s.db, id)
	if err != nil {
		return domain.Cost{}, err
	}
	if utility == nil {
		return domain.Cost{}, utilitydomain.ErrNotFound
	}

	// No billing beyond today.
	if now := s.clock.Now(ctx); end.After(now) {
		end = now
	}

	tariffs, err := s.repo.ListActiveUtilityTariffs(ctx, s.db, utility.ID)
	if err != nil {
		return domain.Cost{}, err
	}
	if includeContractTariffs && utility.ContractID != 0 {
		contractTariffs, err := s.repo.ListActiveContractTariffs(ctx, s.db, utility.ContractID)
		if err != nil {
			return domain.Cost{}, err
		}
		tariffs = append(tariffs, contractTariffs...)
	}

	// Percentage tariffs read the running subtotal, so every other tariff
	// must land first. The sort is stable to keep listing order within each
	// group.
	sort.SliceStable(tariffs, func(i, j int) bool {
		return tariffs[i].Sort != tariffdomain.SortPercentage &&
			tariffs[j].Sort == tariffdomain.SortPercentage
	})

	cost := domain.Cost{Specification: []domain.SpecLine{}}
	for _, tariff := range tariffs {
		if err := tariff.ValidateScope(); err != nil {
			s.log.Error("tariff with broken scope reached the engine",
				zap.Int64("tariff_id", int64(tariff.ID)),
			)
			return domain.Cost{}, err
		}

		pStart, pEnd, ok := clipPeriod(start, end, tariff)
		if !ok {
			continue
		}
		if err := s.applyTariff(ctx, &cost, tariff, utility, pStart, pEnd); err != nil {
			return domain.Cost{}, err
		}
	}

	return cost, nil
}
