package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gridbill/gridbill/internal/analytics/domain"
	readingdomain "github.com/gridbill/gridbill/internal/reading/domain"
	utilitydomain "github.com/gridbill/gridbill/internal/utility/domain"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("analytics.service"),
		repo: p.Repo,
	}
}

// meterSeries ties a utility category to the output series it feeds and the
// unit its readings are counted in.
type meterSeries struct {
	category utilitydomain.Category
	unit     string
	series   func(u *domain.MonthlyUsage) []decimal.Decimal
}

var meterSeriesSet = []meterSeries{
	{category: utilitydomain.CategoryGas, unit: readingdomain.UnitM3, series: func(u *domain.MonthlyUsage) []decimal.Decimal { return u.Gas }},
	{category: utilitydomain.CategoryReduced, unit: readingdomain.UnitKWH, series: func(u *domain.MonthlyUsage) []decimal.Decimal { return u.StandI }},
	{category: utilitydomain.CategoryNormal, unit: readingdomain.UnitKWH, series: func(u *domain.MonthlyUsage) []decimal.Decimal { return u.StandII }},
}

func (s *Service) MonthlyUsage(ctx context.Context, year int) (domain.MonthlyUsage, error) {
	if year < 1900 || year > 9999 {
		return domain.MonthlyUsage{}, domain.ErrInvalidYear
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	usage := domain.NewMonthlyUsage()

	for _, ms := range meterSeriesSet {
		ids, err := s.repo.ListUtilityIDsByCategory(ctx, s.db, string(ms.category))
		if err != nil {
			return domain.MonthlyUsage{}, err
		}
		if len(ids) == 0 {
			continue
		}
		readings, err := s.repo.ListReadingsWithin(ctx, s.db, ids, ms.unit, start, end)
		if err != nil {
			return domain.MonthlyUsage{}, err
		}
		addMonthlyDeltas(ms.series(&usage), readings)
	}

	solar, err := s.repo.ListSolarWithin(ctx, s.db, start, end)
	if err != nil {
		return domain.MonthlyUsage{}, err
	}
	for _, sr := range solar {
		month := int(sr.ProductionDate.Month()) - 1
		usage.Solar[month] = usage.Solar[month].Add(sr.EnergyProduced)
	}

	return usage, nil
}

// addMonthlyDeltas folds consecutive reading deltas per utility into the
// series. Each delta lands in the month of the ending reading; negative
// deltas (meter resets, corrections) are ignored.
func addMonthlyDeltas(series []decimal.Decimal, readings []readingdomain.Reading) {
	byUtility := make(map[snowflake.ID][]readingdomain.Reading)
	order := make([]snowflake.ID, 0)
	for _, r := range readings {
		if _, seen := byUtility[r.UtilityID]; !seen {
			order = append(order, r.UtilityID)
		}
		byUtility[r.UtilityID] = append(byUtility[r.UtilityID], r)
	}

	for _, id := range order {
		samples := byUtility[id]
		for i := 1; i < len(samples); i++ {
			delta := samples[i].Value.Sub(samples[i-1].Value)
			if delta.IsNegative() {
				continue
			}
			month := int(samples[i].Timestamp.Month()) - 1
			series[month] = series[month].Add(delta)
		}
	}
}
