package service

import (
	"context"
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	readingdomain "github.com/gridbill/gridbill/internal/reading/domain"
	"github.com/gridbill/gridbill/internal/solar/domain"
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
		log:   p.Log.Named("solar.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.SolarReading, error) {
	return s.repo.List(ctx, s.db)
}

// ImportCSV ingests a panel export. Bad rows are skipped and counted; the
// batch never aborts on a single row.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (domain.ImportResult, error) {
	batchID := uuid.NewString()
	log := s.log.With(zap.String("batch_id", batchID))

	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return domain.ImportResult{}, err
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	result := domain.ImportResult{BatchID: batchID}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped++
			log.Warn("skipping malformed csv row", zap.Error(err))
			continue
		}

		reading, err := s.parseRow(index, row)
		if err != nil {
			result.Skipped++
			log.Warn("skipping solar row", zap.Error(err))
			continue
		}
		if err := s.repo.Insert(ctx, s.db, reading); err != nil {
			result.Skipped++
			log.Warn("skipping solar row", zap.Error(err))
			continue
		}
		result.Imported++
	}

	log.Info("solar reading import finished",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (s *Service) parseRow(index map[string]int, row []string) (*domain.SolarReading, error) {
	field := func(name string) (string, bool) {
		idx, ok := index[name]
		if !ok || idx >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[idx]), true
	}

	rawDate, ok := field("production_date")
	if !ok {
		return nil, domain.ErrInvalidRow
	}
	date, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		return nil, err
	}

	serial, ok := field("panel_serial_nbr")
	if !ok || serial == "" {
		return nil, domain.ErrInvalidRow
	}

	rawEnergy, ok := field("energy_produced")
	if !ok {
		return nil, domain.ErrInvalidRow
	}
	energy, err := decimal.NewFromString(rawEnergy)
	if err != nil {
		return nil, err
	}
	if energy.IsNegative() {
		return nil, domain.ErrInvalidRow
	}

	return &domain.SolarReading{
		ID:             s.genID.Generate(),
		ProductionDate: date.UTC(),
		PanelSerialNbr: serial,
		EnergyProduced: energy,
		Unit:           readingdomain.UnitKWH,
		CreatedAt:      time.Now().UTC(),
	}, nil
}
