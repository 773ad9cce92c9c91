package service

import (
	"context"
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gridbill/gridbill/internal/reading/domain"
	utilitydomain "github.com/gridbill/gridbill/internal/utility/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// importColumn ties a CSV column to the utility category and unit its values
// belong to.
type importColumn struct {
	header   string
	category utilitydomain.Category
	unit     string
}

var meterColumns = []importColumn{
	{header: "gas", category: utilitydomain.CategoryGas, unit: domain.UnitM3},
	{header: "stand_i", category: utilitydomain.CategoryReduced, unit: domain.UnitKWH},
	{header: "stand_ii", category: utilitydomain.CategoryNormal, unit: domain.UnitKWH},
}

// ImportCSV ingests a meter export. Rows that cannot be parsed, cannot be
// matched to a utility, or would move a meter backwards are skipped and
// counted; the batch never aborts on a bad row.
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

		dateIdx, ok := index["consumption_date"]
		if !ok || dateIdx >= len(row) {
			result.Skipped++
			continue
		}
		timestamp, err := time.Parse("2006-01-02", strings.TrimSpace(row[dateIdx]))
		if err != nil {
			result.Skipped++
			log.Warn("skipping row with bad consumption_date", zap.Error(err))
			continue
		}

		for _, col := range meterColumns {
			idx, ok := index[col.header]
			if !ok || idx >= len(row) {
				continue
			}
			value, err := decimal.NewFromString(strings.TrimSpace(row[idx]))
			if err != nil {
				result.Skipped++
				log.Warn("skipping unparseable value",
					zap.String("column", col.header),
					zap.Error(err),
				)
				continue
			}

			if err := s.importValue(ctx, timestamp, value, col); err != nil {
				result.Skipped++
				log.Warn("skipping reading",
					zap.String("column", col.header),
					zap.Time("timestamp", timestamp),
					zap.Error(err),
				)
				continue
			}
			result.Imported++
		}
	}

	log.Info("meter reading import finished",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (s *Service) importValue(ctx context.Context, timestamp time.Time, value decimal.Decimal, col importColumn) error {
	utilityID, err := s.repo.ResolveUtilityAt(ctx, s.db, string(col.category), timestamp)
	if err != nil {
		return err
	}
	if utilityID == 0 {
		return domain.ErrNoMatchingMeter
	}

	// Counters must not move backwards within a batch or against history.
	latest, err := s.repo.LatestBefore(ctx, s.db, utilityID, col.unit, timestamp)
	if err != nil {
		return err
	}
	if latest != nil && value.LessThan(latest.Value) {
		return domain.ErrNonMonotonic
	}

	reading := domain.Reading{
		ID:        s.genID.Generate(),
		Timestamp: timestamp.UTC(),
		Value:     value,
		Unit:      col.unit,
		Source:    domain.SourceImport,
		UtilityID: utilityID,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Insert(ctx, s.db, &reading)
}
