package domain

import (
	"context"
	"errors"
	"io"
)

// ImportResult reports how a CSV batch went.
type ImportResult struct {
	BatchID  string `json:"batch_id"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}

type Service interface {
	List(ctx context.Context) ([]SolarReading, error)
	// ImportCSV ingests a panel export with columns
	// production_date,panel_serial_nbr,energy_produced.
	ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error)
}

var ErrInvalidRow = errors.New("invalid_solar_row")
