package repository

import (
	"context"

	"gorm.io/gorm"

	solardomain "github.com/gridbill/gridbill/internal/solar/domain"
)

type solarRepository struct{}

func Provide() solardomain.Repository {
	return &solarRepository{}
}

func (r *solarRepository) Insert(ctx context.Context, db *gorm.DB, reading *solardomain.SolarReading) error {
	return db.WithContext(ctx).Exec(`
		INSERT INTO solar_readings (id, production_date, panel_serial_nbr, energy_produced, unit, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		reading.ID,
		reading.ProductionDate,
		reading.PanelSerialNbr,
		reading.EnergyProduced,
		reading.Unit,
		reading.CreatedAt,
	).Error
}

func (r *solarRepository) List(ctx context.Context, db *gorm.DB) ([]solardomain.SolarReading, error) {
	var readings []solardomain.SolarReading
	err := db.WithContext(ctx).Raw(`
		SELECT * FROM solar_readings ORDER BY production_date DESC, panel_serial_nbr ASC
	`).Scan(&readings).Error
	if err != nil {
		return nil, err
	}
	return readings, nil
}
