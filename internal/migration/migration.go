// Package migration keeps the schema in sync with the registered models.
package migration

import (
	"errors"

	"gorm.io/gorm"

	contractdomain "github.com/gridbill/gridbill/internal/contract/domain"
	readingdomain "github.com/gridbill/gridbill/internal/reading/domain"
	solardomain "github.com/gridbill/gridbill/internal/solar/domain"
	supplierdomain "github.com/gridbill/gridbill/internal/supplier/domain"
	tariffdomain "github.com/gridbill/gridbill/internal/tariff/domain"
	utilitydomain "github.com/gridbill/gridbill/internal/utility/domain"
)

// Models lists every persisted model in dependency order.
func Models() []any {
	return []any{
		&supplierdomain.Supplier{},
		&contractdomain.Contract{},
		&utilitydomain.Utility{},
		&tariffdomain.Tariff{},
		&readingdomain.Reading{},
		&solardomain.SolarReading{},
	}
}

// Run applies the schema for all registered models.
func Run(db *gorm.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}
	return db.AutoMigrate(Models()...)
}
