package service

import (
	"context"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gridbill/gridbill/internal/solar/domain"
	"github.com/gridbill/gridbill/internal/solar/repository"
)

func newService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.SolarReading{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestImportCSV(t *testing.T) {
	svc := newService(t)

	csv := strings.Join([]string{
		"production_date,panel_serial_nbr,energy_produced",
		"2023-04-01,PNL-1,2.5",
		"2023-04-01,PNL-2,3.1",
		"not-a-date,PNL-1,1",
		"2023-04-02,PNL-1,-4",
		"2023-04-02,,5",
	}, "\n")

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 3, result.Skipped)
	assert.NotEmpty(t, result.BatchID)

	readings, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.Equal(t, "kWh", readings[0].Unit)
	assert.True(t, readings[0].EnergyProduced.Add(readings[1].EnergyProduced).Equal(decimal.RequireFromString("5.6")))
}
