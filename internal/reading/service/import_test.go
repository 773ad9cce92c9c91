package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	contractdomain "github.com/gridbill/gridbill/internal/contract/domain"
	"github.com/gridbill/gridbill/internal/reading/domain"
	"github.com/gridbill/gridbill/internal/reading/repository"
	utilitydomain "github.com/gridbill/gridbill/internal/utility/domain"
	utilityrepository "github.com/gridbill/gridbill/internal/utility/repository"
)

type fixture struct {
	db      *gorm.DB
	genID   *snowflake.Node
	svc     domain.Service
	gas     utilitydomain.Utility
	reduced utilitydomain.Utility
	normal  utilitydomain.Utility
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&contractdomain.Contract{}, &utilitydomain.Utility{}, &domain.Reading{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:          db,
		Log:         zap.NewNop(),
		GenID:       node,
		Repo:        repository.Provide(),
		UtilityRepo: utilityrepository.Provide(),
	})

	contract := contractdomain.Contract{
		ID:         node.Generate(),
		Name:       "supply 2023",
		StartDate:  time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
		SupplierID: node.Generate(),
	}
	require.NoError(t, db.Create(&contract).Error)

	f := &fixture{db: db, genID: node, svc: svc}
	for _, u := range []struct {
		category utilitydomain.Category
		target   *utilitydomain.Utility
	}{
		{utilitydomain.CategoryGas, &f.gas},
		{utilitydomain.CategoryReduced, &f.reduced},
		{utilitydomain.CategoryNormal, &f.normal},
	} {
		utility := utilitydomain.Utility{
			ID:         node.Generate(),
			Category:   u.category,
			ContractID: contract.ID,
		}
		require.NoError(t, db.Create(&utility).Error)
		*u.target = utility
	}
	return f
}

func (f *fixture) readingsOf(t *testing.T, utilityID snowflake.ID) []domain.Reading {
	t.Helper()
	readings, err := f.svc.ListByUtility(context.Background(), utilityID.String())
	require.NoError(t, err)
	return readings
}

func TestImportCSV_RoutesColumnsToUtilities(t *testing.T) {
	f := newFixture(t)

	csv := strings.Join([]string{
		"consumption_date,gas,stand_i,stand_ii",
		"2023-01-01,100.5,200,300",
		"2023-02-01,110.5,220,330",
	}, "\n")

	result, err := f.svc.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 6, result.Imported)
	assert.Equal(t, 0, result.Skipped)
	assert.NotEmpty(t, result.BatchID)

	gasReadings := f.readingsOf(t, f.gas.ID)
	require.Len(t, gasReadings, 2)
	assert.Equal(t, domain.UnitM3, gasReadings[0].Unit)
	assert.Equal(t, domain.SourceImport, gasReadings[0].Source)
	assert.True(t, gasReadings[0].Value.Equal(decimal.RequireFromString("100.5")))

	reducedReadings := f.readingsOf(t, f.reduced.ID)
	require.Len(t, reducedReadings, 2)
	assert.Equal(t, domain.UnitKWH, reducedReadings[0].Unit)

	normalReadings := f.readingsOf(t, f.normal.ID)
	require.Len(t, normalReadings, 2)
	assert.True(t, normalReadings[1].Value.Equal(decimal.RequireFromString("330")))
}

func TestImportCSV_SkipsNonMonotonicRows(t *testing.T) {
	f := newFixture(t)

	csv := strings.Join([]string{
		"consumption_date,gas,stand_i,stand_ii",
		"2023-01-01,100,200,300",
		"2023-02-01,90,220,330",
		"2023-03-01,120,240,360",
	}, "\n")

	result, err := f.svc.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	// The February gas value moves backwards; only that cell is dropped.
	assert.Equal(t, 8, result.Imported)
	assert.Equal(t, 1, result.Skipped)

	gasReadings := f.readingsOf(t, f.gas.ID)
	require.Len(t, gasReadings, 2)
	assert.True(t, gasReadings[1].Value.Equal(decimal.NewFromInt(120)))
}

func TestImportCSV_SkipsUnparseableRows(t *testing.T) {
	f := newFixture(t)

	csv := strings.Join([]string{
		"consumption_date,gas,stand_i,stand_ii",
		"not-a-date,100,200,300",
		"2023-01-01,abc,200,300",
	}, "\n")

	result, err := f.svc.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Skipped)
}

func TestImportCSV_SkipsRowsOutsideAnyContract(t *testing.T) {
	f := newFixture(t)

	csv := strings.Join([]string{
		"consumption_date,gas,stand_i,stand_ii",
		"2030-01-01,100,200,300",
	}, "\n")

	result, err := f.svc.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 3, result.Skipped)
}
