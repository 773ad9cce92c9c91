package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gridbill/gridbill/internal/clock"
	"github.com/gridbill/gridbill/internal/cost/domain"
	"github.com/gridbill/gridbill/internal/cost/repository"
	contractdomain "github.com/gridbill/gridbill/internal/contract/domain"
	readingdomain "github.com/gridbill/gridbill/internal/reading/domain"
	supplierdomain "github.com/gridbill/gridbill/internal/supplier/domain"
	tariffdomain "github.com/gridbill/gridbill/internal/tariff/domain"
	utilitydomain "github.com/gridbill/gridbill/internal/utility/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	db    *gorm.DB
	genID *snowflake.Node
	svc   domain.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&supplierdomain.Supplier{},
		&contractdomain.Contract{},
		&utilitydomain.Utility{},
		&tariffdomain.Tariff{},
		&readingdomain.Reading{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Repo:  repository.Provide(),
		Clock: clock.Fixed{At: date(2024, time.June, 1)},
	})

	return &fixture{db: db, genID: node, svc: svc}
}

func (f *fixture) createUtility(t *testing.T, category utilitydomain.Category) utilitydomain.Utility {
	t.Helper()
	contract := contractdomain.Contract{
		ID:         f.genID.Generate(),
		Name:       "supply 2023",
		StartDate:  date(2023, time.January, 1),
		EndDate:    date(2023, time.December, 31),
		SupplierID: f.genID.Generate(),
	}
	require.NoError(t, f.db.Create(&contract).Error)

	utility := utilitydomain.Utility{
		ID:         f.genID.Generate(),
		Category:   category,
		ContractID: contract.ID,
	}
	require.NoError(t, f.db.Create(&utility).Error)
	return utility
}

func (f *fixture) createUtilityTariff(t *testing.T, utilityID snowflake.ID, sort tariffdomain.Sort, freq tariffdomain.Frequency, amount string) tariffdomain.Tariff {
	t.Helper()
	tariff := tariffdomain.Tariff{
		ID:          f.genID.Generate(),
		Description: string(sort) + " rate",
		Amount:      decimal.RequireFromString(amount),
		Sort:        sort,
		Frequency:   freq,
		IsActive:    true,
		UtilityID:   &utilityID,
	}
	require.NoError(t, f.db.Create(&tariff).Error)
	return tariff
}

func (f *fixture) addReading(t *testing.T, utilityID snowflake.ID, at time.Time, unit, value string) {
	t.Helper()
	reading := readingdomain.Reading{
		ID:        f.genID.Generate(),
		Timestamp: at,
		Value:     decimal.RequireFromString(value),
		Unit:      unit,
		Source:    readingdomain.SourceManual,
		UtilityID: utilityID,
	}
	require.NoError(t, f.db.Create(&reading).Error)
}

func TestCompute_FixedDailyRate(t *testing.T) {
	f := newFixture(t)
	utility := f.createUtility(t, utilitydomain.CategoryNormal)
	f.createUtilityTariff(t, utility.ID, tariffdomain.SortFixed, tariffdomain.FrequencyDay, "0.36121")

	cost, err := f.svc.Compute(context.Background(), utility.ID.String(), date(2023, time.January, 1), date(2023, time.January, 31), true)
	require.NoError(t, err)

	// 0.36121 * 30 = 10.8363
	assert.True(t, cost.Fixed.Round(2).Equal(decimal.RequireFromString("10.84")), "fixed = %s", cost.Fixed)
	require.Len(t, cost.Specification, 1)
	line := cost.Specification[0]
	assert.True(t, line.Amount.Equal(decimal.RequireFromString("10.84")))
	assert.True(t, line.QuantityUsed.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "DAY", line.Frequency)
}

func TestCompute_MeteredUsage(t *testing.T) {
	f := newFixture(t)
	utility := f.createUtility(t, utilitydomain.CategoryNormal)
	f.createUtilityTariff(t, utility.ID, tariffdomain.SortNormal, tariffdomain.FrequencyKWH, "0.25608")

	f.addReading(t, utility.ID, date(2023, time.January, 1), readingdomain.UnitKWH, "100")
	f.addReading(t, utility.ID, date(2023, time.January, 30), readingdomain.UnitKWH, "150")

	cost, err := f.svc.Compute(context.Background(), utility.ID.String(), date(2023, time.January, 1), date(2023, time.January, 31), true)
	require.NoError(t, err)

	// usage 50 kWh * 0.25608 = 12.804
	assert.True(t, cost.StandII.Round(2).Equal(decimal.RequireFromString("12.80")), "stand_ii = %s", cost.StandII)
	assert.True(t, cost.StandI.IsZero())
	require.Len(t, cost.Specification, 1)
	assert.True(t, cost.Specification[0].QuantityUsed.Equal(decimal.NewFromInt(50)))
}

func TestCompute_MeterResetClampsToZero(t *testing.T) {
	f := newFixture(t)
	utility := f.createUtility(t, utilitydomain.CategoryNormal)
	f.createUtilityTariff(t, utility.ID, tariffdomain.SortNormal, tariffdomain.FrequencyKWH, "0.25608")

	f.addReading(t, utility.ID, date(2023, time.January, 1), readingdomain.UnitKWH, "100")
	f.addReading(t, utility.ID, date(2023, time.January, 15), readingdomain.UnitKWH, "40")

	cost, err := f.svc.Compute(context.Background(), utility.ID.String(), date(2023, time.January, 1), date(2023, time.February, 1), true)
	require.NoError(t, err)

	assert.True(t, cost.StandII.IsZero(), "stand_ii = %s", cost.StandII)
	require.Len(t, cost.Specification, 1)
	assert.True(t, cost.Specification[0].QuantityUsed.IsZero())
}

func TestCompute_MissingReadingsMeanZeroUsage(t *testing.T) {
	f := newFixture(t)
	utility := f.createUtility(t, utilitydomain.CategoryNormal)
	f.createUtilityTariff(t, utility.ID, tariffdomain.SortNormal, tariffdomain.FrequencyKWH, "0.25608")

	cost, err := f.svc.Compute(context.Background(), utility.ID.String(), date(2023, time.January, 1), date(2023, time.February, 1), true)
	require.NoError(t, err)

	assert.True(t, cost.StandII.IsZero())
}

func TestCompute_PercentageRunsAfterOtherTariffs(t *testing.T) {
	f := newFixture(t)
	utility := f.createUtility(t, utilitydomain.CategoryNormal)

	// Inserted first so listing order alone would run it before the fixed
	// tariffs ever contribute.
	f.createUtilityTariff(t, utility.ID, tariffdomain.SortPercentage, tariffdomain.FrequencyDay, "10")
	f.createUtilityTariff(t, utility.ID, tariffdomain.SortFixed, tariffdomain.FrequencyDay, "10")
	f.createUtilityTariff(t, utility.ID, tariffdomain.SortFixed, tariffdomain.FrequencyDay, "20")

	cost, err := f.svc.Compute(context.Background(), utility.ID.String(), date(2023, time.January, 1), date(2023, time.January, 2), true)
	require.NoError(t, err)

	assert.True(t, cost.Fixed.Equal(decimal.NewFromInt(30)), "fixed = %s", cost.Fixed)
	assert.True(t, cost.Discount.Equal(decimal.NewFromInt(3)), "discount = %s", cost.Discount)

	require.Len(t, cost.Specification, 3)
	last := cost.Specification[2]
	assert.Equal(t, "PERCENTAGE", last.Sort)
	assert.Equal(t, domain.FrequencyPercent, last.Frequency)
	assert.True(t, last.QuantityUsed.Equal(decimal.NewFromInt(10)))
	assert.True(t, last.Amount.Equal(decimal.RequireFromString("3")))
}

func TestCompute_TotalEqualsBucketSum(t *testing.T) {
	f := newFixture(t)
	utility := f.createUtility(t, utilitydomain.CategoryNormal)
	f.createUtilityTariff(t, utility.ID, tariffdomain.SortFixed, tariffdomain.FrequencyDay, "0.36121")
	f.createUtilityTariff(t, utility.ID, tariffdomain.SortTax, tariffdomain.FrequencyDay, "0.11")
	f.createUtilityTariff(t, utility.ID, tariffdomain.SortPercentage, tariffdomain.FrequencyDay, "-5")

	cost, err := f.svc.Compute(context.Background(), utility.ID.String(), date(2023, time.January, 1), date(2023, time.January, 31), true)
	require.NoError(t, err)

	sum := cost.Gas.
		Add(cost.StandI).
		Add(cost.StandII).
		Add(cost.Single).
		Add(cost.Fixed).
		Add(cost.Variable).
		Add(cost.Tax).
		Add(cost.Network).
		Add(cost.Discount)
	assert.True(t, cost.Total().Equal(sum.Round(2)))
	assert.True(t, cost.Discount.IsNegative())
}

func TestCompute_ClipsTariffWindows(t *testing.T) {
	f := newFixture(t)
	utility := f.createUtility(t, utilitydomain.CategoryNormal)

	outside := f.createUtilityTariff(t, utility.ID, tariffdomain.SortFixed, tariffdomain.FrequencyDay, "1")
	start := date(2022, time.January, 1)
	end := date(2022, time.June, 30)
	require.NoError(t, f.db.Model(&tariffdomain.Tariff{}).Where("id = ?", outside.ID).
		Updates(map[string]any{"start_date": start, "end_date": end}).Error)

	partial := f.createUtilityTariff(t, utility.ID, tariffdomain.SortNetwork, tariffdomain.FrequencyDay, "1")
	pStart := date(2023, time.January, 15)
	require.NoError(t, f.db.Model(&tariffdomain.Tariff{}).Where("id = ?", partial.ID).
		Update("start_date", pStart).Error)

	cost, err := f.svc.Compute(context.Background(), utility.ID.String(), date(2023, time.January, 1), date(2023, time.January, 31), true)
	require.NoError(t, err)

	// The 2022 tariff never appears; the partial one starts at its own window.
	require.Len(t, cost.Specification, 1)
	line := cost.Specification[0]
	assert.Equal(t, "NETWORK", line.Sort)
	assert.True(t, line.PeriodStart.Equal(pStart))
	assert.True(t, line.QuantityUsed.Equal(decimal.NewFromInt(16)))
}

func TestCompute_ContractScopeSumsUnitClass(t *testing.T) {
	f := newFixture(t)

	contract := contractdomain.Contract{
		ID:         f.genID.Generate(),
		Name:       "bundle",
		StartDate:  date(2023, time.January, 1),
		EndDate:    date(2023, time.December, 31),
		SupplierID: f.genID.Generate(),
	}
	require.NoError(t, f.db.Create(&contract).Error)

	day := utilitydomain.Utility{ID: f.genID.Generate(), Category: utilitydomain.CategoryNormal, ContractID: contract.ID}
	night := utilitydomain.Utility{ID: f.genID.Generate(), Category: utilitydomain.CategoryReduced, ContractID: contract.ID}
	gas := utilitydomain.Utility{ID: f.genID.Generate(), Category: utilitydomain.CategoryGas, ContractID: contract.ID}
	require.NoError(t, f.db.Create(&day).Error)
	require.NoError(t, f.db.Create(&night).Error)
	require.NoError(t, f.db.Create(&gas).Error)

	tariff := tariffdomain.Tariff{
		ID:          f.genID.Generate(),
		Description: "contract energy",
		Amount:      decimal.NewFromInt(1),
		Sort:        tariffdomain.SortVariable,
		Frequency:   tariffdomain.FrequencyKWH,
		IsActive:    true,
		ContractID:  &contract.ID,
	}
	require.NoError(t, f.db.Create(&tariff).Error)

	f.addReading(t, day.ID, date(2023, time.January, 1), readingdomain.UnitKWH, "0")
	f.addReading(t, day.ID, date(2023, time.January, 20), readingdomain.UnitKWH, "30")
	f.addReading(t, night.ID, date(2023, time.January, 1), readingdomain.UnitKWH, "10")
	f.addReading(t, night.ID, date(2023, time.January, 20), readingdomain.UnitKWH, "30")
	// Gas meters in m3 and must stay out of a kWh priced tariff.
	f.addReading(t, gas.ID, date(2023, time.January, 1), readingdomain.UnitM3, "0")
	f.addReading(t, gas.ID, date(2023, time.January, 20), readingdomain.UnitM3, "500")

	cost, err := f.svc.Compute(context.Background(), day.ID.String(), date(2023, time.January, 1), date(2023, time.February, 1), true)
	require.NoError(t, err)

	// 30 kWh day + 20 kWh night
	assert.True(t, cost.Variable.Equal(decimal.NewFromInt(50)), "variable = %s", cost.Variable)
}

func TestCompute_ExcludesContractTariffsWhenAsked(t *testing.T) {
	f := newFixture(t)
	utility := f.createUtility(t, utilitydomain.CategoryNormal)

	tariff := tariffdomain.Tariff{
		ID:          f.genID.Generate(),
		Description: "contract standing charge",
		Amount:      decimal.NewFromInt(1),
		Sort:        tariffdomain.SortFixed,
		Frequency:   tariffdomain.FrequencyDay,
		IsActive:    true,
		ContractID:  &utility.ContractID,
	}
	require.NoError(t, f.db.Create(&tariff).Error)

	cost, err := f.svc.Compute(context.Background(), utility.ID.String(), date(2023, time.January, 1), date(2023, time.January, 31), false)
	require.NoError(t, err)
	assert.Empty(t, cost.Specification)

	cost, err = f.svc.Compute(context.Background(), utility.ID.String(), date(2023, time.January, 1), date(2023, time.January, 31), true)
	require.NoError(t, err)
	assert.Len(t, cost.Specification, 1)
}

func TestCompute_ClampsEndToToday(t *testing.T) {
	f := newFixture(t)
	utility := f.createUtility(t, utilitydomain.CategoryNormal)
	f.createUtilityTariff(t, utility.ID, tariffdomain.SortFixed, tariffdomain.FrequencyDay, "1")

	// Clock is pinned to 2024-06-01; a request into 2025 stops there.
	cost, err := f.svc.Compute(context.Background(), utility.ID.String(), date(2024, time.May, 1), date(2025, time.January, 1), true)
	require.NoError(t, err)

	require.Len(t, cost.Specification, 1)
	assert.True(t, cost.Specification[0].PeriodEnd.Equal(date(2024, time.June, 1)))
	assert.True(t, cost.Fixed.Equal(decimal.NewFromInt(31)))
}

func TestCompute_UnknownUtility(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Compute(context.Background(), f.genID.Generate().String(), date(2023, time.January, 1), date(2023, time.February, 1), true)
	assert.ErrorIs(t, err, utilitydomain.ErrNotFound)
}

func TestCompute_UnsupportedFrequency(t *testing.T) {
	f := newFixture(t)
	utility := f.createUtility(t, utilitydomain.CategoryNormal)
	f.createUtilityTariff(t, utility.ID, tariffdomain.SortFixed, tariffdomain.Frequency("WEEK"), "1")

	_, err := f.svc.Compute(context.Background(), utility.ID.String(), date(2023, time.January, 1), date(2023, time.February, 1), true)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFrequency)
}

func TestCompute_UnsupportedSort(t *testing.T) {
	f := newFixture(t)
	utility := f.createUtility(t, utilitydomain.CategoryNormal)
	f.createUtilityTariff(t, utility.ID, tariffdomain.Sort("MYSTERY"), tariffdomain.FrequencyDay, "1")

	_, err := f.svc.Compute(context.Background(), utility.ID.String(), date(2023, time.January, 1), date(2023, time.February, 1), true)
	assert.ErrorIs(t, err, domain.ErrUnsupportedSort)
}

func TestCompute_MonthAndYearUseFixedDivisors(t *testing.T) {
	f := newFixture(t)
	utility := f.createUtility(t, utilitydomain.CategoryNormal)
	f.createUtilityTariff(t, utility.ID, tariffdomain.SortSingle, tariffdomain.FrequencyMonth, "30")
	f.createUtilityTariff(t, utility.ID, tariffdomain.SortNetwork, tariffdomain.FrequencyYear, "365")

	cost, err := f.svc.Compute(context.Background(), utility.ID.String(), date(2023, time.January, 1), date(2023, time.January, 31), true)
	require.NoError(t, err)

	// 30 days: 30 * 30/30 = 30 and 365 * 30/365 = 30.
	assert.True(t, cost.Single.Equal(decimal.NewFromInt(30)), "single = %s", cost.Single)
	assert.True(t, cost.Network.Equal(decimal.NewFromInt(30)), "network = %s", cost.Network)
}
