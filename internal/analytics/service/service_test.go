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

	"github.com/gridbill/gridbill/internal/analytics/domain"
	"github.com/gridbill/gridbill/internal/analytics/repository"
	readingdomain "github.com/gridbill/gridbill/internal/reading/domain"
	solardomain "github.com/gridbill/gridbill/internal/solar/domain"
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
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&utilitydomain.Utility{},
		&readingdomain.Reading{},
		&solardomain.SolarReading{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
	return &fixture{db: db, genID: node, svc: svc}
}

func (f *fixture) createUtility(t *testing.T, category utilitydomain.Category) utilitydomain.Utility {
	t.Helper()
	utility := utilitydomain.Utility{
		ID:         f.genID.Generate(),
		Category:   category,
		ContractID: f.genID.Generate(),
	}
	require.NoError(t, f.db.Create(&utility).Error)
	return utility
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

func TestMonthlyUsage_BucketsDeltasIntoEndingMonth(t *testing.T) {
	f := newFixture(t)
	normal := f.createUtility(t, utilitydomain.CategoryNormal)

	f.addReading(t, normal.ID, date(2023, time.January, 15), readingdomain.UnitKWH, "100")
	f.addReading(t, normal.ID, date(2023, time.February, 15), readingdomain.UnitKWH, "150")
	f.addReading(t, normal.ID, date(2023, time.March, 15), readingdomain.UnitKWH, "175")

	usage, err := f.svc.MonthlyUsage(context.Background(), 2023)
	require.NoError(t, err)

	// Jan->Feb delta lands in February, Feb->Mar in March.
	assert.True(t, usage.StandII[0].IsZero())
	assert.True(t, usage.StandII[1].Equal(decimal.NewFromInt(50)), "feb = %s", usage.StandII[1])
	assert.True(t, usage.StandII[2].Equal(decimal.NewFromInt(25)), "mar = %s", usage.StandII[2])
	assert.Equal(t, domain.MonthLabels, usage.Labels)
}

func TestMonthlyUsage_SeriesKeysFollowCostBuckets(t *testing.T) {
	f := newFixture(t)
	normal := f.createUtility(t, utilitydomain.CategoryNormal)
	reduced := f.createUtility(t, utilitydomain.CategoryReduced)
	gas := f.createUtility(t, utilitydomain.CategoryGas)

	f.addReading(t, normal.ID, date(2023, time.January, 1), readingdomain.UnitKWH, "0")
	f.addReading(t, normal.ID, date(2023, time.January, 31), readingdomain.UnitKWH, "30")
	f.addReading(t, reduced.ID, date(2023, time.January, 1), readingdomain.UnitKWH, "0")
	f.addReading(t, reduced.ID, date(2023, time.January, 31), readingdomain.UnitKWH, "20")
	f.addReading(t, gas.ID, date(2023, time.January, 1), readingdomain.UnitM3, "0")
	f.addReading(t, gas.ID, date(2023, time.January, 31), readingdomain.UnitM3, "80")

	usage, err := f.svc.MonthlyUsage(context.Background(), 2023)
	require.NoError(t, err)

	assert.True(t, usage.StandII[0].Equal(decimal.NewFromInt(30)), "normal feeds stand_ii")
	assert.True(t, usage.StandI[0].Equal(decimal.NewFromInt(20)), "reduced feeds stand_i")
	assert.True(t, usage.Gas[0].Equal(decimal.NewFromInt(80)))
}

func TestMonthlyUsage_IgnoresNegativeDeltasAndOtherYears(t *testing.T) {
	f := newFixture(t)
	normal := f.createUtility(t, utilitydomain.CategoryNormal)

	f.addReading(t, normal.ID, date(2023, time.January, 1), readingdomain.UnitKWH, "100")
	// Meter swap mid-year.
	f.addReading(t, normal.ID, date(2023, time.June, 1), readingdomain.UnitKWH, "10")
	f.addReading(t, normal.ID, date(2023, time.July, 1), readingdomain.UnitKWH, "40")
	// Outside the requested year.
	f.addReading(t, normal.ID, date(2022, time.December, 1), readingdomain.UnitKWH, "0")

	usage, err := f.svc.MonthlyUsage(context.Background(), 2023)
	require.NoError(t, err)

	assert.True(t, usage.StandII[5].IsZero(), "negative delta ignored")
	assert.True(t, usage.StandII[6].Equal(decimal.NewFromInt(30)))
	assert.True(t, usage.StandII[0].IsZero(), "prior-year reading is not a baseline")
}

func TestMonthlyUsage_SumsSolarProductionByMonth(t *testing.T) {
	f := newFixture(t)

	for day, amount := range map[int]string{1: "2.5", 2: "3.5", 15: "4"} {
		solar := solardomain.SolarReading{
			ID:             f.genID.Generate(),
			ProductionDate: date(2023, time.April, day),
			PanelSerialNbr: "PNL-1",
			EnergyProduced: decimal.RequireFromString(amount),
			Unit:           readingdomain.UnitKWH,
		}
		require.NoError(t, f.db.Create(&solar).Error)
	}

	usage, err := f.svc.MonthlyUsage(context.Background(), 2023)
	require.NoError(t, err)

	assert.True(t, usage.Solar[3].Equal(decimal.NewFromInt(10)), "april = %s", usage.Solar[3])
}

func TestMonthlyUsage_RejectsNonsenseYears(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.MonthlyUsage(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidYear)
}
