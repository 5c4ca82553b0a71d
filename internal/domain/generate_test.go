package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2026, time.August, 28, 9, 30, 0, 0, time.UTC)

func testPlant() PlantConfig {
	return PlantConfig{
		Latitude:         48.2,
		Longitude:        16.4,
		CapacityKW:       10,
		Mounting:         MountingFlatRoof,
		PerformanceRatio: 0.85,
	}
}

func frozenGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	SetClock(clockwork.NewFakeClockAt(testStart))
	t.Cleanup(func() { SetClock(nil) })
	return NewSeededGenerator(seed)
}

func TestDailyShape(t *testing.T) {
	shape := DailyShape(10, 0.85)

	assert.Equal(t, 0.0, shape[0], "first hour must be zero")
	assert.Equal(t, 0.0, shape[23], "last hour must be zero")

	peak := 10 * 0.85
	maxHour := 0
	for h, v := range shape {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, peak)
		if v > shape[maxHour] {
			maxHour = h
		}
	}
	// sin(π·h/23) peaks between hours 11 and 12, symmetric around 11.5.
	assert.Contains(t, []int{11, 12}, maxHour)
	assert.InDelta(t, shape[11], shape[12], 1e-12)
}

func TestGenerate_RowCount(t *testing.T) {
	tests := []struct {
		name string
		days int
		want int
	}{
		{"one day", 1, 24},
		{"default horizon", DefaultDays, 336},
		{"long horizon", 30, 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := frozenGenerator(t, 1)
			series, err := g.Generate(testPlant(), tt.days)

			require.NoError(t, err)
			assert.Len(t, series.Points, tt.want)
		})
	}
}

func TestGenerate_DaysMustBePositive(t *testing.T) {
	g := frozenGenerator(t, 1)

	for _, days := range []int{0, -1, -14} {
		_, err := g.Generate(testPlant(), days)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	}
}

func TestGenerate_PowerPeriodic(t *testing.T) {
	g := frozenGenerator(t, 7)
	series, err := g.Generate(testPlant(), DefaultDays)
	require.NoError(t, err)

	for i := 0; i+HoursPerDay < len(series.Points); i++ {
		assert.Equal(t, series.Points[i].PowerKW, series.Points[i+HoursPerDay].PowerKW,
			"power at row %d differs from row %d", i, i+HoursPerDay)
	}
}

func TestGenerate_PowerBounds(t *testing.T) {
	cfg := testPlant()
	g := frozenGenerator(t, 7)
	series, err := g.Generate(cfg, 3)
	require.NoError(t, err)

	peak := cfg.CapacityKW * cfg.PerformanceRatio
	for i, p := range series.Points {
		assert.GreaterOrEqual(t, p.PowerKW, 0.0, "row %d", i)
		assert.LessOrEqual(t, p.PowerKW, peak, "row %d", i)

		switch i % HoursPerDay {
		case 0, 23:
			assert.Equal(t, 0.0, p.PowerKW, "row %d should be a zero hour", i)
		}
	}
}

func TestGenerate_WeatherRanges(t *testing.T) {
	g := frozenGenerator(t, 99)
	series, err := g.Generate(testPlant(), DefaultDays)
	require.NoError(t, err)

	for i, p := range series.Points {
		assert.GreaterOrEqual(t, p.CloudCoverPercent, 0, "cloud row %d", i)
		assert.Less(t, p.CloudCoverPercent, 100, "cloud row %d", i)
		assert.GreaterOrEqual(t, p.TemperatureC, 0.0, "temp row %d", i)
		assert.Less(t, p.TemperatureC, 30.0, "temp row %d", i)
		assert.GreaterOrEqual(t, p.DNI, 0.0, "dni row %d", i)
		assert.Less(t, p.DNI, 1000.0, "dni row %d", i)
		assert.GreaterOrEqual(t, p.DHI, 0.0, "dhi row %d", i)
		assert.Less(t, p.DHI, 500.0, "dhi row %d", i)
	}
}

func TestGenerate_TimestampsHourly(t *testing.T) {
	g := frozenGenerator(t, 1)
	series, err := g.Generate(testPlant(), 2)
	require.NoError(t, err)

	assert.Equal(t, testStart, series.GeneratedAt)
	assert.Equal(t, testStart, series.Points[0].Time)
	for i := 1; i < len(series.Points); i++ {
		assert.Equal(t, time.Hour, series.Points[i].Time.Sub(series.Points[i-1].Time),
			"spacing between row %d and %d", i-1, i)
	}
}

func TestGenerate_ExampleScenario(t *testing.T) {
	// capacity 10 kWp, performance ratio 0.85, one day.
	g := frozenGenerator(t, 42)
	series, err := g.Generate(testPlant(), 1)
	require.NoError(t, err)

	require.Len(t, series.Points, 24)
	assert.Equal(t, 0.0, series.Points[0].PowerKW)
	assert.Equal(t, 0.0, series.Points[23].PowerKW)

	maxRow := 0
	for i, p := range series.Points {
		if p.PowerKW > series.Points[maxRow].PowerKW {
			maxRow = i
		}
	}
	assert.Contains(t, []int{11, 12}, maxRow)
	assert.LessOrEqual(t, series.Points[maxRow].PowerKW, 8.5)
}

func TestGenerate_FourteenDaySum(t *testing.T) {
	g := frozenGenerator(t, 42)
	series, err := g.Generate(testPlant(), DefaultDays)
	require.NoError(t, err)

	var oneDay float64
	for _, v := range DailyShape(10, 0.85) {
		oneDay += v
	}

	var total float64
	for _, p := range series.Points {
		total += p.PowerKW
	}
	assert.InDelta(t, 14*oneDay, total, 1e-9)
}

func TestGenerate_SeededReproducible(t *testing.T) {
	cfg := testPlant()

	a, err := frozenGenerator(t, 1234).Generate(cfg, 2)
	require.NoError(t, err)
	b, err := frozenGenerator(t, 1234).Generate(cfg, 2)
	require.NoError(t, err)

	assert.Equal(t, a.Points, b.Points, "same seed and clock must reproduce every point")
	assert.NotEqual(t, a.ID, b.ID, "each run gets its own ID")

	c, err := frozenGenerator(t, 5678).Generate(cfg, 2)
	require.NoError(t, err)
	assert.NotEqual(t, a.Points, c.Points, "different seeds should differ in the weather columns")
}
