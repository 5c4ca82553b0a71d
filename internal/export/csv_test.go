package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solartools/pv-forecast/internal/domain"
)

func testSeries(t *testing.T) domain.ForecastSeries {
	t.Helper()
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC),
	))
	t.Cleanup(func() { domain.SetClock(nil) })

	series, err := domain.NewSeededGenerator(42).Generate(domain.PlantConfig{
		Latitude:         48.2,
		Longitude:        16.4,
		CapacityKW:       10,
		Mounting:         domain.MountingFlatRoof,
		PerformanceRatio: 0.85,
	}, 2)
	require.NoError(t, err)
	return series
}

func TestFilename(t *testing.T) {
	ts := time.Date(2026, time.August, 28, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "pv_prognose_2026-08-28.csv", Filename(ts))
}

func TestWriteCSV_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testSeries(t)))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "time,forecast_power_kw,cloud_cover_percent,temperature_c,DNI,DHI", lines[0])
	// header + 48 data rows + trailing newline
	assert.Len(t, lines, 50)
}

func TestRoundTrip(t *testing.T) {
	series := testSeries(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, series))

	got, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(series.Points))

	for i, want := range series.Points {
		assert.True(t, got[i].Time.Equal(want.Time), "row %d time", i)
		assert.Equal(t, want.PowerKW, got[i].PowerKW, "row %d power", i)
		assert.Equal(t, want.CloudCoverPercent, got[i].CloudCoverPercent, "row %d cloud", i)
		assert.Equal(t, want.TemperatureC, got[i].TemperatureC, "row %d temp", i)
		assert.Equal(t, want.DNI, got[i].DNI, "row %d dni", i)
		assert.Equal(t, want.DHI, got[i].DHI, "row %d dhi", i)
	}
}

func TestWriteFile(t *testing.T) {
	series := testSeries(t)
	dir := t.TempDir()

	path, err := WriteFile(dir, series)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pv_prognose_2026-08-28.csv"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := ReadCSV(f)
	require.NoError(t, err)
	assert.Len(t, got, 48)
}

func TestReadCSV_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty file", ""},
		{"wrong header", "zeit,leistung,wolken,temp,DNI,DHI\n"},
		{"bad timestamp", "time,forecast_power_kw,cloud_cover_percent,temperature_c,DNI,DHI\nyesterday,1,2,3,4,5\n"},
		{"bad power", "time,forecast_power_kw,cloud_cover_percent,temperature_c,DNI,DHI\n2026-08-28T09:00:00Z,x,2,3,4,5\n"},
		{"short row", "time,forecast_power_kw,cloud_cover_percent,temperature_c,DNI,DHI\n2026-08-28T09:00:00Z,1,2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}
