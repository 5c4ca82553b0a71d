// Package export serializes forecast series to the downloadable CSV format.
//
// The file carries raw, unrounded values so a parse of the export reproduces
// the generator's output exactly; display rounding is the report package's
// concern. Column order matches the original tool's download:
//
//	time,forecast_power_kw,cloud_cover_percent,temperature_c,DNI,DHI
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/solartools/pv-forecast/internal/domain"
)

// Header is the exact header row of an export, in column order.
var Header = []string{"time", "forecast_power_kw", "cloud_cover_percent", "temperature_c", "DNI", "DHI"}

// Filename returns the date-stamped export name, e.g. pv_prognose_2026-08-28.csv.
func Filename(t time.Time) string {
	return fmt.Sprintf("pv_prognose_%s.csv", t.Format("2006-01-02"))
}

// WriteCSV writes the header row and one data row per forecast point.
// Floats use the shortest representation that survives a round-trip.
func WriteCSV(w io.Writer, series domain.ForecastSeries) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i, p := range series.Points {
		rec := []string{
			p.Time.Format(time.RFC3339),
			formatFloat(p.PowerKW),
			strconv.Itoa(p.CloudCoverPercent),
			formatFloat(p.TemperatureC),
			formatFloat(p.DNI),
			formatFloat(p.DHI),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the export into dir under the date-stamped name and
// returns the full path.
func WriteFile(dir string, series domain.ForecastSeries) (string, error) {
	path := filepath.Join(dir, Filename(series.GeneratedAt))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, series); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	return path, nil
}

// ReadCSV parses an exported file back into forecast points, verifying the
// header row. Used by cmd/validate and the round-trip tests.
func ReadCSV(r io.Reader) ([]domain.ForecastPoint, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read csv: empty file")
	}

	for i, col := range Header {
		if rows[0][i] != col {
			return nil, fmt.Errorf("read csv: header column %d is %q, want %q", i, rows[0][i], col)
		}
	}

	points := make([]domain.ForecastPoint, 0, len(rows)-1)
	for i, row := range rows[1:] {
		p, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("read csv: data row %d: %w", i+1, err)
		}
		points = append(points, p)
	}
	return points, nil
}

func parseRow(row []string) (domain.ForecastPoint, error) {
	ts, err := time.Parse(time.RFC3339, row[0])
	if err != nil {
		return domain.ForecastPoint{}, fmt.Errorf("time: %w", err)
	}
	power, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return domain.ForecastPoint{}, fmt.Errorf("forecast_power_kw: %w", err)
	}
	cloud, err := strconv.Atoi(row[2])
	if err != nil {
		return domain.ForecastPoint{}, fmt.Errorf("cloud_cover_percent: %w", err)
	}
	temp, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return domain.ForecastPoint{}, fmt.Errorf("temperature_c: %w", err)
	}
	dni, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return domain.ForecastPoint{}, fmt.Errorf("DNI: %w", err)
	}
	dhi, err := strconv.ParseFloat(row[5], 64)
	if err != nil {
		return domain.ForecastPoint{}, fmt.Errorf("DHI: %w", err)
	}

	return domain.ForecastPoint{
		Time:              ts,
		PowerKW:           power,
		CloudCoverPercent: cloud,
		TemperatureC:      temp,
		DNI:               dni,
		DHI:               dhi,
	}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
