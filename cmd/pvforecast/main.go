// Command pvforecast produces a synthetic photovoltaic yield forecast from
// plant parameters, prints summary statistics and the hourly table, and
// writes a date-stamped CSV export.
//
// Usage:
//
//	pvforecast --lat 48.2 --lon 16.4 --capacity 10 \
//	  --mounting "Schrägdach Süd" --pr 85 --days 14 --out-dir .
//
// Flag defaults match the original form's defaults. Environment variables
// (FORECAST_DAYS, OUTPUT_DIR, LOG_LEVEL, LOG_FORMAT, optionally from a .env
// file) supply the baseline; flags win when set.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/solartools/pv-forecast/internal/config"
	"github.com/solartools/pv-forecast/internal/domain"
	"github.com/solartools/pv-forecast/internal/export"
	"github.com/solartools/pv-forecast/internal/observability"
	"github.com/solartools/pv-forecast/internal/report"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Fehler: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) (err error) {
	// Catch-all: a fault anywhere in generation or rendering becomes one
	// readable message instead of a crash.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", domain.ErrGeneration, r)
		}
	}()

	// A missing .env file is fine; explicit env vars still apply.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := observability.NewLogger(cfg, os.Stderr)

	flags := pflag.NewFlagSet("pvforecast", pflag.ContinueOnError)
	lat := flags.Float64("lat", 48.2, "Breitengrad [45.0, 49.0]")
	lon := flags.Float64("lon", 16.4, "Längengrad [14.0, 18.0]")
	capacity := flags.Float64("capacity", 10, "PV-Größe in kWp [1, 50]")
	mounting := flags.String("mounting", string(domain.MountingFlatRoof),
		fmt.Sprintf("Montageart %v", domain.MountingTypes))
	prPercent := flags.Float64("pr", 85, "Leistungskoeffizient in % [70, 90]")
	days := flags.Int("days", cfg.ForecastDays, "Prognosehorizont in Tagen")
	seed := flags.Int64("seed", 0, "fixed random seed for the weather columns (0 = from clock)")
	outDir := flags.String("out-dir", cfg.OutputDir, "directory for the CSV export")
	noCSV := flags.Bool("no-csv", false, "skip the CSV export")
	quiet := flags.Bool("quiet", false, "suppress the summary and table output")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	mount, err := domain.ParseMounting(*mounting)
	if err != nil {
		return err
	}

	plant := domain.PlantConfig{
		Latitude:         *lat,
		Longitude:        *lon,
		CapacityKW:       *capacity,
		Mounting:         mount,
		PerformanceRatio: domain.PerformanceRatioFromPercent(*prPercent),
	}
	if err := plant.Validate(); err != nil {
		return err
	}

	gen := domain.NewGenerator()
	if *seed != 0 {
		gen = domain.NewSeededGenerator(*seed)
	}

	series, err := gen.Generate(plant, *days)
	if err != nil {
		return err
	}
	logger.Debug("forecast generated",
		"id", series.ID, "days", *days, "rows", len(series.Points))

	if !*quiet {
		if err := report.WriteSummary(os.Stdout, *days, series.Summarize()); err != nil {
			return err
		}
		fmt.Println()
		if err := report.WriteTable(os.Stdout, series); err != nil {
			return err
		}
	}

	if !*noCSV {
		path, err := export.WriteFile(*outDir, series)
		if err != nil {
			return err
		}
		logger.Info("forecast exported", "path", path, "rows", len(series.Points))
	}

	return nil
}
