// Command validate checks an exported forecast CSV for integrity: header
// exactness, row count, timestamp spacing, power periodicity and bounds, and
// weather column ranges.
//
// Usage:
//
//	go run ./cmd/validate -csv pv_prognose_2026-08-28.csv \
//	  -capacity 10 -pr 85
//
// Capacity and performance ratio are optional; when given, the power column
// is additionally checked against its theoretical peak.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/solartools/pv-forecast/internal/domain"
	"github.com/solartools/pv-forecast/internal/export"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	csvPath := flag.String("csv", "", "path to an exported forecast CSV")
	capacity := flag.Float64("capacity", 0, "plant capacity in kWp (optional, enables the peak bound check)")
	prPercent := flag.Float64("pr", 0, "performance ratio in percent (optional, enables the peak bound check)")
	flag.Parse()

	if *csvPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*csvPath, *capacity, *prPercent); code != 0 {
		os.Exit(code)
	}
}

func run(csvPath string, capacity, prPercent float64) int {
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v\n", csvPath, err)
		return 1
	}
	defer f.Close()

	parse := &phase{name: "parse"}
	points, err := export.ReadCSV(f)
	if err != nil {
		parse.errorf("%v", err)
		report(parse)
		return 1
	}

	phases := []*phase{
		parse,
		checkRowCount(points),
		checkTimestamps(points),
		checkPeriodicity(points),
		checkPowerBounds(points, capacity, prPercent),
		checkWeatherRanges(points),
	}

	failed := 0
	for _, p := range phases {
		report(p)
		if !p.passed() {
			failed++
		}
	}

	if failed > 0 {
		fmt.Printf("\n%d of %d phases failed\n", failed, len(phases))
		return 1
	}
	fmt.Printf("\nall %d phases passed (%d rows)\n", len(phases), len(points))
	return 0
}

func report(p *phase) {
	if p.passed() {
		fmt.Printf("PASS %s\n", p.name)
		return
	}
	fmt.Printf("FAIL %s\n", p.name)
	for _, e := range p.errors {
		fmt.Printf("  - %s\n", e)
	}
}

func checkRowCount(points []domain.ForecastPoint) *phase {
	p := &phase{name: "row count"}
	if len(points) == 0 {
		p.errorf("no data rows")
		return p
	}
	if len(points)%domain.HoursPerDay != 0 {
		p.errorf("%d rows is not a whole number of days", len(points))
	}
	return p
}

func checkTimestamps(points []domain.ForecastPoint) *phase {
	p := &phase{name: "timestamps"}
	for i := 1; i < len(points); i++ {
		if d := points[i].Time.Sub(points[i-1].Time); d != time.Hour {
			p.errorf("row %d: spacing %s, want 1h", i, d)
		}
	}
	return p
}

func checkPeriodicity(points []domain.ForecastPoint) *phase {
	p := &phase{name: "power periodicity"}
	for i := 0; i+domain.HoursPerDay < len(points); i++ {
		if points[i].PowerKW != points[i+domain.HoursPerDay].PowerKW {
			p.errorf("row %d power %v differs from row %d power %v",
				i, points[i].PowerKW, i+domain.HoursPerDay, points[i+domain.HoursPerDay].PowerKW)
		}
	}
	for i := range points {
		if h := i % domain.HoursPerDay; (h == 0 || h == 23) && points[i].PowerKW != 0 {
			p.errorf("row %d: expected zero power at cycle hour %d, got %v", i, h, points[i].PowerKW)
		}
	}
	return p
}

func checkPowerBounds(points []domain.ForecastPoint, capacity, prPercent float64) *phase {
	p := &phase{name: "power bounds"}
	peak := capacity * domain.PerformanceRatioFromPercent(prPercent)
	for i, pt := range points {
		if pt.PowerKW < 0 {
			p.errorf("row %d: negative power %v", i, pt.PowerKW)
		}
		if peak > 0 && pt.PowerKW > peak {
			p.errorf("row %d: power %v above theoretical peak %v", i, pt.PowerKW, peak)
		}
	}
	return p
}

func checkWeatherRanges(points []domain.ForecastPoint) *phase {
	p := &phase{name: "weather ranges"}
	for i, pt := range points {
		if pt.CloudCoverPercent < 0 || pt.CloudCoverPercent >= 100 {
			p.errorf("row %d: cloud cover %d outside [0, 100)", i, pt.CloudCoverPercent)
		}
		if pt.TemperatureC < 0 || pt.TemperatureC >= 30 {
			p.errorf("row %d: temperature %v outside [0, 30)", i, pt.TemperatureC)
		}
		if pt.DNI < 0 || pt.DNI >= 1000 {
			p.errorf("row %d: DNI %v outside [0, 1000)", i, pt.DNI)
		}
		if pt.DHI < 0 || pt.DHI >= 500 {
			p.errorf("row %d: DHI %v outside [0, 500)", i, pt.DHI)
		}
	}
	return p
}
