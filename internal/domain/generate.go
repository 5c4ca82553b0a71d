package domain

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultDays is the forecast horizon when the caller does not choose one.
	DefaultDays = 14

	// HoursPerDay is the length of the tiled daily power shape.
	HoursPerDay = 24
)

// Weather column upper bounds (all draws are uniform over [0, bound)).
const (
	maxCloudCover   = 100
	maxTemperatureC = 30.0
	maxDNI          = 1000.0
	maxDHI          = 500.0
)

// DailyShape returns the 24-hour idealized output curve for a plant:
// sin(π·h/23) clipped to [0, 1], scaled by capacity and performance ratio.
// Hours 0 and 23 are zero; the peak sits at hours 11 and 12.
func DailyShape(capacityKW, performanceRatio float64) [HoursPerDay]float64 {
	var shape [HoursPerDay]float64
	peak := capacityKW * performanceRatio
	for h := 0; h < HoursPerDay; h++ {
		v := math.Sin(math.Pi * float64(h) / (HoursPerDay - 1))
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		shape[h] = peak * v
	}
	return shape
}

// Generator produces synthetic forecast series. Timestamps come from the
// package clock; the weather columns come from the generator's own random
// source so a seeded generator reproduces a run exactly.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded from the current clock, matching
// the original tool's run-to-run variation in the weather columns.
func NewGenerator() *Generator {
	return NewSeededGenerator(clock.Now().UnixNano())
}

// NewSeededGenerator returns a generator with a fixed seed for reproducible
// weather columns.
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces a forecast of exactly days*24 hourly points starting at
// the current clock time. The power column is the daily shape tiled across
// the horizon; the weather columns are independent uniform draws per point.
//
// Out-of-range plant parameters are not rejected here (callers validate via
// PlantConfig.Validate) and yield degenerate but well-formed output.
func (g *Generator) Generate(cfg PlantConfig, days int) (ForecastSeries, error) {
	if days <= 0 {
		return ForecastSeries{}, fmt.Errorf("%w: days must be positive, got %d", ErrInvalidConfig, days)
	}

	shape := DailyShape(cfg.CapacityKW, cfg.PerformanceRatio)
	now := clock.Now()
	hours := days * HoursPerDay

	points := make([]ForecastPoint, hours)
	for i := 0; i < hours; i++ {
		points[i] = ForecastPoint{
			Time:              now.Add(time.Duration(i) * time.Hour),
			PowerKW:           shape[i%HoursPerDay],
			CloudCoverPercent: g.rng.Intn(maxCloudCover),
			TemperatureC:      g.rng.Float64() * maxTemperatureC,
			DNI:               g.rng.Float64() * maxDNI,
			DHI:               g.rng.Float64() * maxDHI,
		}
	}

	return ForecastSeries{
		ID:          uuid.NewString(),
		Plant:       cfg,
		GeneratedAt: now,
		Points:      points,
	}, nil
}
