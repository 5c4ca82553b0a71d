package domain

import (
	"time"
)

// ForecastPoint is one hourly row of the synthetic forecast.
type ForecastPoint struct {
	Time              time.Time `json:"time"`
	PowerKW           float64   `json:"forecast_power_kw"`
	CloudCoverPercent int       `json:"cloud_cover_percent"`
	TemperatureC      float64   `json:"temperature_c"`
	DNI               float64   `json:"dni"`
	DHI               float64   `json:"dhi"`
}

// ForecastSeries is the result of one generator run. It is held only for the
// duration of the display session and never persisted; a new run replaces it.
type ForecastSeries struct {
	ID          string          `json:"id"`
	Plant       PlantConfig     `json:"plant"`
	GeneratedAt time.Time       `json:"generated_at"`
	Points      []ForecastPoint `json:"points"`
}

// Summary holds the headline metrics shown above the forecast table.
type Summary struct {
	MaxPowerKW     float64 // highest hourly output over the horizon
	MeanPowerKW    float64 // average hourly output
	TotalEnergyKWh float64 // sum of hourly kW values ≈ energy over the horizon
	MeanCloudCover float64 // average cloud cover percentage
}

// Summarize computes the aggregate statistics over all points.
func (s ForecastSeries) Summarize() Summary {
	if len(s.Points) == 0 {
		return Summary{}
	}

	var sum Summary
	var cloudSum float64
	for _, p := range s.Points {
		if p.PowerKW > sum.MaxPowerKW {
			sum.MaxPowerKW = p.PowerKW
		}
		sum.TotalEnergyKWh += p.PowerKW
		cloudSum += float64(p.CloudCoverPercent)
	}

	n := float64(len(s.Points))
	sum.MeanPowerKW = sum.TotalEnergyKWh / n
	sum.MeanCloudCover = cloudSum / n
	return sum
}
