package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors forming the two-category taxonomy: configuration problems
// the user can fix vs unexpected internal faults during generation.
var (
	ErrInvalidConfig = errors.New("invalid plant configuration")
	ErrGeneration    = errors.New("forecast generation failed")
)

// MountingType is the physical installation style of the panels. It is
// collected from the user but does not influence the forecast (see package doc).
type MountingType string

// Mounting options, matching the original German form labels.
const (
	MountingFlatRoof         MountingType = "Flachdach"
	MountingPitchedSouth     MountingType = "Schrägdach Süd"
	MountingPitchedSouthwest MountingType = "Schrägdach Südwest"
	MountingFacade           MountingType = "Fassade"
)

// MountingTypes lists all accepted mounting options in form order.
var MountingTypes = []MountingType{
	MountingFlatRoof,
	MountingPitchedSouth,
	MountingPitchedSouthwest,
	MountingFacade,
}

// ParseMounting matches a user-supplied string against the known mounting types.
func ParseMounting(s string) (MountingType, error) {
	for _, m := range MountingTypes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: unknown mounting type %q", ErrInvalidConfig, s)
}

// Accepted input ranges, taken from the original form's widget constraints.
const (
	MinLatitude  = 45.0
	MaxLatitude  = 49.0
	MinLongitude = 14.0
	MaxLongitude = 18.0

	MinCapacityKW = 1.0
	MaxCapacityKW = 50.0

	MinPerformanceRatio = 0.70
	MaxPerformanceRatio = 0.90
)

// PlantConfig holds the parameters of one photovoltaic plant. Immutable once
// built; one config is created per forecast request.
type PlantConfig struct {
	Latitude         float64      // degrees north, placeholder (unused by the model)
	Longitude        float64      // degrees east, placeholder (unused by the model)
	CapacityKW       float64      // peak capacity in kWp
	Mounting         MountingType // placeholder (unused by the model)
	PerformanceRatio float64      // system-loss fraction in [0.70, 0.90]
}

// PerformanceRatioFromPercent converts the form's percentage slider value
// (e.g. 85) to the fraction the model works with (0.85).
func PerformanceRatioFromPercent(percent float64) float64 {
	return percent / 100
}

// Validate checks every field against the accepted input ranges. All
// violations are reported, each wrapped in ErrInvalidConfig.
func (c PlantConfig) Validate() error {
	var errs []error

	if c.Latitude < MinLatitude || c.Latitude > MaxLatitude {
		errs = append(errs, fmt.Errorf("%w: latitude %.2f outside [%.1f, %.1f]",
			ErrInvalidConfig, c.Latitude, MinLatitude, MaxLatitude))
	}
	if c.Longitude < MinLongitude || c.Longitude > MaxLongitude {
		errs = append(errs, fmt.Errorf("%w: longitude %.2f outside [%.1f, %.1f]",
			ErrInvalidConfig, c.Longitude, MinLongitude, MaxLongitude))
	}
	if c.CapacityKW < MinCapacityKW || c.CapacityKW > MaxCapacityKW {
		errs = append(errs, fmt.Errorf("%w: capacity %.1f kWp outside [%.0f, %.0f]",
			ErrInvalidConfig, c.CapacityKW, MinCapacityKW, MaxCapacityKW))
	}
	if _, err := ParseMounting(string(c.Mounting)); err != nil {
		errs = append(errs, err)
	}
	if c.PerformanceRatio < MinPerformanceRatio || c.PerformanceRatio > MaxPerformanceRatio {
		errs = append(errs, fmt.Errorf("%w: performance ratio %.2f outside [%.2f, %.2f]",
			ErrInvalidConfig, c.PerformanceRatio, MinPerformanceRatio, MaxPerformanceRatio))
	}

	return errors.Join(errs...)
}
