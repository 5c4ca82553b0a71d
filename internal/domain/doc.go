// Package domain models photovoltaic plant parameters and the synthetic
// 14-day yield forecast derived from them.
//
// # Forecast Model
//
// The forecast is a placeholder, not a physical model. Power output follows a
// single idealized daylight curve that repeats every 24 hours:
//
//	power(h) = capacity_kw · performance_ratio · clip(sin(π·h/23), 0, 1)
//
// for hour-of-series h mod 24. The curve is zero at hours 0 and 23 and peaks
// near hour 11–12. Because the shape is tiled across the horizon, the power
// column is strictly periodic with period 24: point i and point i+24 always
// carry the same power value.
//
// The weather columns are uniform random draws with no relationship to the
// power column or to each other. They exist as display decoration:
//
//	cloud cover   integer in [0, 100)   percent
//	temperature   real in [0, 30)       °C
//	DNI           real in [0, 1000)     direct normal irradiance proxy
//	DHI           real in [0, 500)      diffuse horizontal irradiance proxy
//
// # Plant Parameters
//
// Latitude, longitude, and mounting type are validated and recorded but never
// influence the computation. The original tool collected them for a
// location/mounting-aware model that was never built; they are kept as
// documented placeholders rather than silently given physics.
//
// # Determinism
//
// Timestamps come from the package clock (swap with [SetClock] in tests).
// Weather randomness comes from the generator's own source: [NewGenerator]
// seeds from the clock so successive runs differ, [NewSeededGenerator]
// reproduces a run exactly.
package domain
