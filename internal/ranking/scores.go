package ranking

import "strings"

// Composite score weights. They sum to 1.
const (
	PriceWeight        = 0.4
	AvailabilityWeight = 0.3
	EnergyTypeWeight   = 0.3
)

// Price band in currency per kWh. Prices outside the band saturate.
const (
	PriceFloor   = 0.10
	PriceCeiling = 0.50
)

// Availability tiers in kWh and the score each tier earns.
const (
	AvailabilityHighKWh   = 1000.0
	AvailabilityMediumKWh = 500.0
	AvailabilityLowKWh    = 100.0

	AvailabilityHighScore    = 1.0
	AvailabilityMediumScore  = 0.8
	AvailabilityLowScore     = 0.6
	AvailabilityMinimalScore = 0.4
)

// DefaultEnergyTypeScore is returned for energy types missing from EnergyTypeScores.
const DefaultEnergyTypeScore = 0.5

// NeutralScore replaces every sub-score in distance fallback mode.
const NeutralScore = 0.5

// EnergyTypeScores holds the static preference for each energy source, keyed by lower-case name.
var EnergyTypeScores = map[string]float64{
	"solar":      1.0,
	"wind":       0.9,
	"geothermal": 0.9,
	"hydro":      0.8,
	"biomass":    0.7,
}

// PriceScore maps a price per kWh to [0, 1], cheaper is better.
func PriceScore(price float64) float64 {
	switch {
	case price <= PriceFloor:
		return 1.0
	case price >= PriceCeiling:
		return 0.0
	default:
		return 1.0 - (price-PriceFloor)/(PriceCeiling-PriceFloor)
	}
}

// AvailabilityScore buckets the available quantity into four tiers.
func AvailabilityScore(availableKWh float64) float64 {
	switch {
	case availableKWh >= AvailabilityHighKWh:
		return AvailabilityHighScore
	case availableKWh >= AvailabilityMediumKWh:
		return AvailabilityMediumScore
	case availableKWh >= AvailabilityLowKWh:
		return AvailabilityLowScore
	default:
		return AvailabilityMinimalScore
	}
}

// EnergyTypeScore looks the energy type up case-insensitively.
func EnergyTypeScore(energyType string) float64 {
	if score, ok := EnergyTypeScores[strings.ToLower(strings.TrimSpace(energyType))]; ok {
		return score
	}

	return DefaultEnergyTypeScore
}

// CompositeScore is the weighted sum of the three sub-scores, unrounded.
func CompositeScore(priceScore, availabilityScore, energyTypeScore float64) float64 {
	return priceScore*PriceWeight + availabilityScore*AvailabilityWeight + energyTypeScore*EnergyTypeWeight
}
