// Package ranking orders energy listings for a buyer.
//
// Listings are scored on price, availability and energy type. Distance to the
// buyer is reported but never weighted into the score; callers use it for
// cut-offs. When any listing in a batch cannot be scored the whole batch is
// ranked by inverse distance instead.
package ranking

import (
	"math"
	"sort"

	"github.com/UnknownOlympus/ecohub/internal/geo"
)

// Mode tells which scoring path produced a Result.
type Mode string

const (
	// ModeScored is the weighted price/availability/energy type ranking.
	ModeScored Mode = "scored"
	// ModeDistanceFallback ranks by 1/(distance+1) with neutral sub-scores.
	ModeDistanceFallback Mode = "distance_fallback"
)

// Listing is the part of an energy listing the engine needs.
// A nil pointer or an empty EnergyType marks a missing field.
type Listing struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title,omitempty"`
	EnergyType   string     `json:"energy_type"`
	PricePerKWh  *float64   `json:"price_per_kwh"`
	AvailableKWh *float64   `json:"available_kwh"`
	Location     *geo.Point `json:"location"`
}

// RankedListing is a scored copy of a Listing.
type RankedListing struct {
	Listing

	// DistanceKM is nil only in fallback mode for a listing without usable coordinates.
	DistanceKM        *float64 `json:"distance_km"`
	PriceScore        float64  `json:"price_score"`
	AvailabilityScore float64  `json:"availability_score"`
	EnergyTypeScore   float64  `json:"energy_type_score"`
	Score             float64  `json:"score"`
}

// Result is the ranked batch and the mode used to rank it.
type Result struct {
	Mode     Mode            `json:"mode"`
	Listings []RankedListing `json:"listings"`
}

// Rank scores listings for a buyer at the given location and returns them best first.
func Rank(buyer geo.Point, listings []Listing) []RankedListing {
	return Evaluate(buyer, listings).Listings
}

// Evaluate is Rank that also reports which scoring mode was used.
// It never fails: a single malformed listing switches the batch to ModeDistanceFallback.
func Evaluate(buyer geo.Point, listings []Listing) Result {
	for i := range listings {
		if !scorable(listings[i]) {
			return Result{Mode: ModeDistanceFallback, Listings: rankByDistance(buyer, listings)}
		}
	}

	return Result{Mode: ModeScored, Listings: rankByScore(buyer, listings)}
}

func rankByScore(buyer geo.Point, listings []Listing) []RankedListing {
	ranked := make([]RankedListing, 0, len(listings))
	for _, listing := range listings {
		distance := round2(geo.Distance(buyer, *listing.Location))
		priceScore := PriceScore(*listing.PricePerKWh)
		availabilityScore := AvailabilityScore(*listing.AvailableKWh)
		energyTypeScore := EnergyTypeScore(listing.EnergyType)

		ranked = append(ranked, RankedListing{
			Listing:           listing,
			DistanceKM:        &distance,
			PriceScore:        priceScore,
			AvailabilityScore: availabilityScore,
			EnergyTypeScore:   energyTypeScore,
			Score:             round2(CompositeScore(priceScore, availabilityScore, energyTypeScore)),
		})
	}

	sortByScore(ranked)

	return ranked
}

func rankByDistance(buyer geo.Point, listings []Listing) []RankedListing {
	ranked := make([]RankedListing, 0, len(listings))
	for _, listing := range listings {
		item := RankedListing{
			Listing:           listing,
			PriceScore:        NeutralScore,
			AvailabilityScore: NeutralScore,
			EnergyTypeScore:   NeutralScore,
		}

		if listing.Location != nil && finitePoint(*listing.Location) {
			raw := geo.Distance(buyer, *listing.Location)
			distance := round2(raw)
			item.DistanceKM = &distance
			item.Score = round2(1.0 / (raw + 1.0))
		}

		ranked = append(ranked, item)
	}

	sortByScore(ranked)

	return ranked
}

// sortByScore orders by Score descending and keeps input order on ties.
func sortByScore(ranked []RankedListing) {
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
}

func scorable(listing Listing) bool {
	if listing.EnergyType == "" || listing.PricePerKWh == nil || listing.AvailableKWh == nil || listing.Location == nil {
		return false
	}

	return finite(*listing.PricePerKWh) && finite(*listing.AvailableKWh) && finitePoint(*listing.Location)
}

func finitePoint(p geo.Point) bool {
	return finite(p.Latitude) && finite(p.Longitude)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
