package models

import (
	"time"

	"github.com/UnknownOlympus/ecohub/internal/geo"
)

// Listing statuses.
const (
	ListingStatusActive   = "active"
	ListingStatusInactive = "inactive"
	ListingStatusSold     = "sold"
)

// EnergyTypes are the energy sources a listing may offer.
var EnergyTypes = []string{"Solar", "Wind", "Hydro", "Biomass", "Geothermal"}

// IsValidEnergyType reports whether energyType is one of EnergyTypes (exact match).
func IsValidEnergyType(energyType string) bool {
	for _, t := range EnergyTypes {
		if t == energyType {
			return true
		}
	}

	return false
}

// Listing represents a supplier's offer of energy on the marketplace.
// Latitude and Longitude stay nil until the geocoding worker resolves Location.
type Listing struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"userId"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	EnergyType        string    `json:"energyType"`
	AvailableKWh      float64   `json:"quantity"`
	PricePerKWh       float64   `json:"price"`
	Location          string    `json:"location"`
	Latitude          *float64  `json:"latitude,omitempty"`
	Longitude         *float64  `json:"longitude,omitempty"`
	Status            string    `json:"status"`
	ImageURL          *string   `json:"imageUrl"`
	GeocodingAttempts int       `json:"-"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Point returns the listing coordinates, or nil if the listing is not geocoded yet.
func (l Listing) Point() *geo.Point {
	if l.Latitude == nil || l.Longitude == nil {
		return nil
	}

	return &geo.Point{Latitude: *l.Latitude, Longitude: *l.Longitude}
}

// ListingFilter narrows ListListings. Zero values disable a filter.
type ListingFilter struct {
	Status     string
	EnergyType string
	Limit      int
}

// ListingUpdate is a partial update; nil fields are left untouched.
type ListingUpdate struct {
	Title        *string  `json:"title"`
	EnergyType   *string  `json:"energyType"`
	AvailableKWh *float64 `json:"quantity"`
	PricePerKWh  *float64 `json:"price"`
	Status       *string  `json:"status"`
	Location     *string  `json:"location"`
	Description  *string  `json:"description"`
	ImageURL     *string  `json:"imageUrl"`
}

// Empty reports whether the update carries no field.
func (u ListingUpdate) Empty() bool {
	return u.Title == nil && u.EnergyType == nil && u.AvailableKWh == nil && u.PricePerKWh == nil &&
		u.Status == nil && u.Location == nil && u.Description == nil && u.ImageURL == nil
}

// CandidateFilter narrows the listings offered to the ranking engine.
// A nil Near loads candidates from anywhere, otherwise only those inside the
// bounding box of the RadiusKM circle around Near are loaded, closest first.
type CandidateFilter struct {
	EnergyType string
	Near       *geo.Point
	RadiusKM   float64
	Limit      int
}
