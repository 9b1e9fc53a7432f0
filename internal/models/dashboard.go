package models

import "time"

// Metric is one dashboard figure. Value is kept as text, as stored.
type Metric struct {
	Value       string     `json:"value"`
	Unit        *string    `json:"unit,omitempty"`
	Description *string    `json:"description,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Stat is one of the secondary dashboard statistics.
type Stat struct {
	Value     string     `json:"value"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// Predictions is the monthly consumption and generation forecast shown on the dashboard.
type Predictions struct {
	Months              []string   `json:"months"`
	ConsumptionForecast []float64  `json:"consumptionForecast"`
	RenewableGeneration []float64  `json:"renewableGeneration"`
	LastUpdated         *time.Time `json:"lastUpdated"`
}

// MarketTrend summarizes the listings of one energy type.
type MarketTrend struct {
	EnergyType     string  `json:"energyType"`
	ListingCount   int     `json:"listingCount"`
	ActiveCount    int     `json:"activeListings"`
	AveragePrice   float64 `json:"averagePrice"`
	AverageKWh     float64 `json:"averageQuantity"`
	TotalCapacity  float64 `json:"totalCapacity"`
	ActiveAvgPrice float64 `json:"-"`
	ActiveAvgKWh   float64 `json:"-"`
}

// DailyActivity counts listings created on one day.
type DailyActivity struct {
	Date        time.Time `json:"date"`
	NewListings int       `json:"newListings"`
}

// Interaction types logged for AI requests.
const (
	InteractionChat        = "chat"
	InteractionAdvice      = "advice"
	InteractionListingCopy = "listing_helper"
)

// Interaction is a logged AI prompt and its answer.
type Interaction struct {
	UserID                int64
	Type                  string
	Prompt                string
	Response              string
	CarbonSavingsEstimate *float64
}
