package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/UnknownOlympus/ecohub/internal/models"
	"github.com/UnknownOlympus/ecohub/internal/repository"
)

const (
	activityWindowDays = 30
	activityMaxDays    = 7
	minSuggestedKWh    = 100
	// opportunityShare is the capacity share, in percent, under which an energy type is
	// reported as an opportunity.
	opportunityShare = 10.0
)

// Recommendation priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Confidence holds how sure the analyst is about each suggested field, from 0 to 1.
type Confidence struct {
	EnergyType float64 `json:"energyType"`
	Price      float64 `json:"price"`
	Quantity   float64 `json:"quantity"`
	Title      float64 `json:"title"`
}

// Suggestion pre-fills the listing form of a supplier. Values are text, as the form expects.
type Suggestion struct {
	EnergyType string     `json:"energyType"`
	Price      string     `json:"price"`
	Quantity   string     `json:"quantity"`
	Title      string     `json:"title"`
	Confidence Confidence `json:"_confidence"`
}

// TrendInsight is a MarketTrend with the type's share of all listings.
type TrendInsight struct {
	EnergyType     string  `json:"energyType"`
	ListingCount   int     `json:"listingCount"`
	AveragePrice   float64 `json:"averagePrice"`
	TotalCapacity  int64   `json:"totalCapacity"`
	ActiveListings int     `json:"activeListings"`
	MarketShare    float64 `json:"marketShare"`
}

// ActivityInsight is the number of listings created on a calendar day (YYYY-MM-DD).
type ActivityInsight struct {
	Date        string `json:"date"`
	NewListings int    `json:"newListings"`
}

type Recommendation struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// MarketAnalysis is the market overview shown to suppliers.
type MarketAnalysis struct {
	MarketTrends    []TrendInsight    `json:"marketTrends"`
	RecentActivity  []ActivityInsight `json:"recentActivity"`
	Recommendations []Recommendation  `json:"recommendations"`
}

// MarketAnalyst derives listing suggestions and market insights from listing aggregates.
type MarketAnalyst struct {
	log   *slog.Logger
	store repository.MarketStore
}

func NewMarketAnalyst(log *slog.Logger, store repository.MarketStore) *MarketAnalyst {
	return &MarketAnalyst{log: log, store: store}
}

// FallbackSuggestion is offered when there is no usable market data.
func FallbackSuggestion() Suggestion {
	return Suggestion{
		EnergyType: "Solar",
		Price:      "0.12",
		Quantity:   "500",
		Title:      "Solar Energy Surplus - 500 kWh",
		Confidence: Confidence{EnergyType: 0.5, Price: 0.5, Quantity: 0.5, Title: 0.5},
	}
}

// Suggestions proposes listing values based on active listings, preferring the dominant
// energy type around location when one is given. It never fails: on storage errors or an
// empty market the FallbackSuggestion is returned.
func (ma *MarketAnalyst) Suggestions(ctx context.Context, location string) Suggestion {
	trends, err := ma.store.MarketTrends(ctx)
	if err != nil {
		ma.log.ErrorContext(ctx, "Failed to load market trends for suggestions", "error", err)
		return FallbackSuggestion()
	}

	var suggestion Suggestion
	if popular := mostActive(trends); popular != nil {
		suggestion.EnergyType = popular.EnergyType
		suggestion.Price = formatPrice(popular.ActiveAvgPrice)
		suggestion.Quantity = strconv.Itoa(max(minSuggestedKWh, int(popular.ActiveAvgKWh)))
	}

	if location != "" {
		local, errLocal := ma.store.LocationTrend(ctx, location)
		if errLocal != nil {
			ma.log.ErrorContext(ctx, "Failed to load location trend", "location", location, "error", errLocal)
			return FallbackSuggestion()
		}
		if local != nil {
			suggestion.EnergyType = local.EnergyType
			suggestion.Price = formatPrice(local.ActiveAvgPrice)
			suggestion.Quantity = strconv.Itoa(int(local.ActiveAvgKWh))
		}
	}

	if suggestion.EnergyType == "" {
		return FallbackSuggestion()
	}

	suggestion.Title = listingTitle(suggestion.EnergyType, suggestion.Quantity)
	suggestion.Confidence = Confidence{EnergyType: 0.85, Price: 0.75, Quantity: 0.80, Title: 0.70}

	return suggestion
}

// Analyze summarizes listings per energy type and the activity of the last days.
func (ma *MarketAnalyst) Analyze(ctx context.Context) (*MarketAnalysis, error) {
	trends, err := ma.store.MarketTrends(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze market: %w", err)
	}

	activity, err := ma.store.RecentActivity(ctx, activityWindowDays, activityMaxDays)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze market: %w", err)
	}

	totalListings := 0
	for _, trend := range trends {
		totalListings += trend.ListingCount
	}

	analysis := &MarketAnalysis{
		MarketTrends:    make([]TrendInsight, 0, len(trends)),
		RecentActivity:  make([]ActivityInsight, 0, len(activity)),
		Recommendations: recommend(trends),
	}

	for _, trend := range trends {
		insight := TrendInsight{
			EnergyType:     trend.EnergyType,
			ListingCount:   trend.ListingCount,
			AveragePrice:   roundTo(trend.AveragePrice, 2),
			TotalCapacity:  int64(trend.TotalCapacity),
			ActiveListings: trend.ActiveCount,
		}
		if totalListings > 0 {
			insight.MarketShare = roundTo(float64(trend.ListingCount)/float64(totalListings)*100, 1)
		}
		analysis.MarketTrends = append(analysis.MarketTrends, insight)
	}

	for _, day := range activity {
		analysis.RecentActivity = append(analysis.RecentActivity, ActivityInsight{
			Date:        day.Date.Format("2006-01-02"),
			NewListings: day.NewListings,
		})
	}

	return analysis, nil
}

func recommend(trends []models.MarketTrend) []Recommendation {
	recommendations := make([]Recommendation, 0)
	if len(trends) == 0 {
		return recommendations
	}

	popular, cheapest := trends[0], trends[0]
	totalCapacity := 0.0
	for _, trend := range trends {
		if trend.ListingCount > popular.ListingCount {
			popular = trend
		}
		if trend.AveragePrice < cheapest.AveragePrice {
			cheapest = trend
		}
		totalCapacity += trend.TotalCapacity
	}

	recommendations = append(recommendations,
		Recommendation{
			Type: "popular_energy",
			Message: fmt.Sprintf("%s is the most popular energy type with %d listings",
				popular.EnergyType, popular.ListingCount),
			Priority: PriorityHigh,
		},
		Recommendation{
			Type: "pricing",
			Message: fmt.Sprintf("Consider %s energy - lowest average price at %.2f KSH/kWh",
				cheapest.EnergyType, cheapest.AveragePrice),
			Priority: PriorityMedium,
		},
	)

	if totalCapacity <= 0 {
		return recommendations
	}

	for _, trend := range trends {
		share := trend.TotalCapacity / totalCapacity * 100
		if share < opportunityShare {
			recommendations = append(recommendations, Recommendation{
				Type: "opportunity",
				Message: fmt.Sprintf("%s has low market presence (%.1f%%) - potential opportunity",
					trend.EnergyType, share),
				Priority: PriorityLow,
			})
		}
	}

	return recommendations
}

// mostActive returns the energy type with the most active listings, or nil if nothing is active.
func mostActive(trends []models.MarketTrend) *models.MarketTrend {
	var best *models.MarketTrend
	for i := range trends {
		if trends[i].ActiveCount == 0 {
			continue
		}
		if best == nil || trends[i].ActiveCount > best.ActiveCount {
			best = &trends[i]
		}
	}

	return best
}

func listingTitle(energyType, quantity string) string {
	switch energyType {
	case "Solar":
		return "Solar Energy Surplus - " + quantity + " kWh Daily"
	case "Wind":
		return "Wind Power Generation - " + quantity + " kWh"
	case "Hydro":
		return "Hydropower Surplus - " + quantity + " kWh"
	case "Biomass":
		return "Biomass Energy Supply - " + quantity + " kWh"
	default:
		return energyType + " Energy - " + quantity + " kWh"
	}
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(roundTo(price, 2), 'f', -1, 64)
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}
