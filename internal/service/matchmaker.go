package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/ecohub/internal/config"
	"github.com/UnknownOlympus/ecohub/internal/geo"
	"github.com/UnknownOlympus/ecohub/internal/metrics"
	"github.com/UnknownOlympus/ecohub/internal/models"
	"github.com/UnknownOlympus/ecohub/internal/ranking"
	"github.com/UnknownOlympus/ecohub/internal/repository"
)

// candidateLimit caps the number of listings closest to the buyer loaded for one ranking run.
const candidateLimit = 500

var (
	// ErrInvalidLocation is returned when the buyer coordinates are out of range.
	ErrInvalidLocation = errors.New("buyer location is invalid")
	// ErrLocationUnknown is returned when the buyer has no stored coordinates.
	ErrLocationUnknown = errors.New("buyer location is unknown")
)

// NearbyQuery describes a search for sellers around a buyer.
// Zero MaxDistanceKM and Limit fall back to the configured defaults.
type NearbyQuery struct {
	Buyer         geo.Point
	MaxDistanceKM float64
	Limit         int
	EnergyType    string
}

// Matchmaker feeds stored listings to the ranking engine and trims its output
// to what a buyer asked for.
type Matchmaker struct {
	log           *slog.Logger
	store         repository.CandidateStore
	metrics       *metrics.Metrics
	defaultLimit  int
	maxDistanceKM float64
}

func NewMatchmaker(
	log *slog.Logger,
	store repository.CandidateStore,
	metrics *metrics.Metrics,
	cfg config.RankingConfig,
) *Matchmaker {
	return &Matchmaker{
		log:           log,
		store:         store,
		metrics:       metrics,
		defaultLimit:  cfg.DefaultLimit,
		maxDistanceKM: cfg.MaxDistanceKM,
	}
}

// Nearby ranks the active, geocoded listings for the buyer and keeps the best Limit
// listings lying within MaxDistanceKM.
func (m *Matchmaker) Nearby(ctx context.Context, query NearbyQuery) (ranking.Result, error) {
	if !query.Buyer.Valid() {
		return ranking.Result{}, ErrInvalidLocation
	}

	maxDistance := query.MaxDistanceKM
	if maxDistance <= 0 {
		maxDistance = m.maxDistanceKM
	}
	limit := query.Limit
	if limit <= 0 {
		limit = m.defaultLimit
	}

	stored, err := m.store.FetchRankingCandidates(ctx, models.CandidateFilter{
		EnergyType: query.EnergyType,
		Near:       &query.Buyer,
		RadiusKM:   maxDistance,
		Limit:      candidateLimit,
	})
	if err != nil {
		return ranking.Result{}, fmt.Errorf("failed to load ranking candidates: %w", err)
	}

	candidates := make([]ranking.Listing, 0, len(stored))
	for _, listing := range stored {
		candidates = append(candidates, toCandidate(listing))
	}

	result := m.Rank(ctx, query.Buyer, candidates)

	nearby := make([]ranking.RankedListing, 0, min(limit, len(result.Listings)))
	for _, ranked := range result.Listings {
		if len(nearby) == limit {
			break
		}
		if ranked.DistanceKM == nil || *ranked.DistanceKM > maxDistance {
			continue
		}
		nearby = append(nearby, ranked)
	}
	result.Listings = nearby

	return result, nil
}

// Rank runs the engine over client supplied listings without any cut-off.
func (m *Matchmaker) Rank(ctx context.Context, buyer geo.Point, listings []ranking.Listing) ranking.Result {
	result := ranking.Evaluate(buyer, listings)

	m.metrics.RankingRequests.WithLabelValues(string(result.Mode)).Inc()
	m.metrics.RankingCandidates.Observe(float64(len(listings)))

	if result.Mode == ranking.ModeDistanceFallback {
		m.log.WarnContext(ctx, "Ranking fell back to distance only", "listings", len(listings))
	}

	return result
}

// BuyerLocation returns the stored coordinates of a user.
func (m *Matchmaker) BuyerLocation(ctx context.Context, userID int64) (geo.Point, error) {
	user, err := m.store.GetUser(ctx, userID)
	if err != nil {
		return geo.Point{}, err
	}

	if user.Latitude == nil || user.Longitude == nil {
		return geo.Point{}, ErrLocationUnknown
	}

	return geo.Point{Latitude: *user.Latitude, Longitude: *user.Longitude}, nil
}

func toCandidate(listing models.Listing) ranking.Listing {
	price := listing.PricePerKWh
	available := listing.AvailableKWh

	return ranking.Listing{
		ID:           listing.ID,
		Title:        listing.Title,
		EnergyType:   listing.EnergyType,
		PricePerKWh:  &price,
		AvailableKWh: &available,
		Location:     listing.Point(),
	}
}
