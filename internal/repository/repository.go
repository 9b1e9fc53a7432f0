package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/UnknownOlympus/ecohub/internal/geo"
	"github.com/UnknownOlympus/ecohub/internal/models"
)

var (
	// ErrListingNotFound is returned when no listing matches the given id.
	ErrListingNotFound = errors.New("listing not found")
	// ErrUserNotFound is returned when no user matches the given id.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmptyUpdate is returned by UpdateListing when the update carries no field.
	ErrEmptyUpdate = errors.New("no fields to update")
)

type Repository struct {
	db  Database
	log *slog.Logger
}

// GeocodingStore is what the geocoding worker needs from storage.
type GeocodingStore interface {
	FetchListingsForGeocoding(ctx context.Context, limit int) ([]models.Listing, error)
	UpdateListingCoordinates(ctx context.Context, listingID int64, point geo.Point) error
	IncrementGeocodingFailure(ctx context.Context, listingID int64, errMsg string) error
}

// CandidateStore supplies the listings considered by the matchmaker.
type CandidateStore interface {
	FetchRankingCandidates(ctx context.Context, filter models.CandidateFilter) ([]models.Listing, error)
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}

// MarketStore supplies the aggregates used by the market analyst.
type MarketStore interface {
	MarketTrends(ctx context.Context) ([]models.MarketTrend, error)
	LocationTrend(ctx context.Context, location string) (*models.MarketTrend, error)
	RecentActivity(ctx context.Context, days, limit int) ([]models.DailyActivity, error)
}

// Interface is the complete storage surface used by the HTTP API.
type Interface interface {
	GeocodingStore
	CandidateStore
	MarketStore

	Ping(ctx context.Context) error
	ListListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	GetListing(ctx context.Context, listingID int64) (*models.Listing, error)
	CreateListing(ctx context.Context, listing *models.Listing) error
	UpdateListing(ctx context.Context, listingID int64, upd models.ListingUpdate) error
	DeleteListing(ctx context.Context, listingID int64) error

	CreateTransaction(ctx context.Context, buyerID, listingID int64, kwh float64) (*models.Transaction, error)
	ListPurchases(ctx context.Context, buyerID int64) ([]models.TransactionRecord, error)
	PurchaseSummary(ctx context.Context, buyerID int64) (models.PurchaseSummary, error)
	ListSales(ctx context.Context, sellerID int64) ([]models.TransactionRecord, error)
	SalesSummary(ctx context.Context, sellerID int64) (models.SalesSummary, error)

	DashboardMetrics(ctx context.Context) (map[string]models.Metric, error)
	DashboardStats(ctx context.Context) (map[string]models.Stat, error)
	PerformancePredictions(ctx context.Context) (*models.Predictions, error)

	LogInteraction(ctx context.Context, interaction models.Interaction) error
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
