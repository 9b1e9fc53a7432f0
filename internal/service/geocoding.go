package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/UnknownOlympus/ecohub/internal/geocoding"
	"github.com/UnknownOlympus/ecohub/internal/metrics"
	"github.com/UnknownOlympus/ecohub/internal/models"
	"github.com/UnknownOlympus/ecohub/internal/repository"
)

// geocodingBatchSize is the number of listings fetched per polling pass.
const geocodingBatchSize = 100

// ErrInvalidCoordinates is recorded when a provider answers with a point outside the valid ranges.
var ErrInvalidCoordinates = errors.New("provider returned invalid coordinates")

// GeocodingService resolves the free-text location of new or edited listings into
// coordinates so they can take part in matchmaking.
type GeocodingService struct {
	log          *slog.Logger              // Logger for logging service activities
	repo         repository.GeocodingStore // Storage of listings waiting for coordinates
	provider     geocoding.Provider        // Geocoding provider for external geocoding services
	providerName string                    // Name of the provider for metrics labeling
	metrics      *metrics.Metrics          // Metrics for tracking service performance
	numWorkers   int                       // Number of concurrent workers for processing
	pollInterval time.Duration             // Interval for polling listings without coordinates
}

// NewGeocodingService creates a new instance of GeocodingService.
// It takes a logger, the listing store, a geocoding provider,
// provider name for metrics, metrics for monitoring, the number of workers
// to use, and a polling interval for geocoding passes.
func NewGeocodingService(
	log *slog.Logger,
	repo repository.GeocodingStore,
	provider geocoding.Provider,
	providerName string,
	metrics *metrics.Metrics,
	numWorkers int,
	pollInterval time.Duration,
) *GeocodingService {
	return &GeocodingService{
		log:          log,
		repo:         repo,
		provider:     provider,
		providerName: providerName,
		metrics:      metrics,
		numWorkers:   numWorkers,
		pollInterval: pollInterval,
	}
}

// Run processes a first batch right away and then polls every pollInterval
// until the context is canceled.
func (gs *GeocodingService) Run(ctx context.Context) {
	ticker := time.NewTicker(gs.pollInterval)
	defer ticker.Stop()

	gs.log.InfoContext(ctx, "Geocoding service started...")
	gs.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			gs.log.InfoContext(ctx, "Geocoding service stopped.")
			return
		case <-ticker.C:
			gs.log.InfoContext(ctx, "Polling for listings to geocode...")
			gs.processBatch(ctx)
		}
	}
}

// processBatch fetches listings without coordinates and geocodes them with a pool of
// numWorkers goroutines, returning once every listing of the batch has been handled.
func (gs *GeocodingService) processBatch(ctx context.Context) {
	listings, err := gs.repo.FetchListingsForGeocoding(ctx, geocodingBatchSize)
	if err != nil {
		gs.log.ErrorContext(ctx, "Failed to fetch listings", "error", err)
		return
	}
	if len(listings) == 0 {
		gs.log.InfoContext(ctx, "No listings to geocode.")
		return
	}

	gs.log.InfoContext(
		ctx,
		"Found listings to geocode. Starting worker pool.",
		"jobs",
		len(listings),
		"num_workers",
		gs.numWorkers,
	)

	jobs := make(chan models.Listing, len(listings))
	var wgr sync.WaitGroup

	for i := 1; i <= gs.numWorkers; i++ {
		wgr.Add(1)
		go gs.worker(ctx, i, &wgr, jobs)
	}

	for _, listing := range listings {
		jobs <- listing
	}
	close(jobs)

	wgr.Wait()
	gs.log.InfoContext(ctx, "Processing batch finished")
}

// worker geocodes listings from the jobs channel until it is closed.
// A failed lookup bumps the listing's attempt counter so it is eventually given up on.
func (gs *GeocodingService) worker(ctx context.Context, idx int, wg *sync.WaitGroup, jobs <-chan models.Listing) {
	defer wg.Done()
	for listing := range jobs {
		gs.metrics.ActiveWorkers.Inc()
		gs.geocodeListing(ctx, idx, listing)
		gs.metrics.ActiveWorkers.Dec()
	}
}

func (gs *GeocodingService) geocodeListing(ctx context.Context, idx int, listing models.Listing) {
	gs.log.DebugContext(ctx, "Processing listing", "worker", idx, "listing", listing.ID)

	startTime := time.Now()
	point, err := gs.provider.Geocode(ctx, listing.Location)
	gs.metrics.RequestSeconds.WithLabelValues(gs.providerName).Observe(time.Since(startTime).Seconds())

	if err == nil && (point == nil || !point.Valid()) {
		err = ErrInvalidCoordinates
	}

	if err != nil {
		gs.log.ErrorContext(ctx, "Failed to geocode", "worker", idx, "listing", listing.ID, "error", err)
		gs.metrics.ListingsGeocoded.WithLabelValues("failure").Inc()
		gs.metrics.APIErrors.Inc()

		if err = gs.repo.IncrementGeocodingFailure(ctx, listing.ID, err.Error()); err != nil {
			gs.log.ErrorContext(
				ctx,
				"Could not update failure count for listing",
				"worker", idx,
				"listing", listing.ID,
				"error", err,
			)
		}
		return
	}

	gs.metrics.ListingsGeocoded.WithLabelValues("success").Inc()

	if err = gs.repo.UpdateListingCoordinates(ctx, listing.ID, *point); err != nil {
		gs.log.ErrorContext(
			ctx,
			"Failed to update coordinates for listing",
			"worker", idx,
			"listing", listing.ID,
			"error", err,
		)
		return
	}

	gs.log.DebugContext(ctx, "Worker successfully geocoded the listing", "worker", idx, "listing", listing.ID)
}
