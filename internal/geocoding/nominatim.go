package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/UnknownOlympus/ecohub/internal/geo"
	"golang.org/x/time/rate"
)

const (
	// NominatimBaseURL is the public OpenStreetMap search endpoint.
	NominatimBaseURL = "https://nominatim.openstreetmap.org/search"
	// DefaultUserAgent identifies the service as required by the Nominatim usage policy.
	DefaultUserAgent = "EcoHub-Marketplace/1.0 (https://github.com/UnknownOlympus/ecohub)"
)

// NominatimProvider implements the Provider interface using OpenStreetMap's Nominatim API.
// The public instance allows one request per second, enforced by limiter.
type NominatimProvider struct {
	client    HTTPClient
	baseURL   string
	userAgent string
	countries string
	limiter   *rate.Limiter
	log       *slog.Logger
}

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type nominatimResponse struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Common errors for Nominatim provider.
var (
	ErrNominatimEmptyResponse = errors.New("nominatim API returned empty response")
	ErrNominatimInvalidCoords = errors.New("nominatim API returned invalid coordinates")
)

// NominatimOption customizes a NominatimProvider.
type NominatimOption func(*NominatimProvider)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client HTTPClient) NominatimOption {
	return func(np *NominatimProvider) { np.client = client }
}

// WithBaseURL points the provider at a self-hosted Nominatim instance.
func WithBaseURL(baseURL string) NominatimOption {
	return func(np *NominatimProvider) { np.baseURL = baseURL }
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(userAgent string) NominatimOption {
	return func(np *NominatimProvider) { np.userAgent = userAgent }
}

// WithCountryCodes restricts results to a comma separated list of ISO 3166-1 alpha-2 codes.
func WithCountryCodes(codes string) NominatimOption {
	return func(np *NominatimProvider) { np.countries = codes }
}

// WithRateLimit sets the number of requests per second. Values below 1 keep the default of 1.
func WithRateLimit(perSecond int) NominatimOption {
	return func(np *NominatimProvider) {
		if perSecond > 0 {
			np.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// NewNominatimProvider creates a new Nominatim geocoding provider.
func NewNominatimProvider(log *slog.Logger, opts ...NominatimOption) *NominatimProvider {
	const timeout = 10 * time.Second

	np := &NominatimProvider{
		client:    &http.Client{Timeout: timeout},
		baseURL:   NominatimBaseURL,
		userAgent: DefaultUserAgent,
		limiter:   rate.NewLimiter(rate.Limit(1), 1),
		log:       log,
	}
	for _, opt := range opts {
		opt(np)
	}

	return np
}

// Geocode converts a listing location to coordinates.
//
// Marketplace locations are written from the most to the least specific part
// ("Moi Avenue, CBD, Nairobi, Kenya"). When a location yields no result the leading
// part is dropped and the lookup retried, down to the last two parts.
func (np *NominatimProvider) Geocode(ctx context.Context, address string) (*geo.Point, error) {
	np.log.DebugContext(ctx, "Geocoding using Nominatim", "address", address)

	variations := locationFallbacks(address)
	for idx, variation := range variations {
		point, err := np.lookup(ctx, variation)
		if err == nil {
			if idx > 0 {
				np.log.InfoContext(ctx, "Geocoded using fallback location",
					"original", address, "fallback", variation, "fallback_level", idx)
			}
			return point, nil
		}

		if !errors.Is(err, ErrNominatimEmptyResponse) {
			return nil, err
		}

		np.log.DebugContext(ctx, "Location variation returned no results", "variation", variation, "fallback_level", idx)
	}

	np.log.WarnContext(ctx, "All location fallbacks exhausted", "address", address, "variations_tried", len(variations))

	return nil, ErrNominatimEmptyResponse
}

// locationFallbacks returns address followed by its progressively shorter suffixes.
func locationFallbacks(address string) []string {
	parts := make([]string, 0)
	for _, part := range strings.Split(address, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return []string{strings.TrimSpace(address)}
	}

	minParts := 1
	if len(parts) > 2 {
		minParts = 2
	}

	variations := []string{strings.Join(parts, ", ")}
	for start := 1; len(parts)-start >= minParts; start++ {
		variations = append(variations, strings.Join(parts[start:], ", "))
	}

	return variations
}

func (np *NominatimProvider) lookup(ctx context.Context, address string) (*geo.Point, error) {
	if err := np.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for rate limiter: %w", err)
	}

	reqURL, err := url.Parse(np.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")
	if np.countries != "" {
		query.Set("countrycodes", np.countries)
	}
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", np.userAgent)
	req.Header.Set("Accept-Language", "en")

	resp, err := np.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute geocoding request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		np.log.ErrorContext(ctx, "Nominatim API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("nominatim API returned status %d: %s", resp.StatusCode, string(body))
	}

	var results []nominatimResponse
	if err = json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrNominatimEmptyResponse
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid latitude: %s", ErrNominatimInvalidCoords, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid longitude: %s", ErrNominatimInvalidCoords, results[0].Lon)
	}

	point := geo.Point{Latitude: lat, Longitude: lon}
	if !point.Valid() {
		return nil, fmt.Errorf("%w: out of range: %s,%s", ErrNominatimInvalidCoords, results[0].Lat, results[0].Lon)
	}

	return &point, nil
}
