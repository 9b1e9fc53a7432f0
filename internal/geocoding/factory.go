package geocoding

import (
	"errors"
	"fmt"
	"log/slog"

	"googlemaps.github.io/maps"
)

// ProviderType represents the type of geocoding provider.
type ProviderType string

const (
	// ProviderTypeGoogle represents Google Maps geocoding provider.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeNominatim represents OpenStreetMap Nominatim geocoding provider.
	ProviderTypeNominatim ProviderType = "nominatim"
	// ProviderTypeAuto picks Google when an API key is configured and Nominatim otherwise.
	ProviderTypeAuto ProviderType = "auto"
)

// ProviderConfig holds configuration for creating a geocoding provider.
type ProviderConfig struct {
	Type      ProviderType // Type of provider to create
	APIKey    string       // API key (required by Google)
	RateLimit int          // Requests per second allowed by the provider
	UserAgent string       // User-Agent sent to Nominatim, defaults to DefaultUserAgent
	Region    string       // Country code lookups are biased to (Google) or restricted to (Nominatim)
	Logger    *slog.Logger // Logger for the provider
}

// NewProvider creates a geocoding provider based on the provided configuration.
//
// Supported provider types:
// - "google": Google Maps Geocoding API (requires API key)
// - "nominatim": OpenStreetMap Nominatim API (free, no API key required)
// - "auto": Google when APIKey is set, Nominatim otherwise
func NewProvider(config ProviderConfig) (Provider, error) {
	switch config.Type {
	case ProviderTypeAuto:
		if config.APIKey != "" {
			return newGoogleProvider(config)
		}
		return newNominatimProvider(config), nil
	case ProviderTypeGoogle:
		return newGoogleProvider(config)
	case ProviderTypeNominatim:
		return newNominatimProvider(config), nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", config.Type)
	}
}

func newGoogleProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for Google provider")
	}

	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(config.APIKey),
	}
	if config.RateLimit > 0 {
		clientOpts = append(clientOpts, maps.WithRateLimit(config.RateLimit))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewGoogleProvider(client, config.Region, config.Logger), nil
}

func newNominatimProvider(config ProviderConfig) Provider {
	opts := []NominatimOption{WithRateLimit(config.RateLimit)}
	if config.UserAgent != "" {
		opts = append(opts, WithUserAgent(config.UserAgent))
	}
	if config.Region != "" {
		opts = append(opts, WithCountryCodes(config.Region))
	}

	return NewNominatimProvider(config.Logger, opts...)
}
