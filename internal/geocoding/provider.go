package geocoding

import (
	"context"

	"github.com/UnknownOlympus/ecohub/internal/geo"
)

// Provider resolves a free-text listing location into coordinates.
type Provider interface {
	Geocode(ctx context.Context, address string) (*geo.Point, error)
}
