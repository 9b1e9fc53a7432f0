package geo_test

import (
	"testing"

	"github.com/UnknownOlympus/ecohub/internal/geo"
	"github.com/stretchr/testify/assert"
)

func TestBoundingBox(t *testing.T) {
	t.Parallel()

	nairobi := geo.Point{Latitude: -1.2921, Longitude: 36.8219}

	t.Run("holds points inside the radius", func(t *testing.T) {
		t.Parallel()
		box := geo.BoundingBox(nairobi, 50)

		for _, p := range []geo.Point{
			nairobi,
			{Latitude: -1.0, Longitude: 36.9},
			{Latitude: -1.2921, Longitude: 37.26},
			{Latitude: -1.7, Longitude: 36.8219},
		} {
			assert.Less(t, geo.Distance(nairobi, p), 50.0)
			assert.True(t, box.Contains(p), "%+v", p)
		}
	})

	t.Run("excludes far points", func(t *testing.T) {
		t.Parallel()
		box := geo.BoundingBox(nairobi, 50)
		mombasa := geo.Point{Latitude: -4.0435, Longitude: 39.6682}
		nakuru := geo.Point{Latitude: -0.3031, Longitude: 36.08}

		assert.False(t, box.Contains(mombasa))
		assert.False(t, box.Contains(nakuru))
	})

	t.Run("edges sit on the radius", func(t *testing.T) {
		t.Parallel()
		box := geo.BoundingBox(nairobi, 50)

		north := geo.Point{Latitude: box.MaxLatitude, Longitude: nairobi.Longitude}
		assert.InDelta(t, 50, geo.Distance(nairobi, north), 1e-6)
		assert.Greater(t, box.MaxLongitude, nairobi.Longitude)
		assert.Less(t, box.MinLongitude, nairobi.Longitude)
	})

	t.Run("polar circle spans every longitude", func(t *testing.T) {
		t.Parallel()
		box := geo.BoundingBox(geo.Point{Latitude: 89.9, Longitude: 10}, 50)

		assert.InDelta(t, 90, box.MaxLatitude, 0)
		assert.InDelta(t, -180, box.MinLongitude, 0)
		assert.InDelta(t, 180, box.MaxLongitude, 0)
	})

	t.Run("antimeridian crossing spans every longitude", func(t *testing.T) {
		t.Parallel()
		box := geo.BoundingBox(geo.Point{Latitude: -17.7, Longitude: 179.9}, 50)

		assert.True(t, box.Contains(geo.Point{Latitude: -17.7, Longitude: -179.9}))
		assert.Less(t, box.MaxLatitude, 90.0)
	})
}
