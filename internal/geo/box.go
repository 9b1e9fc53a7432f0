package geo

import "math"

// Box is a latitude/longitude rectangle in decimal degrees, bounds included.
type Box struct {
	MinLatitude  float64
	MaxLatitude  float64
	MinLongitude float64
	MaxLongitude float64
}

// BoundingBox returns the smallest box holding every point within radiusKM of center.
// A circle that reaches a pole or crosses the antimeridian gets the full longitude range.
func BoundingBox(center Point, radiusKM float64) Box {
	angle := radiusKM / EarthRadiusKM
	latSpan := degrees(angle)

	box := Box{
		MinLatitude:  center.Latitude - latSpan,
		MaxLatitude:  center.Latitude + latSpan,
		MinLongitude: -180,
		MaxLongitude: 180,
	}
	if box.MinLatitude <= -90 || box.MaxLatitude >= 90 {
		box.MinLatitude = max(box.MinLatitude, -90)
		box.MaxLatitude = min(box.MaxLatitude, 90)
		return box
	}

	lonSpan := degrees(math.Asin(math.Sin(angle) / math.Cos(radians(center.Latitude))))
	if center.Longitude-lonSpan < -180 || center.Longitude+lonSpan > 180 {
		return box
	}
	box.MinLongitude = center.Longitude - lonSpan
	box.MaxLongitude = center.Longitude + lonSpan

	return box
}

// Contains reports whether p lies inside the box.
func (b Box) Contains(p Point) bool {
	return p.Latitude >= b.MinLatitude && p.Latitude <= b.MaxLatitude &&
		p.Longitude >= b.MinLongitude && p.Longitude <= b.MaxLongitude
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
