// Package geo holds the distance and prefilter math used by proximity search.
//
// Points are orb.Point values, which store [longitude, latitude].
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	// EarthRadiusMeters is the mean radius used by the haversine formula.
	EarthRadiusMeters = 6371000.0

	// MetersPerDegree approximates one degree of latitude. It is slightly below the
	// true value so the derived box always covers the search circle.
	MetersPerDegree = 111000.0

	// minCos is the cosine below which the longitude delta is treated as unbounded.
	minCos = 1e-9
)

// Distance returns the great-circle distance between a and b in meters.
func Distance(a, b orb.Point) float64 {
	lat1 := toRadians(a.Lat())
	lat2 := toRadians(b.Lat())
	dLat := lat2 - lat1
	dLng := toRadians(b.Lon() - a.Lon())

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// BoundingBox returns an axis-aligned box that contains every point within
// radiusMeters of center.
//
// Latitude is clamped to [-90, 90]. When the circle reaches a pole or crosses
// the antimeridian the box covers every longitude. Otherwise the longitude
// delta is the larger of the linear estimate and the exact extent of the
// spherical cap, so high latitudes never lose points.
func BoundingBox(center orb.Point, radiusMeters float64) orb.Bound {
	radiusMeters = math.Abs(radiusMeters)

	latDelta := radiusMeters / MetersPerDegree
	minLat := math.Max(center.Lat()-latDelta, -90)
	maxLat := math.Min(center.Lat()+latDelta, 90)

	minLng, maxLng := -180.0, 180.0
	if lngDelta, ok := longitudeDelta(center.Lat(), latDelta, radiusMeters); ok {
		lo, hi := center.Lon()-lngDelta, center.Lon()+lngDelta
		if lo >= -180 && hi <= 180 {
			minLng, maxLng = lo, hi
		}
	}

	return orb.Bound{
		Min: orb.Point{minLng, minLat},
		Max: orb.Point{maxLng, maxLat},
	}
}

// longitudeDelta returns false when no finite longitude range covers the circle.
func longitudeDelta(lat, latDelta, radiusMeters float64) (float64, bool) {
	if math.Abs(lat)+latDelta >= 90 {
		return 0, false
	}

	cos := math.Cos(toRadians(lat))
	if cos < minCos {
		return 0, false
	}

	linear := radiusMeters / (MetersPerDegree * cos)
	sinRatio := math.Sin(radiusMeters/EarthRadiusMeters) / cos
	if sinRatio >= 1 {
		return 0, false
	}
	exact := toDegrees(math.Asin(sinRatio))

	delta := math.Max(linear, exact)
	if delta >= 180 {
		return 0, false
	}

	return delta, true
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))

	return math.Round(v*scale) / scale
}

// Valid reports whether p is a finite coordinate inside the lat/lng ranges.
func Valid(p orb.Point) bool {
	lat, lng := p.Lat(), p.Lon()
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
