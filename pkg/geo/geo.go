// Package geo implements the spherical geometry used by the proximity core:
// haversine distances, bounding-box pre-filters and the direct geodesic
// (destination point) formula.
package geo

import (
	"fmt"
	"math"
)

const (
	// EarthRadiusM is the mean Earth radius used by every distance computation.
	EarthRadiusM = 6_371_000.0

	// MetersPerDegreeLat is the equirectangular approximation of one degree of latitude.
	MetersPerDegreeLat = 111_320.0

	// poleEpsilon guards the longitude delta against cos(lat) approaching zero.
	poleEpsilon = 1e-9
)

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate reports whether the point is a finite coordinate inside the valid ranges.
func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return fmt.Errorf("coordinate must be finite")
	}
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", p.Lat)
	}
	if p.Lng < -180 || p.Lng > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", p.Lng)
	}
	return nil
}

func (p Point) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.Lat, p.Lng)
}

// DistanceMeters returns the great-circle distance between a and b using the
// haversine formula.
func DistanceMeters(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := lat2 - lat1
	dLng := toRadians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	if h > 1 {
		h = 1
	}

	return EarthRadiusM * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DistanceKm is DistanceMeters expressed in kilometres.
func DistanceKm(a, b Point) float64 {
	return DistanceMeters(a, b) / 1000
}

// Destination returns the point reached by travelling distanceM metres from
// origin along the initial bearing (degrees clockwise from north). Longitude
// is wrapped into [-180, 180] and latitude clamped into [-90, 90].
func Destination(origin Point, bearingDeg, distanceM float64) Point {
	delta := distanceM / EarthRadiusM
	theta := toRadians(bearingDeg)
	phi1 := toRadians(origin.Lat)
	lambda1 := toRadians(origin.Lng)

	sinPhi2 := math.Sin(phi1)*math.Cos(delta) + math.Cos(phi1)*math.Sin(delta)*math.Cos(theta)
	sinPhi2 = math.Max(-1, math.Min(1, sinPhi2))
	phi2 := math.Asin(sinPhi2)

	y := math.Sin(theta) * math.Sin(delta) * math.Cos(phi1)
	x := math.Cos(delta) - math.Sin(phi1)*sinPhi2
	lambda2 := lambda1 + math.Atan2(y, x)

	return Point{
		Lat: clampLat(toDegrees(phi2)),
		Lng: WrapLng(toDegrees(lambda2)),
	}
}

// WrapLng normalises a longitude into [-180, 180].
func WrapLng(lng float64) float64 {
	if lng >= -180 && lng <= 180 {
		return lng
	}
	wrapped := math.Mod(lng+180, 360)
	if wrapped < 0 {
		wrapped += 360
	}
	return wrapped - 180
}

func clampLat(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }
