package geo

import "math"

// boxEpsilonDeg pads every box edge so floating point rounding in the
// haversine check can never push a boundary point outside the box.
const boxEpsilonDeg = 1e-9

// BoundingBox is an axis-aligned latitude/longitude rectangle. When the box
// crosses the antimeridian MinLng is greater than MaxLng and the box covers
// [MinLng, 180] ∪ [-180, MaxLng].
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// BoundingBoxAround returns a box that contains every point whose haversine
// distance from center is at most radiusM.
//
// The deltas start from the equirectangular approximation
// (radius / 111 320 m per degree, divided by cos(lat) for longitude) and are
// widened to the exact spherical-cap extent whenever the approximation would
// be tighter, which happens for every radius along the meridian and for large
// radii at high latitudes. Boxes touching a pole span all longitudes.
func BoundingBoxAround(center Point, radiusM float64) BoundingBox {
	if radiusM < 0 {
		radiusM = 0
	}

	angular := radiusM / EarthRadiusM // radians
	latDelta := math.Max(radiusM/MetersPerDegreeLat, toDegrees(angular)) + boxEpsilonDeg

	box := BoundingBox{
		MinLat: center.Lat - latDelta,
		MaxLat: center.Lat + latDelta,
	}

	if box.MinLat <= -90 || box.MaxLat >= 90 || angular >= math.Pi/2 {
		box.MinLat = math.Max(box.MinLat, -90)
		box.MaxLat = math.Min(box.MaxLat, 90)
		box.MinLng, box.MaxLng = -180, 180
		return box
	}

	cosLat := math.Cos(toRadians(center.Lat))
	if cosLat < poleEpsilon || math.Sin(angular) >= cosLat {
		box.MinLng, box.MaxLng = -180, 180
		return box
	}

	approx := radiusM / (MetersPerDegreeLat * cosLat)
	exact := toDegrees(math.Asin(math.Sin(angular) / cosLat))
	lngDelta := math.Max(approx, exact) + boxEpsilonDeg

	if lngDelta >= 180 {
		box.MinLng, box.MaxLng = -180, 180
		return box
	}

	box.MinLng = WrapLng(center.Lng - lngDelta)
	box.MaxLng = WrapLng(center.Lng + lngDelta)
	if center.Lng-lngDelta < -180 || center.Lng+lngDelta > 180 {
		// Wrapped edges: keep MinLng > MaxLng to mark the antimeridian crossing.
		if box.MinLng <= box.MaxLng {
			box.MinLng, box.MaxLng = -180, 180
		}
	}

	return box
}

// CrossesAntimeridian reports whether the longitude range wraps past ±180.
func (b BoundingBox) CrossesAntimeridian() bool {
	return b.MinLng > b.MaxLng
}

// Contains reports whether p lies inside the box (edges inclusive).
func (b BoundingBox) Contains(p Point) bool {
	if p.Lat < b.MinLat || p.Lat > b.MaxLat {
		return false
	}
	if b.CrossesAntimeridian() {
		return p.Lng >= b.MinLng || p.Lng <= b.MaxLng
	}
	return p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}
