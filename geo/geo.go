// geo/geo.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package geo provides the spherical-earth primitives that the rest of the
// repo is built on: great-circle distance and bearing, the direct geodesic
// solution, midpoints and centroids, reference-anchored point transforms,
// and planar containment/intersection tests for small-extent polygons.
//
// Everything here is a pure function over value types. No function panics
// for malformed input; degenerate inputs map to degenerate outputs (zero
// values, false, or the input unchanged).
package geo

import (
	"fmt"
	gomath "math"
)

// EarthRadiusMeters is the mean earth radius of the spherical model used
// throughout; all distances in this package are meters on that sphere.
const EarthRadiusMeters = 6371000

// MetersPerDegreeLatitude is the approximate north-south span of one degree
// of latitude, used where planar approximations need a meters scale.
const MetersPerDegreeLatitude = 111320

// LatLong is a position in degrees. Lat is in [-90,90]; Lon is not
// invariantly wrapped into [-180,180]--operations near the antimeridian may
// return longitudes outside that range and callers must not assume
// normalization.
type LatLong struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (p LatLong) IsZero() bool {
	return p.Lat == 0 && p.Lon == 0
}

func (p LatLong) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lon)
}

///////////////////////////////////////////////////////////////////////////
// Spherical primitives

// Distance returns the great-circle distance between a and b in meters,
// computed with the haversine formula.
// https://www.movable-type.co.uk/scripts/latlong.html
func Distance(a, b LatLong) float64 {
	lat1, lon1 := Radians(a.Lat), Radians(a.Lon)
	lat2, lon2 := Radians(b.Lat), Radians(b.Lon)
	dlat, dlon := lat2-lat1, lon2-lon1

	x := Sqr(gomath.Sin(dlat/2)) + gomath.Cos(lat1)*gomath.Cos(lat2)*Sqr(gomath.Sin(dlon/2))
	c := 2 * gomath.Atan2(gomath.Sqrt(x), gomath.Sqrt(1-x))
	return EarthRadiusMeters * c
}

// Bearing returns the initial bearing in degrees from a toward b, clockwise
// from true north, normalized into [0,360).
func Bearing(a, b LatLong) float64 {
	lat1, lat2 := Radians(a.Lat), Radians(b.Lat)
	dlon := Radians(b.Lon - a.Lon)

	y := gomath.Sin(dlon) * gomath.Cos(lat2)
	x := gomath.Cos(lat1)*gomath.Sin(lat2) - gomath.Sin(lat1)*gomath.Cos(lat2)*gomath.Cos(dlon)
	return NormalizeBearing(Degrees(gomath.Atan2(y, x)))
}

// DestinationPoint returns the point reached by traveling distanceM meters
// from origin along the given initial bearing; the direct geodesic solution
// on the sphere, not a planar offset. A zero distance returns the origin.
func DestinationPoint(origin LatLong, bearingDeg, distanceM float64) LatLong {
	delta := distanceM / EarthRadiusMeters
	theta := Radians(bearingDeg)
	lat1, lon1 := Radians(origin.Lat), Radians(origin.Lon)

	sinLat2 := gomath.Sin(lat1)*gomath.Cos(delta) + gomath.Cos(lat1)*gomath.Sin(delta)*gomath.Cos(theta)
	lat2 := gomath.Asin(Clamp(sinLat2, -1, 1))
	lon2 := lon1 + gomath.Atan2(gomath.Sin(theta)*gomath.Sin(delta)*gomath.Cos(lat1),
		gomath.Cos(delta)-gomath.Sin(lat1)*sinLat2)

	// Longitude is deliberately left unwrapped so paths that cross the
	// antimeridian stay continuous.
	return LatLong{Lat: Degrees(lat2), Lon: Degrees(lon2)}
}

// Midpoint returns the point midway between a and b along the great circle
// through them, via averaged unit vectors. Midpoint(a, a) == a.
func Midpoint(a, b LatLong) LatLong {
	if a == b {
		return a
	}
	va, vb := a.nvector(), b.nvector()
	return fromNVector([3]float64{va[0] + vb[0], va[1] + vb[1], va[2] + vb[2]}, a)
}

// Centroid returns the spherical centroid of pts: unit vectors are averaged
// and re-projected to latitude/longitude, which behaves correctly near the
// poles and the antimeridian where naive coordinate averaging does not.
// An empty slice maps to the zero LatLong and a single point to itself.
func Centroid(pts []LatLong) LatLong {
	if len(pts) == 0 {
		return LatLong{}
	}
	if len(pts) == 1 {
		return pts[0]
	}

	var sum [3]float64
	for _, p := range pts {
		v := p.nvector()
		sum[0] += v[0]
		sum[1] += v[1]
		sum[2] += v[2]
	}
	return fromNVector(sum, LatLong{})
}

///////////////////////////////////////////////////////////////////////////
// Unit-vector plumbing

func (p LatLong) nvector() [3]float64 {
	lat, lon := Radians(p.Lat), Radians(p.Lon)
	return [3]float64{
		gomath.Cos(lat) * gomath.Cos(lon),
		gomath.Cos(lat) * gomath.Sin(lon),
		gomath.Sin(lat),
	}
}

// fromNVector projects v back to latitude/longitude. If v has (nearly)
// cancelled to zero length--antipodal inputs--the centroid is undefined and
// fallback is returned instead of NaN coordinates.
func fromNVector(v [3]float64, fallback LatLong) LatLong {
	l := gomath.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l < 1e-12 {
		return fallback
	}
	lat := gomath.Atan2(v[2], gomath.Sqrt(v[0]*v[0]+v[1]*v[1]))
	lon := gomath.Atan2(v[1], v[0])
	return LatLong{Lat: Degrees(lat), Lon: Degrees(lon)}
}
