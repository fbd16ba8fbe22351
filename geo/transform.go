// geo/transform.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package geo

// Rotate returns p rotated by angleDeg degrees (clockwise positive) around
// center: p is decomposed into distance and bearing from center, the angle
// is added to the bearing mod 360, and the point is rebuilt with
// DestinationPoint. Distance from center is invariant by construction. A
// point coincident with the center rotates to itself.
func Rotate(p, center LatLong, angleDeg float64) LatLong {
	d := Distance(p, center)
	if d < 1e-9 {
		return p
	}
	return DestinationPoint(center, NormalizeBearing(Bearing(center, p)+angleDeg), d)
}

// Translate returns p shifted by the given deltas in coordinate space.
// This is a naive lat/lon addition, not a geodesic offset: one degree of
// longitude shrinks with latitude, so the ground displacement is only
// uniform for small offsets (tens of km). That approximation is deliberate
// and matches how mission editing treats drag deltas.
func Translate(p LatLong, deltaLat, deltaLon float64) LatLong {
	return LatLong{Lat: p.Lat + deltaLat, Lon: p.Lon + deltaLon}
}

// Scale returns p moved along its bearing from center so that its distance
// from center is multiplied by factor. factor 1 is a no-op; a point
// coincident with the center is returned unchanged since its bearing is
// undefined.
func Scale(p, center LatLong, factor float64) LatLong {
	d := Distance(p, center)
	if d < 1e-9 {
		return p
	}
	return DestinationPoint(center, Bearing(center, p), d*factor)
}
