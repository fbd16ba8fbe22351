// pattern/perimeter.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package pattern

import (
	"github.com/groundctl/missiongeo/geo"
	"github.com/groundctl/missiongeo/mission"
)

// Perimeter traces the polygon's vertices in order and repeats the first
// vertex at the end to close the loop. A positive insetM shrinks the
// polygon toward its interior first, keeping the vehicle clear of the exact
// boundary. Fewer than 3 vertices return an empty list.
func Perimeter(poly []geo.LatLong, altitude, insetM float64) []mission.Waypoint {
	if len(poly) < 3 {
		return nil
	}

	ring := poly
	if insetM > 0 {
		ring = insetPolygon(poly, insetM)
	}

	wps := make([]mission.Waypoint, 0, len(ring)+1)
	for _, p := range ring {
		wps = append(wps, waypointAt(p, altitude))
	}
	return append(wps, wps[0])
}

// insetPolygon moves each vertex insetM meters toward the polygon interior
// along the bisector of its two edges, picking the inward side of the
// bisector from the local turn direction. Collinear vertices stay put.
//
// The turn heuristic is only locally winding-aware: on a non-convex polygon
// a reflex vertex moves along its own flipped bisector, which can fold the
// ring for large insets. Good enough for the convex-ish survey regions this
// is used on; anything stronger (a straight-skeleton offset) can replace
// this function without touching Perimeter.
func insetPolygon(poly []geo.LatLong, insetM float64) []geo.LatLong {
	n := len(poly)
	out := make([]geo.LatLong, n)
	for i := range poly {
		prev, cur, next := poly[(i+n-1)%n], poly[i], poly[(i+1)%n]

		// z component of (cur-prev) x (next-cur): positive for a left turn.
		turn := (cur.Lon-prev.Lon)*(next.Lat-cur.Lat) - (cur.Lat-prev.Lat)*(next.Lon-cur.Lon)
		if turn == 0 {
			out[i] = cur
			continue
		}

		toPrev := geo.Bearing(cur, prev)
		toNext := geo.Bearing(cur, next)
		bisector := geo.NormalizeBearing(toPrev + geo.NormalizeBearing(toNext-toPrev)/2)
		if turn < 0 {
			bisector = geo.OppositeBearing(bisector)
		}
		out[i] = geo.DestinationPoint(cur, bisector, insetM)
	}
	return out
}
