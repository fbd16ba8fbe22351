// pattern/lawnmower.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package pattern

import (
	"cmp"
	gomath "math"
	"slices"

	"github.com/groundctl/missiongeo/geo"
	"github.com/groundctl/missiongeo/mission"
)

// Lawnmower generates a serpentine survey sweep over poly: parallel lanes
// spacingM meters apart, running along angleDeg, alternating direction from
// lane to lane. Each lane is clipped against the polygon's edges, so a
// concave region yields an independent entry/exit segment per crossing.
// overshootM extends every segment past the boundary at both ends, giving
// the vehicle room to finish its turn outside the survey area. Fewer than 3
// vertices or non-positive spacing return an empty list.
func Lawnmower(poly []geo.LatLong, spacingM, angleDeg, altitude, overshootM float64) []mission.Waypoint {
	if len(poly) < 3 || spacingM <= 0 {
		return nil
	}

	center := geo.Centroid(poly)
	bounds := geo.BoundsOf(poly)
	diagonal := geo.Distance(
		geo.LatLong{Lat: bounds.South, Lon: bounds.West},
		geo.LatLong{Lat: bounds.North, Lon: bounds.East})

	// Enough lanes to cover the bounding box at any sweep angle, plus one
	// margin lane on each side.
	numLanes := int(gomath.Ceil(diagonal/spacingM)) + 2
	perp := geo.NormalizeBearing(angleDeg + 90)

	var wps []mission.Waypoint
	for lane := 0; lane < numLanes; lane++ {
		// Lanes are centered on the polygon centroid; negative offsets fall
		// on the far side of it.
		offset := (float64(lane) - float64(numLanes-1)/2) * spacingM
		laneCenter := geo.DestinationPoint(center, perp, offset)

		pts := clipLane(laneCenter, angleDeg, diagonal, poly, overshootM)
		if lane%2 == 1 {
			slices.Reverse(pts)
		}
		for _, p := range pts {
			wps = append(wps, waypointAt(p, altitude))
		}
	}
	return wps
}

// LawnmowerBounds sweeps the rectangle described by b.
func LawnmowerBounds(b geo.Bounds, spacingM, angleDeg, altitude, overshootM float64) []mission.Waypoint {
	return Lawnmower(b.Corners(), spacingM, angleDeg, altitude, overshootM)
}

// clipLane intersects a probe segment through laneCenter along angleDeg
// with every polygon edge and returns the crossing points paired into
// entry/exit segments, each extended by overshootM. The probe runs a full
// covering diagonal out from the lane center in both directions, so it
// crosses any edge the lane can reach. An odd intersection count (the probe
// grazing a vertex) drops the unpaired crossing.
func clipLane(laneCenter geo.LatLong, angleDeg, diagonal float64, poly []geo.LatLong, overshootM float64) []geo.LatLong {
	probeStart := geo.DestinationPoint(laneCenter, geo.OppositeBearing(angleDeg), diagonal)
	probeEnd := geo.DestinationPoint(laneCenter, angleDeg, diagonal)

	type crossing struct {
		p    geo.LatLong
		dist float64
	}
	var crossings []crossing
	for i := range poly {
		e0, e1 := poly[i], poly[(i+1)%len(poly)]
		if p, ok := geo.SegmentIntersection(probeStart, probeEnd, e0, e1); ok {
			crossings = append(crossings, crossing{p: p, dist: geo.Distance(probeStart, p)})
		}
	}
	if len(crossings) < 2 {
		return nil
	}
	slices.SortFunc(crossings, func(a, b crossing) int { return cmp.Compare(a.dist, b.dist) })

	var pts []geo.LatLong
	for i := 0; i+1 < len(crossings); i += 2 {
		entry, exit := crossings[i].p, crossings[i+1].p
		if overshootM > 0 {
			along := geo.Bearing(entry, exit)
			entry = geo.DestinationPoint(entry, geo.OppositeBearing(along), overshootM)
			exit = geo.DestinationPoint(exit, along, overshootM)
		}
		pts = append(pts, entry, exit)
	}
	return pts
}
