// pattern/spiral.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package pattern

import (
	gomath "math"

	"github.com/groundctl/missiongeo/geo"
	"github.com/groundctl/missiongeo/mission"
)

// Spiral generates an Archimedean-style spiral around center, running from
// startRadiusM to endRadiusM with loops spacingM apart and pointsPerLoop
// points on each loop. Whether it winds inward or outward follows from
// which radius is larger; either way the bearing advances clockwise with
// the point index. The last point lands exactly on the end radius.
// Non-positive spacing or pointsPerLoop, a negative radius, or equal radii
// (no loops to fly) return an empty list.
func Spiral(center geo.LatLong, startRadiusM, endRadiusM, spacingM float64, pointsPerLoop int, altitude float64) []mission.Waypoint {
	if spacingM <= 0 || pointsPerLoop <= 0 || startRadiusM < 0 || endRadiusM < 0 {
		return nil
	}

	totalLoops := geo.Abs(startRadiusM-endRadiusM) / spacingM
	n := int(gomath.Ceil(totalLoops * float64(pointsPerLoop)))
	if n == 0 {
		return nil
	}

	wps := make([]mission.Waypoint, 0, n+1)
	for i := 0; i <= n; i++ {
		radius := geo.Lerp(float64(i)/float64(n), startRadiusM, endRadiusM)
		bearing := geo.NormalizeBearing(float64(i) / float64(pointsPerLoop) * 360)
		wps = append(wps, waypointAt(geo.DestinationPoint(center, bearing, radius), altitude))
	}
	return wps
}
