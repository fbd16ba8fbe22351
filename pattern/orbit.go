// pattern/orbit.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package pattern

import (
	"github.com/groundctl/missiongeo/geo"
	"github.com/groundctl/missiongeo/mission"
)

// Orbit generates numPoints evenly spaced points on the circle of radiusM
// meters around center, starting due north of it, then repeats the first
// point to close the loop. clockwise selects the direction of travel.
// Non-positive radius or point count returns an empty list.
func Orbit(center geo.LatLong, radiusM float64, numPoints int, altitude float64, clockwise bool) []mission.Waypoint {
	if radiusM <= 0 || numPoints <= 0 {
		return nil
	}

	step := 360 / float64(numPoints)
	if !clockwise {
		step = -step
	}

	wps := make([]mission.Waypoint, 0, numPoints+1)
	for i := 0; i < numPoints; i++ {
		bearing := geo.NormalizeBearing(float64(i) * step)
		wps = append(wps, waypointAt(geo.DestinationPoint(center, bearing, radiusM), altitude))
	}
	return append(wps, wps[0])
}
