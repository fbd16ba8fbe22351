// pattern/pattern.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package pattern generates flight-coverage paths over mission regions:
// serpentine lawnmower sweeps, spirals, orbits, and perimeter traces. Every
// generator is a pure function returning a list of synthetic waypoints;
// malformed or degenerate input yields an empty list, never a panic or a
// NaN coordinate.
package pattern

import (
	"github.com/groundctl/missiongeo/geo"
	"github.com/groundctl/missiongeo/mission"
)

// waypointAt wraps a generated position in a synthetic mission waypoint.
func waypointAt(pos geo.LatLong, altitude float64) mission.Waypoint {
	return mission.Waypoint{Pos: pos, PosSet: true, Alt: altitude, Type: mission.WaypointTypeWaypoint}
}
