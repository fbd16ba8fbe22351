// mission/mission.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package mission defines the waypoint and geofence types that the geometry
// engine operates on, validates waypoint lists against fences, and applies
// whole-mission transforms. Everything here is pure: inputs are never
// mutated and no function panics on degenerate input.
package mission

import (
	"encoding/json"
	"fmt"

	"github.com/groundctl/missiongeo/geo"

	"github.com/brunoga/deep"
)

type WaypointType int

const (
	WaypointTypeWaypoint WaypointType = iota
	WaypointTypeTakeoff
	WaypointTypeLand
	WaypointTypeLoiterUnlim
	WaypointTypeLoiterTurns
	WaypointTypeLoiterTime
	WaypointTypeROI
	WaypointTypeRTL
	WaypointTypeDoJump
	WaypointTypeDoSetServo
	WaypointTypeDoChangeSpeed
)

// In the same order as the constants above; these are the wire spellings.
var waypointTypeNames = []string{"waypoint", "takeoff", "land", "loiter_unlim",
	"loiter_turns", "loiter_time", "roi", "rtl", "do_jump", "do_set_servo",
	"do_change_speed"}

func (t WaypointType) String() string {
	if t < 0 || int(t) >= len(waypointTypeNames) {
		return fmt.Sprintf("(unhandled waypoint type %d)", int(t))
	}
	return waypointTypeNames[t]
}

// IsNavigation reports whether waypoints of this type carry a meaningful
// position. Command types like do_jump do not; geometry operations must
// ignore them rather than expect callers to filter them out.
func (t WaypointType) IsNavigation() bool {
	switch t {
	case WaypointTypeWaypoint, WaypointTypeTakeoff, WaypointTypeLand,
		WaypointTypeLoiterUnlim, WaypointTypeLoiterTurns, WaypointTypeLoiterTime,
		WaypointTypeROI:
		return true
	default:
		return false
	}
}

func ParseWaypointType(s string) (WaypointType, error) {
	for i, name := range waypointTypeNames {
		if s == name {
			return WaypointType(i), nil
		}
	}
	return 0, fmt.Errorf("%q: unknown waypoint type", s)
}

func (t WaypointType) MarshalJSON() ([]byte, error) {
	if t < 0 || int(t) >= len(waypointTypeNames) {
		return nil, fmt.Errorf("%d: unknown waypoint type", int(t))
	}
	return []byte("\"" + waypointTypeNames[t] + "\""), nil
}

func (t *WaypointType) UnmarshalJSON(b []byte) error {
	if len(b) < 2 {
		return fmt.Errorf("%s: malformed waypoint type", string(b))
	}
	ty, err := ParseWaypointType(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*t = ty
	return nil
}

// Waypoint is one entry in a mission's ordered waypoint list. PosSet
// distinguishes "no position given" from a genuine position at the origin;
// wire data encodes the former as (0,0), so decoding derives the flag
// rather than trusting it from the file. Params carries vehicle-protocol
// parameters opaquely; geometry operations copy them through untouched.
type Waypoint struct {
	Pos    geo.LatLong    `json:"pos"`
	PosSet bool           `json:"-"`
	Alt    float64        `json:"alt"`
	Type   WaypointType   `json:"type"`
	Params map[string]any `json:"params,omitempty"`
}

func (w Waypoint) HasPosition() bool { return w.PosSet }

// Clone returns a copy of the waypoint whose Params share no storage with
// the original.
func (w Waypoint) Clone() Waypoint {
	c := w
	if w.Params != nil {
		c.Params = deep.MustCopy(w.Params)
	}
	return c
}

func (w *Waypoint) UnmarshalJSON(b []byte) error {
	type rawWaypoint Waypoint // avoid recursing back into this method
	var raw rawWaypoint
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*w = Waypoint(raw)
	w.PosSet = !w.Pos.IsZero()
	return nil
}
