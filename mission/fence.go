// mission/fence.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import (
	"encoding/json"
	"fmt"

	"github.com/groundctl/missiongeo/geo"
)

// CircleFence is a circular geofence. CenterSet plays the same role as
// Waypoint.PosSet: wire data uses a (0,0) center to mean "no fence
// configured", so decoding derives the flag from the center value.
type CircleFence struct {
	Center    geo.LatLong `json:"center"`
	CenterSet bool        `json:"-"`
	RadiusM   float64     `json:"radius"`
	Enabled   bool        `json:"enabled"`
}

// Active reports whether the fence should be checked at all; a disabled
// fence or one with no center never produces violations.
func (c *CircleFence) Active() bool {
	return c != nil && c.Enabled && c.CenterSet
}

func (c *CircleFence) UnmarshalJSON(b []byte) error {
	type rawCircleFence CircleFence
	var raw rawCircleFence
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*c = CircleFence(raw)
	c.CenterSet = !c.Center.IsZero()
	return nil
}

// PolygonFence is a polygonal geofence: an open ring of vertices, any
// winding direction.
type PolygonFence []geo.LatLong

// Usable reports whether the fence encloses area; below three vertices it
// is treated as "no fence".
func (p PolygonFence) Usable() bool { return len(p) >= 3 }

type ViolationKind int

const (
	ViolationOutsideCircle ViolationKind = iota
	ViolationOutsidePolygon
)

func (k ViolationKind) String() string {
	switch k {
	case ViolationOutsideCircle:
		return "outside_circle"
	case ViolationOutsidePolygon:
		return "outside_polygon"
	default:
		return fmt.Sprintf("(unhandled violation kind %d)", int(k))
	}
}

func (k ViolationKind) MarshalJSON() ([]byte, error) {
	switch k {
	case ViolationOutsideCircle:
		return []byte(`"outside_circle"`), nil
	case ViolationOutsidePolygon:
		return []byte(`"outside_polygon"`), nil
	default:
		return nil, fmt.Errorf("%d: unknown violation kind", int(k))
	}
}

func (k *ViolationKind) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"outside_circle"`:
		*k = ViolationOutsideCircle
		return nil
	case `"outside_polygon"`:
		*k = ViolationOutsidePolygon
		return nil
	default:
		return fmt.Errorf("%s: unknown violation kind", string(b))
	}
}

type Violation struct {
	WaypointIndex int           `json:"waypoint_index"`
	Kind          ViolationKind `json:"kind"`
}

type ValidationResult struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations,omitempty"`
}

// Validate checks every waypoint against the configured fences and returns
// the violations in waypoint order. Waypoints are checked only if they are
// a navigation type with a set position. When the circle fence is active it
// alone decides each waypoint; the polygon fence is consulted only when
// there is no active circle fence.
func Validate(wps []Waypoint, circle *CircleFence, polygon PolygonFence) ValidationResult {
	var violations []Violation
	for i, wp := range wps {
		if !wp.Type.IsNavigation() || !wp.HasPosition() {
			continue
		}

		if circle.Active() {
			if !geo.PointInCircle(wp.Pos, circle.Center, circle.RadiusM) {
				violations = append(violations, Violation{WaypointIndex: i, Kind: ViolationOutsideCircle})
			}
		} else if polygon.Usable() {
			if !geo.PointInPolygon(wp.Pos, polygon) {
				violations = append(violations, Violation{WaypointIndex: i, Kind: ViolationOutsidePolygon})
			}
		}
	}
	return ValidationResult{Valid: len(violations) == 0, Violations: violations}
}
