// scenario/scenario.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package scenario loads mission scenario files: JSON documents carrying a
// named waypoint list, optional geofences, and pattern generation requests.
// Loading validates structure against an embedded JSON schema and semantics
// with an ErrorLogger; a scenario either loads completely or not at all.
package scenario

import (
	"fmt"

	"github.com/groundctl/missiongeo/geo"
	"github.com/groundctl/missiongeo/mission"
	"github.com/groundctl/missiongeo/pattern"
	"github.com/groundctl/missiongeo/util"

	"github.com/google/uuid"
)

type PatternKind int

const (
	PatternLawnmower PatternKind = iota
	PatternSpiral
	PatternOrbit
	PatternPerimeter
)

var patternKindNames = []string{"lawnmower", "spiral", "orbit", "perimeter"}

func (k PatternKind) String() string {
	if k < 0 || int(k) >= len(patternKindNames) {
		return fmt.Sprintf("(unhandled pattern kind %d)", int(k))
	}
	return patternKindNames[k]
}

func ParsePatternKind(s string) (PatternKind, error) {
	for i, name := range patternKindNames {
		if s == name {
			return PatternKind(i), nil
		}
	}
	return 0, fmt.Errorf("%q: unknown pattern kind", s)
}

func (k PatternKind) MarshalJSON() ([]byte, error) {
	if k < 0 || int(k) >= len(patternKindNames) {
		return nil, fmt.Errorf("%d: unknown pattern kind", int(k))
	}
	return []byte("\"" + patternKindNames[k] + "\""), nil
}

func (k *PatternKind) UnmarshalJSON(b []byte) error {
	if len(b) < 2 {
		return fmt.Errorf("%s: malformed pattern kind", string(b))
	}
	kind, err := ParsePatternKind(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// PatternRequest describes one pattern to generate for a scenario. Each
// kind reads its own parameter subset and ignores the rest; the schema
// keeps files honest about field names and check keeps the values sane.
type PatternRequest struct {
	Kind   PatternKind   `json:"kind"`
	Name   string        `json:"name,omitempty"`
	Region []geo.LatLong `json:"region,omitempty"`
	Center geo.LatLong   `json:"center"`

	SpacingM   float64 `json:"spacing,omitempty"`
	AngleDeg   float64 `json:"angle,omitempty"`
	AltitudeM  float64 `json:"altitude,omitempty"`
	OvershootM float64 `json:"overshoot,omitempty"`

	StartRadiusM  float64 `json:"start_radius,omitempty"`
	EndRadiusM    float64 `json:"end_radius,omitempty"`
	PointsPerLoop int     `json:"points_per_loop,omitempty"`

	RadiusM   float64 `json:"radius,omitempty"`
	NumPoints int     `json:"num_points,omitempty"`
	Clockwise bool    `json:"clockwise,omitempty"`

	InsetM float64 `json:"inset,omitempty"`
}

// region returns the request's own region if it has one, otherwise the
// scenario-level fallback.
func (r *PatternRequest) region(fallback []geo.LatLong) []geo.LatLong {
	if len(r.Region) > 0 {
		return r.Region
	}
	return fallback
}

// Generate runs the requested generator. Area patterns without their own
// region fall back to fallbackRegion; callers pass the scenario's polygon
// fence there.
func (r *PatternRequest) Generate(fallbackRegion []geo.LatLong) []mission.Waypoint {
	switch r.Kind {
	case PatternLawnmower:
		return pattern.Lawnmower(r.region(fallbackRegion), r.SpacingM, r.AngleDeg, r.AltitudeM, r.OvershootM)
	case PatternSpiral:
		return pattern.Spiral(r.Center, r.StartRadiusM, r.EndRadiusM, r.SpacingM, r.PointsPerLoop, r.AltitudeM)
	case PatternOrbit:
		return pattern.Orbit(r.Center, r.RadiusM, r.NumPoints, r.AltitudeM, r.Clockwise)
	case PatternPerimeter:
		return pattern.Perimeter(r.region(fallbackRegion), r.AltitudeM, r.InsetM)
	default:
		return nil
	}
}

func (r *PatternRequest) check(fallbackRegion []geo.LatLong, e *util.ErrorLogger) {
	defer e.CheckDepth(e.CurrentDepth())

	name := r.Name
	if name == "" {
		name = r.Kind.String()
	}
	e.Push("Pattern " + name)
	defer e.Pop()

	checkLatLongs(r.Region, e)

	switch r.Kind {
	case PatternLawnmower:
		if len(r.region(fallbackRegion)) < 3 {
			e.ErrorString("needs a \"region\" or a polygon fence with at least 3 vertices")
		}
		if r.SpacingM <= 0 {
			e.ErrorString("\"spacing\" must be positive")
		}

	case PatternSpiral:
		checkLatLong(r.Center, e)
		if r.SpacingM <= 0 {
			e.ErrorString("\"spacing\" must be positive")
		}
		if r.PointsPerLoop <= 0 {
			e.ErrorString("\"points_per_loop\" must be positive")
		}
		if r.StartRadiusM < 0 || r.EndRadiusM < 0 {
			e.ErrorString("radii must not be negative")
		}
		if r.StartRadiusM == r.EndRadiusM {
			e.ErrorString("\"start_radius\" and \"end_radius\" must differ")
		}

	case PatternOrbit:
		checkLatLong(r.Center, e)
		if r.RadiusM <= 0 {
			e.ErrorString("\"radius\" must be positive")
		}
		if r.NumPoints <= 0 {
			e.ErrorString("\"num_points\" must be positive")
		}

	case PatternPerimeter:
		if len(r.region(fallbackRegion)) < 3 {
			e.ErrorString("needs a \"region\" or a polygon fence with at least 3 vertices")
		}
		if r.InsetM < 0 {
			e.ErrorString("\"inset\" must not be negative")
		}
	}
}

// Scenario is one mission definition from a scenario file.
type Scenario struct {
	ID           string               `json:"id,omitempty"`
	Name         string               `json:"name"`
	Description  string               `json:"description,omitempty"`
	Waypoints    []mission.Waypoint   `json:"waypoints"`
	CircleFence  *mission.CircleFence `json:"circle_fence,omitempty"`
	PolygonFence mission.PolygonFence `json:"polygon_fence,omitempty"`
	Patterns     []PatternRequest     `json:"patterns,omitempty"`

	// Non-fatal findings from loading, for display next to the results.
	Warnings []string `json:"-"`
}

// Validate checks the scenario's waypoints against its fences.
func (s *Scenario) Validate() mission.ValidationResult {
	return mission.Validate(s.Waypoints, s.CircleFence, s.PolygonFence)
}

// postLoad fills derived fields and checks everything the schema cannot:
// value ranges, cross-references between waypoints, and fence geometry.
func (s *Scenario) postLoad(e *util.ErrorLogger) {
	defer e.CheckDepth(e.CurrentDepth())

	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	e.Push("Scenario " + s.Name)
	defer e.Pop()

	for i, wp := range s.Waypoints {
		e.Push(fmt.Sprintf("Waypoint %d", i))
		if wp.HasPosition() {
			checkLatLong(wp.Pos, e)
		}
		switch wp.Type {
		case mission.WaypointTypeTakeoff:
			if i != 0 {
				e.ErrorString("\"takeoff\" must be the first waypoint")
			}
		case mission.WaypointTypeLand, mission.WaypointTypeRTL:
			if i != len(s.Waypoints)-1 {
				e.ErrorString("\"%s\" must be the last waypoint", wp.Type)
			}
		case mission.WaypointTypeDoJump:
			// JSON numbers decode into params as float64.
			if target, ok := wp.Params["target"].(float64); !ok {
				e.ErrorString("\"do_jump\" needs a numeric \"target\" in \"params\"")
			} else if int(target) < 0 || int(target) >= len(s.Waypoints) {
				e.ErrorString("\"target\" %d is outside the waypoint list", int(target))
			}
		}
		e.Pop()
	}

	if s.CircleFence.Active() {
		e.Push("Circle fence")
		checkLatLong(s.CircleFence.Center, e)
		if s.CircleFence.RadiusM <= 0 {
			e.ErrorString("\"radius\" must be positive")
		}
		e.Pop()
	}

	if len(s.PolygonFence) > 0 {
		e.Push("Polygon fence")
		if !s.PolygonFence.Usable() {
			e.ErrorString("needs at least 3 vertices")
		}
		checkLatLongs(s.PolygonFence, e)
		if geo.PolygonSelfIntersects(s.PolygonFence) {
			s.Warnings = append(s.Warnings,
				"polygon fence intersects itself; containment uses the even-odd rule")
		}
		e.Pop()
	}

	for i := range s.Patterns {
		s.Patterns[i].check(s.PolygonFence, e)
	}
}

func checkLatLong(p geo.LatLong, e *util.ErrorLogger) {
	if p.Lat < -90 || p.Lat > 90 {
		e.ErrorString("latitude %v is outside [-90,90]", p.Lat)
	}
	// Longitude is allowed past the antimeridian but a full extra turn
	// means someone confused degrees with something else.
	if p.Lon < -360 || p.Lon > 360 {
		e.ErrorString("longitude %v is outside [-360,360]", p.Lon)
	}
}

func checkLatLongs(pts []geo.LatLong, e *util.ErrorLogger) {
	for _, p := range pts {
		checkLatLong(p, e)
	}
}
