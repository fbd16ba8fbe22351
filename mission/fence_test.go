// mission/fence_test.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/groundctl/missiongeo/geo"
)

var (
	fenceCenter = geo.LatLong{Lat: 47.6, Lon: -122.3}
	// ~2 km east of fenceCenter, outside every fence below.
	farAway = geo.LatLong{Lat: 47.6, Lon: -122.27}

	insideFences = Waypoint{Pos: fenceCenter, PosSet: true, Type: WaypointTypeWaypoint}
	outsideBoth  = Waypoint{Pos: farAway, PosSet: true, Type: WaypointTypeWaypoint}
)

func testCircle(enabled bool) *CircleFence {
	return &CircleFence{Center: fenceCenter, CenterSet: true, RadiusM: 500, Enabled: enabled}
}

// ~600 m square centered on fenceCenter.
func testPolygon() PolygonFence {
	return PolygonFence{
		{Lat: 47.597, Lon: -122.303},
		{Lat: 47.597, Lon: -122.297},
		{Lat: 47.603, Lon: -122.297},
		{Lat: 47.603, Lon: -122.303},
	}
}

func TestValidate(t *testing.T) {
	type Test struct {
		name       string
		wps        []Waypoint
		circle     *CircleFence
		polygon    PolygonFence
		violations []Violation
	}
	tests := []Test{
		{
			name:   "waypoint at fence center",
			wps:    []Waypoint{insideFences},
			circle: testCircle(true),
		},
		{
			name:       "far waypoint against enabled circle",
			wps:        []Waypoint{insideFences, outsideBoth},
			circle:     testCircle(true),
			violations: []Violation{{WaypointIndex: 1, Kind: ViolationOutsideCircle}},
		},
		{
			name:       "far waypoint against polygon only",
			wps:        []Waypoint{outsideBoth},
			polygon:    testPolygon(),
			violations: []Violation{{WaypointIndex: 0, Kind: ViolationOutsidePolygon}},
		},
		{
			name:       "active circle wins over polygon",
			wps:        []Waypoint{outsideBoth},
			circle:     testCircle(true),
			polygon:    testPolygon(),
			violations: []Violation{{WaypointIndex: 0, Kind: ViolationOutsideCircle}},
		},
		{
			name:   "disabled circle never violates",
			wps:    []Waypoint{outsideBoth},
			circle: testCircle(false),
		},
		{
			name:   "circle with unset center never violates",
			wps:    []Waypoint{outsideBoth},
			circle: &CircleFence{RadiusM: 500, Enabled: true},
		},
		{
			name:    "degenerate polygon is no fence",
			wps:     []Waypoint{outsideBoth},
			polygon: PolygonFence{{Lat: 47.6, Lon: -122.3}, {Lat: 47.7, Lon: -122.3}},
		},
		{
			name:   "non-navigation types are never checked",
			wps:    []Waypoint{{Pos: farAway, PosSet: true, Type: WaypointTypeDoJump}},
			circle: testCircle(true),
		},
		{
			name:   "unset position is always valid",
			wps:    []Waypoint{{Type: WaypointTypeWaypoint}},
			circle: testCircle(true),
		},
		{
			name: "no fences at all",
			wps:  []Waypoint{outsideBoth},
		},
		{
			name:   "violations in waypoint order",
			wps:    []Waypoint{insideFences, outsideBoth, {Pos: farAway, PosSet: true, Type: WaypointTypeDoSetServo}, outsideBoth},
			circle: testCircle(true),
			violations: []Violation{
				{WaypointIndex: 1, Kind: ViolationOutsideCircle},
				{WaypointIndex: 3, Kind: ViolationOutsideCircle},
			},
		},
	}

	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			result := Validate(c.wps, c.circle, c.polygon)
			if expected := len(c.violations) == 0; result.Valid != expected {
				t.Errorf("Expected Valid %v, got %v", expected, result.Valid)
			}
			if !slices.Equal(result.Violations, c.violations) {
				t.Errorf("Expected violations %v, got %v", c.violations, result.Violations)
			}
		})
	}
}

func TestValidateInsideCircleOutsidePolygon(t *testing.T) {
	// With an active circle fence the polygon is not consulted, even for
	// waypoints the polygon would reject.
	wp := Waypoint{Pos: geo.DestinationPoint(fenceCenter, 90, 450), PosSet: true, Type: WaypointTypeWaypoint}
	result := Validate([]Waypoint{wp}, testCircle(true), testPolygon())
	if !result.Valid {
		t.Errorf("Expected waypoint inside the circle to validate, got %v", result.Violations)
	}

	// Without the circle the polygon rejects it: 450 m east is past the
	// ~300 m polygon boundary.
	result = Validate([]Waypoint{wp}, nil, testPolygon())
	if result.Valid {
		t.Errorf("Expected polygon violation once the circle fence is gone")
	}
}

func TestCircleFenceUnmarshalJSON(t *testing.T) {
	var fence CircleFence
	if err := json.Unmarshal([]byte(`{"center": {"lat": 47.6, "lon": -122.3}, "radius": 250, "enabled": true}`), &fence); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !fence.CenterSet || !fence.Active() {
		t.Errorf("Expected active fence with set center, got %+v", fence)
	}

	if err := json.Unmarshal([]byte(`{"center": {"lat": 0, "lon": 0}, "radius": 250, "enabled": true}`), &fence); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if fence.CenterSet || fence.Active() {
		t.Errorf("Expected origin center to mean no fence, got %+v", fence)
	}

	var nilFence *CircleFence
	if nilFence.Active() {
		t.Errorf("Expected nil fence to be inactive")
	}
}
