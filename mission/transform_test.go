// mission/transform_test.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import (
	"testing"

	"github.com/groundctl/missiongeo/geo"
)

func testMission() []Waypoint {
	return []Waypoint{
		{Pos: geo.LatLong{Lat: 47.60, Lon: -122.30}, PosSet: true, Alt: 30, Type: WaypointTypeTakeoff},
		{Pos: geo.LatLong{Lat: 47.61, Lon: -122.30}, PosSet: true, Alt: 80, Type: WaypointTypeWaypoint,
			Params: map[string]any{"speed": 12.0}},
		{Type: WaypointTypeDoJump, Params: map[string]any{"target": 0.0}},
		{Pos: geo.LatLong{Lat: 47.61, Lon: -122.29}, PosSet: true, Alt: 80, Type: WaypointTypeLoiterTurns},
		{Pos: geo.LatLong{Lat: 47.60, Lon: -122.29}, PosSet: true, Alt: 30, Type: WaypointTypeLand},
	}
}

func TestTransformKindNames(t *testing.T) {
	for i, name := range transformKindNames {
		kind, err := ParseTransformKind(name)
		if err != nil {
			t.Errorf("ParseTransformKind(%q) failed: %v", name, err)
		}
		if kind != TransformKind(i) || kind.String() != name {
			t.Errorf("Expected %q to round-trip, got %d %q", name, kind, kind.String())
		}
	}
	if _, err := ParseTransformKind("shear"); err == nil {
		t.Errorf("Expected error for unknown transform kind")
	}
}

func TestTransformTranslate(t *testing.T) {
	wps := testMission()
	out := Transform(wps, TransformTranslate, TransformParams{DeltaLat: 1, DeltaLon: -1})

	if len(out) != len(wps) {
		t.Fatalf("Expected %d waypoints, got %d", len(wps), len(out))
	}
	for i, wp := range wps {
		if !wp.Type.IsNavigation() || !wp.HasPosition() {
			if out[i].Pos != wp.Pos {
				t.Errorf("Waypoint %d has no usable position but moved to %v", i, out[i].Pos)
			}
			continue
		}
		expected := geo.LatLong{Lat: wp.Pos.Lat + 1, Lon: wp.Pos.Lon - 1}
		if out[i].Pos != expected {
			t.Errorf("Waypoint %d: expected %v, got %v", i, expected, out[i].Pos)
		}
		if out[i].Alt != wp.Alt || out[i].Type != wp.Type {
			t.Errorf("Waypoint %d: non-position fields changed", i)
		}
	}

	// The input mission is untouched.
	if wps[0].Pos != testMission()[0].Pos {
		t.Errorf("Transform mutated its input")
	}
}

func TestTransformRotate(t *testing.T) {
	wps := testMission()
	center := Centroid(wps)

	out := Transform(wps, TransformRotate, TransformParams{AngleDeg: 90})
	for i := range wps {
		if !wps[i].Type.IsNavigation() || !wps[i].HasPosition() {
			continue
		}
		before := geo.Distance(center, wps[i].Pos)
		after := geo.Distance(center, out[i].Pos)
		if geo.Abs(after-before) > 0.01*before {
			t.Errorf("Waypoint %d: distance from centroid %v became %v", i, before, after)
		}
		db := geo.BearingDifference(geo.NormalizeBearing(geo.Bearing(center, wps[i].Pos)+90),
			geo.Bearing(center, out[i].Pos))
		if db > 0.1 {
			t.Errorf("Waypoint %d: bearing off by %v after 90 degree rotation", i, db)
		}
	}

	// Zero rotation moves nothing measurably.
	out = Transform(wps, TransformRotate, TransformParams{AngleDeg: 0})
	for i := range wps {
		if d := geo.Distance(wps[i].Pos, out[i].Pos); d > 0.01 {
			t.Errorf("Waypoint %d moved %v m under zero rotation", i, d)
		}
	}
}

func TestTransformScale(t *testing.T) {
	wps := testMission()
	center := Centroid(wps)

	out := Transform(wps, TransformScale, TransformParams{Factor: 2})
	for i := range wps {
		if !wps[i].Type.IsNavigation() || !wps[i].HasPosition() {
			continue
		}
		before := geo.Distance(center, wps[i].Pos)
		after := geo.Distance(center, out[i].Pos)
		if geo.Abs(after-2*before) > 0.01*before {
			t.Errorf("Waypoint %d: distance from centroid %v scaled to %v, expected %v",
				i, before, after, 2*before)
		}
	}
}

func TestTransformReverse(t *testing.T) {
	wps := testMission()
	out := Transform(wps, TransformReverse, TransformParams{})

	if len(out) != len(wps) {
		t.Fatalf("Expected %d waypoints, got %d", len(wps), len(out))
	}
	for i := range wps {
		mirror := out[len(out)-1-i]
		if mirror.Pos != wps[i].Pos || mirror.Alt != wps[i].Alt || mirror.Type != wps[i].Type {
			t.Errorf("Waypoint %d not mirrored correctly: %+v", i, mirror)
		}
	}
}

func TestTransformIdentity(t *testing.T) {
	wps := testMission()

	if out := Transform(wps, TransformNone, TransformParams{}); &out[0] != &wps[0] {
		t.Errorf("Expected TransformNone to return the input slice")
	}
	if out := Transform(wps, TransformKind(42), TransformParams{}); &out[0] != &wps[0] {
		t.Errorf("Expected unknown kind to return the input slice")
	}
	if out := Transform(nil, TransformTranslate, TransformParams{DeltaLat: 1}); out != nil {
		t.Errorf("Expected nil input to return nil, got %v", out)
	}

	empty := []Waypoint{}
	if out := Transform(empty, TransformReverse, TransformParams{}); len(out) != 0 {
		t.Errorf("Expected empty input to stay empty, got %v", out)
	}
}

func TestTransformCopiesParams(t *testing.T) {
	wps := testMission()
	out := Transform(wps, TransformTranslate, TransformParams{DeltaLat: 0.01})

	out[1].Params["speed"] = 99.0
	if wps[1].Params["speed"] != 12.0 {
		t.Errorf("Transform output shares Params storage with the input")
	}
}

func TestMissionCentroid(t *testing.T) {
	if c := Centroid(nil); !c.IsZero() {
		t.Errorf("Expected zero centroid for empty mission, got %v", c)
	}

	// Only navigation waypoints with set positions contribute: the do_jump
	// entry and any unset positions are ignored.
	wps := []Waypoint{
		{Pos: geo.LatLong{Lat: 10, Lon: 10}, PosSet: true, Type: WaypointTypeWaypoint},
		{Pos: geo.LatLong{Lat: -10, Lon: -10}, PosSet: true, Type: WaypointTypeWaypoint},
		{Pos: geo.LatLong{Lat: 80, Lon: 170}, PosSet: true, Type: WaypointTypeDoJump},
		{Type: WaypointTypeWaypoint},
	}
	c := Centroid(wps)
	if geo.Abs(c.Lat) > 1e-9 || geo.Abs(c.Lon) > 1e-9 {
		t.Errorf("Expected origin centroid, got %v", c)
	}
}
