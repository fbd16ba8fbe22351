// scenario/scenario_test.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scenario

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/groundctl/missiongeo/geo"
	"github.com/groundctl/missiongeo/mission"
	"github.com/groundctl/missiongeo/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validScenarioJSON = `{
    "name": "survey-alpha",
    "description": "Field survey east of the river.",
    "waypoints": [
        {"pos": {"lat": 47.601, "lon": -122.301}, "alt": 30, "type": "takeoff"},
        {"pos": {"lat": 47.602, "lon": -122.299}, "alt": 50},
        {"pos": {"lat": 47.603, "lon": -122.298}, "alt": 50, "type": "loiter_turns", "params": {"turns": 3}},
        {"pos": {"lat": 47.6, "lon": -122.3}, "alt": 0, "type": "land"}
    ],
    "circle_fence": {"center": {"lat": 47.6015, "lon": -122.2995}, "radius": 800, "enabled": true},
    "polygon_fence": [
        {"lat": 47.598, "lon": -122.304},
        {"lat": 47.598, "lon": -122.295},
        {"lat": 47.606, "lon": -122.295},
        {"lat": 47.606, "lon": -122.304}
    ],
    "patterns": [
        {"kind": "orbit", "name": "tower check", "center": {"lat": 47.602, "lon": -122.3},
         "radius": 60, "num_points": 8, "altitude": 40, "clockwise": true}
    ]
}`

func TestLoadBytes(t *testing.T) {
	var e util.ErrorLogger
	s := LoadBytes([]byte(validScenarioJSON), &e)
	require.NotNil(t, s, "%s", e.String())
	require.False(t, e.HaveErrors())

	assert.Equal(t, "survey-alpha", s.Name)
	assert.NotEmpty(t, s.ID, "a missing id should be filled in with a generated one")
	require.Len(t, s.Waypoints, 4)
	assert.Equal(t, mission.WaypointTypeTakeoff, s.Waypoints[0].Type)
	assert.Equal(t, mission.WaypointTypeWaypoint, s.Waypoints[1].Type)
	assert.True(t, s.Waypoints[1].PosSet)
	assert.Equal(t, 3.0, s.Waypoints[2].Params["turns"])
	require.NotNil(t, s.CircleFence)
	assert.True(t, s.CircleFence.Active())
	assert.True(t, s.PolygonFence.Usable())
	require.Len(t, s.Patterns, 1)
	assert.Equal(t, PatternOrbit, s.Patterns[0].Kind)
	assert.Empty(t, s.Warnings)

	assert.True(t, s.Validate().Valid)
}

func TestLoadBytesKeepsID(t *testing.T) {
	doc := `{"id": "mission-7", "name": "x", "waypoints": [{"pos": {"lat": 1, "lon": 2}}]}`
	var e util.ErrorLogger
	s := LoadBytes([]byte(doc), &e)
	require.NotNil(t, s, "%s", e.String())
	assert.Equal(t, "mission-7", s.ID)
}

func TestLoadBytesErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "duplicate key",
			doc:  `{"name": "a", "name": "b", "waypoints": [{"pos": {"lat": 1, "lon": 2}}]}`,
			want: "duplicate JSON key",
		},
		{
			name: "missing name",
			doc:  `{"waypoints": [{"pos": {"lat": 1, "lon": 2}}]}`,
			want: "name is required",
		},
		{
			name: "unknown waypoint field",
			doc:  `{"name": "a", "waypoints": [{"pos": {"lat": 1, "lon": 2}, "altitude": 10}]}`,
			want: "altitude is not allowed",
		},
		{
			name: "unknown waypoint type",
			doc:  `{"name": "a", "waypoints": [{"pos": {"lat": 1, "lon": 2}, "type": "hover"}]}`,
			want: "must be one of the following",
		},
		{
			name: "latitude out of range",
			doc:  `{"name": "a", "waypoints": [{"pos": {"lat": 91, "lon": 2}}]}`,
			want: "outside [-90,90]",
		},
		{
			name: "do_jump target out of range",
			doc: `{"name": "a", "waypoints": [
                {"pos": {"lat": 1, "lon": 2}},
                {"type": "do_jump", "params": {"target": 12}}]}`,
			want: "outside the waypoint list",
		},
		{
			name: "do_jump without target",
			doc: `{"name": "a", "waypoints": [
                {"pos": {"lat": 1, "lon": 2}},
                {"type": "do_jump"}]}`,
			want: `needs a numeric "target"`,
		},
		{
			name: "takeoff not first",
			doc: `{"name": "a", "waypoints": [
                {"pos": {"lat": 1, "lon": 2}},
                {"pos": {"lat": 1.001, "lon": 2}, "type": "takeoff"}]}`,
			want: "must be the first waypoint",
		},
		{
			name: "land not last",
			doc: `{"name": "a", "waypoints": [
                {"pos": {"lat": 1, "lon": 2}, "type": "land"},
                {"pos": {"lat": 1.001, "lon": 2}}]}`,
			want: "must be the last waypoint",
		},
		{
			name: "active circle fence with zero radius",
			doc: `{"name": "a", "waypoints": [{"pos": {"lat": 1, "lon": 2}}],
                "circle_fence": {"center": {"lat": 1, "lon": 2}, "radius": 0, "enabled": true}}`,
			want: `"radius" must be positive`,
		},
		{
			name: "two-vertex polygon fence",
			doc: `{"name": "a", "waypoints": [{"pos": {"lat": 1, "lon": 2}}],
                "polygon_fence": [{"lat": 1, "lon": 2}, {"lat": 1.001, "lon": 2}]}`,
			want: "at least 3 vertices",
		},
		{
			name: "spiral with equal radii",
			doc: `{"name": "a", "waypoints": [{"pos": {"lat": 1, "lon": 2}}],
                "patterns": [{"kind": "spiral", "center": {"lat": 1, "lon": 2},
                    "start_radius": 50, "end_radius": 50, "spacing": 10, "points_per_loop": 8}]}`,
			want: "must differ",
		},
		{
			name: "lawnmower without a region",
			doc: `{"name": "a", "waypoints": [{"pos": {"lat": 1, "lon": 2}}],
                "patterns": [{"kind": "lawnmower", "spacing": 30}]}`,
			want: `needs a "region"`,
		},
		{
			name: "malformed JSON",
			doc:  `{"name": "a", "waypoints": [`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var e util.ErrorLogger
			s := LoadBytes([]byte(tc.doc), &e)
			assert.Nil(t, s)
			require.True(t, e.HaveErrors())
			if tc.want != "" {
				assert.Contains(t, e.String(), tc.want)
			}
		})
	}
}

func TestLoadBytesSelfIntersectionWarning(t *testing.T) {
	doc := `{"name": "bowtie", "waypoints": [{"pos": {"lat": 0.0005, "lon": 0.00025}}],
        "polygon_fence": [
            {"lat": 0, "lon": 0},
            {"lat": 0.001, "lon": 0.001},
            {"lat": 0.001, "lon": 0},
            {"lat": 0, "lon": 0.001}
        ]}`
	var e util.ErrorLogger
	s := LoadBytes([]byte(doc), &e)
	require.NotNil(t, s, "%s", e.String())
	require.Len(t, s.Warnings, 1)
	assert.Contains(t, s.Warnings[0], "intersects itself")
}

func TestLoadMissingFile(t *testing.T) {
	var e util.ErrorLogger
	s := Load(filepath.Join(t.TempDir(), "nope.json"), &e)
	assert.Nil(t, s)
	assert.True(t, e.HaveErrors())
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	writeScenario := func(path, name string) {
		doc := `{"name": "` + name + `", "waypoints": [{"pos": {"lat": 47.6, "lon": -122.3}, "alt": 20}]}`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	}

	writeScenario(filepath.Join(dir, "alpha.json"), "alpha")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	writeScenario(filepath.Join(dir, "sub", "beta.json"), "beta")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not json"), 0o644))

	var e util.ErrorLogger
	scenarios := LoadDir(dir, &e)
	require.NotNil(t, scenarios, "%s", e.String())
	assert.Len(t, scenarios, 2)
	assert.Contains(t, scenarios, "alpha")
	assert.Contains(t, scenarios, "beta")
}

func TestLoadDirNameCollision(t *testing.T) {
	dir := t.TempDir()
	doc := `{"name": "dup", "waypoints": [{"pos": {"lat": 47.6, "lon": -122.3}}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(doc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(doc), 0o644))

	var e util.ErrorLogger
	scenarios := LoadDir(dir, &e)
	assert.Nil(t, scenarios)
	require.True(t, e.HaveErrors())
	assert.Contains(t, e.String(), "redefined")
}

func TestPatternKindNames(t *testing.T) {
	for kind, name := range patternKindNames {
		assert.Equal(t, name, PatternKind(kind).String())
		parsed, err := ParsePatternKind(name)
		require.NoError(t, err)
		assert.Equal(t, PatternKind(kind), parsed)
	}
	_, err := ParsePatternKind("figure_eight")
	assert.Error(t, err)

	b, err := json.Marshal(PatternPerimeter)
	require.NoError(t, err)
	assert.Equal(t, `"perimeter"`, string(b))
}

func TestPatternRequestGenerate(t *testing.T) {
	region := []geo.LatLong{
		{Lat: 47.598, Lon: -122.304},
		{Lat: 47.598, Lon: -122.295},
		{Lat: 47.606, Lon: -122.295},
		{Lat: 47.606, Lon: -122.304},
	}

	orbit := PatternRequest{Kind: PatternOrbit, Center: geo.LatLong{Lat: 47.6, Lon: -122.3},
		RadiusM: 50, NumPoints: 6, AltitudeM: 40}
	assert.Len(t, orbit.Generate(nil), 7, "orbit should close back on its first point")

	spiral := PatternRequest{Kind: PatternSpiral, Center: geo.LatLong{Lat: 47.6, Lon: -122.3},
		StartRadiusM: 0, EndRadiusM: 80, SpacingM: 20, PointsPerLoop: 8, AltitudeM: 45}
	wps := spiral.Generate(nil)
	require.NotEmpty(t, wps)
	assert.InDelta(t, 80, geo.Distance(spiral.Center, wps[len(wps)-1].Pos), 0.5)

	perim := PatternRequest{Kind: PatternPerimeter, AltitudeM: 30}
	assert.Len(t, perim.Generate(region), 5, "perimeter should fall back to the scenario region")

	mower := PatternRequest{Kind: PatternLawnmower, SpacingM: 100, AngleDeg: 90, AltitudeM: 35}
	wps = mower.Generate(region)
	require.NotEmpty(t, wps)
	assert.Zero(t, len(wps)%2, "lawnmower waypoints come in lane-end pairs")
	assert.Equal(t, 35.0, wps[0].Alt)

	// A request's own region wins over the fallback.
	own := PatternRequest{Kind: PatternPerimeter, AltitudeM: 30,
		Region: []geo.LatLong{{Lat: 10, Lon: 10}, {Lat: 10, Lon: 10.001}, {Lat: 10.001, Lon: 10}}}
	wps = own.Generate(region)
	require.Len(t, wps, 4)
	assert.Equal(t, geo.LatLong{Lat: 10, Lon: 10}, wps[0].Pos)

	bad := PatternRequest{Kind: PatternKind(9)}
	assert.Nil(t, bad.Generate(region))
}
