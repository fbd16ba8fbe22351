// pattern/stats.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package pattern

import (
	gomath "math"

	"github.com/groundctl/missiongeo/geo"
	"github.com/groundctl/missiongeo/mission"

	"github.com/mmp/earcut-go"
)

// PlanStats summarizes a generated plan for display and logging.
type PlanStats struct {
	Waypoints   int     `json:"waypoints"`
	PathLengthM float64 `json:"path_length_m"`
	AreaM2      float64 `json:"area_m2"`
}

// Stats reports the waypoint count and great-circle path length of path,
// and the area of the survey region poly. Degenerate inputs produce zero
// fields rather than errors.
func Stats(path []mission.Waypoint, poly []geo.LatLong) PlanStats {
	stats := PlanStats{Waypoints: len(path)}

	for i := 1; i < len(path); i++ {
		if path[i-1].HasPosition() && path[i].HasPosition() {
			stats.PathLengthM += geo.Distance(path[i-1].Pos, path[i].Pos)
		}
	}

	stats.AreaM2 = PolygonArea(poly)
	return stats
}

// PolygonArea returns the area of poly in square meters: the polygon is
// projected to a local planar frame in meters around its centroid, ear-cut
// into triangles, and the triangle areas summed. Triangulating rather than
// taking the shoelace sum keeps the result meaningful for self-touching
// rings. Fewer than 3 vertices give zero.
func PolygonArea(poly []geo.LatLong) float64 {
	if len(poly) < 3 {
		return 0
	}

	center := geo.Centroid(poly)
	mPerDegLon := geo.MetersPerDegreeLatitude * gomath.Cos(geo.Radians(center.Lat))

	vertices := make([]earcut.Vertex, len(poly))
	for i, p := range poly {
		vertices[i].P = [2]float64{(p.Lon - center.Lon) * mPerDegLon,
			(p.Lat - center.Lat) * geo.MetersPerDegreeLatitude}
	}

	var area float64
	for _, tri := range earcut.Triangulate(earcut.Polygon{Rings: [][]earcut.Vertex{vertices}}) {
		a, b, c := tri.Vertices[0].P, tri.Vertices[1].P, tri.Vertices[2].P
		area += geo.Abs((b[0]-a[0])*(c[1]-a[1])-(b[1]-a[1])*(c[0]-a[0])) / 2
	}
	return area
}
