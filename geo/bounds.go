// geo/bounds.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package geo

// Bounds is an axis-aligned extent in degrees.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// BoundsOf returns the independent min/max of latitude and longitude over
// pts. An empty or nil slice gives the zero Bounds, which is
// indistinguishable from the bounds of a single point at the origin;
// callers that care must check for empty input themselves.
func BoundsOf(pts []LatLong) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{North: pts[0].Lat, South: pts[0].Lat, East: pts[0].Lon, West: pts[0].Lon}
	for _, p := range pts[1:] {
		b.North = max(b.North, p.Lat)
		b.South = min(b.South, p.Lat)
		b.East = max(b.East, p.Lon)
		b.West = min(b.West, p.Lon)
	}
	return b
}

func (b Bounds) IsZero() bool {
	return b == Bounds{}
}

// Center returns the midpoint of the box in coordinate space.
func (b Bounds) Center() LatLong {
	return LatLong{Lat: (b.North + b.South) / 2, Lon: (b.East + b.West) / 2}
}

// Corners returns the box's vertices in counterclockwise order starting at
// the southwest corner, suitable for use as a polygon.
func (b Bounds) Corners() []LatLong {
	return []LatLong{
		{Lat: b.South, Lon: b.West},
		{Lat: b.South, Lon: b.East},
		{Lat: b.North, Lon: b.East},
		{Lat: b.North, Lon: b.West},
	}
}

// Inside reports whether p falls within the box, boundary included.
func (b Bounds) Inside(p LatLong) bool {
	return p.Lat >= b.South && p.Lat <= b.North && p.Lon >= b.West && p.Lon <= b.East
}

// Expanded returns the bounds grown by d degrees on every side.
func (b Bounds) Expanded(d float64) Bounds {
	return Bounds{North: b.North + d, South: b.South - d, East: b.East + d, West: b.West - d}
}
