// geo/topology.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package geo

import (
	gomath "math"
)

// The predicates in this file treat (lon, lat) as planar x/y coordinates.
// That is a small-extent approximation--fine for mission-sized regions,
// wrong for continent-scale polygons or ones spanning the antimeridian.

// PointInCircle reports whether p is within radiusM meters of center along
// the great circle. The boundary is inclusive.
func PointInCircle(p, center LatLong, radiusM float64) bool {
	return Distance(p, center) <= radiusM
}

// PointInPolygon reports whether p is inside poly by the even-odd rule,
// casting a ray in +lon and counting edge crossings. Polygons with fewer
// than 3 vertices contain nothing.
func PointInPolygon(p LatLong, poly []LatLong) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Lat > p.Lat) != (pj.Lat > p.Lat) &&
			p.Lon < (pj.Lon-pi.Lon)*(p.Lat-pi.Lat)/(pj.Lat-pi.Lat)+pi.Lon {
			inside = !inside
		}
	}
	return inside
}

///////////////////////////////////////////////////////////////////////////
// Segment intersection

// direction gives the orientation of c relative to the segment a->b: the
// sign of the z component of (b-a) x (c-a). Positive is left of the
// segment, negative right, zero collinear.
func direction(a, b, c LatLong) float64 {
	return (b.Lon-a.Lon)*(c.Lat-a.Lat) - (b.Lat-a.Lat)*(c.Lon-a.Lon)
}

// onSegment reports whether c, already known to be collinear with a->b,
// lies within the segment's bounding box (endpoints included).
func onSegment(a, b, c LatLong) bool {
	return min(a.Lon, b.Lon) <= c.Lon && c.Lon <= max(a.Lon, b.Lon) &&
		min(a.Lat, b.Lat) <= c.Lat && c.Lat <= max(a.Lat, b.Lat)
}

// SegmentsIntersect reports whether segments a1->a2 and b1->b2 intersect.
// Proper crossings are detected by the orientation predicate; collinear
// overlaps and endpoints touching the other segment are handled explicitly
// and count as intersections. That one rule is applied consistently--a
// degenerate touch is always an intersection, never silently dropped.
func SegmentsIntersect(a1, a2, b1, b2 LatLong) bool {
	d1 := direction(b1, b2, a1)
	d2 := direction(b1, b2, a2)
	d3 := direction(a1, a2, b1)
	d4 := direction(a1, a2, b2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && onSegment(b1, b2, a1):
		return true
	case d2 == 0 && onSegment(b1, b2, a2):
		return true
	case d3 == 0 && onSegment(a1, a2, b1):
		return true
	case d4 == 0 && onSegment(a1, a2, b2):
		return true
	}
	return false
}

// PolygonSelfIntersects reports whether any two non-adjacent edges of poly
// intersect, where edges sharing a vertex (including the closing edge back
// to the first vertex) are never compared. Below 4 vertices no two edges
// can be non-adjacent, so the result is false.
func PolygonSelfIntersects(poly []LatLong) bool {
	n := len(poly)
	if n < 4 {
		return false
	}
	for i := 0; i < n-1; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				// Adjacent through the wrap-around edge.
				continue
			}
			if SegmentsIntersect(poly[i], poly[(i+1)%n], poly[j], poly[(j+1)%n]) {
				return true
			}
		}
	}
	return false
}

// SegmentIntersection returns the crossing point of segments p1->p2 and
// p3->p4 from the parametric (t,u) solution, with ok false when the
// segments are parallel, degenerate, or do not cross within both spans.
// The parallel test is scale-invariant so it behaves the same for
// degree-sized and meter-sized coordinates.
func SegmentIntersection(p1, p2, p3, p4 LatLong) (LatLong, bool) {
	d1x, d1y := p2.Lon-p1.Lon, p2.Lat-p1.Lat
	d2x, d2y := p4.Lon-p3.Lon, p4.Lat-p3.Lat

	l1 := gomath.Hypot(d1x, d1y)
	l2 := gomath.Hypot(d2x, d2y)
	if l1 == 0 || l2 == 0 {
		return LatLong{}, false
	}

	denom := d1x*d2y - d1y*d2x
	if Abs(denom) < 1e-9*l1*l2 {
		return LatLong{}, false
	}

	t := ((p3.Lon-p1.Lon)*d2y - (p3.Lat-p1.Lat)*d2x) / denom
	u := ((p3.Lon-p1.Lon)*d1y - (p3.Lat-p1.Lat)*d1x) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return LatLong{}, false
	}

	return LatLong{Lat: p1.Lat + t*d1y, Lon: p1.Lon + t*d1x}, true
}
