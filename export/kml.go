// export/kml.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package export renders generated missions for external tools: KML for
// Google Earth style viewers and encoded polylines for web maps. It consumes
// engine output only; nothing in here feeds back into planning.
package export

import (
	"fmt"
	"io"

	"github.com/groundctl/missiongeo/geo"
	"github.com/groundctl/missiongeo/mission"
	"github.com/groundctl/missiongeo/util"

	"github.com/twpayne/go-kml/v2"
)

// holdMarker reports whether a waypoint gets its own Point placemark in
// addition to appearing on the path. Loiters and ROIs are where the aircraft
// dwells, so they are worth calling out on a map.
func holdMarker(t mission.WaypointType) bool {
	switch t {
	case mission.WaypointTypeLoiterUnlim, mission.WaypointTypeLoiterTurns,
		mission.WaypointTypeLoiterTime, mission.WaypointTypeROI:
		return true
	}
	return false
}

// KML writes the mission as a KML document: the flight path as a LineString,
// Point markers for hold waypoints, and the region polygon if one is given.
// KML coordinate order is lon,lat,alt.
func KML(w io.Writer, name string, wps []mission.Waypoint, poly []geo.LatLong) error {
	path := util.MapSlice(util.FilterSlice(wps, mission.Waypoint.HasPosition),
		func(wp mission.Waypoint) kml.Coordinate {
			return kml.Coordinate{Lon: wp.Pos.Lon, Lat: wp.Pos.Lat, Alt: wp.Alt}
		})

	children := []kml.Element{kml.Name(name)}

	if len(path) > 0 {
		children = append(children, kml.Placemark(
			kml.Name("path"),
			kml.LineString(
				kml.Tessellate(true),
				kml.AltitudeMode(kml.AltitudeModeRelativeToGround),
				kml.Coordinates(path...),
			),
		))
	}

	for i, wp := range wps {
		if !wp.HasPosition() || !holdMarker(wp.Type) {
			continue
		}
		children = append(children, kml.Placemark(
			kml.Name(fmt.Sprintf("%s %d", wp.Type, i)),
			kml.Point(
				kml.AltitudeMode(kml.AltitudeModeRelativeToGround),
				kml.Coordinates(kml.Coordinate{Lon: wp.Pos.Lon, Lat: wp.Pos.Lat, Alt: wp.Alt}),
			),
		))
	}

	if len(poly) >= 3 {
		// LinearRings close explicitly: last coordinate repeats the first.
		ring := util.MapSlice(poly, func(p geo.LatLong) kml.Coordinate {
			return kml.Coordinate{Lon: p.Lon, Lat: p.Lat}
		})
		ring = append(ring, ring[0])
		children = append(children, kml.Placemark(
			kml.Name("region"),
			kml.Polygon(
				kml.Tessellate(true),
				kml.OuterBoundaryIs(kml.LinearRing(kml.Coordinates(ring...))),
			),
		))
	}

	if err := kml.KML(kml.Document(children...)).WriteIndent(w, "", "  "); err != nil {
		return fmt.Errorf("failed to write KML: %w", err)
	}
	return nil
}
