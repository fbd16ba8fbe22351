// export/polyline.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package export

import (
	"fmt"

	"github.com/groundctl/missiongeo/geo"
	"github.com/groundctl/missiongeo/mission"
	"github.com/groundctl/missiongeo/util"

	"github.com/twpayne/go-polyline"
)

// Polyline returns the flight path as a Google encoded polyline. Waypoints
// without a position are skipped; altitude does not survive the encoding.
func Polyline(wps []mission.Waypoint) []byte {
	coords := util.MapSlice(util.FilterSlice(wps, mission.Waypoint.HasPosition),
		func(wp mission.Waypoint) []float64 { return []float64{wp.Pos.Lat, wp.Pos.Lon} })
	return polyline.EncodeCoords(coords)
}

// DecodePolyline recovers path coordinates from an encoded polyline. The
// encoding quantizes to 1e-5 degrees, so positions come back a meter or so
// off at most.
func DecodePolyline(encoded []byte) ([]geo.LatLong, error) {
	if len(encoded) == 0 {
		return nil, nil
	}

	coords, _, err := polyline.DecodeCoords(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode polyline: %w", err)
	}

	return util.MapSlice(coords, func(c []float64) geo.LatLong {
		return geo.LatLong{Lat: c[0], Lon: c[1]}
	}), nil
}
