// mission/transform.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import (
	"fmt"

	"github.com/groundctl/missiongeo/geo"
	"github.com/groundctl/missiongeo/util"
)

type TransformKind int

const (
	TransformNone TransformKind = iota
	TransformTranslate
	TransformRotate
	TransformScale
	TransformReverse
)

func (k TransformKind) String() string {
	if k < 0 || int(k) >= len(transformKindNames) {
		return fmt.Sprintf("(unhandled transform kind %d)", int(k))
	}
	return transformKindNames[k]
}

var transformKindNames = []string{"none", "translate", "rotate", "scale", "reverse"}

func ParseTransformKind(s string) (TransformKind, error) {
	for i, name := range transformKindNames {
		if s == name {
			return TransformKind(i), nil
		}
	}
	return 0, fmt.Errorf("%q: unknown transform kind", s)
}

func (k TransformKind) MarshalJSON() ([]byte, error) {
	if k < 0 || int(k) >= len(transformKindNames) {
		return nil, fmt.Errorf("%d: unknown transform kind", int(k))
	}
	return []byte("\"" + transformKindNames[k] + "\""), nil
}

func (k *TransformKind) UnmarshalJSON(b []byte) error {
	if len(b) < 2 {
		return fmt.Errorf("%s: malformed transform kind", string(b))
	}
	kind, err := ParseTransformKind(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// TransformParams carries the parameters for all transform kinds; each kind
// reads only its own fields and ignores the rest.
type TransformParams struct {
	DeltaLat float64 `json:"delta_lat"`
	DeltaLon float64 `json:"delta_lon"`
	AngleDeg float64 `json:"angle"`
	Factor   float64 `json:"factor"`
}

// Transform applies kind to the mission's waypoint list and returns the
// result. TransformNone and empty input return wps itself, so callers can
// detect a no-op by comparing slice identity. All other kinds return a new
// slice of cloned waypoints; the input is never mutated. Rotate and Scale
// share a single centroid computed from the navigation waypoints that have
// positions; waypoints without a usable position pass through coordinate
// transforms unchanged.
func Transform(wps []Waypoint, kind TransformKind, p TransformParams) []Waypoint {
	if len(wps) == 0 {
		return wps
	}

	switch kind {
	case TransformTranslate:
		return transformPositions(wps, func(pos geo.LatLong) geo.LatLong {
			return geo.Translate(pos, p.DeltaLat, p.DeltaLon)
		})

	case TransformRotate:
		center := Centroid(wps)
		return transformPositions(wps, func(pos geo.LatLong) geo.LatLong {
			return geo.Rotate(pos, center, p.AngleDeg)
		})

	case TransformScale:
		center := Centroid(wps)
		return transformPositions(wps, func(pos geo.LatLong) geo.LatLong {
			return geo.Scale(pos, center, p.Factor)
		})

	case TransformReverse:
		out := make([]Waypoint, len(wps))
		for i, wp := range wps {
			out[len(wps)-1-i] = wp.Clone()
		}
		return out

	default:
		return wps
	}
}

// Centroid returns the spherical centroid of the mission's usable waypoint
// positions, or (0,0) if it has none.
func Centroid(wps []Waypoint) geo.LatLong {
	usable := util.FilterSlice(wps, func(wp Waypoint) bool {
		return wp.Type.IsNavigation() && wp.HasPosition()
	})
	return geo.Centroid(util.MapSlice(usable, func(wp Waypoint) geo.LatLong { return wp.Pos }))
}

func transformPositions(wps []Waypoint, xf func(geo.LatLong) geo.LatLong) []Waypoint {
	out := make([]Waypoint, len(wps))
	for i, wp := range wps {
		out[i] = wp.Clone()
		if wp.Type.IsNavigation() && wp.HasPosition() {
			out[i].Pos = xf(wp.Pos)
		}
	}
	return out
}
