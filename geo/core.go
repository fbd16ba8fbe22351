// geo/core.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package geo

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

func Radians(d float64) float64 {
	return d / 180 * gomath.Pi
}

func Degrees(r float64) float64 {
	return r * 180 / gomath.Pi
}

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Sqr[V constraints.Integer | constraints.Float](x V) V { return x * x }

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

// Lerp performs linear interpolation: 0 gives a, 1 gives b.
func Lerp(x, a, b float64) float64 {
	return (1-x)*a + x*b
}

///////////////////////////////////////////////////////////////////////////
// Bearings

// NormalizeBearing returns a bearing in [0,360).
func NormalizeBearing(b float64) float64 {
	if b < 0 {
		return NormalizeBearing(b + 360)
	}
	return gomath.Mod(b, 360)
}

// OppositeBearing returns the reciprocal of the given bearing.
func OppositeBearing(b float64) float64 {
	return NormalizeBearing(b + 180)
}

// BearingDifference returns the minimum difference between two bearings
// (e.g., the difference between 10 and 350 is 20).
func BearingDifference(a, b float64) float64 {
	d := Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}
