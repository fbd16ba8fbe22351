// rand/rand.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package rand wraps a PCG32 generator behind the subset of math/rand that
// the repo uses; deterministic after Seed, which randomized geometry tests
// rely on for reproducible failures.
package rand

import (
	"github.com/MichaelTJones/pcg"
)

type Rand struct {
	r *pcg.PCG32
}

func Make() Rand {
	return Rand{r: pcg.NewPCG32()}
}

func (r *Rand) Seed(s int64) {
	r.r.Seed(uint64(s), 0xda3e39cb94b95bdb)
}

func (r *Rand) Intn(n int) int {
	return int(r.r.Bounded(uint32(n)))
}

func (r *Rand) Float32() float32 {
	return float32(r.r.Random()) / (1<<32 - 1)
}

func (r *Rand) Float64() float64 {
	return float64(r.r.Random()) / (1<<32 - 1)
}

func (r *Rand) Uint32() uint32 {
	return r.r.Random()
}

// Package-level convenience instance.
var r Rand

func init() {
	r = Make()
}

func Seed(s int64) {
	r.Seed(s)
}

func Intn(n int) int {
	return r.Intn(n)
}

func Float64() float64 {
	return r.Float64()
}
