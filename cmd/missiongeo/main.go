// cmd/missiongeo/main.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"os"
)

func main() {
	defer func() {
		if err := lg.CatchAndLogPanic(); err != nil {
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
