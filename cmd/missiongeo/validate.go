// cmd/missiongeo/validate.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/groundctl/missiongeo/mission"
	"github.com/groundctl/missiongeo/scenario"
	"github.com/groundctl/missiongeo/util"

	"github.com/goforj/godump"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scenario.json|directory>...",
	Short: "Check scenario waypoints against their geofences",
	Long: `validate loads each scenario (directories are walked for .json files),
checks every navigation waypoint against the scenario's geofences, and
prints any violations. The exit status is 1 if any scenario fails to load
or has violations.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// scenarioPaths expands the command arguments, walking directory arguments
// for .json files.
func scenarioPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			paths = append(paths, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(path) == ".json" {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	paths, err := scenarioPaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no scenario files found")
	}

	type report struct {
		path   string
		s      *scenario.Scenario
		loader *util.ErrorLogger
		result mission.ValidationResult
	}
	reports := make([]report, len(paths))

	// Loading dominates the runtime, so fan out across the files; each
	// worker writes only its own slot.
	var eg errgroup.Group
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			var e util.ErrorLogger
			s := scenario.Load(path, &e)
			reports[i] = report{path: path, s: s, loader: &e}
			if s != nil {
				reports[i].result = s.Validate()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	invalid := 0
	for _, r := range reports {
		if r.s == nil {
			invalid++
			fmt.Printf("%s: failed to load\n", r.path)
			r.loader.PrintErrors(lg)
			continue
		}

		if dumpLoaded {
			godump.Dump(r.s)
		}
		for _, w := range r.s.Warnings {
			fmt.Printf("%s: warning: %s\n", r.path, w)
		}

		if r.result.Valid {
			fmt.Printf("%s: %s: ok (%d waypoints)\n", r.path, r.s.Name, len(r.s.Waypoints))
		} else {
			invalid++
			fmt.Printf("%s: %s: %d geofence violations\n", r.path, r.s.Name, len(r.result.Violations))
			for _, v := range r.result.Violations {
				fmt.Printf("    waypoint %d: %s\n", v.WaypointIndex, v.Kind)
			}
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d scenarios invalid", invalid, len(reports))
	}
	lg.Infof("validated %d scenarios", len(reports))
	return nil
}
