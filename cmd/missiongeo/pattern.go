// cmd/missiongeo/pattern.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/groundctl/missiongeo/export"
	"github.com/groundctl/missiongeo/mission"
	"github.com/groundctl/missiongeo/pattern"
	"github.com/groundctl/missiongeo/plancache"
	"github.com/groundctl/missiongeo/scenario"
	"github.com/groundctl/missiongeo/util"

	"github.com/goforj/godump"
	"github.com/spf13/cobra"
)

var (
	patternKML      string
	patternPolyline bool
	patternNoCache  bool
)

var patternCmd = &cobra.Command{
	Use:   "pattern <scenario.json>",
	Short: "Generate the scenario's pattern requests and report plan stats",
	Long: `pattern runs every pattern request in the scenario through the plan
cache, prints waypoint count, path length, and covered area per plan, and
optionally writes everything to a KML file or prints encoded polylines.`,
	Args: cobra.ExactArgs(1),
	RunE: runPattern,
}

func init() {
	rootCmd.AddCommand(patternCmd)
	patternCmd.Flags().StringVar(&patternKML, "kml", "",
		"write the generated plans to this KML file")
	patternCmd.Flags().BoolVar(&patternPolyline, "polyline", false,
		"print each plan as an encoded polyline")
	patternCmd.Flags().BoolVar(&patternNoCache, "no-cache", false,
		"skip the on-disk plan cache")
}

func openPlanCache() *plancache.Cache {
	dir := config.CacheDir
	if dir == "" {
		var err error
		dir, err = plancache.DefaultDir()
		if err != nil {
			lg.Warnf("disk plan cache disabled: %v", err)
		}
	}
	if patternNoCache {
		dir = ""
	}
	return plancache.New(config.CacheSize, time.Duration(config.CacheTTLMinutes)*time.Minute, dir)
}

func runPattern(cmd *cobra.Command, args []string) error {
	var e util.ErrorLogger
	s := scenario.Load(args[0], &e)
	if s == nil {
		e.PrintErrors(lg)
		return fmt.Errorf("%s: failed to load", args[0])
	}
	if dumpLoaded {
		godump.Dump(s)
	}
	if len(s.Patterns) == 0 {
		return fmt.Errorf("%s: scenario has no pattern requests", args[0])
	}

	cache := openPlanCache()

	var all []mission.Waypoint
	for i := range s.Patterns {
		req := &s.Patterns[i]
		name := util.Select(req.Name != "", req.Name, req.Kind.String())

		plan, ok := cache.Get(*req)
		if ok {
			lg.Debugf("%s: plan cache hit", name)
		} else {
			plan = req.Generate(s.PolygonFence)
			if err := cache.Put(*req, plan); err != nil {
				lg.Warnf("%s: plan cache write failed: %v", name, err)
			}
		}
		all = append(all, plan...)

		region := req.Region
		if len(region) == 0 {
			region = s.PolygonFence
		}
		st := pattern.Stats(plan, region)
		fmt.Printf("%s: %d waypoints, path %.0f m, area %.0f m^2\n",
			name, st.Waypoints, st.PathLengthM, st.AreaM2)

		if patternPolyline {
			fmt.Printf("%s: polyline %s\n", name, export.Polyline(plan))
		}
	}

	if patternKML != "" {
		f, err := os.Create(patternKML)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.KML(f, s.Name, all, s.PolygonFence); err != nil {
			return err
		}
		lg.Infof("wrote %s", patternKML)
	}

	if err := cache.Cull(time.Duration(config.CacheMaxAgeHours) * time.Hour); err != nil {
		lg.Warnf("plan cache cull failed: %v", err)
	}
	return nil
}
