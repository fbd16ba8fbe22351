// cmd/missiongeo/transform.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/groundctl/missiongeo/export"
	"github.com/groundctl/missiongeo/mission"
	"github.com/groundctl/missiongeo/scenario"
	"github.com/groundctl/missiongeo/util"

	"github.com/goforj/godump"
	"github.com/spf13/cobra"
)

var (
	transformKindName string
	transformDLat     float64
	transformDLon     float64
	transformAngle    float64
	transformFactor   float64
	transformKML      string
)

var transformCmd = &cobra.Command{
	Use:   "transform <scenario.json>",
	Short: "Apply a whole-mission transform and emit the result",
	Long: `transform applies one of the mission transforms (translate, rotate,
scale, reverse) to the scenario's waypoints. Rotation and scaling are about
the mission centroid. The transformed scenario is printed as JSON, or
written as KML with --kml.`,
	Args: cobra.ExactArgs(1),
	RunE: runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)
	transformCmd.Flags().StringVar(&transformKindName, "kind", "",
		"transform to apply: translate, rotate, scale, or reverse")
	transformCmd.Flags().Float64Var(&transformDLat, "dlat", 0,
		"translation latitude delta in degrees")
	transformCmd.Flags().Float64Var(&transformDLon, "dlon", 0,
		"translation longitude delta in degrees")
	transformCmd.Flags().Float64Var(&transformAngle, "angle", 0,
		"rotation angle in degrees, clockwise")
	transformCmd.Flags().Float64Var(&transformFactor, "factor", 1,
		"scale factor about the mission centroid")
	transformCmd.Flags().StringVar(&transformKML, "kml", "",
		"write the transformed mission to this KML file instead of printing JSON")
	transformCmd.MarkFlagRequired("kind")
}

func runTransform(cmd *cobra.Command, args []string) error {
	kind, err := mission.ParseTransformKind(transformKindName)
	if err != nil {
		return err
	}

	var e util.ErrorLogger
	s := scenario.Load(args[0], &e)
	if s == nil {
		e.PrintErrors(lg)
		return fmt.Errorf("%s: failed to load", args[0])
	}
	if dumpLoaded {
		godump.Dump(s)
	}

	s.Waypoints = mission.Transform(s.Waypoints, kind, mission.TransformParams{
		DeltaLat: transformDLat,
		DeltaLon: transformDLon,
		AngleDeg: transformAngle,
		Factor:   transformFactor,
	})
	lg.Infof("%s: applied %s to %d waypoints", s.Name, kind, len(s.Waypoints))

	if transformKML != "" {
		f, err := os.Create(transformKML)
		if err != nil {
			return err
		}
		defer f.Close()
		return export.KML(f, s.Name, s.Waypoints, s.PolygonFence)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "    ")
	return enc.Encode(s)
}
