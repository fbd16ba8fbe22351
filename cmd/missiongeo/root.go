// cmd/missiongeo/root.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"os"

	"github.com/groundctl/missiongeo/log"
	"github.com/groundctl/missiongeo/util"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const Version = "0.3.0"

// Config is the missiongeo.yaml file: defaults that the flags override.
type Config struct {
	LogLevel string `yaml:"log_level"`
	LogDir   string `yaml:"log_dir"`

	CacheDir         string `yaml:"cache_dir"`
	CacheSize        int    `yaml:"cache_size"`
	CacheTTLMinutes  int    `yaml:"cache_ttl_minutes"`
	CacheMaxAgeHours int    `yaml:"cache_max_age_hours"`
}

var (
	configFile string
	logLevel   string
	logDir     string
	dumpLoaded bool
	profile    bool

	config   Config
	lg       *log.Logger
	profiler util.Profiler
)

var rootCmd = &cobra.Command{
	Use:   "missiongeo",
	Short: "Mission geometry tools for UAV ground control",
	Long: `missiongeo validates mission scenarios against their geofences,
generates coverage patterns (lawnmower, spiral, orbit, perimeter), applies
whole-mission transforms, and exports the results as KML or encoded
polylines. Scenarios are JSON files; see the repository for the format.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		config, err = loadConfig(configFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			config.LogLevel = logLevel
		}
		if logDir != "" {
			config.LogDir = logDir
		}
		lg = log.New(config.LogLevel, config.LogDir)

		if profile {
			if profiler, err = util.CreateProfiler("missiongeo.cpu.prof", "missiongeo.heap.prof"); err != nil {
				return err
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		profiler.Cleanup()
	},
}

// loadConfig reads the YAML config, falling back to defaults if the file
// does not exist.
func loadConfig(path string) (Config, error) {
	cfg := Config{
		LogLevel:         "info",
		CacheSize:        64,
		CacheTTLMinutes:  60,
		CacheMaxAgeHours: 7 * 24,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: invalid YAML: %w", path, err)
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "missiongeo.yaml",
		"configuration file location")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error); overrides the config file")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "",
		"log directory; overrides the config file")
	rootCmd.PersistentFlags().BoolVar(&dumpLoaded, "dump", false,
		"dump loaded scenarios to stdout for debugging")
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false,
		"write CPU and heap profiles for this run")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the missiongeo version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("missiongeo v" + Version)
	},
	// No config or logging needed just to print the version.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}
