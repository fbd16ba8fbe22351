// scenario/load.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scenario

import (
	_ "embed"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/groundctl/missiongeo/util"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var scenarioSchema []byte

// LoadBytes decodes and validates a single scenario document. Errors are
// accumulated in e; nil is returned if any were found.
func LoadBytes(contents []byte, e *util.ErrorLogger) *Scenario {
	defer e.CheckDepth(e.CurrentDepth())

	// encoding/json keeps the last value for a repeated key, which would
	// silently drop part of the file.
	if dupes := util.FindDuplicateJSONKeys(contents); len(dupes) > 0 {
		for _, d := range dupes {
			if d.Path == "" {
				e.ErrorString("%s: duplicate JSON key", d.Key)
			} else {
				e.ErrorString("%s.%s: duplicate JSON key", d.Path, d.Key)
			}
		}
		return nil
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(scenarioSchema),
		gojsonschema.NewBytesLoader(contents))
	if err != nil {
		e.Error(err)
		return nil
	}
	if !result.Valid() {
		for _, desc := range result.Errors() {
			e.ErrorString("%s", desc)
		}
		return nil
	}

	var s Scenario
	if err := util.UnmarshalJSONBytes(contents, &s); err != nil {
		e.Error(err)
		return nil
	}

	s.postLoad(e)
	if e.HaveErrors() {
		return nil
	}
	return &s
}

// Load reads and validates the scenario file at path.
func Load(path string, e *util.ErrorLogger) *Scenario {
	defer e.CheckDepth(e.CurrentDepth())

	e.Push("File " + path)
	defer e.Pop()

	contents, err := os.ReadFile(path)
	if err != nil {
		e.Error(err)
		return nil
	}
	return LoadBytes(contents, e)
}

// LoadDir loads every .json file under dir, keyed by scenario name. All
// files are checked even after errors so that one pass reports everything;
// nil is returned if any file failed.
func LoadDir(dir string, e *util.ErrorLogger) map[string]*Scenario {
	defer e.CheckDepth(e.CurrentDepth())

	scenarios := make(map[string]*Scenario)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		s := Load(path, e)
		if s == nil {
			return nil
		}
		if _, ok := scenarios[s.Name]; ok {
			e.ErrorString("%s: scenario \"%s\" redefined", path, s.Name)
			return nil
		}
		scenarios[s.Name] = s
		return nil
	})
	if err != nil {
		e.Error(err)
	}
	if e.HaveErrors() {
		return nil
	}
	return scenarios
}
