// util/json.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

///////////////////////////////////////////////////////////////////////////
// JSON

// DuplicateJSONKey represents a duplicate key found in JSON.
type DuplicateJSONKey struct {
	Path string // JSON path to the object holding the duplicate (e.g., "mission.waypoints")
	Key  string // The duplicate key name
}

// FindDuplicateJSONKeys scans JSON content and returns all duplicate keys
// found. encoding/json silently keeps the last value for a repeated key, so
// scenario files are scanned with the token API before decoding to surface
// what would otherwise be silently dropped. Array elements share their
// array's path; no index component is added.
func FindDuplicateJSONKeys(data []byte) []DuplicateJSONKey {
	dec := json.NewDecoder(bytes.NewReader(data))
	var duplicates []DuplicateJSONKey

	// walkValue consumes one JSON value from the decoder; path holds the
	// object keys leading to it.
	var walkValue func(path []string)
	walkValue = func(path []string) {
		tok, err := dec.Token()
		if err != nil {
			return
		}

		delim, ok := tok.(json.Delim)
		if !ok {
			return // primitive value
		}
		switch delim {
		case '{':
			seen := make(map[string]bool)
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return
				}
				key, _ := keyTok.(string)
				if seen[key] {
					duplicates = append(duplicates, DuplicateJSONKey{
						Path: strings.Join(path, "."),
						Key:  key,
					})
				}
				seen[key] = true
				walkValue(append(path, key))
			}
			dec.Token() // closing '}'
		case '[':
			for dec.More() {
				walkValue(path)
			}
			dec.Token() // closing ']'
		}
	}
	walkValue(nil)

	return duplicates
}

func UnmarshalJSON[T any](r io.Reader, out *T) error {
	// Unfortunately we need the contents as an array of bytes so that we
	// can issue reasonable errors.
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return UnmarshalJSONBytes(b, out)
}

// UnmarshalJSONBytes unmarshals the bytes into the given type but goes
// through some efforts to return useful error messages when the JSON is
// invalid...
func UnmarshalJSONBytes[T any](b []byte, out *T) error {
	err := json.Unmarshal(b, out)
	if err == nil {
		return nil
	}

	decodeOffset := func(offset int64) (line, char int) {
		line, char = 1, 1
		for i := 0; i < int(offset) && i < len(b); i++ {
			if b[i] == '\n' {
				line++
				char = 1
			} else {
				char++
			}
		}
		return
	}

	switch jerr := err.(type) {
	case *json.SyntaxError:
		line, char := decodeOffset(jerr.Offset)
		return fmt.Errorf("Error at line %d, character %d: %v", line, char, jerr)

	case *json.UnmarshalTypeError:
		line, char := decodeOffset(jerr.Offset)
		return fmt.Errorf("Error at line %d, character %d: %s value for %s.%s invalid for type %s",
			line, char, jerr.Value, jerr.Struct, jerr.Field, jerr.Type.String())

	default:
		return err
	}
}
