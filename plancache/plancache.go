// plancache/plancache.go
// Copyright(c) 2024-2026 missiongeo contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package plancache memoizes generated flight plans for callers that ask for
// the same pattern repeatedly. The generators themselves never cache; this
// sits in front of them. Plans live in an expiring in-memory LRU and,
// optionally, as msgpack+zstd files on disk that survive restarts.
package plancache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/groundctl/missiongeo/mission"
	"github.com/groundctl/missiongeo/util"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

type Cache struct {
	lru *expirable.LRU[string, []mission.Waypoint]
	dir string
}

// New returns a cache holding up to size plans in memory for ttl. If dir is
// non-empty, plans are also written there and Get falls back to disk after
// the LRU has dropped an entry.
func New(size int, ttl time.Duration, dir string) *Cache {
	return &Cache{
		lru: expirable.NewLRU[string, []mission.Waypoint](size, nil, ttl),
		dir: dir,
	}
}

// DefaultDir returns the per-user plan cache directory.
func DefaultDir() (string, error) {
	cd, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cd, "missiongeo", "plans"), nil
}

// cacheKey derives the lookup key from the request struct. msgpack encodes
// struct fields in declaration order, so equal requests always produce equal
// keys and distinct requests cannot collide.
func cacheKey(req any) (string, error) {
	b, err := msgpack.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key: %w", err)
	}
	return string(b), nil
}

func (c *Cache) diskPath(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".msgpack.zst")
}

// Get returns the cached plan for req. Disk hits are promoted back into the
// LRU; any disk error is treated as a miss. The cache owns its stored
// slices, so the returned plan is the caller's to reorder or truncate.
func (c *Cache) Get(req any) ([]mission.Waypoint, bool) {
	key, err := cacheKey(req)
	if err != nil {
		return nil, false
	}

	if plan, ok := c.lru.Get(key); ok {
		return util.DuplicateSlice(plan), true
	}
	if c.dir == "" {
		return nil, false
	}

	plan, err := c.readDisk(key)
	if err != nil {
		return nil, false
	}
	c.lru.Add(key, plan)
	return util.DuplicateSlice(plan), true
}

// Put stores the plan for req in memory and, if the cache has a directory,
// on disk.
func (c *Cache) Put(req any, plan []mission.Waypoint) error {
	key, err := cacheKey(req)
	if err != nil {
		return err
	}

	c.lru.Add(key, util.DuplicateSlice(plan))
	if c.dir == "" {
		return nil
	}
	return c.writeDisk(key, plan)
}

func (c *Cache) writeDisk(key string, plan []mission.Waypoint) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(c.diskPath(key))
	if err != nil {
		return err
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	if err := msgpack.NewEncoder(zw).Encode(plan); err != nil {
		zw.Close()
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return zw.Close()
}

func (c *Cache) readDisk(key string) ([]mission.Waypoint, error) {
	f, err := os.Open(c.diskPath(key))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	var plan []mission.Waypoint
	if err := msgpack.NewDecoder(zr).Decode(&plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}
	return plan, nil
}

// Cull removes disk entries that have not been written or read in maxAge.
func (c *Cache) Cull(maxAge time.Duration) error {
	if c.dir == "" {
		return nil
	}
	if _, err := os.Stat(c.dir); os.IsNotExist(err) {
		return nil // Nothing to cull
	}

	cutoff := time.Now().Add(-maxAge)
	return filepath.Walk(c.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(path)
		}
		return nil
	})
}
