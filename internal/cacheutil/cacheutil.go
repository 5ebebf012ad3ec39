// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tfctl/fieldmask/internal/log"
)

// Cache stores remote documents on disk under Base, one file per key. A nil
// *Cache is a disabled cache: reads miss and writes are dropped.
type Cache struct {
	Base string
}

// Dir resolves the base cache directory.
// Precedence:
//  1. FIELDMASK_CACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()/fieldmask
//
// Returns ("", false) if a base cannot be resolved (treat as disabled).
func Dir() (string, bool) {
	if c, ok := os.LookupEnv("FIELDMASK_CACHE_DIR"); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "fieldmask"), true
	}
	return "", false
}

// Enabled returns true unless FIELDMASK_CACHE explicitly disables it
// ("0"/"false").
func Enabled() bool {
	enabled := os.Getenv("FIELDMASK_CACHE")
	return enabled != "0" && enabled != "false"
}

// New returns the cache configured by the environment, or nil when caching is
// disabled or no base directory can be resolved.
func New() *Cache {
	if !Enabled() {
		log.Debug("cache disabled")
		return nil
	}
	base, ok := Dir()
	if !ok {
		return nil
	}
	return &Cache{Base: base}
}

// path returns where key lives. Keys are hashed so any string is a safe name.
func (c *Cache) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(c.Base, hex.EncodeToString(sum[:]))
}

// Get returns the cached bytes for key.
func (c *Cache) Get(key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	b, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}
	log.Debugf("cache hit: key=%s", key)
	return b, true
}

// Put stores data for key, creating the base directory as needed.
func (c *Cache) Put(key string, data []byte) error {
	if c == nil {
		return nil
	}
	if err := os.MkdirAll(c.Base, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(c.path(key), data, 0o600); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	log.Debugf("cache write: key=%s", key)
	return nil
}

// Purge removes entries older than the provided number of hours. If hours <= 0
// it is a no-op.
func (c *Cache) Purge(hours int) error {
	if c == nil || hours <= 0 {
		log.Debug("cache purge disabled")
		return nil
	}

	entries, err := os.ReadDir(c.Base)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}

	maxAge := time.Duration(hours) * time.Hour
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// The entry may have vanished if another process purged concurrently.
		info, err := entry.Info()
		if err != nil || time.Since(info.ModTime()) <= maxAge {
			continue
		}
		p := filepath.Join(c.Base, entry.Name())
		if err := os.Remove(p); err != nil {
			log.WithError(err).Warnf("failed to remove cache file %s", p)
			continue
		}
		log.Debugf("removed cache file %s", p)
	}
	return nil
}
