// SPDX-License-Identifier: MIT

// Package snapshot persists framework status snapshots and keeps a
// last-known-good copy in memory so readers survive short daemon outages.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/renameio/v2"

	"github.com/strataio/strata/internal/layer"
)

// Cache holds the last-known-good status snapshot. Entries expire after the
// configured TTL; expired entries are not served.
type Cache struct {
	mu       sync.RWMutex
	entry    *layer.StatusSnapshot
	storedAt time.Time
	ttl      time.Duration
}

// NewCache creates a cache with the given TTL.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl}
}

// Set stores a snapshot as the new last-known-good entry.
func (c *Cache) Set(s layer.StatusSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = &s
	c.storedAt = time.Now()
}

// Get returns the cached snapshot, or nil if none is stored or the entry
// has expired.
func (c *Cache) Get() *layer.StatusSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.entry == nil {
		return nil
	}
	if time.Since(c.storedAt) > c.ttl {
		return nil
	}

	copied := *c.entry
	return &copied
}

// Writer persists snapshots as JSON via atomic rename, so readers never see
// a partially written file.
type Writer struct {
	path string
}

// NewWriter creates a writer targeting the given path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Write serialises the snapshot and atomically replaces the target file.
func (w *Writer) Write(s layer.StatusSnapshot) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := renameio.WriteFile(w.path, raw, 0644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", w.path, err)
	}

	return nil
}

// Read loads a snapshot written by Writer.
func Read(path string) (layer.StatusSnapshot, error) {
	var s layer.StatusSnapshot

	raw, err := os.ReadFile(path) // #nosec G304 -- path comes from operator config
	if err != nil {
		return s, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("parse snapshot %s: %w", path, err)
	}

	return s, nil
}
