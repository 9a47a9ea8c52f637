// Package cache persists the stats snapshot between runs. The snapshot is
// the ratchet baseline the next run merges against.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/codeswhat/orgcard/internal/domain"
)

const snapshotFile = "stats.json"

// Store reads and writes the timestamped stats snapshot under a cache
// directory.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates a Store rooted at dir. The directory is created lazily on
// the first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// Load returns the previously saved snapshot, or nil when none exists.
// A snapshot that cannot be read or decoded is reported as an error; callers
// treat that as a cache miss, never as a fatal condition.
func (s *Store) Load() (*domain.Snapshot, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, snapshotFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading stats snapshot: %w", err)
	}
	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decoding stats snapshot: %w", err)
	}
	return &snapshot, nil
}

// Save overwrites the snapshot with stats and a fresh timestamp.
func (s *Store) Save(stats domain.OrgStats) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	snapshot := domain.Snapshot{
		Timestamp: s.now().Format(time.RFC3339),
		Org:       stats,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding stats snapshot: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, snapshotFile), data, 0o644); err != nil {
		return fmt.Errorf("writing stats snapshot: %w", err)
	}
	return nil
}
