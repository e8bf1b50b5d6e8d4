// Package worker removes stale transient files left behind by cover
// synthesis.
package worker

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Janitor periodically sweeps the scratch directory and deletes files older
// than the TTL.
type Janitor struct {
	dir      string
	ttl      time.Duration
	interval time.Duration
}

// New creates a Janitor for the given scratch directory.
func New(dir string, ttl, interval time.Duration) *Janitor {
	return &Janitor{dir: dir, ttl: ttl, interval: interval}
}

// Start begins the polling loop. It blocks until ctx is cancelled.
func (j *Janitor) Start(ctx context.Context) {
	slog.Info("scratch janitor started", "dir", j.dir, "ttl", j.ttl.String(), "interval", j.interval.String())
	for {
		select {
		case <-ctx.Done():
			slog.Info("scratch janitor stopped")
			return
		case <-time.After(j.interval):
		}

		removed, err := j.Sweep()
		if err != nil {
			slog.Error("scratch sweep error", "error", err)
			continue
		}
		if removed > 0 {
			slog.Info("removed stale scratch files", "count", removed)
		}
	}
}

// Sweep deletes expired files once and returns how many were removed.
// A missing scratch directory is not an error; it simply means no covers
// have been produced yet.
func (j *Janitor) Sweep() (int, error) {
	entries, err := os.ReadDir(j.dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	removed := 0
	cutoff := time.Now().Add(-j.ttl)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(j.dir, entry.Name())); err != nil {
			slog.Warn("could not remove scratch file", "name", entry.Name(), "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}
