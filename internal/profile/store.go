package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	pkgLog "later-reminder/pkg/log"
)

// Store persists the learning profile as a single JSON document.
// Loading never fails: unreadable or malformed state falls back to
// defaults, repairing individual fields where the rest of the record
// is usable.
type Store struct {
	path string
	l    pkgLog.Logger
}

// NewStore creates a profile store at the given file path.
func NewStore(path string, l pkgLog.Logger) *Store {
	return &Store{path: path, l: l}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the profile, returning defaults when the file is absent
// or unusable. The second result is true when corruption was repaired;
// the run continues either way.
func (s *Store) Load(ctx context.Context) (Profile, bool) {
	if s.path == "" {
		return Default(), false
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.l.Warnf(ctx, "profile: unreadable file %s, using defaults: %v", s.path, err)
			return Default(), true
		}
		return Default(), false
	}

	var loose struct {
		Version *int `json:"version"`
		Stats   *struct {
			Runs                *float64 `json:"runs"`
			AvgEstimatedMinutes *float64 `json:"avgEstimatedMinutes"`
			AvgGapMinutes       *float64 `json:"avgGapMinutes"`
			LastUsedAt          string   `json:"lastUsedAt"`
			LastDueDateTime     string   `json:"lastDueDateTime"`
		} `json:"stats"`
	}
	p := Default()
	repaired := false
	warned := false

	if err := json.Unmarshal(raw, &loose); err != nil {
		// A type mismatch leaves the other fields decoded, so the
		// per-field repair below can still salvage them. Anything
		// else means the document itself is unusable.
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			s.l.Warnf(ctx, "profile: malformed JSON in %s, using defaults: %v", s.path, err)
			return Default(), true
		}
		s.l.Warnf(ctx, "profile: type mismatch in %s, repairing: %v", s.path, err)
		repaired = true
		warned = true
	}

	if loose.Version != nil {
		p.Version = *loose.Version
	}
	if loose.Stats == nil {
		return p, true
	}

	if n, ok := usableCount(loose.Stats.Runs); ok {
		p.Stats.Runs = n
	} else {
		repaired = true
	}
	if n, ok := usableCount(loose.Stats.AvgEstimatedMinutes); ok {
		p.Stats.AvgEstimatedMinutes = n
	} else {
		repaired = true
	}
	if n, ok := usableCount(loose.Stats.AvgGapMinutes); ok {
		p.Stats.AvgGapMinutes = n
	} else {
		repaired = true
	}
	p.Stats.LastUsedAt = loose.Stats.LastUsedAt
	p.Stats.LastDueDateTime = loose.Stats.LastDueDateTime

	if repaired && !warned {
		s.l.Warnf(ctx, "profile: repaired invalid fields in %s", s.path)
	}
	return p, repaired
}

// Save rewrites the whole profile file, creating parent directories as
// needed.
func (s *Store) Save(ctx context.Context, p Profile) error {
	if s.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", s.path, err)
	}

	s.l.Debugf(ctx, "profile: saved %s (runs=%d)", s.path, p.Stats.Runs)
	return nil
}

func usableCount(v *float64) (int, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return 0, false
	}
	return int(math.Round(*v)), true
}
