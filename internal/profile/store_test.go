package profile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"later-reminder/internal/profile"
	pkgLog "later-reminder/pkg/log"
)

func newStore(t *testing.T) (*profile.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "profile.json")
	return profile.NewStore(path, pkgLog.NewNop()), path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	store, _ := newStore(t)

	p, repaired := store.Load(context.Background())
	if repaired {
		t.Errorf("missing file must not count as corruption")
	}
	if p.Version != profile.Version || p.Stats.Runs != 0 ||
		p.Stats.AvgEstimatedMinutes != 60 || p.Stats.AvgGapMinutes != 30 {
		t.Errorf("unexpected defaults: %+v", p)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	store, path := newStore(t)
	ctx := context.Background()

	saved := profile.Profile{
		Version: profile.Version,
		Stats: profile.Stats{
			Runs:                5,
			AvgEstimatedMinutes: 72,
			AvgGapMinutes:       35,
			LastUsedAt:          "2025-06-10T14:41:00+09:00",
			LastDueDateTime:     "2025-06-10 14:41",
		},
	}
	if err := store.Save(ctx, saved); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("profile file not created: %v", err)
	}

	loaded, repaired := store.Load(ctx)
	if repaired {
		t.Errorf("clean file must not report repair")
	}
	if loaded != saved {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", loaded, saved)
	}
}

func TestLoadMalformedJSONFallsBack(t *testing.T) {
	store, path := newStore(t)
	ctx := context.Background()

	os.MkdirAll(filepath.Dir(path), 0o755)
	os.WriteFile(path, []byte(`{not json`), 0o644)

	p, repaired := store.Load(ctx)
	if !repaired {
		t.Errorf("malformed file should report repair")
	}
	if p.Stats.AvgEstimatedMinutes != 60 || p.Stats.AvgGapMinutes != 30 {
		t.Errorf("expected defaults, got %+v", p)
	}
}

func TestLoadRepairsIndividualFields(t *testing.T) {
	store, path := newStore(t)
	ctx := context.Background()

	os.MkdirAll(filepath.Dir(path), 0o755)
	// avgGapMinutes is missing, runs is negative; avgEstimatedMinutes
	// survives.
	os.WriteFile(path, []byte(`{"version":1,"stats":{"runs":-3,"avgEstimatedMinutes":90}}`), 0o644)

	p, repaired := store.Load(ctx)
	if !repaired {
		t.Errorf("partial corruption should report repair")
	}
	if p.Stats.Runs != 0 {
		t.Errorf("invalid runs not repaired: %d", p.Stats.Runs)
	}
	if p.Stats.AvgEstimatedMinutes != 90 {
		t.Errorf("valid field discarded: %d", p.Stats.AvgEstimatedMinutes)
	}
	if p.Stats.AvgGapMinutes != 30 {
		t.Errorf("missing field not defaulted: %d", p.Stats.AvgGapMinutes)
	}
}

func TestLoadKeepsValidFieldsOnTypeMismatch(t *testing.T) {
	store, path := newStore(t)
	ctx := context.Background()

	os.MkdirAll(filepath.Dir(path), 0o755)
	// runs carries the wrong JSON type; the decoder still fills the
	// remaining numeric fields, which must survive.
	os.WriteFile(path, []byte(`{"version":1,"stats":{"runs":"3","avgEstimatedMinutes":200,"avgGapMinutes":120}}`), 0o644)

	p, repaired := store.Load(ctx)
	if !repaired {
		t.Errorf("type mismatch should report repair")
	}
	if p.Stats.Runs != 0 {
		t.Errorf("mistyped runs not defaulted: %d", p.Stats.Runs)
	}
	if p.Stats.AvgEstimatedMinutes != 200 {
		t.Errorf("valid avgEstimatedMinutes discarded: %d", p.Stats.AvgEstimatedMinutes)
	}
	if p.Stats.AvgGapMinutes != 120 {
		t.Errorf("valid avgGapMinutes discarded: %d", p.Stats.AvgGapMinutes)
	}
}

func TestApplySmoothing(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	p := profile.Default()
	next := p.Apply(90, 41, "2025-06-10 14:41", now)

	if next.Stats.Runs != 1 {
		t.Errorf("runs = %d, want 1", next.Stats.Runs)
	}
	// round(60*0.8 + 90*0.2) = 66
	if next.Stats.AvgEstimatedMinutes != 66 {
		t.Errorf("avgEstimatedMinutes = %d, want 66", next.Stats.AvgEstimatedMinutes)
	}
	// round(30*0.8 + 41*0.2) = 32
	if next.Stats.AvgGapMinutes != 32 {
		t.Errorf("avgGapMinutes = %d, want 32", next.Stats.AvgGapMinutes)
	}
	if next.Stats.LastDueDateTime != "2025-06-10 14:41" {
		t.Errorf("lastDueDateTime = %q", next.Stats.LastDueDateTime)
	}
	if next.Stats.LastUsedAt != now.Format(time.RFC3339) {
		t.Errorf("lastUsedAt = %q", next.Stats.LastUsedAt)
	}

	// The original profile is unchanged; updates flow by value.
	if p.Stats.Runs != 0 {
		t.Errorf("Apply mutated the receiver")
	}
}

func TestApplyClampsAverages(t *testing.T) {
	now := time.Unix(0, 0)

	p := profile.Default()
	p.Stats.AvgEstimatedMinutes = profile.EstimateMaxMinutes
	p.Stats.AvgGapMinutes = profile.GapMaxMinutes

	next := p.Apply(10000, 10000, "2025-06-10 23:45", now)
	if next.Stats.AvgEstimatedMinutes > profile.EstimateMaxMinutes {
		t.Errorf("estimate exceeded clamp: %d", next.Stats.AvgEstimatedMinutes)
	}
	if next.Stats.AvgGapMinutes > profile.GapMaxMinutes {
		t.Errorf("gap exceeded clamp: %d", next.Stats.AvgGapMinutes)
	}

	low := profile.Default()
	low.Stats.AvgEstimatedMinutes = profile.EstimateMinMinutes
	low.Stats.AvgGapMinutes = profile.GapMinMinutes
	next = low.Apply(0, 0, "", now)
	if next.Stats.AvgEstimatedMinutes < profile.EstimateMinMinutes {
		t.Errorf("estimate under clamp: %d", next.Stats.AvgEstimatedMinutes)
	}
	if next.Stats.AvgGapMinutes < profile.GapMinMinutes {
		t.Errorf("gap under clamp: %d", next.Stats.AvgGapMinutes)
	}
}
