package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []struct{ levels, deaths int }{
		{3, 10},
		{7, 10},
		{7, 4},
		{1, 10},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.levels, r.deaths); err != nil {
			t.Fatalf("SaveRun(%d, %d): %v", r.levels, r.deaths, err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("got %d runs, want 3", len(top))
	}

	// Levels descending, deaths ascending as tie-break
	if top[0].Levels != 7 || top[0].Deaths != 4 {
		t.Errorf("top[0] = %d/%d, want 7/4", top[0].Levels, top[0].Deaths)
	}
	if top[1].Levels != 7 || top[1].Deaths != 10 {
		t.Errorf("top[1] = %d/%d, want 7/10", top[1].Levels, top[1].Deaths)
	}
	if top[2].Levels != 3 {
		t.Errorf("top[2].Levels = %d, want 3", top[2].Levels)
	}
}

func TestTopRunsEmpty(t *testing.T) {
	store := openTestStore(t)

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("empty store returned %d runs", len(top))
	}
}

func TestBestRun(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun()
	if err != nil {
		t.Fatalf("BestRun on empty store: %v", err)
	}
	if best != 0 {
		t.Errorf("best on empty store = %d, want 0", best)
	}

	store.SaveRun(2, 10)
	store.SaveRun(9, 10)
	store.SaveRun(5, 10)

	best, err = store.BestRun()
	if err != nil {
		t.Fatalf("BestRun: %v", err)
	}
	if best != 9 {
		t.Errorf("best = %d, want 9", best)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(4, 10)
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns: %v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("runs remain after clear: %d", len(top))
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats on empty store: %v", err)
	}
	if stats.RunsCount != 0 || stats.BestLevels != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveRun(2, 10)
	store.SaveRun(6, 10)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, want 2", stats.RunsCount)
	}
	if stats.BestLevels != 6 {
		t.Errorf("BestLevels = %d, want 6", stats.BestLevels)
	}
	if stats.AvgLevels != 4 {
		t.Errorf("AvgLevels = %v, want 4", stats.AvgLevels)
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "runs.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open with missing parents: %v", err)
	}
	store.Close()
}
