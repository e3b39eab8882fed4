package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Score: 100, PeakLength: 51, FoodEaten: 10, DurationSecs: 90, Source: "bridge"},
		{Score: 50, PeakLength: 26, FoodEaten: 5, DurationSecs: 40, Source: "bridge"},
		{Score: 200, PeakLength: 101, FoodEaten: 20, DurationSecs: 300, Source: "demo"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted by score descending
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not in score order: %d, %d, %d", top[0].Score, top[1].Score, top[2].Score)
	}

	if top[0].PeakLength != 101 || top[0].FoodEaten != 20 || top[0].Source != "demo" {
		t.Errorf("Run fields not round-tripped: %+v", top[0])
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Score: (i + 1) * 100, Source: "bridge"})
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}

	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score of 0 for empty table, got %d", best)
	}

	store.SaveRun(Run{Score: 100, Source: "bridge"})
	store.SaveRun(Run{Score: 300, Source: "bridge"})
	store.SaveRun(Run{Score: 200, Source: "replay"})

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score of 300, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 100, Source: "bridge"})
	store.SaveRun(Run{Score: 200, Source: "bridge"})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, _ := store.TopRuns(10)
	if len(top) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(top))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveRun(Run{Score: i * 10, Source: "bridge"})
	}

	recent, err := store.RecentRuns(50)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}

	if len(recent) != 20 {
		t.Errorf("Expected 20 runs, got %d", len(recent))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// Empty table
	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.RunsCount != 0 || stats.BestScore != 0 {
		t.Errorf("Expected zeroed stats for empty table, got %+v", stats)
	}

	store.SaveRun(Run{Score: 100, FoodEaten: 10, DurationSecs: 60, Source: "bridge"})
	store.SaveRun(Run{Score: 300, FoodEaten: 30, DurationSecs: 120, Source: "bridge"})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.RunsCount)
	}
	if stats.BestScore != 300 {
		t.Errorf("Expected best score 300, got %d", stats.BestScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected avg score 200, got %v", stats.AvgScore)
	}
	if stats.TotalFood != 40 {
		t.Errorf("Expected 40 total food, got %d", stats.TotalFood)
	}
	if stats.TotalPlayed.Seconds() != 180 {
		t.Errorf("Expected 180s played, got %v", stats.TotalPlayed)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
