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

func TestStoreOpenCreatesFile(t *testing.T) {
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

func TestSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	entries := []RunEntry{
		{Score: 100, Level: 1, Gems: 2, Distance: 340.5, Outcome: OutcomeGameOver},
		{Score: 7200, Level: 3, Gems: 15, Distance: 2100.0, Outcome: OutcomeVictory},
		{Score: 450, Level: 2, Gems: 6, Distance: 880.2, Outcome: OutcomeGameOver},
	}
	for _, e := range entries {
		if _, err := store.SaveRun(e); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Sorted by score descending
	if runs[0].Score != 7200 || runs[1].Score != 450 || runs[2].Score != 100 {
		t.Errorf("Runs not in score order: %d, %d, %d", runs[0].Score, runs[1].Score, runs[2].Score)
	}

	// The best run keeps its full record
	best := runs[0]
	if best.Level != 3 || best.Gems != 15 || best.Outcome != OutcomeVictory {
		t.Errorf("Best run fields lost: %+v", best)
	}
	if best.Distance != 2100.0 {
		t.Errorf("Expected distance 2100, got %v", best.Distance)
	}
	if best.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunEntry{Score: (i + 1) * 100, Level: 1, Outcome: OutcomeGameOver})
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestBestScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score 0 for empty store, got %d", best)
	}

	store.SaveRun(RunEntry{Score: 100, Level: 1, Outcome: OutcomeGameOver})
	store.SaveRun(RunEntry{Score: 300, Level: 2, Outcome: OutcomeGameOver})
	store.SaveRun(RunEntry{Score: 200, Level: 1, Outcome: OutcomeGameOver})

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score 300, got %d", best)
	}
}

func TestVictories(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Score: 100, Level: 1, Outcome: OutcomeGameOver})
	store.SaveRun(RunEntry{Score: 6000, Level: 3, Outcome: OutcomeVictory})
	store.SaveRun(RunEntry{Score: 7000, Level: 3, Outcome: OutcomeVictory})

	wins, err := store.Victories()
	if err != nil {
		t.Fatalf("Victories() failed: %v", err)
	}
	if wins != 2 {
		t.Errorf("Expected 2 victories, got %d", wins)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Score: 100, Level: 1, Outcome: OutcomeGameOver})
	store.SaveRun(RunEntry{Score: 200, Level: 1, Outcome: OutcomeGameOver})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}
