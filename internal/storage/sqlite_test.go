package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveScore(Run{GameID: gameID, Score: score}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
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

	mustSave(t, store, "breakout", 100)
	mustSave(t, store, "breakout", 50)
	mustSave(t, store, "breakout", 200)
	mustSave(t, store, "breakout_wall", 500)

	scores, err := store.TopScores("breakout", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	for _, e := range scores {
		if _, err := uuid.Parse(e.RunID); err != nil {
			t.Errorf("run id %q is not a uuid: %v", e.RunID, err)
		}
	}

	wallScores, err := store.TopScores("breakout_wall", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(wallScores) != 1 {
		t.Errorf("Expected 1 wall score, got %d", len(wallScores))
	}
}

func TestStoreRunFields(t *testing.T) {
	store := openTestStore(t)

	runID := uuid.New()
	if _, err := store.SaveScore(Run{RunID: runID, GameID: "breakout", Score: 48, Won: true, Difficulty: "hard"}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.AllScores("breakout")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	e := scores[0]
	if e.RunID != runID.String() || !e.Won || e.Difficulty != "hard" || e.Score != 48 {
		t.Errorf("unexpected entry %+v", e)
	}

	// The same run cannot be saved twice.
	if _, err := store.SaveScore(Run{RunID: runID, GameID: "breakout", Score: 48}); err == nil {
		t.Error("expected an error saving a duplicate run id")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, "test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "breakout", 100)
	mustSave(t, store, "breakout", 300)
	mustSave(t, store, "breakout", 200)

	high, err = store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "breakout", 100)
	mustSave(t, store, "breakout", 200)
	mustSave(t, store, "breakout_wall", 300)

	if err := store.ClearScores("breakout"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("breakout", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	wallScores, _ := store.TopScores("breakout_wall", 10)
	if len(wallScores) != 1 {
		t.Errorf("Other variants should not be affected by clearing breakout")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(Run{GameID: "breakout", Score: 10})
	store.SaveScore(Run{GameID: "breakout", Score: 48, Won: true})
	store.SaveScore(Run{GameID: "breakout_wall", Score: 100, Won: true})

	stats, err := store.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Wins != 1 || stats.HighScore != 48 || stats.TotalScore != 58 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.AvgScore != 29 {
		t.Errorf("AvgScore = %v, want 29", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["breakout_wall"].Wins != 1 {
		t.Errorf("wall wins = %d, want 1", all["breakout_wall"].Wins)
	}
}

func TestStoreEmptyGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for an unplayed game: %+v", stats)
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
