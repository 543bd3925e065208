package storage

import (
	"bytes"
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("2048", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("tetris", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	tetrisScores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(tetrisScores) != 1 {
		t.Errorf("Expected 1 tetris score, got %d", len(tetrisScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("2048", (i+1)*100)
	}

	scores, err := store.TopScores("2048", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("2048", 100)
	store.SaveScore("2048", 300)
	store.SaveScore("2048", 200)

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048", 100)
	store.SaveScore("2048", 200)
	store.SaveScore("sudoku", 300)

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores("2048", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(cleared))
	}

	kept, _ := store.TopScores("sudoku", 10)
	if len(kept) != 1 {
		t.Errorf("Other games should not be affected by clearing")
	}
}

func TestStoreSessionRoundTrip(t *testing.T) {
	store := openTestStore(t)

	// No session yet
	state, err := store.LoadSession("2048")
	if err != nil {
		t.Fatalf("LoadSession() failed: %v", err)
	}
	if state != nil {
		t.Errorf("Expected nil session for fresh store, got %v", state)
	}

	payload := []byte(`{"score":1234}`)
	if err := store.SaveSession("2048", payload); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	state, err = store.LoadSession("2048")
	if err != nil {
		t.Fatalf("LoadSession() failed: %v", err)
	}
	if !bytes.Equal(state, payload) {
		t.Errorf("LoadSession() = %s, want %s", state, payload)
	}
}

func TestStoreSessionOverwrite(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("2048", []byte("old"))
	if err := store.SaveSession("2048", []byte("new")); err != nil {
		t.Fatalf("SaveSession() overwrite failed: %v", err)
	}

	state, err := store.LoadSession("2048")
	if err != nil {
		t.Fatalf("LoadSession() failed: %v", err)
	}
	if string(state) != "new" {
		t.Errorf("LoadSession() = %q, want %q", state, "new")
	}
}

func TestStoreSessionDelete(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("2048", []byte("data"))
	if err := store.DeleteSession("2048"); err != nil {
		t.Fatalf("DeleteSession() failed: %v", err)
	}

	state, _ := store.LoadSession("2048")
	if state != nil {
		t.Errorf("Session survived deletion: %v", state)
	}

	// Deleting a missing session is not an error
	if err := store.DeleteSession("missing"); err != nil {
		t.Errorf("DeleteSession() on missing session failed: %v", err)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048", 100)
	store.SaveScore("2048", 300)
	store.SaveScore("tetris", 50)

	stats, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, want 400", stats.TotalScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected stats for 2 games, got %d", len(all))
	}
	if all["tetris"] == nil || all["tetris"].HighScore != 50 {
		t.Errorf("tetris stats wrong: %+v", all["tetris"])
	}
}
