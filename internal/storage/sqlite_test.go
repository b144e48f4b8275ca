package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
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

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveBestScore("platformer", 4200); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore("platformer")
	if err != nil || best != 4200 {
		t.Errorf("BestScore() = %d, %v; expected 4200", best, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		game  string
		score int
		level int
	}{
		{"platformer", 1500, 2},
		{"platformer", 700, 1},
		{"platformer", 9100, 4},
		{"platformer_endless", 300, 1},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r.game, r.score, r.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("platformer", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []struct{ score, level int }{{9100, 4}, {1500, 2}, {700, 1}}
	for i, w := range want {
		if scores[i].Score != w.score || scores[i].Level != w.level {
			t.Errorf("scores[%d] = %d at level %d, expected %d at level %d",
				i, scores[i].Score, scores[i].Level, w.score, w.level)
		}
		if scores[i].GameID != "platformer" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}

	endless, err := store.TopScores("platformer_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveScore("test", (i+1)*100, 1); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limits fall back to ten
	all, err := store.TopScores("test", 0)
	if err != nil || len(all) != 5 {
		t.Errorf("TopScores(0) = %d entries, %v", len(all), err)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("platformer")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("missing best score = %d, expected 0", best)
	}

	steps := []struct {
		name  string
		score int
		want  int
	}{
		{"first save", 1200, 1200},
		{"higher replaces", 5000, 5000},
		{"lower is ignored", 10, 5000},
		{"equal is ignored", 5000, 5000},
	}
	for _, tc := range steps {
		t.Run(tc.name, func(t *testing.T) {
			if err := store.SaveBestScore("platformer", tc.score); err != nil {
				t.Fatalf("SaveBestScore() failed: %v", err)
			}
			got, err := store.BestScore("platformer")
			if err != nil {
				t.Fatalf("BestScore() failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("BestScore() = %d, expected %d", got, tc.want)
			}
		})
	}

	other, _ := store.BestScore("platformer_endless")
	if other != 0 {
		t.Errorf("best scores leaked across names: %d", other)
	}
}

func TestStoreBestScoreConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	scores := []int{300, 9000, 150, 4200, 8999, 10, 7000, 1}
	var wg sync.WaitGroup
	for _, score := range scores {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.SaveBestScore("platformer", score); err != nil {
				t.Errorf("SaveBestScore(%d) failed: %v", score, err)
			}
		}()
	}
	wg.Wait()

	best, err := store.BestScore("platformer")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 9000 {
		t.Errorf("BestScore() = %d, expected 9000", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("platformer", 100, 1)
	store.SaveScore("platformer", 200, 1)
	store.SaveScore("platformer_endless", 300, 2)
	store.SaveBestScore("platformer", 200)

	if err := store.ClearScores("platformer"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("platformer", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if best, _ := store.BestScore("platformer"); best != 0 {
		t.Errorf("best score after clear = %d", best)
	}

	endless, _ := store.TopScores("platformer_endless", 10)
	if len(endless) != 1 {
		t.Errorf("Endless scores should not be affected by clearing campaign")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		store.SaveScore("test", i*10, 1)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("platformer", 100, 1)
	store.SaveScore("platformer", 300, 3)
	store.SaveScore("platformer_endless", 50, 2)

	stats, err := store.GetGameStats("platformer")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestLevel != 3 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("avg %v total %d, expected 200 and 400", stats.AvgScore, stats.TotalScore)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["platformer_endless"].GamesCount != 1 {
		t.Errorf("all stats = %v", all)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
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
