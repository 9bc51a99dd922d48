package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "scores.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	store.Close()
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	scores := []int{10, 50, 30, 20, 40}
	for _, sc := range scores {
		if _, err := store.SaveScore("paddle", sc); err != nil {
			t.Fatalf("SaveScore(%d) failed: %v", sc, err)
		}
	}

	top, err := store.TopScores("paddle", 3)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(top))
	}

	want := []int{50, 40, 30}
	for i, e := range top {
		if e.Score != want[i] {
			t.Errorf("entry %d: expected score %d, got %d", i, want[i], e.Score)
		}
		if e.GameID != "paddle" {
			t.Errorf("entry %d: expected game paddle, got %q", i, e.GameID)
		}
		if e.CreatedAt.IsZero() {
			t.Errorf("entry %d: expected non-zero timestamp", i)
		}
	}
}

func TestTopScoresIsolatesGames(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("paddle", 100)
	store.SaveScore("dodge", 5)

	top, err := store.TopScores("dodge", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(top))
	}
	if top[0].Score != 5 {
		t.Errorf("expected score 5, got %d", top[0].Score)
	}
}

func TestTopScoresEmpty(t *testing.T) {
	store := openTestStore(t)

	top, err := store.TopScores("paddle", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("expected no entries, got %d", len(top))
	}
}

func TestTopScoresDefaultLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		store.SaveScore("paddle", i)
	}

	top, err := store.TopScores("paddle", 0)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("expected default limit of 10, got %d", len(top))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore("paddle")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("expected 0 for empty table, got %d", hs)
	}

	store.SaveScore("paddle", 7)
	store.SaveScore("paddle", 42)
	store.SaveScore("paddle", 13)

	hs, err = store.HighScore("paddle")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if hs != 42 {
		t.Errorf("expected 42, got %d", hs)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("paddle", 10)
	store.SaveScore("dodge", 20)

	if err := store.ClearScores("paddle"); err != nil {
		t.Fatalf("ClearScores failed: %v", err)
	}

	top, _ := store.TopScores("paddle", 10)
	if len(top) != 0 {
		t.Errorf("expected paddle scores cleared, got %d entries", len(top))
	}

	top, _ = store.TopScores("dodge", 10)
	if len(top) != 1 {
		t.Errorf("expected dodge scores untouched, got %d entries", len(top))
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	for _, sc := range []int{10, 20, 30} {
		store.SaveScore("paddle", sc)
	}

	stats, err := store.Stats("paddle")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("expected 3 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("expected high score 30, got %d", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("expected average 20, got %f", stats.AvgScore)
	}
	if stats.TotalScore != 60 {
		t.Errorf("expected total 60, got %d", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("expected non-zero last played timestamp")
	}
}

func TestAllStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("paddle", 10)
	store.SaveScore("paddle", 30)
	store.SaveScore("dodge", 99)

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected stats for 2 games, got %d", len(all))
	}
	if all["paddle"].HighScore != 30 {
		t.Errorf("expected paddle high 30, got %d", all["paddle"].HighScore)
	}
	if all["dodge"].GamesCount != 1 {
		t.Errorf("expected dodge count 1, got %d", all["dodge"].GamesCount)
	}
}
