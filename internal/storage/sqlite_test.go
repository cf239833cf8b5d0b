package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

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

func mustSave(t *testing.T, s *Store, r Run) string {
	t.Helper()
	id, err := s.SaveRun(r)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, Run{GameID: "tetris", Score: 1200})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1200 {
		t.Errorf("HighScore() = %d, want 1200 after reopening", high)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	id := mustSave(t, store, Run{
		GameID:   "tetris",
		Preset:   "hard",
		Score:    4200,
		Lines:    23,
		Level:    7,
		Pieces:   64,
		Duration: 3*time.Minute + 250*time.Millisecond,
	})
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("generated run id %q is not a uuid: %v", id, err)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.Score != 4200 || got.Lines != 23 || got.Level != 7 || got.Pieces != 64 || got.Preset != "hard" {
		t.Errorf("RunByID() = %+v", got)
	}
	if got.Duration != 3*time.Minute+250*time.Millisecond {
		t.Errorf("Duration = %v, want 3m0.25s", got.Duration)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id := mustSave(t, store, Run{RunID: "fixed-id", GameID: "tetris", Score: 1})
	if id != "fixed-id" {
		t.Errorf("SaveRun() = %q, want the given run id", id)
	}
	if _, err := store.SaveRun(Run{RunID: "fixed-id", GameID: "tetris", Score: 2}); err == nil {
		t.Error("saving a duplicate run id should fail")
	}
}

func TestStoreSaveRunRequiresGame(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{Score: 10}); err == nil {
		t.Error("SaveRun() without a game id should fail")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)
	got, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("RunByID() = %+v, want nil", got)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "tetris", Preset: "normal", Score: 100, Lines: 4},
		{GameID: "tetris", Preset: "hard", Score: 800, Lines: 8},
		{GameID: "tetris", Preset: "normal", Score: 800, Lines: 12},
		{GameID: "tetris", Preset: "easy", Score: 50, Lines: 1},
		{GameID: "other", Preset: "normal", Score: 9999},
	}
	for _, r := range runs {
		mustSave(t, store, r)
	}

	top, err := store.TopRuns("tetris", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopRuns() returned %d runs, want 3", len(top))
	}

	want := []struct{ score, lines int }{{800, 12}, {800, 8}, {100, 4}}
	for i, w := range want {
		if top[i].Score != w.score || top[i].Lines != w.lines {
			t.Errorf("top[%d] = %d/%d, want %d/%d", i, top[i].Score, top[i].Lines, w.score, w.lines)
		}
	}

	all, err := store.TopRuns("tetris", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("TopRuns() with default limit returned %d runs, want 4", len(all))
	}
}

func TestStoreTopRunsByPreset(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		mustSave(t, store, Run{GameID: "tetris", Preset: "normal", Score: i * 100})
	}
	mustSave(t, store, Run{GameID: "tetris", Preset: "hard", Score: 10000})

	top, err := store.TopRunsByPreset("tetris", "normal", 3)
	if err != nil {
		t.Fatalf("TopRunsByPreset() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("got %d runs, want 3", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("runs not in expected order: %+v", top)
	}
	for _, r := range top {
		if r.Preset != "normal" {
			t.Errorf("run from preset %q leaked into normal", r.Preset)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d, want 0 for an empty game", high)
	}

	for _, score := range []int{100, 300, 200} {
		mustSave(t, store, Run{GameID: "tetris", Score: score})
	}

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("HighScore() = %d, want 300", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{GameID: "tetris", Score: 100})
	mustSave(t, store, Run{GameID: "tetris", Score: 200})
	mustSave(t, store, Run{GameID: "other", Score: 300})

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if runs, _ := store.TopRuns("tetris", 10); len(runs) != 0 {
		t.Errorf("got %d runs after clear, want 0", len(runs))
	}
	if runs, _ := store.TopRuns("other", 10); len(runs) != 1 {
		t.Error("other games should not be affected by clearing tetris")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, Run{GameID: "tetris", Preset: "normal", Score: 100, Lines: 10, Level: 1})
	mustSave(t, store, Run{GameID: "tetris", Preset: "normal", Score: 300, Lines: 20, Level: 2})
	mustSave(t, store, Run{GameID: "tetris", Preset: "hard", Score: 500, Lines: 5, Level: 5})

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 500 {
		t.Errorf("HighScore = %d, want 500", stats.HighScore)
	}
	if stats.AvgScore != 300 {
		t.Errorf("AvgScore = %v, want 300", stats.AvgScore)
	}
	if stats.TotalLines != 35 || stats.BestLevel != 5 {
		t.Errorf("TotalLines/BestLevel = %d/%d, want 35/5", stats.TotalLines, stats.BestLevel)
	}

	byPreset, err := store.GetPresetStats("tetris")
	if err != nil {
		t.Fatalf("GetPresetStats() failed: %v", err)
	}
	if len(byPreset) != 2 {
		t.Fatalf("got stats for %d presets, want 2", len(byPreset))
	}
	normal := byPreset["normal"]
	if normal == nil || normal.GamesCount != 2 || normal.HighScore != 300 || normal.TotalLines != 30 {
		t.Errorf("normal stats = %+v", normal)
	}
	if hard := byPreset["hard"]; hard == nil || hard.BestLevel != 5 {
		t.Errorf("hard stats = %+v", hard)
	}
}
