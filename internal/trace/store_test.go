package trace

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/MAli82/deep-symbolic-optimization/internal/prior"
	_ "modernc.org/sqlite"
)

// #region helpers
func tempStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "trace.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func memStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	s := NewStoreWithDB(db)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRecord(stepIdx int) prior.StepRecord {
	return prior.StepRecord{
		StepIndex: stepIdx,
		BatchSize: 2,
		Sharing:   true,
		ModelIDs:  []int64{0, 2},
		Logits: [][]float32{
			{2.0, 1.0, 0.5},
			{0.25, -1.5, 3.0},
		},
		Duration: 1500 * time.Microsecond,
	}
}

// #endregion helpers

// #region record-tests
func TestRecordStepOpensEpisodeLazily(t *testing.T) {
	s := memStore(t)

	episodes, err := s.ListEpisodes(10)
	if err != nil {
		t.Fatalf("ListEpisodes: %v", err)
	}
	if len(episodes) != 0 {
		t.Fatalf("expected no episodes before recording, got %d", len(episodes))
	}

	s.RecordStep(sampleRecord(0))
	s.RecordStep(sampleRecord(1))

	episodes, err = s.ListEpisodes(10)
	if err != nil {
		t.Fatalf("ListEpisodes: %v", err)
	}
	if len(episodes) != 1 {
		t.Fatalf("expected 1 episode, got %d", len(episodes))
	}
	if episodes[0].Steps != 2 {
		t.Errorf("expected step count 2, got %d", episodes[0].Steps)
	}
	if episodes[0].BatchSize != 2 {
		t.Errorf("expected batch size 2, got %d", episodes[0].BatchSize)
	}
	if !episodes[0].ClosedAt.IsZero() {
		t.Error("expected episode still open")
	}
}

func TestRecordStepRoundTrip(t *testing.T) {
	s := memStore(t)
	s.RecordStep(sampleRecord(0))

	episodes, err := s.ListEpisodes(1)
	if err != nil {
		t.Fatalf("ListEpisodes: %v", err)
	}
	steps, err := s.ListSteps(episodes[0].ID)
	if err != nil {
		t.Fatalf("ListSteps: %v", err)
	}
	if len(steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(steps))
	}

	got := steps[0]
	if got.StepIndex != 0 || got.BatchSize != 2 || !got.Sharing {
		t.Errorf("unexpected step row: %+v", got)
	}
	if got.VocabSize != 3 {
		t.Errorf("expected vocab size 3, got %d", got.VocabSize)
	}
	if len(got.ModelIDs) != 2 || got.ModelIDs[0] != 0 || got.ModelIDs[1] != 2 {
		t.Errorf("model ids did not round-trip: %v", got.ModelIDs)
	}
	want := sampleRecord(0).Logits
	if len(got.Logits) != 2 {
		t.Fatalf("expected 2 logits rows, got %d", len(got.Logits))
	}
	for row := range want {
		for i := range want[row] {
			if got.Logits[row][i] != want[row][i] {
				t.Errorf("logit [%d][%d] did not round-trip: %f vs %f",
					row, i, got.Logits[row][i], want[row][i])
			}
		}
	}
	if got.Duration != 1500*time.Microsecond {
		t.Errorf("expected duration 1.5ms, got %v", got.Duration)
	}
}

func TestEpisodeResetClosesAndRotates(t *testing.T) {
	s := memStore(t)
	s.RecordStep(sampleRecord(0))
	s.EpisodeReset()
	s.RecordStep(sampleRecord(0))

	episodes, err := s.ListEpisodes(10)
	if err != nil {
		t.Fatalf("ListEpisodes: %v", err)
	}
	if len(episodes) != 2 {
		t.Fatalf("expected 2 episodes after reset, got %d", len(episodes))
	}

	var closed, open int
	for _, e := range episodes {
		if e.ClosedAt.IsZero() {
			open++
		} else {
			closed++
		}
	}
	if closed != 1 || open != 1 {
		t.Errorf("expected 1 closed and 1 open episode, got %d closed %d open", closed, open)
	}
}

func TestEpisodeResetWithoutStepsIsNoOp(t *testing.T) {
	s := memStore(t)
	s.EpisodeReset()

	episodes, err := s.ListEpisodes(10)
	if err != nil {
		t.Fatalf("ListEpisodes: %v", err)
	}
	if len(episodes) != 0 {
		t.Fatalf("expected no episodes, got %d", len(episodes))
	}
}

func TestRecordStepAfterCloseDoesNotPanic(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	s := NewStoreWithDB(db)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Recording failures are logged and swallowed.
	s.RecordStep(sampleRecord(0))
	s.EpisodeReset()
}

// #endregion record-tests

// #region query-tests
func TestListStepsUnknownEpisode(t *testing.T) {
	s := memStore(t)
	steps, err := s.ListSteps("no-such-episode")
	if err != nil {
		t.Fatalf("ListSteps: %v", err)
	}
	if len(steps) != 0 {
		t.Fatalf("expected no steps, got %d", len(steps))
	}
}

func TestNewStorePersistsToDisk(t *testing.T) {
	s := tempStore(t)
	s.RecordStep(sampleRecord(0))

	episodes, err := s.ListEpisodes(1)
	if err != nil {
		t.Fatalf("ListEpisodes: %v", err)
	}
	if len(episodes) != 1 {
		t.Fatalf("expected 1 episode on disk, got %d", len(episodes))
	}
}

// #endregion query-tests

// #region blob-tests
func TestBlobEncodingRoundTrip(t *testing.T) {
	ids := []int64{-1, 0, 42, 1 << 40}
	decoded := decodeIDs(encodeIDs(ids))
	for i := range ids {
		if decoded[i] != ids[i] {
			t.Errorf("id %d did not round-trip: %d vs %d", i, decoded[i], ids[i])
		}
	}

	rows := [][]float32{{1.5, -2.25}, {0, 3.125}}
	back := decodeLogits(encodeLogits(rows), 2)
	if len(back) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(back))
	}
	for r := range rows {
		for i := range rows[r] {
			if back[r][i] != rows[r][i] {
				t.Errorf("logit [%d][%d] did not round-trip", r, i)
			}
		}
	}
}

// #endregion blob-tests
