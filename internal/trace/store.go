package trace

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/MAli82/deep-symbolic-optimization/internal/prior"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS episodes (
	episode_id    TEXT PRIMARY KEY,
	batch_size    INTEGER NOT NULL,
	steps         INTEGER NOT NULL DEFAULT 0,
	created_at    TEXT NOT NULL,
	closed_at     TEXT
);

CREATE TABLE IF NOT EXISTS prior_steps (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	episode_id    TEXT NOT NULL,
	step_idx      INTEGER NOT NULL,
	batch_size    INTEGER NOT NULL,
	sharing       INTEGER NOT NULL,
	model_ids     BLOB NOT NULL,
	logits        BLOB NOT NULL,
	vocab_size    INTEGER NOT NULL,
	duration_us   INTEGER NOT NULL,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (episode_id) REFERENCES episodes(episode_id)
);
`
// #endregion schema

// #region store-struct
// Store persists prior-computation provenance in SQLite. It implements
// prior.Recorder: an episode row is opened lazily on the first recorded
// step and closed on episode reset. Recording failures are logged, never
// propagated into the prior path.
type Store struct {
	db        *sql.DB
	episodeID string
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStoreWithDB wraps an existing connection with the schema applied.
// Used for in-memory testing.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// #endregion constructor

// #region close
// Close closes the open episode, if any, and the database connection.
func (s *Store) Close() error {
	s.EpisodeReset()
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion close

// #region record-step
// RecordStep appends one prior computation to the open episode, opening a
// new episode row if none is open.
func (s *Store) RecordStep(rec prior.StepRecord) {
	now := time.Now().UTC()

	if s.episodeID == "" {
		id := uuid.New().String()
		_, err := s.db.Exec(
			`INSERT INTO episodes (episode_id, batch_size, steps, created_at) VALUES (?, ?, 0, ?)`,
			id, rec.BatchSize, now.Format(time.RFC3339Nano),
		)
		if err != nil {
			log.Printf("[TRACE] open episode: %v", err)
			return
		}
		s.episodeID = id
	}

	vocabSize := 0
	if len(rec.Logits) > 0 {
		vocabSize = len(rec.Logits[0])
	}

	_, err := s.db.Exec(
		`INSERT INTO prior_steps (episode_id, step_idx, batch_size, sharing, model_ids, logits, vocab_size, duration_us, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.episodeID, rec.StepIndex, rec.BatchSize, boolToInt(rec.Sharing),
		encodeIDs(rec.ModelIDs), encodeLogits(rec.Logits), vocabSize,
		rec.Duration.Microseconds(), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		log.Printf("[TRACE] record step: %v", err)
		return
	}

	_, err = s.db.Exec(
		`UPDATE episodes SET steps = steps + 1 WHERE episode_id = ?`, s.episodeID,
	)
	if err != nil {
		log.Printf("[TRACE] bump step count: %v", err)
	}
}

// #endregion record-step

// #region episode-reset
// EpisodeReset closes the open episode row. No-op when none is open.
func (s *Store) EpisodeReset() {
	if s.episodeID == "" {
		return
	}
	_, err := s.db.Exec(
		`UPDATE episodes SET closed_at = ? WHERE episode_id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), s.episodeID,
	)
	if err != nil {
		log.Printf("[TRACE] close episode: %v", err)
	}
	s.episodeID = ""
}

// #endregion episode-reset

// #region list-episodes
// ListEpisodes returns the most recent episodes.
func (s *Store) ListEpisodes(limit int) ([]EpisodeRecord, error) {
	rows, err := s.db.Query(
		`SELECT episode_id, batch_size, steps, created_at, closed_at
		 FROM episodes ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer rows.Close()

	var records []EpisodeRecord
	for rows.Next() {
		var rec EpisodeRecord
		var createdStr string
		var closedStr sql.NullString

		if err := rows.Scan(&rec.ID, &rec.BatchSize, &rec.Steps, &createdStr, &closedStr); err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		if closedStr.Valid {
			rec.ClosedAt, _ = time.Parse(time.RFC3339Nano, closedStr.String)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list-episodes

// #region list-steps
// ListSteps returns all recorded steps of one episode in step order.
func (s *Store) ListSteps(episodeID string) ([]StepRow, error) {
	rows, err := s.db.Query(
		`SELECT episode_id, step_idx, batch_size, sharing, model_ids, logits, vocab_size, duration_us, created_at
		 FROM prior_steps WHERE episode_id = ? ORDER BY step_idx ASC`, episodeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list steps: %w", err)
	}
	defer rows.Close()

	var steps []StepRow
	for rows.Next() {
		var row StepRow
		var sharing int
		var idsBlob, logitsBlob []byte
		var durationUS int64
		var createdStr string

		if err := rows.Scan(&row.EpisodeID, &row.StepIndex, &row.BatchSize, &sharing,
			&idsBlob, &logitsBlob, &row.VocabSize, &durationUS, &createdStr); err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		row.Sharing = sharing != 0
		row.ModelIDs = decodeIDs(idsBlob)
		row.Logits = decodeLogits(logitsBlob, row.VocabSize)
		row.Duration = time.Duration(durationUS) * time.Microsecond
		row.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		steps = append(steps, row)
	}
	return steps, rows.Err()
}

// #endregion list-steps

// #region blob-encoding
func encodeIDs(ids []int64) []byte {
	buf := make([]byte, len(ids)*8)
	for i, id := range ids {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(id))
	}
	return buf
}

func decodeIDs(b []byte) []int64 {
	ids := make([]int64, len(b)/8)
	for i := range ids {
		ids[i] = int64(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return ids
}

func encodeLogits(rows [][]float32) []byte {
	n := 0
	for _, r := range rows {
		n += len(r)
	}
	buf := make([]byte, n*4)
	off := 0
	for _, r := range rows {
		for _, f := range r {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
			off += 4
		}
	}
	return buf
}

func decodeLogits(b []byte, vocabSize int) [][]float32 {
	if vocabSize <= 0 {
		return nil
	}
	flat := make([]float32, len(b)/4)
	for i := range flat {
		flat[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	rows := make([][]float32, 0, len(flat)/vocabSize)
	for off := 0; off+vocabSize <= len(flat); off += vocabSize {
		rows = append(rows, flat[off:off+vocabSize])
	}
	return rows
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion blob-encoding
