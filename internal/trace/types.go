package trace

import "time"

// #region episode-record
// EpisodeRecord is one row of the episodes table: a contiguous run of
// prior computations over which recurrent state persisted.
type EpisodeRecord struct {
	ID        string
	BatchSize int
	Steps     int
	CreatedAt time.Time
	ClosedAt  time.Time // zero while the episode is still open
}

// #endregion episode-record

// #region step-row
// StepRow is one recorded prior computation.
type StepRow struct {
	EpisodeID string
	StepIndex int
	BatchSize int
	Sharing   bool
	ModelIDs  []int64
	Logits    [][]float32
	VocabSize int
	Duration  time.Duration
	CreatedAt time.Time
}

// #endregion step-row
