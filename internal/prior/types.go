package prior

import (
	"fmt"
	"time"
)

// #region state-shape-error
// StateShapeError reports a step whose batch size differs from the batch
// size the held recurrent state was shaped for. State tensors are shaped
// per batch row and cannot be reused across a different batch size; the
// caller must ResetEpisode before retrying with the new size.
type StateShapeError struct {
	Held int
	Got  int
}

func (e *StateShapeError) Error() string {
	return fmt.Sprintf("batch size %d does not match held state batch size %d; reset the episode first", e.Got, e.Held)
}

// #endregion state-shape-error

// #region recorder
// StepRecord captures one prior computation for provenance tracing.
type StepRecord struct {
	StepIndex int
	BatchSize int
	Sharing   bool
	ModelIDs  []int64
	Logits    [][]float32
	Duration  time.Duration
}

// Recorder receives a record per ComputeBatchPrior call and a notification
// per episode reset. Implemented by the trace store; recording failures are
// logged by the implementation, never surfaced into the prior path.
type Recorder interface {
	RecordStep(rec StepRecord)
	EpisodeReset()
}

// #endregion recorder
