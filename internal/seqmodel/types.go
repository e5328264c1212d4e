package seqmodel

import (
	"context"
	"fmt"
)

// #region state
// State is the opaque recurrent state bundle produced by the sequence model
// after consuming one step of input. Its internal layout belongs to the
// inference service; the bridge only threads it between calls. A nil or
// empty State means "start of episode": the model must use its own default
// initial state.
type State []byte

// Empty reports whether the state marks an episode start.
func (s State) Empty() bool {
	return len(s) == 0
}

// #endregion state

// #region stepper
// Stepper is the uniform synchronous step interface over the external
// sequence model. Step consumes one previously sampled model token id per
// batch row and returns one logits row of model-vocabulary width per batch
// row, plus the replacement recurrent state. Blocking; no internal retry.
type Stepper interface {
	Step(ctx context.Context, tokenIDs []int64, prior State) ([][]float32, State, error)
}

// #endregion stepper

// #region inference-error
// InferenceError reports that the underlying sequence model failed to
// execute a step. Never retried inside the bridge; the caller decides
// whether to substitute a degraded fallback prior.
type InferenceError struct {
	Op  string
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("sequence model %s: %v", e.Op, e.Err)
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}

// #endregion inference-error
