package prior

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/MAli82/deep-symbolic-optimization/internal/episode"
	"github.com/MAli82/deep-symbolic-optimization/internal/seqmodel"
	"github.com/MAli82/deep-symbolic-optimization/internal/vocab"
)

// #region computer-struct
// Computer converts batches of previously sampled search tokens into
// batches of prior log-probability vectors over the search grammar, using
// the external sequence model's per-step logits.
//
// Calls within one episode are strictly sequential; concurrent use of one
// Computer is forbidden. Independent episodes need independent Computer,
// Manager, and Stepper instances.
type Computer struct {
	search vocab.SearchVocabulary
	table  vocab.AlignmentTable

	// corrections[i] = ln(size of the terminal group containing search
	// index i); subtracted from the shared logit when sharing is enabled.
	// Zero for singleton groups.
	corrections []float32

	// minRowWidth is the smallest logits row the alignment table can
	// gather from: the largest model id in the table plus one.
	minRowWidth int

	model    seqmodel.Stepper
	episode  *episode.Manager
	recorder Recorder

	stepIndex int
}

// Option configures a Computer during construction.
type Option func(*Computer)

// WithRecorder attaches a provenance recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Computer) {
		c.recorder = r
	}
}

// #endregion computer-struct

// #region constructor
// NewComputer aligns the two vocabularies and wires the step pipeline.
// The alignment table is built exactly once here and never mutated; a
// search token missing from the model vocabulary fails construction with
// vocab.MissingTokenError rather than falling back to a placeholder id.
func NewComputer(search vocab.SearchVocabulary, model vocab.ModelVocabulary, stepper seqmodel.Stepper, opts ...Option) (*Computer, error) {
	table, err := vocab.BuildAlignment(search, model)
	if err != nil {
		return nil, fmt.Errorf("build alignment: %w", err)
	}

	corrections := make([]float32, search.Len())
	for _, g := range vocab.Groups(table) {
		corr := float32(math.Log(float64(len(g.Indices))))
		for _, i := range g.Indices {
			corrections[i] = corr
		}
	}

	minRowWidth := 0
	for _, id := range table {
		if int(id) >= minRowWidth {
			minRowWidth = int(id) + 1
		}
	}

	c := &Computer{
		search:      search,
		table:       table,
		corrections: corrections,
		minRowWidth: minRowWidth,
		model:       stepper,
		episode:     episode.NewManager(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// #endregion constructor

// #region compute-batch-prior
// ComputeBatchPrior maps the previous token of each batch row through the
// alignment table, steps the model with the held recurrent state, applies
// the probability-sharing correction, and gathers a prior vector of length
// |SearchVocabulary| per row, in search order.
//
// Members of one terminal group receive the identical corrected value:
// the shared logit minus ln(group size). The projected vectors are not
// renormalized. The manager absorbs the model's replacement state before
// returning.
func (c *Computer) ComputeBatchPrior(ctx context.Context, prevTokenIndices []int, sharingEnabled bool) ([][]float32, error) {
	if len(prevTokenIndices) == 0 {
		return nil, fmt.Errorf("empty previous-token batch")
	}
	if held := c.episode.BatchSize(); held != 0 && held != len(prevTokenIndices) {
		return nil, &StateShapeError{Held: held, Got: len(prevTokenIndices)}
	}

	modelIDs := make([]int64, len(prevTokenIndices))
	for row, idx := range prevTokenIndices {
		if idx < 0 || idx >= c.search.Len() {
			return nil, fmt.Errorf("search token index %d out of range [0,%d)", idx, c.search.Len())
		}
		modelIDs[row] = c.table[idx]
	}

	start := time.Now()
	held, _ := c.episode.Get()
	logits, next, err := c.model.Step(ctx, modelIDs, held)
	if err != nil {
		return nil, err
	}
	if len(logits) != len(prevTokenIndices) {
		return nil, &seqmodel.InferenceError{
			Op:  "step",
			Err: fmt.Errorf("got %d logits rows for batch %d", len(logits), len(prevTokenIndices)),
		}
	}

	priors := make([][]float32, len(logits))
	for row, rawRow := range logits {
		if len(rawRow) < c.minRowWidth {
			return nil, &seqmodel.InferenceError{
				Op:  "step",
				Err: fmt.Errorf("logits row %d has %d values, alignment needs at least %d", row, len(rawRow), c.minRowWidth),
			}
		}
		vec := make([]float32, c.search.Len())
		for i := range vec {
			vec[i] = rawRow[c.table[i]]
			if sharingEnabled {
				vec[i] -= c.corrections[i]
			}
		}
		priors[row] = vec
	}

	c.episode.Set(next, len(prevTokenIndices))

	if c.recorder != nil {
		c.recorder.RecordStep(StepRecord{
			StepIndex: c.stepIndex,
			BatchSize: len(prevTokenIndices),
			Sharing:   sharingEnabled,
			ModelIDs:  modelIDs,
			Logits:    logits,
			Duration:  time.Since(start),
		})
	}
	c.stepIndex++

	return priors, nil
}

// #endregion compute-batch-prior

// #region reset-episode
// ResetEpisode drops the held recurrent state. The next ComputeBatchPrior
// call starts a fresh episode, with any batch size.
func (c *Computer) ResetEpisode() {
	c.episode.Reset()
	c.stepIndex = 0
	if c.recorder != nil {
		c.recorder.EpisodeReset()
	}
}

// #endregion reset-episode

// #region accessors
// Alignment returns a copy of the alignment table.
func (c *Computer) Alignment() vocab.AlignmentTable {
	out := make(vocab.AlignmentTable, len(c.table))
	copy(out, c.table)
	return out
}

// Phase exposes the episode manager's phase for inspection.
func (c *Computer) Phase() episode.Phase {
	return c.episode.Phase()
}

// #endregion accessors
