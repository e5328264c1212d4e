package replay

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/MAli82/deep-symbolic-optimization/internal/prior"
	"github.com/MAli82/deep-symbolic-optimization/internal/seqmodel"
	"github.com/MAli82/deep-symbolic-optimization/internal/trace"
	"github.com/MAli82/deep-symbolic-optimization/internal/vocab"
)

// #region fixture-model

// FixtureModel implements seqmodel.Stepper by replaying scripted logits.
// It also checks that the bridge threads recurrent state faithfully: the
// prior state of call n must be exactly the state returned by call n-1,
// and the first call of an episode must pass an absent state.
type FixtureModel struct {
	steps     []FixtureStep
	call      int
	lastState seqmodel.State
}

// NewFixtureModel creates a model that replays the fixture's steps in order.
func NewFixtureModel(steps []FixtureStep) *FixtureModel {
	return &FixtureModel{steps: steps}
}

// Step returns the scripted logits for the current call.
func (m *FixtureModel) Step(_ context.Context, tokenIDs []int64, priorState seqmodel.State) ([][]float32, seqmodel.State, error) {
	if m.call >= len(m.steps) {
		return nil, nil, &seqmodel.InferenceError{Op: "step", Err: fmt.Errorf("no scripted step %d", m.call)}
	}
	if m.call == 0 {
		if !priorState.Empty() {
			return nil, nil, &seqmodel.InferenceError{Op: "step", Err: fmt.Errorf("expected absent state on first step")}
		}
	} else if !bytes.Equal(priorState, m.lastState) {
		return nil, nil, &seqmodel.InferenceError{Op: "step", Err: fmt.Errorf("state not threaded from previous step")}
	}

	script := m.steps[m.call]
	if len(tokenIDs) != len(script.Logits) {
		return nil, nil, &seqmodel.InferenceError{Op: "step", Err: fmt.Errorf("scripted batch %d, got %d", len(script.Logits), len(tokenIDs))}
	}

	logits := make([][]float32, len(script.Logits))
	for i, row := range script.Logits {
		out := make([]float32, len(row))
		copy(out, row)
		logits[i] = out
	}

	m.call++
	m.lastState = seqmodel.State(fmt.Sprintf("fixture-state-%d", m.call))
	return logits, m.lastState, nil
}

// #endregion fixture-model

// #region replay-results

// Mismatch is one prior value that differed from the fixture expectation.
type Mismatch struct {
	Step  int
	Row   int
	Index int
	Got   float32
	Want  float32
}

// Summary aggregates a replay run.
type Summary struct {
	TotalSteps   int
	CheckedSteps int
	Mismatches   []Mismatch
}

// Passed reports whether every checked value was within tolerance.
func (s Summary) Passed() bool {
	return len(s.Mismatches) == 0
}

// #endregion replay-results

// #region replay

// Replay drives a prior.Computer across every fixture step and compares
// computed prior rows against the fixture's expectations. Operates
// entirely in-memory.
func Replay(f *Fixture) (Summary, error) {
	search := vocab.NewSearchVocabulary(f.NInputVars, f.Functions)
	model := vocab.NewModelVocabulary(f.TokenToID())

	computer, err := prior.NewComputer(search, model, NewFixtureModel(f.Steps))
	if err != nil {
		return Summary{}, err
	}

	tolerance := f.Tolerance
	if tolerance == 0 {
		tolerance = 1e-6
	}

	summary := Summary{TotalSteps: len(f.Steps)}
	for i, step := range f.Steps {
		priors, err := computer.ComputeBatchPrior(context.Background(), step.PrevTokenIndices, f.Sharing)
		if err != nil {
			return summary, fmt.Errorf("step %d: %w", i, err)
		}
		if step.ExpectedPriors == nil {
			continue
		}

		summary.CheckedSteps++
		for row := range step.ExpectedPriors {
			for j, want := range step.ExpectedPriors[row] {
				got := priors[row][j]
				if math.Abs(float64(got)-float64(want)) > tolerance {
					summary.Mismatches = append(summary.Mismatches, Mismatch{
						Step: i, Row: row, Index: j, Got: got, Want: want,
					})
				}
			}
		}
	}
	return summary, nil
}

// #endregion replay

// #region fixture-from-trace

// FixtureFromTrace rebuilds a replay fixture from a recorded episode.
// Recorded steps carry model token ids; each id is mapped back to the
// first search index of its terminal group, which round-trips exactly
// because group members alias to the same model input.
func FixtureFromTrace(nInputVars int, functions []string, tokenToID map[string]int64, steps []trace.StepRow) (*Fixture, error) {
	search := vocab.NewSearchVocabulary(nInputVars, functions)
	model := vocab.NewModelVocabulary(tokenToID)
	table, err := vocab.BuildAlignment(search, model)
	if err != nil {
		return nil, fmt.Errorf("build alignment: %w", err)
	}

	modelToSearch := make(map[int64]int, len(table))
	for i := len(table) - 1; i >= 0; i-- {
		modelToSearch[table[i]] = i
	}

	f := &Fixture{
		Description: "exported from trace",
		NInputVars:  nInputVars,
		Functions:   functions,
	}
	for token, id := range tokenToID {
		f.ModelVocab = append(f.ModelVocab, FixtureVocabRow{Token: token, ID: id})
	}
	sort.Slice(f.ModelVocab, func(a, b int) bool { return f.ModelVocab[a].ID < f.ModelVocab[b].ID })

	for n, step := range steps {
		// The fixture carries one sharing flag for the whole episode; an
		// episode that toggled sharing mid-run cannot be replayed from it.
		if n == 0 {
			f.Sharing = step.Sharing
		} else if step.Sharing != f.Sharing {
			return nil, fmt.Errorf("step %d: episode mixes sharing flags, cannot export a single-flag fixture", step.StepIndex)
		}
		fs := FixtureStep{Logits: step.Logits}
		for _, id := range step.ModelIDs {
			idx, ok := modelToSearch[id]
			if !ok {
				return nil, fmt.Errorf("step %d: model id %d outside the alignment table", step.StepIndex, id)
			}
			fs.PrevTokenIndices = append(fs.PrevTokenIndices, idx)
		}
		f.Steps = append(f.Steps, fs)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// #endregion fixture-from-trace
