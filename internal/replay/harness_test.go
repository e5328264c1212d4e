package replay

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/MAli82/deep-symbolic-optimization/internal/seqmodel"
	"github.com/MAli82/deep-symbolic-optimization/internal/trace"
)

// #region helpers
func testFixture() *Fixture {
	shared := float32(2.0) - float32(math.Log(2))
	return &Fixture{
		Description: "two-step sharing fixture",
		NInputVars:  2,
		Functions:   []string{"add", "sin"},
		ModelVocab: []FixtureVocabRow{
			{Token: "terminal", ID: 0},
			{Token: "add", ID: 1},
			{Token: "sin", ID: 2},
		},
		Sharing: true,
		Steps: []FixtureStep{
			{
				PrevTokenIndices: []int{2},
				Logits:           [][]float32{{2.0, 1.0, 0.5}},
				ExpectedPriors:   [][]float32{{shared, shared, 1.0, 0.5}},
			},
			{
				PrevTokenIndices: []int{0},
				Logits:           [][]float32{{0.0, -1.0, 4.0}},
				ExpectedPriors: [][]float32{{
					-float32(math.Log(2)), -float32(math.Log(2)), -1.0, 4.0,
				}},
			},
		},
	}
}

// #endregion helpers

// #region fixture-model-tests
func TestFixtureModel_ReplaysScript(t *testing.T) {
	m := NewFixtureModel([]FixtureStep{
		{PrevTokenIndices: []int{0}, Logits: [][]float32{{1, 2, 3}}},
	})

	logits, state, err := m.Step(context.Background(), []int64{0}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logits) != 1 || logits[0][1] != 2 {
		t.Errorf("unexpected logits: %v", logits)
	}
	if state.Empty() {
		t.Error("expected replacement state")
	}
}

func TestFixtureModel_RejectsStateOnFirstStep(t *testing.T) {
	m := NewFixtureModel([]FixtureStep{
		{PrevTokenIndices: []int{0}, Logits: [][]float32{{1}}},
	})

	_, _, err := m.Step(context.Background(), []int64{0}, seqmodel.State("stale"))
	var inferr *seqmodel.InferenceError
	if !errors.As(err, &inferr) {
		t.Fatalf("expected InferenceError for non-empty first state, got %v", err)
	}
}

func TestFixtureModel_RequiresThreadedState(t *testing.T) {
	m := NewFixtureModel([]FixtureStep{
		{PrevTokenIndices: []int{0}, Logits: [][]float32{{1}}},
		{PrevTokenIndices: []int{0}, Logits: [][]float32{{1}}},
	})

	_, state, err := m.Step(context.Background(), []int64{0}, nil)
	if err != nil {
		t.Fatalf("first step: %v", err)
	}

	_, _, err = m.Step(context.Background(), []int64{0}, seqmodel.State("wrong"))
	var inferr *seqmodel.InferenceError
	if !errors.As(err, &inferr) {
		t.Fatalf("expected InferenceError for broken state thread, got %v", err)
	}

	// A fresh model accepts the genuine chain.
	m2 := NewFixtureModel([]FixtureStep{
		{PrevTokenIndices: []int{0}, Logits: [][]float32{{1}}},
		{PrevTokenIndices: []int{0}, Logits: [][]float32{{1}}},
	})
	_, state, err = m2.Step(context.Background(), []int64{0}, nil)
	if err != nil {
		t.Fatalf("first step: %v", err)
	}
	if _, _, err = m2.Step(context.Background(), []int64{0}, state); err != nil {
		t.Fatalf("threaded second step: %v", err)
	}
}

func TestFixtureModel_ScriptExhausted(t *testing.T) {
	m := NewFixtureModel(nil)
	_, _, err := m.Step(context.Background(), []int64{0}, nil)
	var inferr *seqmodel.InferenceError
	if !errors.As(err, &inferr) {
		t.Fatalf("expected InferenceError past end of script, got %v", err)
	}
}

// #endregion fixture-model-tests

// #region validate-tests
func TestValidate_Accepts(t *testing.T) {
	if err := testFixture().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_RowCountMismatch(t *testing.T) {
	f := testFixture()
	f.Steps[0].Logits = append(f.Steps[0].Logits, []float32{0, 0, 0})
	if err := f.Validate(); err == nil {
		t.Fatal("expected error for logits/batch mismatch")
	}
}

func TestValidate_VocabWidthMismatch(t *testing.T) {
	f := testFixture()
	f.Steps[0].Logits[0] = []float32{1, 2}
	if err := f.Validate(); err == nil {
		t.Fatal("expected error for logits width mismatch")
	}
}

func TestValidate_EmptyModelVocab(t *testing.T) {
	f := testFixture()
	f.ModelVocab = nil
	if err := f.Validate(); err == nil {
		t.Fatal("expected error for empty model vocabulary")
	}
}

func TestValidate_ExpectedRowsMismatch(t *testing.T) {
	f := testFixture()
	f.Steps[0].ExpectedPriors = append(f.Steps[0].ExpectedPriors, []float32{0, 0, 0, 0})
	if err := f.Validate(); err == nil {
		t.Fatal("expected error for expectation/batch mismatch")
	}
}

// #endregion validate-tests

// #region replay-tests
func TestReplay_Passes(t *testing.T) {
	summary, err := Replay(testFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalSteps != 2 || summary.CheckedSteps != 2 {
		t.Errorf("expected 2 total and 2 checked steps, got %+v", summary)
	}
	if !summary.Passed() {
		t.Fatalf("expected clean replay, got mismatches: %+v", summary.Mismatches)
	}
}

func TestReplay_ReportsMismatch(t *testing.T) {
	f := testFixture()
	f.Steps[0].ExpectedPriors[0][2] = 999

	summary, err := Replay(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Passed() {
		t.Fatal("expected a mismatch")
	}
	m := summary.Mismatches[0]
	if m.Step != 0 || m.Row != 0 || m.Index != 2 {
		t.Errorf("mismatch reported at wrong place: %+v", m)
	}
	if m.Want != 999 {
		t.Errorf("expected want 999, got %f", m.Want)
	}
}

func TestReplay_SkipsStepsWithoutExpectations(t *testing.T) {
	f := testFixture()
	f.Steps[1].ExpectedPriors = nil

	summary, err := Replay(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalSteps != 2 || summary.CheckedSteps != 1 {
		t.Errorf("expected 2 total, 1 checked, got %+v", summary)
	}
}

func TestReplay_MissingToken(t *testing.T) {
	f := testFixture()
	f.Functions = []string{"add", "tanh"}

	if _, err := Replay(f); err == nil {
		t.Fatal("expected error for token missing from model vocabulary")
	}
}

// #endregion replay-tests

// #region fixture-from-trace-tests
func TestFixtureFromTrace_RoundTrip(t *testing.T) {
	tokenToID := map[string]int64{"terminal": 0, "add": 1, "sin": 2}
	steps := []trace.StepRow{
		{
			StepIndex: 0,
			BatchSize: 2,
			Sharing:   true,
			ModelIDs:  []int64{0, 2},
			Logits: [][]float32{
				{2.0, 1.0, 0.5},
				{0.25, -1.5, 3.0},
			},
			VocabSize: 3,
		},
		{
			StepIndex: 1,
			BatchSize: 2,
			Sharing:   true,
			ModelIDs:  []int64{1, 1},
			Logits: [][]float32{
				{0, 0, 0},
				{1, 1, 1},
			},
			VocabSize: 3,
		},
	}

	f, err := FixtureFromTrace(2, []string{"add", "sin"}, tokenToID, steps)
	if err != nil {
		t.Fatalf("FixtureFromTrace: %v", err)
	}

	if !f.Sharing {
		t.Error("expected sharing flag carried from trace")
	}
	if len(f.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(f.Steps))
	}
	// Terminal id maps back to the first variable index.
	if got := f.Steps[0].PrevTokenIndices; got[0] != 0 || got[1] != 3 {
		t.Errorf("expected indices [0 3], got %v", got)
	}
	if got := f.Steps[1].PrevTokenIndices; got[0] != 2 || got[1] != 2 {
		t.Errorf("expected indices [2 2], got %v", got)
	}
	if len(f.ModelVocab) != 3 || f.ModelVocab[0].Token != "terminal" {
		t.Errorf("expected model vocab sorted by id, got %+v", f.ModelVocab)
	}

	// The exported fixture replays cleanly.
	summary, err := Replay(f)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if summary.TotalSteps != 2 {
		t.Errorf("expected 2 replayed steps, got %d", summary.TotalSteps)
	}
}

func TestFixtureFromTrace_MixedSharing(t *testing.T) {
	tokenToID := map[string]int64{"terminal": 0, "add": 1, "sin": 2}
	steps := []trace.StepRow{
		{StepIndex: 0, BatchSize: 1, Sharing: true, ModelIDs: []int64{0}, Logits: [][]float32{{0, 0, 0}}, VocabSize: 3},
		{StepIndex: 1, BatchSize: 1, Sharing: false, ModelIDs: []int64{0}, Logits: [][]float32{{0, 0, 0}}, VocabSize: 3},
	}

	if _, err := FixtureFromTrace(2, []string{"add", "sin"}, tokenToID, steps); err == nil {
		t.Fatal("expected error for episode with mixed sharing flags")
	}
}

func TestFixtureFromTrace_SharingDisabled(t *testing.T) {
	tokenToID := map[string]int64{"terminal": 0, "add": 1, "sin": 2}
	steps := []trace.StepRow{
		{StepIndex: 0, BatchSize: 1, Sharing: false, ModelIDs: []int64{0}, Logits: [][]float32{{0, 0, 0}}, VocabSize: 3},
	}

	f, err := FixtureFromTrace(2, []string{"add", "sin"}, tokenToID, steps)
	if err != nil {
		t.Fatalf("FixtureFromTrace: %v", err)
	}
	if f.Sharing {
		t.Error("expected sharing disabled in exported fixture")
	}
}

func TestFixtureFromTrace_UnknownModelID(t *testing.T) {
	tokenToID := map[string]int64{"terminal": 0, "add": 1, "sin": 2}
	steps := []trace.StepRow{
		{StepIndex: 0, BatchSize: 1, ModelIDs: []int64{9}, Logits: [][]float32{{0, 0, 0}}, VocabSize: 3},
	}

	if _, err := FixtureFromTrace(2, []string{"add", "sin"}, tokenToID, steps); err == nil {
		t.Fatal("expected error for model id outside the alignment table")
	}
}

// #endregion fixture-from-trace-tests
