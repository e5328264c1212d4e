package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a
// vocabulary definition plus scripted model output per step, with
// optional expected prior vectors to check against.
type Fixture struct {
	Description string `json:"description"`

	NInputVars int               `json:"n_input_vars"`
	Functions  []string          `json:"functions"`
	ModelVocab []FixtureVocabRow `json:"model_vocabulary"`

	Sharing   bool          `json:"sharing"`
	Tolerance float64       `json:"tolerance"`
	Steps     []FixtureStep `json:"steps"`
}

// FixtureVocabRow is one model-vocabulary entry.
type FixtureVocabRow struct {
	Token string `json:"token"`
	ID    int64  `json:"id"`
}

// FixtureStep scripts one generation step: the previous-token batch fed to
// the bridge and the logits rows the model returns for it.
type FixtureStep struct {
	PrevTokenIndices []int       `json:"prev_token_indices"`
	Logits           [][]float32 `json:"logits"`

	// ExpectedPriors, when present, is compared against the computed
	// prior rows within Tolerance.
	ExpectedPriors [][]float32 `json:"expected_priors,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return &f, nil
}

// Validate checks internal consistency of the fixture shape.
func (f *Fixture) Validate() error {
	if f.NInputVars < 0 {
		return fmt.Errorf("n_input_vars must be >= 0")
	}
	if f.NInputVars+len(f.Functions) == 0 {
		return fmt.Errorf("empty search vocabulary")
	}
	if len(f.ModelVocab) == 0 {
		return fmt.Errorf("empty model vocabulary")
	}
	for i, step := range f.Steps {
		if len(step.PrevTokenIndices) == 0 {
			return fmt.Errorf("step %d: empty previous-token batch", i)
		}
		if len(step.Logits) != len(step.PrevTokenIndices) {
			return fmt.Errorf("step %d: %d logits rows for batch %d", i, len(step.Logits), len(step.PrevTokenIndices))
		}
		for row, r := range step.Logits {
			if len(r) != len(f.ModelVocab) {
				return fmt.Errorf("step %d row %d: %d logits for vocab %d", i, row, len(r), len(f.ModelVocab))
			}
		}
		if step.ExpectedPriors != nil && len(step.ExpectedPriors) != len(step.PrevTokenIndices) {
			return fmt.Errorf("step %d: %d expected rows for batch %d", i, len(step.ExpectedPriors), len(step.PrevTokenIndices))
		}
	}
	return nil
}

// TokenToID returns the model vocabulary as a lookup table.
func (f *Fixture) TokenToID() map[string]int64 {
	m := make(map[string]int64, len(f.ModelVocab))
	for _, row := range f.ModelVocab {
		m[row.Token] = row.ID
	}
	return m
}

// #endregion fixture-loader
