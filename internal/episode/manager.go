package episode

import "github.com/MAli82/deep-symbolic-optimization/internal/seqmodel"

// #region phase
// Phase is the observable state of the manager's two-state machine.
type Phase string

const (
	// PhaseEmpty means no recurrent state is held; the next step starts
	// the episode with the model's default initial state.
	PhaseEmpty Phase = "empty"
	// PhaseWarm means a recurrent state from the previous step is held.
	PhaseWarm Phase = "warm"
)

// #endregion phase

// #region manager
// Manager owns the single mutable recurrent state for the current
// generation episode. State is replaced atomically per step, never merged,
// and is scoped to exactly one episode.
//
// Not safe for concurrent use: within an episode each call's output state
// is the next call's input, so callers are strictly sequential. Independent
// episodes need independent Managers.
type Manager struct {
	state     seqmodel.State
	batchSize int
	warm      bool
}

// NewManager returns a manager in the EMPTY phase.
func NewManager() *Manager {
	return &Manager{}
}

// Phase reports whether the manager is EMPTY or WARM.
func (m *Manager) Phase() Phase {
	if m.warm {
		return PhaseWarm
	}
	return PhaseEmpty
}

// Get returns the held state. ok is false while EMPTY, signalling episode
// start to the step caller.
func (m *Manager) Get() (seqmodel.State, bool) {
	if !m.warm {
		return nil, false
	}
	return m.state, true
}

// BatchSize returns the batch size bound to the held state, or 0 while EMPTY.
func (m *Manager) BatchSize() int {
	if !m.warm {
		return 0
	}
	return m.batchSize
}

// Set replaces the held state and records the batch size it was shaped for.
// Transitions to WARM.
func (m *Manager) Set(state seqmodel.State, batchSize int) {
	m.state = state
	m.batchSize = batchSize
	m.warm = true
}

// Reset discards the held state and returns to EMPTY. The dropped state has
// no external references and needs no further teardown.
func (m *Manager) Reset() {
	m.state = nil
	m.batchSize = 0
	m.warm = false
}

// #endregion manager
