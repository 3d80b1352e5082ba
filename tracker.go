package gocubie

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Tracker wraps a Cube with move history, phase tracking and callbacks.
// It is safe for concurrent use; callbacks run outside the lock.
type Tracker struct {
	mu           sync.RWMutex
	cube         *Cube
	history      []Move
	highestPhase Phase // Monotonic - never goes backwards
	sessionID    string
	config       *config
	log          zerolog.Logger

	onMove        func(Move)
	onPhaseChange func(Phase)
	onSolved      func()
}

// NewTracker creates a tracker starting from a solved cube.
func NewTracker(opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	id := cfg.sessionID
	if id == "" {
		id = uuid.NewString()
	}

	return &Tracker{
		cube:         NewCube(),
		highestPhase: PhaseScrambled,
		sessionID:    id,
		config:       cfg,
		log:          cfg.logger.With().Str("session", id).Logger(),
	}
}

// OnMove sets a callback that fires after each applied move.
func (t *Tracker) OnMove(cb func(Move)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onMove = cb
}

// OnPhaseChange sets a callback that fires when a new highest phase is reached.
func (t *Tracker) OnPhaseChange(cb func(Phase)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onPhaseChange = cb
}

// OnSolved sets a callback that fires when a move leaves the cube solved.
func (t *Tracker) OnSolved(cb func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSolved = cb
}

// Apply applies moves in order, firing callbacks after each one.
func (t *Tracker) Apply(moves ...Move) {
	for _, m := range moves {
		t.apply(m)
	}
}

// ApplyNotation parses and applies a move sequence.
func (t *Tracker) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	t.Apply(moves...)
	return nil
}

// Undo reverts the last recorded move. It returns false if there is nothing
// to undo. Popping the move and turning it back happen under one lock.
func (t *Tracker) Undo() (Move, bool) {
	t.mu.Lock()
	if len(t.history) == 0 {
		t.mu.Unlock()
		return Move{}, false
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	ev := t.applyLocked(last.Inverse(), false)
	t.mu.Unlock()

	t.notify(ev)
	return last, true
}

// applied is what a move changed, captured under the lock so callbacks can
// run after it is released.
type applied struct {
	move         Move
	phase        Phase
	phaseChanged bool

	onMove        func(Move)
	onPhaseChange func(Phase)
	onSolved      func()
}

func (t *Tracker) apply(m Move) {
	t.mu.Lock()
	ev := t.applyLocked(m, true)
	t.mu.Unlock()

	t.notify(ev)
}

// applyLocked turns the cube and updates history and phase. t.mu must be held.
func (t *Tracker) applyLocked(m Move, record bool) applied {
	t.cube.ApplyMove(m)
	if record && t.config.moveHistory {
		t.history = append(t.history, m)
	}

	phase := t.cube.Facelets().DetectPhase()
	phaseChanged := phase > t.highestPhase
	if phaseChanged {
		t.highestPhase = phase
	}

	return applied{
		move:          m,
		phase:         phase,
		phaseChanged:  phaseChanged,
		onMove:        t.onMove,
		onPhaseChange: t.onPhaseChange,
		onSolved:      t.onSolved,
	}
}

// notify logs ev and fires its callbacks. t.mu must not be held.
func (t *Tracker) notify(ev applied) {
	t.log.Debug().Str("move", ev.move.Notation()).Str("phase", ev.phase.String()).Msg("move applied")

	if ev.phaseChanged {
		t.log.Info().Str("phase", ev.phase.String()).Msg("phase reached")
		if ev.onPhaseChange != nil {
			ev.onPhaseChange(ev.phase)
		}
	}
	if ev.phase == PhaseSolved && ev.onSolved != nil {
		ev.onSolved()
	}
	if ev.onMove != nil {
		ev.onMove(ev.move)
	}
}

// Reset returns the cube to solved and clears history and phase tracking.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cube.Reset()
	t.history = nil
	t.highestPhase = PhaseScrambled
	t.log.Info().Msg("tracker reset")
}

// Cube returns a copy of the current cube state.
func (t *Tracker) Cube() *Cube {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cube.Clone()
}

// Moves returns the move history since creation or the last reset.
func (t *Tracker) Moves() []Move {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Move, len(t.history))
	copy(out, t.history)
	return out
}

// IsSolved returns true if the cube is currently solved.
func (t *Tracker) IsSolved() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cube.IsSolved()
}

// Phase returns the current detected phase. It may go backwards.
func (t *Tracker) Phase() Phase {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cube.Phase()
}

// HighestPhase returns the highest phase reached since creation or reset.
func (t *Tracker) HighestPhase() Phase {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.highestPhase
}

// Progress returns which phases are currently complete.
func (t *Tracker) Progress() Progress {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cube.Facelets().Progress()
}

// SessionID returns the identifier attached to this tracker's log lines.
func (t *Tracker) SessionID() string {
	return t.sessionID
}
