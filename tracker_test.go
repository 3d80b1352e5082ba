package gocubie

import (
	"bytes"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	require.True(t, tr.IsSolved(), "New tracker should start solved")

	tr.Apply(R)
	assert.False(t, tr.IsSolved(), "Tracker should not be solved after move")

	tr.Reset()
	assert.True(t, tr.IsSolved(), "Tracker should be solved after reset")
	assert.Empty(t, tr.Moves())
	assert.Equal(t, PhaseScrambled, tr.HighestPhase())
}

func TestTrackerPhaseCallback(t *testing.T) {
	tr := NewTracker()

	var phases []Phase
	solvedCount := 0
	tr.OnPhaseChange(func(p Phase) { phases = append(phases, p) })
	tr.OnSolved(func() { solvedCount++ })

	tr.Apply(D)
	assert.Equal(t, []Phase{PhaseYellowCross}, phases)
	assert.Equal(t, PhaseYellowCross, tr.Phase())

	tr.Apply(R, U, F)
	assert.Equal(t, PhaseScrambled, tr.Phase())
	assert.Equal(t, PhaseYellowCross, tr.HighestPhase(), "highest phase must not go backwards")

	tr.Apply(FPrime, UPrime, RPrime, DPrime)
	assert.True(t, tr.IsSolved())
	assert.Equal(t, []Phase{PhaseYellowCross, PhaseSolved}, phases)
	assert.Equal(t, 1, solvedCount)
	assert.True(t, tr.Progress().Solved)
}

func TestTrackerMoveCallback(t *testing.T) {
	tr := NewTracker()

	var seen []Move
	tr.OnMove(func(m Move) { seen = append(seen, m) })

	require.NoError(t, tr.ApplyNotation("R U R' U'"))
	assert.Equal(t, SexyMove, seen)
	assert.Equal(t, SexyMove, tr.Moves())

	assert.ErrorIs(t, tr.ApplyNotation("R Z"), ErrInvalidNotation)
	assert.Len(t, tr.Moves(), 4, "a bad sequence must not be partly applied")
}

func TestTrackerUndo(t *testing.T) {
	tr := NewTracker()
	tr.Apply(R, U)

	m, ok := tr.Undo()
	require.True(t, ok)
	assert.Equal(t, U, m)
	assert.Equal(t, []Move{R}, tr.Moves())

	want := NewCube()
	want.ApplyMove(R)
	assert.True(t, tr.Cube().Equal(want))

	_, ok = tr.Undo()
	require.True(t, ok)
	assert.True(t, tr.Cube().Equal(NewCube()))

	_, ok = tr.Undo()
	assert.False(t, ok, "nothing left to undo")
}

func TestTrackerWithoutHistory(t *testing.T) {
	tr := NewTracker(WithMoveHistory(false))
	tr.Apply(R, U)

	assert.Empty(t, tr.Moves())
	_, ok := tr.Undo()
	assert.False(t, ok)
	assert.False(t, tr.IsSolved())
}

func TestTrackerCubeIsCopy(t *testing.T) {
	tr := NewTracker()
	c := tr.Cube()
	c.ApplyMove(R)
	assert.True(t, tr.IsSolved())
}

func TestTrackerSessionID(t *testing.T) {
	tr := NewTracker(WithSessionID("practice-1"))
	assert.Equal(t, "practice-1", tr.SessionID())

	_, err := uuid.Parse(NewTracker().SessionID())
	assert.NoError(t, err, "default session id should be a UUID")
}

func TestTrackerLogging(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTracker(WithLogger(zerolog.New(&buf)), WithSessionID("log-test"))

	tr.Apply(D)
	out := buf.String()
	assert.Contains(t, out, `"session":"log-test"`)
	assert.Contains(t, out, `"move":"D"`)
	assert.Contains(t, out, "phase reached")
}

func TestTrackerConcurrentApply(t *testing.T) {
	tr := NewTracker()

	var mu sync.Mutex
	count := 0
	tr.OnMove(func(Move) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 6; j++ {
				tr.Apply(SexyMove...)
				_ = tr.Phase()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 8*6*len(SexyMove), count)
	assert.Len(t, tr.Moves(), 8*6*len(SexyMove))
}

func TestTrackerConcurrentUndo(t *testing.T) {
	for trial := 0; trial < 50; trial++ {
		tr := NewTracker()

		var g errgroup.Group
		for i := 0; i < 3; i++ {
			g.Go(func() error {
				for j := 0; j < 40; j++ {
					tr.Apply(F)
				}
				return nil
			})
		}
		for i := 0; i < 2; i++ {
			g.Go(func() error {
				for j := 0; j < 40; j++ {
					tr.Undo()
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		replay := NewCube()
		replay.Apply(tr.Moves()...)
		require.True(t, replay.Equal(tr.Cube()), "trial %d: cube diverged from history %s", trial, FormatMoves(tr.Moves()))
	}
}
