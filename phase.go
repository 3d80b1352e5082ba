package gocubie

// Phase is how far a cube has progressed through the layer-by-layer method,
// judged from the sticker net its cubies project. Phases are
// ordered from Scrambled (0) to Solved (7), so they compare with < and >.
type Phase int

const (
	PhaseScrambled      Phase = iota // No milestone reached
	PhaseWhiteCross                  // White edges on U, matching their side centres
	PhaseFirstLayer                  // White corners placed and twisted too
	PhaseSecondLayer                 // Middle-layer edges placed
	PhaseYellowCross                 // Yellow edges show yellow on D
	PhaseYellowCorners               // Yellow corners in their slots, maybe twisted
	PhaseYellowOriented              // Yellow corners untwisted
	PhaseSolved                      // Every face shows one colour

	numPhases
)

var phaseNames = [numPhases]struct{ id, display string }{
	PhaseScrambled:      {"scrambled", "Scrambled"},
	PhaseWhiteCross:     {"white_cross", "White Cross"},
	PhaseFirstLayer:     {"first_layer", "First Layer"},
	PhaseSecondLayer:    {"second_layer", "Second Layer (F2L)"},
	PhaseYellowCross:    {"yellow_cross", "Yellow Cross"},
	PhaseYellowCorners:  {"yellow_corners", "Yellow Corners Placed"},
	PhaseYellowOriented: {"yellow_oriented", "Yellow Corners Twisted"},
	PhaseSolved:         {"solved", "Solved"},
}

// String returns a short identifier for the phase, used as a log value.
func (p Phase) String() string {
	if p < 0 || p >= numPhases {
		return "unknown"
	}
	return phaseNames[p].id
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	if p < 0 || p >= numPhases {
		return "Unknown"
	}
	return phaseNames[p].display
}

// Progress records which phases are complete.
type Progress struct {
	WhiteCross     bool
	FirstLayer     bool
	SecondLayer    bool
	YellowCross    bool
	YellowCorners  bool
	YellowOriented bool
	Solved         bool
}

// Next returns the display name of the first incomplete phase, or "Complete".
func (p Progress) Next() string {
	steps := []struct {
		done  bool
		phase Phase
	}{
		{p.WhiteCross, PhaseWhiteCross},
		{p.FirstLayer, PhaseFirstLayer},
		{p.SecondLayer, PhaseSecondLayer},
		{p.YellowCross, PhaseYellowCross},
		{p.YellowCorners, PhaseYellowCorners},
		{p.YellowOriented, PhaseYellowOriented},
		{p.Solved, PhaseSolved},
	}
	for _, s := range steps {
		if !s.done {
			return s.phase.DisplayName()
		}
	}
	return "Complete"
}
