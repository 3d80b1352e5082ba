package gocubie

import "strings"

// normalizeTurn folds a quarter-turn count into a Turn.
// -3 -> CW, -2 -> Double, -1 -> CCW, 1 -> CW, 2 -> Double, 3 -> CCW.
// ok is false for a whole number of revolutions.
func normalizeTurn(quarters int) (turn Turn, ok bool) {
	switch ((quarters % 4) + 4) % 4 {
	case 1:
		return CW, true
	case 2:
		return Double, true
	case 3:
		return CCW, true
	}
	return 0, false
}

// SimplifyMoves merges runs of turns of the same face and drops turns that
// cancel out. "R R" becomes "R2" and "R U U' R'" becomes nothing. A merged
// move keeps the time of the last move in its run.
func SimplifyMoves(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if n := len(out); n > 0 && out[n-1].Face == m.Face {
			turn, ok := normalizeTurn(int(out[n-1].Turn) + int(m.Turn))
			if !ok {
				out = out[:n-1]
				continue
			}
			out[n-1].Turn = turn
			out[n-1].Time = m.Time
			continue
		}
		out = append(out, m)
	}
	return out
}

// Descriptions of each face turn as seen holding the cube with White on top
// and Green in front.
var describeMoves = map[string][3]string{
	"R": {"R up", "R down", "R up x 2"},
	"L": {"L down", "L up", "L down x 2"},
	"U": {"T rotate right", "T rotate left", "T rotate right x 2"},
	"D": {"B rotate right", "B rotate left", "B rotate right x 2"},
	"F": {"F rotate clockwise", "F rotate anti-clockwise", "F rotate x 2"},
	"B": {"Back rotate clockwise", "Back rotate anti-clockwise", "Back rotate x 2"},
}

// Describe returns the move in plain words, e.g. "R up" for R.
func (m Move) Describe() string {
	phrases, ok := describeMoves[m.Face.Letter()]
	if !ok {
		return m.Notation()
	}
	switch m.Turn {
	case CW:
		return phrases[0]
	case CCW:
		return phrases[1]
	case Double:
		return phrases[2]
	}
	return m.Notation()
}

// DescribeMoves describes a sequence as a comma-separated list.
func DescribeMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Describe()
	}
	return strings.Join(parts, ", ")
}
