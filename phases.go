package gocubie

// Phase detection for the layer-by-layer method.
// Standard orientation: White on top (U), Green in front (F), Pink on the right (R).

// sideRing lists the four sides around U and D, in U-turn order.
var sideRing = []Side{SideF, SideR, SideB, SideL}

// IsWhiteCrossComplete checks the four U edges show white and each edge's
// other sticker matches the adjacent centre.
func (f Facelets) IsWhiteCrossComplete() bool {
	for _, i := range []int{1, 3, 5, 7} {
		if f[SideU][i] != ColorWhite {
			return false
		}
	}

	// U[1] borders B[1], U[3] borders L[1], U[5] borders R[1], U[7] borders F[1]
	for _, s := range sideRing {
		if f[s][1] != f[s][4] {
			return false
		}
	}

	return true
}

// IsFirstLayerComplete checks the whole U face plus the top row of every side.
func (f Facelets) IsFirstLayerComplete() bool {
	if !f.IsWhiteCrossComplete() {
		return false
	}

	for i := 0; i < 9; i++ {
		if f[SideU][i] != ColorWhite {
			return false
		}
	}

	for _, s := range sideRing {
		center := f[s][4]
		if f[s][0] != center || f[s][2] != center {
			return false
		}
	}

	return true
}

// IsSecondLayerComplete checks the middle-row edges of every side.
func (f Facelets) IsSecondLayerComplete() bool {
	if !f.IsFirstLayerComplete() {
		return false
	}

	for _, s := range sideRing {
		center := f[s][4]
		if f[s][3] != center || f[s][5] != center {
			return false
		}
	}

	return true
}

// IsYellowCrossComplete checks the four D edges show yellow. Their side
// stickers may still be out of place.
func (f Facelets) IsYellowCrossComplete() bool {
	if !f.IsSecondLayerComplete() {
		return false
	}

	for _, i := range []int{1, 3, 5, 7} {
		if f[SideD][i] != ColorYellow {
			return false
		}
	}

	return true
}

// bottomCorners lists the facelets of each D corner and the colours that
// belong there.
var bottomCorners = []struct {
	facelets [3][2]int // {side, index}
	colors   [3]Color
}{
	{[3][2]int{{int(SideF), 8}, {int(SideR), 6}, {int(SideD), 2}}, [3]Color{ColorGreen, ColorPink, ColorYellow}},
	{[3][2]int{{int(SideR), 8}, {int(SideB), 6}, {int(SideD), 8}}, [3]Color{ColorPink, ColorBlue, ColorYellow}},
	{[3][2]int{{int(SideB), 8}, {int(SideL), 6}, {int(SideD), 6}}, [3]Color{ColorBlue, ColorOrange, ColorYellow}},
	{[3][2]int{{int(SideL), 8}, {int(SideF), 6}, {int(SideD), 0}}, [3]Color{ColorOrange, ColorGreen, ColorYellow}},
}

// AreYellowCornersPositioned checks every D corner sits in its own slot,
// ignoring twist.
func (f Facelets) AreYellowCornersPositioned() bool {
	if !f.IsYellowCrossComplete() {
		return false
	}

	for _, corner := range bottomCorners {
		var actual [3]Color
		for i, fl := range corner.facelets {
			actual[i] = f[fl[0]][fl[1]]
		}
		if !sameColors(actual[:], corner.colors[:]) {
			return false
		}
	}

	return true
}

// AreYellowCornersOriented checks the D face is yellow and the bottom row of
// every side matches its centre.
func (f Facelets) AreYellowCornersOriented() bool {
	if !f.AreYellowCornersPositioned() {
		return false
	}

	for i := 0; i < 9; i++ {
		if f[SideD][i] != ColorYellow {
			return false
		}
	}

	for _, s := range sideRing {
		center := f[s][4]
		if f[s][6] != center || f[s][8] != center {
			return false
		}
	}

	return true
}

// sameColors checks if two colour slices contain the same colours in any order.
func sameColors(a, b []Color) bool {
	if len(a) != len(b) {
		return false
	}

	var count [NumColors + 1]int
	for _, c := range a {
		count[min(int(c), NumColors)]++
	}
	for _, c := range b {
		count[min(int(c), NumColors)]--
	}
	for _, v := range count {
		if v != 0 {
			return false
		}
	}
	return true
}

// DetectPhase returns the furthest completed phase.
func (f Facelets) DetectPhase() Phase {
	switch {
	case f.IsSolved():
		return PhaseSolved
	case f.AreYellowCornersOriented():
		return PhaseYellowOriented
	case f.AreYellowCornersPositioned():
		return PhaseYellowCorners
	case f.IsYellowCrossComplete():
		return PhaseYellowCross
	case f.IsSecondLayerComplete():
		return PhaseSecondLayer
	case f.IsFirstLayerComplete():
		return PhaseFirstLayer
	case f.IsWhiteCrossComplete():
		return PhaseWhiteCross
	default:
		return PhaseScrambled
	}
}

// Progress returns which phases are complete.
func (f Facelets) Progress() Progress {
	return Progress{
		WhiteCross:     f.IsWhiteCrossComplete(),
		FirstLayer:     f.IsFirstLayerComplete(),
		SecondLayer:    f.IsSecondLayerComplete(),
		YellowCross:    f.IsYellowCrossComplete(),
		YellowCorners:  f.AreYellowCornersPositioned(),
		YellowOriented: f.AreYellowCornersOriented(),
		Solved:         f.IsSolved(),
	}
}
