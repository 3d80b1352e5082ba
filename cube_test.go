package gocubie

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
		t.Log(c.String())
	}
}

func TestHomePos_CoversLattice(t *testing.T) {
	seen := make(map[Pos]bool)
	for i := 0; i < NumCubies; i++ {
		p := HomePos(i)
		for _, v := range p {
			if v < -1 || v > 1 {
				t.Fatalf("HomePos(%d) = %v out of range", i, p)
			}
		}
		seen[p] = true
	}
	if len(seen) != NumCubies {
		t.Errorf("HomePos covers %d positions, want %d", len(seen), NumCubies)
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, face := range AllFaces() {
		c := NewCube()
		c.Rotate(face, true)
		if c.IsSolved() {
			t.Errorf("Cube should not be solved after turning %s", face.Letter())
		}
	}
}

func TestTurnThenInverse_ReturnsToNewCube(t *testing.T) {
	for _, face := range AllFaces() {
		c := NewCube()
		c.Rotate(face, true)
		c.Rotate(face, false)
		if !c.Equal(NewCube()) {
			t.Errorf("%s then %s' should equal a new cube", face.Letter(), face.Letter())
			t.Log(c.String())
		}
	}
}

func TestTurn_PermutesPositions(t *testing.T) {
	for _, face := range AllFaces() {
		for _, cw := range directions {
			c := NewCube()
			c.Rotate(face, cw)

			seen := make(map[Pos]bool)
			for _, cb := range c.Cubies() {
				for _, v := range cb.Pos {
					if v < -1 || v > 1 {
						t.Fatalf("%s cw=%v: position %v out of range", face.Letter(), cw, cb.Pos)
					}
				}
				if seen[cb.Pos] {
					t.Errorf("%s cw=%v: duplicate position %v", face.Letter(), cw, cb.Pos)
				}
				seen[cb.Pos] = true
			}
		}
	}
}

func TestTurn_MovesOnlyOneLayer(t *testing.T) {
	for _, face := range AllFaces() {
		c := NewCube()
		c.Rotate(face, true)

		moved := 0
		for i, cb := range c.Cubies() {
			if cb != NewCubie(HomePos(i)) {
				moved++
			}
		}
		// Eight pieces change place and the centre twists.
		if moved != 9 {
			t.Errorf("%s moved %d cubies, want 9", face.Letter(), moved)
		}
	}
}

func TestFourQuarterTurns_AllFaces(t *testing.T) {
	for _, face := range AllFaces() {
		for _, cw := range directions {
			c := NewCube()
			for i := 0; i < 4; i++ {
				c.Rotate(face, cw)
			}
			if !c.Equal(NewCube()) {
				t.Errorf("%s x 4 (cw=%v) should return to solved", face.Letter(), cw)
				t.Log(c.String())
			}
		}
	}
}

func TestDoubleDouble_ReturnsToSolved(t *testing.T) {
	for _, m := range []Move{R2, L2, U2, D2, F2, B2} {
		c := NewCube()
		c.Apply(m, m)
		if !c.Equal(NewCube()) {
			t.Errorf("%s %s should return to solved", m, m)
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	for i := 0; i < 6; i++ {
		c.Apply(SexyMove...)
		if i < 5 && c.IsSolved() {
			t.Errorf("Cube should not be solved after %d sexy moves", i+1)
		}
	}
	if !c.Equal(NewCube()) {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestTPerm_Twice_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	c.Apply(TPerm...)
	if c.IsSolved() {
		t.Error("T-perm should change the cube")
	}
	c.Apply(TPerm...)
	if !c.IsSolved() {
		t.Error("T-perm x 2 should return to solved")
		t.Log(c.String())
	}
}

func TestSuperflip(t *testing.T) {
	c := NewCube()
	c.Apply(Superflip...)

	for _, cb := range c.Cubies() {
		home, _ := NewCube().CubieAt(cb.Pos)
		switch cb.Kind() {
		case KindCorner:
			if cb != home {
				t.Errorf("Superflip moved corner %v", cb)
			}
		case KindEdge:
			if cb.Rot == home.Rot {
				t.Errorf("Superflip left edge %v unflipped", cb)
			}
		}
	}

	c.Apply(Superflip...)
	if !c.IsSolved() {
		t.Error("Superflip x 2 should return to solved")
		t.Log(c.String())
	}
}

func TestScrambleAndReverse(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	scramble := Scramble(rng, 25)

	c := NewCube()
	c.Apply(scramble...)
	if c.IsSolved() {
		t.Error("Cube should be scrambled after moves")
	}
	t.Logf("After scramble %s: phase=%s", FormatMoves(scramble), c.Phase())

	c.Apply(InverseMoves(scramble)...)
	if !c.Equal(NewCube()) {
		t.Error("Cube should be solved after reversing scramble")
		t.Log(c.String())
	}
}

func TestFacelets_ColourCounts(t *testing.T) {
	c := NewCube()
	c.Apply(Scramble(rand.New(rand.NewPCG(3, 4)), 40)...)

	counts := c.Facelets().Counts()
	for col, n := range counts {
		if n != 9 {
			t.Errorf("colour %s appears %d times, want 9", Color(col), n)
		}
	}
}

func TestFacelets_Solved(t *testing.T) {
	f := NewCube().Facelets()
	for s := SideU; s <= SideL; s++ {
		want := s.Face().SolvedColor()
		for i, col := range f[s] {
			if col != want {
				t.Errorf("side %s facelet %d = %s, want %s", s, i, col, want)
			}
		}
	}
}

func TestR_MovesFrontColumnUp(t *testing.T) {
	c := NewCube()
	c.ApplyMove(R)
	f := c.Facelets()

	for _, i := range []int{2, 5, 8} {
		if f[SideU][i] != ColorGreen {
			t.Errorf("after R, U[%d] = %s, want G", i, f[SideU][i])
		}
	}
	for _, i := range []int{0, 3, 6} {
		if f[SideU][i] != ColorWhite {
			t.Errorf("after R, U[%d] = %s, want W", i, f[SideU][i])
		}
	}
}

func TestU_MovesFrontRowLeft(t *testing.T) {
	c := NewCube()
	c.ApplyMove(U)
	f := c.Facelets()

	for i := 0; i < 3; i++ {
		if f[SideL][i] != ColorGreen {
			t.Errorf("after U, L[%d] = %s, want G", i, f[SideL][i])
		}
		if f[SideF][i] != ColorPink {
			t.Errorf("after U, F[%d] = %s, want P", i, f[SideF][i])
		}
	}
}

func TestApplyNotation(t *testing.T) {
	c := NewCube()
	if err := c.ApplyNotation("R U R' U'"); err != nil {
		t.Fatalf("ApplyNotation: %v", err)
	}

	want := NewCube()
	want.Apply(SexyMove...)
	if !c.Equal(want) {
		t.Error("ApplyNotation should match SexyMove")
	}

	before := c.Clone()
	err := c.ApplyNotation("R X U")
	if !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("expected ErrInvalidNotation, got %v", err)
	}
	if !c.Equal(before) {
		t.Error("invalid notation should leave the cube untouched")
	}
}

func TestClone_IsIndependent(t *testing.T) {
	c := NewCube()
	clone := c.Clone()
	clone.ApplyMove(F)

	if !c.IsSolved() {
		t.Error("turning a clone should not affect the original")
	}
	if clone.Equal(c) {
		t.Error("clone should differ after a move")
	}
}

func TestCubieAt(t *testing.T) {
	c := NewCube()
	c.ApplyMove(U)

	for _, p := range []Pos{{1, 1, 1}, {-1, 0, 0}, {0, 0, 0}} {
		cb, ok := c.CubieAt(p)
		if !ok || cb.Pos != p {
			t.Errorf("CubieAt(%v) = %v, %v", p, cb, ok)
		}
	}
	if _, ok := c.CubieAt(Pos{2, 0, 0}); ok {
		t.Error("CubieAt should fail off the lattice")
	}
}
