package gocubie

// NumCubies is the number of cubies in a 3x3x3 cube, including the hidden core.
const NumCubies = 27

// Cube is a 3x3x3 cube held as 27 cubies. The slot a cubie occupies in the
// collection never changes; slot i starts at the position returned by HomePos(i).
//
// Cube is a value type: copying a Cube copies every cubie.
type Cube struct {
	cubies [NumCubies]Cubie
}

// NewCube creates a solved cube: white on top (U), green in front (F).
func NewCube() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// HomePos returns the solved position of cubie slot i.
// Slots enumerate x, then y, then z, each over -1, 0, 1.
func HomePos(i int) Pos {
	return Pos{int8(i/9) - 1, int8(i/3%3) - 1, int8(i%3) - 1}
}

// Reset returns the cube to the solved state.
func (c *Cube) Reset() {
	for i := range c.cubies {
		c.cubies[i] = NewCubie(HomePos(i))
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Rotate applies one quarter turn of face to the whole cube. Every cubie
// decides for itself whether it is in the turning layer.
func (c *Cube) Rotate(face Face, clockwise bool) {
	for i := range c.cubies {
		c.cubies[i] = c.cubies[i].Rotate(face, clockwise)
	}
}

// Cubies returns a copy of all 27 cubies in slot order.
func (c *Cube) Cubies() []Cubie {
	out := make([]Cubie, NumCubies)
	copy(out, c.cubies[:])
	return out
}

// Cubie returns the cubie in slot i.
func (c *Cube) Cubie(i int) Cubie {
	return c.cubies[i]
}

// CubieAt returns the cubie currently at pos.
func (c *Cube) CubieAt(pos Pos) (Cubie, bool) {
	for _, cb := range c.cubies {
		if cb.Pos == pos {
			return cb, true
		}
	}
	return Cubie{}, false
}

// Equal reports whether both cubes hold identical cubies in every slot.
// Unlike IsSolved it distinguishes twisted centres.
func (c *Cube) Equal(other *Cube) bool {
	return c.cubies == other.cubies
}

// IsSolved returns true if every face shows a single colour.
func (c *Cube) IsSolved() bool {
	return c.Facelets().IsSolved()
}

// ApplyMove applies a Move to the cube.
func (c *Cube) ApplyMove(m Move) {
	switch m.Turn {
	case CW:
		c.Rotate(m.Face, true)
	case CCW:
		c.Rotate(m.Face, false)
	case Double:
		c.Rotate(m.Face, true)
		c.Rotate(m.Face, true)
	}
}

// Apply applies moves in order.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// ApplyNotation parses a space-separated move sequence and applies it.
// The cube is left untouched if any token is invalid.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}

// Phase returns the layer-by-layer solving phase of the cube.
func (c *Cube) Phase() Phase {
	return c.Facelets().DetectPhase()
}

// String returns the unfolded net of the cube.
func (c *Cube) String() string {
	return c.Facelets().String()
}
