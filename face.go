package gocubie

// Axis identifies one of the three lattice coordinates: 0 (x), 1 (y) or 2 (z).
type Axis uint8

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

// next returns the axis n steps ahead in the cyclic order x -> y -> z -> x.
func (a Axis) next(n uint8) Axis {
	return Axis((uint8(a) + n) % 3)
}

// thirdAxes[a][b] is the axis that is neither a nor b.
// Entries where a == b are never read.
var thirdAxes = [3][3]Axis{
	{AxisX, AxisZ, AxisY},
	{AxisZ, AxisY, AxisX},
	{AxisY, AxisX, AxisZ},
}

// thirdAxis returns the axis orthogonal to both a and b. a and b must differ.
func thirdAxis(a, b Axis) Axis {
	return thirdAxes[a][b]
}

// Polarity selects one half of an axis.
type Polarity bool

const (
	Positive Polarity = true
	Negative Polarity = false
)

// Sin returns the signed unit of the polarity: +1 for Positive, -1 for Negative.
// It doubles as a coordinate value and as a rotation direction multiplier.
func (p Polarity) Sin() int8 {
	if p {
		return 1
	}
	return -1
}

// Face is one of the six outward directions of the cube.
type Face struct {
	Axis     Axis
	Polarity Polarity
}

// Named faces, in the colours they show on a solved cube.
func White() Face  { return Face{Axis: AxisX, Polarity: Positive} }
func Yellow() Face { return Face{Axis: AxisX, Polarity: Negative} }
func Blue() Face   { return Face{Axis: AxisY, Polarity: Positive} }
func Green() Face  { return Face{Axis: AxisY, Polarity: Negative} }
func Orange() Face { return Face{Axis: AxisZ, Polarity: Positive} }
func Pink() Face   { return Face{Axis: AxisZ, Polarity: Negative} }

// AllFaces returns the six faces.
func AllFaces() [6]Face {
	return [6]Face{White(), Blue(), Orange(), Green(), Yellow(), Pink()}
}

// Invert returns the opposite face on the same axis.
func (f Face) Invert() Face {
	return Face{Axis: f.Axis, Polarity: !f.Polarity}
}

// Rotate transports the direction f through a quarter turn of the layer under by.
// Clockwise is as seen looking at by from outside the cube. A counter-clockwise
// turn of a face is the clockwise turn of its opposite face.
//
// Directions along by's axis are fixed points.
func (f Face) Rotate(by Face, clockwise bool) Face {
	if !clockwise {
		return f.Rotate(by.Invert(), true)
	}
	if f.Axis == by.Axis {
		return f
	}

	pol := f.Polarity
	if by.Axis == f.Axis.next(2) {
		pol = !pol
	}
	// The table above describes turns of positive faces; a negative face turns
	// the other way round the same axis.
	if by.Polarity == Negative {
		pol = !pol
	}

	return Face{Axis: thirdAxis(f.Axis, by.Axis), Polarity: pol}
}

// Vector returns the unit lattice vector pointing out of the face.
func (f Face) Vector() Pos {
	var v Pos
	v[f.Axis] = f.Polarity.Sin()
	return v
}

// Letter returns the standard notation letter for the face:
// U (white), D (yellow), F (green), B (blue), R (pink), L (orange).
func (f Face) Letter() string {
	switch f {
	case White():
		return "U"
	case Yellow():
		return "D"
	case Green():
		return "F"
	case Blue():
		return "B"
	case Pink():
		return "R"
	case Orange():
		return "L"
	default:
		return "?"
	}
}

// String returns the colour name of the face on a solved cube.
func (f Face) String() string {
	return f.SolvedColor().Name()
}

// SolvedColor returns the colour this face shows when the cube is solved.
func (f Face) SolvedColor() Color {
	return NewCubie(Pos{}).Color(f)
}

// ParseFace parses a notation letter (case-insensitive) into a Face.
func ParseFace(letter byte) (Face, error) {
	switch letter {
	case 'U', 'u':
		return White(), nil
	case 'D', 'd':
		return Yellow(), nil
	case 'F', 'f':
		return Green(), nil
	case 'B', 'b':
		return Blue(), nil
	case 'R', 'r':
		return Pink(), nil
	case 'L', 'l':
		return Orange(), nil
	default:
		return Face{}, ErrInvalidFace
	}
}
