package gocubie

import "fmt"

// Pos is a lattice position with every component in {-1, 0, 1}.
type Pos [3]int8

// Kind classifies a cubie by how many of its coordinates are non-zero.
type Kind int

const (
	KindCore   Kind = 0 // hidden centre of the cube
	KindCenter Kind = 1 // one sticker
	KindEdge   Kind = 2 // two stickers
	KindCorner Kind = 3 // three stickers
)

func (k Kind) String() string {
	switch k {
	case KindCore:
		return "core"
	case KindCenter:
		return "center"
	case KindEdge:
		return "edge"
	case KindCorner:
		return "corner"
	default:
		return "unknown"
	}
}

// Cubie is one of the 27 unit cubes: where it is and how it is turned.
type Cubie struct {
	Pos Pos
	Rot Orientation
}

// NewCubie returns a cubie at pos in the solved orientation.
func NewCubie(pos Pos) Cubie {
	return Cubie{Pos: pos, Rot: SolvedOrientation()}
}

// InLayer reports whether the cubie turns with face.
func (c Cubie) InLayer(face Face) bool {
	return c.Pos[face.Axis] == face.Polarity.Sin()
}

// Rotate applies a quarter turn of face. Cubies outside the turning layer are
// returned unchanged.
func (c Cubie) Rotate(face Face, clockwise bool) Cubie {
	if !c.InLayer(face) {
		return c
	}

	s := turnSign(face, clockwise)
	x := face.Axis.next(1)
	y := face.Axis.next(2)

	pos := c.Pos
	pos[x] = -c.Pos[y] * s
	pos[y] = c.Pos[x] * s

	return Cubie{Pos: pos, Rot: c.Rot.Rotate(face, clockwise)}
}

// turnSign is +1 when the turn rotates the (axis+1, axis+2) plane from
// axis+1 towards axis+2, and -1 otherwise. A clockwise turn seen from outside
// a positive face goes the negative way round its axis. This is the same
// sense Face.Rotate gives the orientation, so stickers move with the cubie.
func turnSign(face Face, clockwise bool) int8 {
	return -face.Polarity.Sin() * Polarity(clockwise).Sin()
}

// Color returns the colour of the sticker currently facing face.
func (c Cubie) Color(face Face) Color {
	switch {
	case face == c.Rot.White:
		return ColorWhite
	case face.Axis == c.Rot.White.Axis:
		return ColorYellow
	case face == c.Rot.Blue:
		return ColorBlue
	case face.Axis == c.Rot.Blue.Axis:
		return ColorGreen
	case face == c.Rot.Third():
		return ColorPink
	default:
		return ColorOrange
	}
}

// Kind returns the piece type implied by the current position.
func (c Cubie) Kind() Kind {
	n := 0
	for _, v := range c.Pos {
		if v != 0 {
			n++
		}
	}
	return Kind(n)
}

// Faces returns the outward directions on which this cubie shows a sticker.
func (c Cubie) Faces() []Face {
	faces := make([]Face, 0, 3)
	for _, f := range AllFaces() {
		if c.InLayer(f) {
			faces = append(faces, f)
		}
	}
	return faces
}

func (c Cubie) String() string {
	return fmt.Sprintf("%s(%d,%d,%d) white=%s blue=%s",
		c.Kind(), c.Pos[0], c.Pos[1], c.Pos[2], c.Rot.White.Letter(), c.Rot.Blue.Letter())
}
