package gocubie

import "strings"

// Side indexes the faces of a facelet net.
type Side int

const (
	SideU Side = 0 // Up (White)
	SideD Side = 1 // Down (Yellow)
	SideF Side = 2 // Front (Green)
	SideB Side = 3 // Back (Blue)
	SideR Side = 4 // Right (Pink)
	SideL Side = 5 // Left (Orange)
)

func (s Side) String() string {
	return s.Face().Letter()
}

// Face returns the cube face drawn on this side of the net.
func (s Side) Face() Face {
	return sideLayouts[s].normal
}

// sideLayout fixes how a face is viewed when drawn: from outside, with up
// pointing to the top of the 3x3 grid and right to its right-hand column.
type sideLayout struct {
	normal, up, right Face
}

var sideLayouts = [6]sideLayout{
	SideU: {normal: White(), up: Blue(), right: Pink()},
	SideD: {normal: Yellow(), up: Green(), right: Pink()},
	SideF: {normal: Green(), up: White(), right: Pink()},
	SideB: {normal: Blue(), up: White(), right: Orange()},
	SideR: {normal: Pink(), up: White(), right: Blue()},
	SideL: {normal: Orange(), up: White(), right: Green()},
}

// FaceletPos returns the position of the cubie carrying facelet i of side s.
// Facelets are indexed row by row:
//
//	0 1 2
//	3 4 5
//	6 7 8
func FaceletPos(s Side, i int) Pos {
	l := sideLayouts[s]
	row, col := int8(i/3), int8(i%3)
	n, up, right := l.normal.Vector(), l.up.Vector(), l.right.Vector()

	var p Pos
	for k := range p {
		p[k] = n[k] + right[k]*(col-1) - up[k]*(row-1)
	}
	return p
}

// Facelets is the 54-sticker view of a cube: Facelets[side][index] = colour.
type Facelets [6][9]Color

// Facelets projects the cubie colours onto a facelet net.
func (c *Cube) Facelets() Facelets {
	var bySlot [3][3][3]Cubie
	for _, cb := range c.cubies {
		bySlot[cb.Pos[0]+1][cb.Pos[1]+1][cb.Pos[2]+1] = cb
	}

	var f Facelets
	for s := SideU; s <= SideL; s++ {
		face := s.Face()
		for i := 0; i < 9; i++ {
			p := FaceletPos(s, i)
			f[s][i] = bySlot[p[0]+1][p[1]+1][p[2]+1].Color(face)
		}
	}
	return f
}

// IsSolved returns true if every side shows a single colour.
func (f Facelets) IsSolved() bool {
	for s := range f {
		for i := 0; i < 9; i++ {
			if f[s][i] != f[s][4] {
				return false
			}
		}
	}
	return true
}

// Counts returns how many stickers of each colour the net shows.
func (f Facelets) Counts() [NumColors]int {
	var n [NumColors]int
	for s := range f {
		for _, c := range f[s] {
			if int(c) < NumColors {
				n[c]++
			}
		}
	}
	return n
}

// String returns a text representation of the net:
//
//	      U
//	L F R B
//	      D
func (f Facelets) String() string {
	var b strings.Builder

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(f[SideU][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		for _, s := range []Side{SideL, SideF, SideR, SideB} {
			for col := 0; col < 3; col++ {
				b.WriteString(f[s][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(f[SideD][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
