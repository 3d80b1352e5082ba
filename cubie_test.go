package gocubie

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// allOrientations returns the 24 valid orientations.
func allOrientations() []Orientation {
	var out []Orientation
	for _, w := range AllFaces() {
		for _, b := range AllFaces() {
			if w.Axis != b.Axis {
				out = append(out, Orientation{White: w, Blue: b})
			}
		}
	}
	return out
}

func TestAllOrientations_Count(t *testing.T) {
	assert.Len(t, allOrientations(), 24)
}

func TestCubieRotate_OutsideLayerUnchanged(t *testing.T) {
	c := NewCubie(Pos{1, 0, -1})
	assert.Equal(t, c, c.Rotate(Yellow(), true))
	assert.Equal(t, c, c.Rotate(Blue(), false))
	assert.Equal(t, c, c.Rotate(Orange(), true))
}

func TestCubieRotate_Order4(t *testing.T) {
	for i := 0; i < NumCubies; i++ {
		for _, o := range allOrientations() {
			c := Cubie{Pos: HomePos(i), Rot: o}
			for _, face := range AllFaces() {
				for _, cw := range directions {
					got := c
					for n := 0; n < 4; n++ {
						got = got.Rotate(face, cw)
					}
					assert.Equal(t, c, got, "%v by %s cw=%v", c, face, cw)
				}
			}
		}
	}
}

func TestCubieRotate_MutualInverse(t *testing.T) {
	for i := 0; i < NumCubies; i++ {
		c := NewCubie(HomePos(i))
		for _, face := range AllFaces() {
			assert.Equal(t, c, c.Rotate(face, true).Rotate(face, false))
			assert.Equal(t, c.Rot.Rotate(face, true), c.Rot.Rotate(face.Invert(), false))
		}
	}
}

func TestCubieRotate_OppositeLayerUntouched(t *testing.T) {
	for i := 0; i < NumCubies; i++ {
		c := NewCubie(HomePos(i))
		for _, face := range AllFaces() {
			if !c.InLayer(face) {
				continue
			}
			for _, cw := range directions {
				assert.Equal(t, c, c.Rotate(face.Invert(), cw), "%v by %s", c, face.Invert())
			}
		}
	}
}

func TestCubieRotate_KeepsKindAndValidity(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < NumCubies; i++ {
		c := NewCubie(HomePos(i))
		kind := c.Kind()
		for _, m := range Scramble(rng, 50) {
			c = c.Rotate(m.Face, m.Turn == CW)
			assert.Equal(t, kind, c.Kind())
			assert.True(t, c.Rot.Valid(), "invalid orientation %v", c.Rot)
		}
	}
}

func TestCubieColor_Bijection(t *testing.T) {
	for _, o := range allOrientations() {
		c := Cubie{Rot: o}
		var seen [NumColors]bool
		for _, f := range AllFaces() {
			col := c.Color(f)
			if !assert.Less(t, int(col), NumColors) {
				continue
			}
			assert.False(t, seen[col], "colour %s repeated for %+v", col, o)
			seen[col] = true
		}
	}
}

func TestCubieColor_Solved(t *testing.T) {
	c := NewCubie(Pos{})
	assert.Equal(t, ColorWhite, c.Color(White()))
	assert.Equal(t, ColorYellow, c.Color(Yellow()))
	assert.Equal(t, ColorBlue, c.Color(Blue()))
	assert.Equal(t, ColorGreen, c.Color(Green()))
	assert.Equal(t, ColorPink, c.Color(Pink()))
	assert.Equal(t, ColorOrange, c.Color(Orange()))
}

// A sticker keeps its colour as it is carried round by a turn.
func TestCubieColor_TransportedWithTurn(t *testing.T) {
	for _, o := range allOrientations() {
		for _, face := range AllFaces() {
			for _, cw := range directions {
				c := Cubie{Pos: face.Vector(), Rot: o}
				moved := c.Rotate(face, cw)
				for _, f := range AllFaces() {
					assert.Equal(t, c.Color(f), moved.Color(f.Rotate(face, cw)),
						"%+v turned by %s cw=%v, sticker %s", o, face, cw, f)
				}
			}
		}
	}
}

func TestCubie_Kind(t *testing.T) {
	assert.Equal(t, KindCore, NewCubie(Pos{0, 0, 0}).Kind())
	assert.Equal(t, KindCenter, NewCubie(Pos{0, 1, 0}).Kind())
	assert.Equal(t, KindEdge, NewCubie(Pos{1, 0, -1}).Kind())
	assert.Equal(t, KindCorner, NewCubie(Pos{-1, 1, -1}).Kind())
	assert.Len(t, NewCubie(Pos{-1, 1, -1}).Faces(), 3)
}
