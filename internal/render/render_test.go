package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SeamusWaldron/gocubie"
	"github.com/SeamusWaldron/gocubie/internal/keymap"
)

func TestNet_Plain(t *testing.T) {
	c := gocubie.NewCube()
	c.Apply(gocubie.SexyMove...)

	r := New(keymap.Default(), false)
	assert.Equal(t, c.Facelets().String(), r.Net(c.Facelets()))
}

func TestNet_PlainSolvedLayout(t *testing.T) {
	r := New(keymap.Default(), false)
	lines := strings.Split(strings.TrimRight(r.Net(gocubie.NewCube().Facelets()), "\n"), "\n")

	assert.Len(t, lines, 9)
	assert.Equal(t, "      W W W ", lines[0])
	assert.Equal(t, "O O O G G G P P P B B B ", lines[3])
	assert.Equal(t, "      Y Y Y ", lines[8])
}

func TestNet_Color(t *testing.T) {
	r := New(keymap.Default(), true)
	out := r.Net(gocubie.NewCube().Facelets())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 9)
	for _, l := range lines {
		assert.NotContains(t, l, "W", "colour mode draws blocks, not letters")
	}
}

func TestSticker(t *testing.T) {
	plain := New(keymap.Default(), false)
	assert.Equal(t, "G", plain.Sticker(gocubie.ColorGreen))

	colored := New(keymap.Default(), true)
	assert.Contains(t, colored.Sticker(gocubie.ColorGreen), "  ")
}

func TestLegend(t *testing.T) {
	l := New(keymap.Default(), false).Legend()
	for c := gocubie.Color(0); c < gocubie.NumColors; c++ {
		assert.Contains(t, l, c.Name())
	}
}
