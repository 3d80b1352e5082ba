// Package render draws cube nets for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/gocubie"
	"github.com/SeamusWaldron/gocubie/internal/keymap"
)

// Renderer draws facelet nets either as colour blocks or as plain letters.
type Renderer struct {
	color    bool
	stickers [gocubie.NumColors]lipgloss.Style
}

// New returns a renderer using the palette from k. With color false the
// output is the plain letter net.
func New(k *keymap.Keymap, color bool) *Renderer {
	r := &Renderer{color: color}
	for c := gocubie.Color(0); c < gocubie.NumColors; c++ {
		r.stickers[c] = lipgloss.NewStyle().
			Background(lipgloss.Color(k.Color(c))).
			Foreground(lipgloss.Color("0"))
	}
	return r
}

// Sticker renders one facelet.
func (r *Renderer) Sticker(c gocubie.Color) string {
	if !r.color || int(c) >= gocubie.NumColors {
		return c.String()
	}
	return r.stickers[c].Render("  ")
}

// Net renders the unfolded cube:
//
//	  U
//	L F R B
//	  D
func (r *Renderer) Net(f gocubie.Facelets) string {
	if !r.color {
		return f.String()
	}

	indent := strings.Repeat(" ", 7)
	var b strings.Builder

	row := func(s gocubie.Side, n int) string {
		var line strings.Builder
		for col := 0; col < 3; col++ {
			line.WriteString(r.Sticker(f[s][n*3+col]))
		}
		return line.String()
	}

	for n := 0; n < 3; n++ {
		b.WriteString(indent + row(gocubie.SideU, n) + "\n")
	}
	for n := 0; n < 3; n++ {
		parts := make([]string, 0, 4)
		for _, s := range []gocubie.Side{gocubie.SideL, gocubie.SideF, gocubie.SideR, gocubie.SideB} {
			parts = append(parts, row(s, n))
		}
		b.WriteString(strings.Join(parts, " ") + "\n")
	}
	for n := 0; n < 3; n++ {
		b.WriteString(indent + row(gocubie.SideD, n) + "\n")
	}

	return b.String()
}

// Legend renders each colour next to its name.
func (r *Renderer) Legend() string {
	parts := make([]string, 0, gocubie.NumColors)
	for c := gocubie.Color(0); c < gocubie.NumColors; c++ {
		parts = append(parts, r.Sticker(c)+" "+c.Name())
	}
	return strings.Join(parts, "  ")
}
