package keymap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocubie"
)

func TestDefault(t *testing.T) {
	k := Default()

	tests := []struct {
		key  string
		want gocubie.Move
	}{
		{"u", gocubie.U},
		{"U", gocubie.UPrime},
		{"r", gocubie.R},
		{"R", gocubie.RPrime},
		{"f", gocubie.F},
		{"B", gocubie.BPrime},
	}
	for _, tt := range tests {
		got, ok := k.Lookup(tt.key)
		require.True(t, ok, tt.key)
		assert.Equal(t, tt.want, got, tt.key)
	}

	_, ok := k.Lookup("x")
	assert.False(t, ok)
	assert.Len(t, k.Bindings(), 12)

	for c := gocubie.Color(0); c < gocubie.NumColors; c++ {
		assert.NotEmpty(t, k.Color(c), c.Name())
	}
}

func TestParse_Overrides(t *testing.T) {
	k, err := Parse([]byte(`
keys:
  j: "U"
  u: ""
  x: "R2"
palette:
  pink: "#FF0000"
`))
	require.NoError(t, err)

	m, ok := k.Lookup("j")
	require.True(t, ok)
	assert.Equal(t, gocubie.U, m)

	_, ok = k.Lookup("u")
	assert.False(t, ok, "empty binding removes the default")

	m, ok = k.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, gocubie.R2, m)

	m, ok = k.Lookup("r")
	require.True(t, ok, "untouched defaults survive")
	assert.Equal(t, gocubie.R, m)

	assert.Equal(t, "#FF0000", k.Color(gocubie.ColorPink))
	assert.Equal(t, Default().Color(gocubie.ColorWhite), k.Color(gocubie.ColorWhite))
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("keys:\n  q: \"Q'\"\n"))
	assert.ErrorIs(t, err, ErrInvalidBinding)

	_, err = Parse([]byte("palette:\n  red: \"#FF0000\"\n"))
	assert.ErrorIs(t, err, ErrUnknownColor)

	_, err = Parse([]byte("keys: [1, 2"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	k, err := Load("")
	require.NoError(t, err)
	assert.Len(t, k.Bindings(), 12)

	path := filepath.Join(t.TempDir(), "keys.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keys:\n  h: \"L\"\n"), 0o644))

	k, err = Load(path)
	require.NoError(t, err)
	m, ok := k.Lookup("h")
	require.True(t, ok)
	assert.Equal(t, gocubie.L, m)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	k := Default()
	data, err := k.Marshal()
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, k.Bindings(), again.Bindings())
	for c := gocubie.Color(0); c < gocubie.NumColors; c++ {
		assert.Equal(t, k.Color(c), again.Color(c))
	}
}
