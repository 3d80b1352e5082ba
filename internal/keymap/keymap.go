// Package keymap maps keyboard keys to face turns and sticker colours to
// terminal colours. Settings come from an embedded YAML default, optionally
// overridden entry by entry from a user file.
package keymap

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/gocubie"
)

//go:embed default.yaml
var defaultYAML []byte

// Errors
var (
	ErrInvalidBinding = errors.New("keymap: invalid key binding")
	ErrUnknownColor   = errors.New("keymap: unknown colour name")
)

// File is the on-disk YAML layout.
type File struct {
	Keys    map[string]string `yaml:"keys"`
	Palette map[string]string `yaml:"palette"`
}

// Binding is one key and the move it triggers.
type Binding struct {
	Key  string
	Move gocubie.Move
}

// Keymap holds resolved key bindings and palette colours.
type Keymap struct {
	moves   map[string]gocubie.Move
	palette [gocubie.NumColors]string
}

// Default returns the built-in keymap.
func Default() *Keymap {
	k, err := Parse(nil)
	if err != nil {
		panic(fmt.Sprintf("keymap: embedded default is invalid: %v", err))
	}
	return k
}

// Load reads overrides from path on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Keymap, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}
	return Parse(data)
}

// Parse applies the YAML overrides in data on top of the defaults.
func Parse(data []byte) (*Keymap, error) {
	k := &Keymap{moves: make(map[string]gocubie.Move)}

	var def File
	if err := yaml.Unmarshal(defaultYAML, &def); err != nil {
		return nil, fmt.Errorf("parsing default keymap: %w", err)
	}
	if err := k.merge(def); err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return k, nil
	}

	var user File
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("parsing keymap: %w", err)
	}
	if err := k.merge(user); err != nil {
		return nil, err
	}
	return k, nil
}

// merge applies f's entries. An empty move string removes a binding.
func (k *Keymap) merge(f File) error {
	for key, notation := range f.Keys {
		if notation == "" {
			delete(k.moves, key)
			continue
		}
		m, err := gocubie.ParseMove(notation)
		if err != nil {
			return fmt.Errorf("%w: %q -> %q", ErrInvalidBinding, key, notation)
		}
		k.moves[key] = m
	}

	for name, color := range f.Palette {
		c, ok := gocubie.ParseColor(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownColor, name)
		}
		k.palette[c] = color
	}
	return nil
}

// Lookup returns the move bound to key.
func (k *Keymap) Lookup(key string) (gocubie.Move, bool) {
	m, ok := k.moves[key]
	return m, ok
}

// Color returns the terminal colour for a sticker colour.
func (k *Keymap) Color(c gocubie.Color) string {
	if int(c) >= len(k.palette) {
		return ""
	}
	return k.palette[c]
}

// Bindings returns all bindings sorted by key.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(k.moves))
	for key, m := range k.moves {
		out = append(out, Binding{Key: key, Move: m})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Marshal renders the effective keymap as YAML.
func (k *Keymap) Marshal() ([]byte, error) {
	f := File{
		Keys:    make(map[string]string, len(k.moves)),
		Palette: make(map[string]string, len(k.palette)),
	}
	for key, m := range k.moves {
		f.Keys[key] = m.Notation()
	}
	for c, color := range k.palette {
		f.Palette[gocubie.Color(c).Name()] = color
	}
	return yaml.Marshal(f)
}
