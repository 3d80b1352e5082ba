// Package verify checks the turn algebra against its laws, both exhaustively
// over the six faces and over random turn sequences run in parallel.
package verify

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/SeamusWaldron/gocubie"
)

// Config controls a sweep.
type Config struct {
	Samples int    // Random sequences to check
	Depth   int    // Turns per sequence
	Workers int    // Concurrent checkers; <= 0 means GOMAXPROCS
	Seed    uint64 // Base seed; sample i uses (Seed, i)

	Logger zerolog.Logger
}

// Violation is one failed law.
type Violation struct {
	Law      string
	Sample   int // -1 for the face table checks
	Sequence []gocubie.Move
	Detail   string
}

func (v Violation) String() string {
	if v.Sample < 0 {
		return fmt.Sprintf("%s: %s", v.Law, v.Detail)
	}
	return fmt.Sprintf("%s (sample %d, %s): %s", v.Law, v.Sample, gocubie.FormatMoves(v.Sequence), v.Detail)
}

// Report summarises a sweep.
type Report struct {
	Samples    int
	Checks     int
	Violations []Violation
}

// OK reports whether every law held.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// Run checks the face laws and then cfg.Samples random sequences.
// It stops early with ctx's error if ctx is cancelled.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	report := &Report{Samples: cfg.Samples}
	faceViolations, faceChecks := CheckFaces()
	report.Violations = append(report.Violations, faceViolations...)
	report.Checks += faceChecks

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < cfg.Samples; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(cfg.Seed, uint64(i)))
			seq := gocubie.Scramble(rng, cfg.Depth)
			vs, n := CheckSequence(seq, rng)

			for j := range vs {
				vs[j].Sample = i
			}

			mu.Lock()
			report.Violations = append(report.Violations, vs...)
			report.Checks += n
			mu.Unlock()

			if len(vs) > 0 {
				cfg.Logger.Warn().Int("sample", i).Int("violations", len(vs)).Msg("law violated")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(report.Violations, func(a, b int) bool {
		return report.Violations[a].Sample < report.Violations[b].Sample
	})

	cfg.Logger.Debug().
		Int("samples", report.Samples).
		Int("checks", report.Checks).
		Int("violations", len(report.Violations)).
		Msg("sweep finished")
	return report, nil
}

// CheckFaces checks the face rotation laws over every face, turn and direction.
// It returns the violations found and the number of checks made.
func CheckFaces() ([]Violation, int) {
	var (
		out    []Violation
		checks int
	)
	fail := func(law, format string, args ...any) {
		out = append(out, Violation{Law: law, Sample: -1, Detail: fmt.Sprintf(format, args...)})
	}
	dirs := []bool{true, false}

	for _, by := range gocubie.AllFaces() {
		for _, cw := range dirs {
			images := make(map[gocubie.Face]bool)
			for _, f := range gocubie.AllFaces() {
				got := f
				for n := 0; n < 4; n++ {
					got = got.Rotate(by, cw)
				}
				checks++
				if got != f {
					fail("order 4", "%s by %s cw=%v", f, by, cw)
				}

				checks++
				if f.Rotate(by, cw).Rotate(by, !cw) != f {
					fail("mutual inverse", "%s by %s cw=%v", f, by, cw)
				}
				checks++
				if f.Rotate(by, cw) != f.Rotate(by.Invert(), !cw) {
					fail("opposite face", "%s by %s cw=%v", f, by, cw)
				}

				checks++
				if f.Axis == by.Axis && f.Rotate(by, cw) != f {
					fail("axis fixed point", "%s by %s cw=%v", f, by, cw)
				}
				checks++
				if f.Axis != by.Axis && f.Rotate(by, true) == f.Rotate(by, false) {
					fail("directional distinctness", "%s by %s", f, by)
				}

				images[f.Rotate(by, cw)] = true
			}
			checks++
			if len(images) != 6 {
				fail("injectivity", "%s cw=%v hits %d faces", by, cw, len(images))
			}
		}
	}

	table := []struct{ f, by, want gocubie.Face }{
		{gocubie.Blue(), gocubie.White(), gocubie.Pink()},
		{gocubie.Pink(), gocubie.White(), gocubie.Green()},
		{gocubie.Green(), gocubie.White(), gocubie.Orange()},
		{gocubie.Orange(), gocubie.White(), gocubie.Blue()},
		{gocubie.Orange(), gocubie.Orange(), gocubie.Orange()},
		{gocubie.Blue(), gocubie.Orange(), gocubie.White()},
		{gocubie.White(), gocubie.Orange(), gocubie.Green()},
	}
	for _, tt := range table {
		checks++
		if got := tt.f.Rotate(tt.by, true); got != tt.want {
			fail("turn table", "%s by %s = %s, want %s", tt.f, tt.by, got, tt.want)
		}
	}

	return out, checks
}

// CheckSequence applies seq to a new cube and checks the cube laws on the
// result. rng picks the extra turn used for the round-trip laws.
func CheckSequence(seq []gocubie.Move, rng *rand.Rand) ([]Violation, int) {
	var (
		out    []Violation
		checks int
	)
	fail := func(law, format string, args ...any) {
		out = append(out, Violation{Law: law, Sequence: seq, Detail: fmt.Sprintf(format, args...)})
	}

	c := gocubie.NewCube()
	c.Apply(seq...)

	checks++
	seen := make(map[gocubie.Pos]bool, gocubie.NumCubies)
	for _, cb := range c.Cubies() {
		for _, v := range cb.Pos {
			if v < -1 || v > 1 {
				fail("position permutation", "cubie out of range at %v", cb.Pos)
			}
		}
		if seen[cb.Pos] {
			fail("position permutation", "two cubies at %v", cb.Pos)
		}
		seen[cb.Pos] = true
	}

	for _, cb := range c.Cubies() {
		checks++
		var colors [gocubie.NumColors]bool
		for _, f := range gocubie.AllFaces() {
			col := cb.Color(f)
			if int(col) >= gocubie.NumColors || colors[col] {
				fail("color bijection", "%v", cb)
				break
			}
			colors[col] = true
		}
	}

	checks++
	for col, n := range c.Facelets().Counts() {
		if n != 9 {
			fail("sticker count", "colour %s shown %d times", gocubie.Color(col), n)
		}
	}

	faces := gocubie.AllFaces()
	face := faces[rng.IntN(len(faces))]
	cw := rng.IntN(2) == 0

	checks++
	turned := c.Clone()
	turned.Rotate(face, cw)
	turned.Rotate(face, !cw)
	if !turned.Equal(c) {
		fail("turn round trip", "%s cw=%v then back", face.Letter(), cw)
	}

	checks++
	turned = c.Clone()
	for n := 0; n < 4; n++ {
		turned.Rotate(face, cw)
	}
	if !turned.Equal(c) {
		fail("order 4", "%s cw=%v four times", face.Letter(), cw)
	}

	checks++
	c.Apply(gocubie.InverseMoves(seq)...)
	if !c.Equal(gocubie.NewCube()) {
		fail("sequence inverse", "undoing the sequence did not restore the new cube")
	}

	return out, checks
}
