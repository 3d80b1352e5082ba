// Package gocubie models a 3x3x3 twisty cube as 27 cubies, each with a lattice
// position and an orientation, and applies quarter turns that keep both
// consistent with the physical puzzle.
//
// # Model
//
//   - Face: an axis (0, 1, 2) and a polarity; the six outward directions.
//   - Orientation: where a cubie's white and blue stickers point now.
//   - Cubie: a position in {-1,0,1}^3 plus an Orientation.
//   - Cube: all 27 cubies. A turn is broadcast to every cubie, and each cubie
//     decides from its own position whether it moves.
//
// # Quick Start
//
//	cube := gocubie.NewCube()
//
//	// Turn single faces
//	cube.Rotate(gocubie.White(), true)
//	cube.Rotate(gocubie.White(), false)
//
//	// Apply moves using predefined constants
//	cube.Apply(gocubie.R, gocubie.U, gocubie.RPrime, gocubie.UPrime)
//
//	// Or from notation
//	if err := cube.ApplyNotation("F B2 L' D"); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Print(cube)
//
// Sequences can be tidied and described:
//
//	gocubie.SimplifyMoves(moves) // "R R U U'" -> "R2"
//	gocubie.DescribeMoves(gocubie.SexyMove)
//
// # Colours
//
// Faces are named after the colour they show on a solved cube. In notation,
// U is white, D yellow, F green, B blue, R pink and L orange.
//
// # Smart Cubes
//
// A GoCube smart cube can drive a Tracker over Bluetooth Low Energy:
//
//	dev, err := gocubie.ConnectFirst(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//
//	dev.Tracker().OnMove(func(m gocubie.Move) {
//	    fmt.Println("Move:", m.Notation())
//	})
package gocubie
