package gocubie

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.Apply(gocubie.R, gocubie.U, gocubie.RPrime, gocubie.UPrime)
var (
	// Right face moves
	R      = Move{Face: Pink(), Turn: CW}     // Right clockwise
	RPrime = Move{Face: Pink(), Turn: CCW}    // Right counter-clockwise
	R2     = Move{Face: Pink(), Turn: Double} // Right 180

	// Left face moves
	L      = Move{Face: Orange(), Turn: CW}     // Left clockwise
	LPrime = Move{Face: Orange(), Turn: CCW}    // Left counter-clockwise
	L2     = Move{Face: Orange(), Turn: Double} // Left 180

	// Up face moves
	U      = Move{Face: White(), Turn: CW}     // Up clockwise
	UPrime = Move{Face: White(), Turn: CCW}    // Up counter-clockwise
	U2     = Move{Face: White(), Turn: Double} // Up 180

	// Down face moves
	D      = Move{Face: Yellow(), Turn: CW}     // Down clockwise
	DPrime = Move{Face: Yellow(), Turn: CCW}    // Down counter-clockwise
	D2     = Move{Face: Yellow(), Turn: Double} // Down 180

	// Front face moves
	F      = Move{Face: Green(), Turn: CW}     // Front clockwise
	FPrime = Move{Face: Green(), Turn: CCW}    // Front counter-clockwise
	F2     = Move{Face: Green(), Turn: Double} // Front 180

	// Back face moves
	B      = Move{Face: Blue(), Turn: CW}     // Back clockwise
	BPrime = Move{Face: Blue(), Turn: CCW}    // Back counter-clockwise
	B2     = Move{Face: Blue(), Turn: Double} // Back 180
)

// SexyMove is R U R' U'. Six repetitions return the cube to its start.
var SexyMove = []Move{R, U, RPrime, UPrime}

// InverseSexyMove is U R U' R'.
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// TPerm swaps two top-layer edges and two top-layer corners.
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}

// Superflip flips every edge in place.
var Superflip = []Move{U, R2, F, B, R, B2, R, U2, L, B2, R, UPrime, DPrime, R2, F, RPrime, L, B2, U2, F2}
