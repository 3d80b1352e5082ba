package gocubie

import "math/rand/v2"

// Scramble returns n quarter turns, each drawn uniformly from the twelve
// (face, direction) pairs. A nil rng uses the global source.
func Scramble(rng *rand.Rand, n int) []Move {
	faces := AllFaces()
	moves := make([]Move, n)
	for i := range moves {
		var k int
		if rng != nil {
			k = rng.IntN(2 * len(faces))
		} else {
			k = rand.IntN(2 * len(faces))
		}
		moves[i] = NewMove(faces[k/2], k%2 == 0)
	}
	return moves
}
