package gocubie

// Orientation records where a cubie's originally white-facing and originally
// blue-facing stickers point now. The remaining sticker directions follow from
// these two, so a full rotation needs no third face.
//
// White.Axis never equals Blue.Axis.
type Orientation struct {
	White Face
	Blue  Face
}

// SolvedOrientation is the orientation of every cubie on a solved cube.
func SolvedOrientation() Orientation {
	return Orientation{White: White(), Blue: Blue()}
}

// Rotate applies a quarter turn of face to both reference directions.
func (o Orientation) Rotate(face Face, clockwise bool) Orientation {
	return Orientation{
		White: o.White.Rotate(face, clockwise),
		Blue:  o.Blue.Rotate(face, clockwise),
	}
}

// Third returns the direction that shows ColorPink. Its opposite shows ColorOrange.
func (o Orientation) Third() Face {
	return o.Blue.Rotate(o.White, true)
}

// Valid reports whether the two reference faces lie on different axes.
func (o Orientation) Valid() bool {
	return o.White.Axis != o.Blue.Axis
}
