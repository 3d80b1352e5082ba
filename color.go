package gocubie

// Color is a sticker colour index in 0..5.
type Color byte

const (
	ColorWhite  Color = 0 // U face when solved
	ColorBlue   Color = 1 // B face when solved
	ColorPink   Color = 2 // R face when solved
	ColorOrange Color = 3 // L face when solved
	ColorGreen  Color = 4 // F face when solved
	ColorYellow Color = 5 // D face when solved
)

// NumColors is the number of distinct sticker colours.
const NumColors = 6

// String returns the single-letter abbreviation used in text nets.
func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "W"
	case ColorBlue:
		return "B"
	case ColorPink:
		return "P"
	case ColorOrange:
		return "O"
	case ColorGreen:
		return "G"
	case ColorYellow:
		return "Y"
	default:
		return "?"
	}
}

// Name returns the lowercase colour name.
func (c Color) Name() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorBlue:
		return "blue"
	case ColorPink:
		return "pink"
	case ColorOrange:
		return "orange"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// ParseColor parses a colour name as returned by Name.
func ParseColor(name string) (Color, bool) {
	for c := Color(0); c < NumColors; c++ {
		if c.Name() == name {
			return c, true
		}
	}
	return 0, false
}
