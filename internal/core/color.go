package core

// Color is a foreground colour tag for a screen cell.
// The platform layer decides how each tag maps to terminal colours.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorPink
	ColorOrange
	ColorGray
	ColorBrightBlue
	ColorBrightYellow
)

// String returns the lowercase name of the colour.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorPink:
		return "pink"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	case ColorBrightBlue:
		return "bright-blue"
	case ColorBrightYellow:
		return "bright-yellow"
	default:
		return "default"
	}
}

// ParseColor resolves a colour name as written in level files.
// Unknown names return ColorDefault and false.
func ParseColor(name string) (Color, bool) {
	for c := ColorDefault; c <= ColorBrightYellow; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return ColorDefault, false
}
