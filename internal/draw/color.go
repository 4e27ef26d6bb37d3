package draw

// Color is a palette entry. The zero value means "no pixel".
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorBlack
	ColorRed
	ColorYellow
	ColorBlue
	ColorGreen
	ColorGray
	ColorCyan
)

// palette maps colors to RGB and xterm-256 indices.
var palette = [...]struct {
	r, g, b uint8
	xterm   int
}{
	ColorNone:   {0, 0, 0, 0},
	ColorWhite:  {255, 255, 255, 15},
	ColorBlack:  {0, 0, 0, 16},
	ColorRed:    {255, 0, 0, 196},
	ColorYellow: {255, 255, 0, 226},
	ColorBlue:   {0, 0, 255, 21},
	ColorGreen:  {0, 255, 0, 46},
	ColorGray:   {128, 128, 128, 244},
	ColorCyan:   {0, 255, 255, 51},
}

// RGB returns the color's red, green and blue components.
func (c Color) RGB() (r, g, b uint8) {
	if int(c) >= len(palette) {
		return 255, 255, 255
	}
	p := palette[c]
	return p.r, p.g, p.b
}

// Xterm returns the xterm-256 palette index for the color.
func (c Color) Xterm() int {
	if int(c) >= len(palette) {
		return 15
	}
	return palette[c].xterm
}

// ParseColor maps a single-letter mask code to a color.
// Returns ColorNone for unknown codes.
func ParseColor(code byte) Color {
	switch code {
	case 'w', 'W':
		return ColorWhite
	case 'k', 'K':
		return ColorBlack
	case 'r', 'R':
		return ColorRed
	case 'y', 'Y':
		return ColorYellow
	case 'b', 'B':
		return ColorBlue
	case 'g', 'G':
		return ColorGreen
	case 'a', 'A':
		return ColorGray
	case 'c', 'C':
		return ColorCyan
	}
	return ColorNone
}
