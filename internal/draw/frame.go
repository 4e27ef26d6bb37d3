package draw

import (
	"github.com/tomz197/asteroid-avoidance/internal/asset"
	"github.com/tomz197/asteroid-avoidance/internal/physics"
)

// TextSize selects the weight of a text overlay.
type TextSize int

const (
	TextSmall TextSize = iota
	TextMedium
	TextLarge
)

// Align controls how text is positioned relative to its anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes how a text overlay is drawn.
type TextStyle struct {
	Size  TextSize
	Color Color
	Align Align
}

// Label is a text overlay positioned in 0-based canvas cells.
type Label struct {
	Text  string
	Col   int
	Row   int
	Color Color
	Bold  bool
}

// Frame rasterizes draw requests into a Canvas plus a list of text labels.
// Terminal and other backends flush a finished Frame to their output.
type Frame struct {
	canvas *Canvas
	sheet  *asset.Sheet
	labels []Label
}

// NewFrame creates a frame mapping a logical width x height field onto
// cols x rows terminal cells.
func NewFrame(cols, rows int, width, height float64, sheet *asset.Sheet) *Frame {
	return &Frame{
		canvas: NewScaledCanvas(cols, rows, width, height),
		sheet:  sheet,
	}
}

// Canvas returns the underlying pixel buffer.
func (f *Frame) Canvas() *Canvas {
	return f.canvas
}

// Labels returns the text overlays of the current frame.
func (f *Frame) Labels() []Label {
	return f.labels
}

// Resize changes the cell dimensions of the frame.
func (f *Frame) Resize(cols, rows int) {
	f.canvas.Resize(cols, rows)
}

// Begin clears the frame.
func (f *Frame) Begin() error {
	f.canvas.Clear()
	f.labels = f.labels[:0]
	return nil
}

// Sprite draws the named sprite stretched over r. Unknown names draw a gray box.
func (f *Frame) Sprite(name string, r physics.Rect) {
	var s *asset.Sprite
	if f.sheet != nil {
		s, _ = f.sheet.Sprite(name)
	}
	if s == nil {
		f.canvas.FillRect(r, ColorGray)
		return
	}
	f.canvas.FillMask(r, func(u, v float64) Color {
		return ParseColor(s.At(u, v))
	})
}

// Circle draws a circle; width 0 fills it.
func (f *Frame) Circle(cx, cy, radius float64, color Color, width int) {
	f.canvas.DrawCircle(cx, cy, radius, color, width)
}

// Text queues a label anchored at logical (x, y).
func (f *Frame) Text(s string, x, y float64, style TextStyle) {
	if s == "" {
		return
	}
	if style.Size == TextLarge {
		s = spaced(s)
	}
	col, row := f.canvas.LogicalToTerminal(x, y)
	col--
	row--

	n := len([]rune(s))
	switch style.Align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n
	}
	col = max(0, min(col, f.canvas.TerminalWidth()-n))
	row = max(0, min(row, f.canvas.TerminalHeight()-1))

	color := style.Color
	if color == ColorNone {
		color = ColorWhite
	}
	f.labels = append(f.labels, Label{
		Text:  s,
		Col:   col,
		Row:   row,
		Color: color,
		Bold:  style.Size != TextSmall,
	})
}

// End finishes the frame. Backends wrap it to flush output.
func (f *Frame) End() error {
	return nil
}

// spaced inserts a space between letters, the terminal's stand-in for a large font.
func spaced(s string) string {
	runes := []rune(s)
	if len(runes) < 2 {
		return s
	}
	out := make([]rune, 0, len(runes)*2-1)
	for i, r := range runes {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	return string(out)
}
