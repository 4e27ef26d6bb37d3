// Package tui is the tcell display backend: it blits rasterized frames into
// a tcell screen and turns tcell key events into game input.
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/asteroid-avoidance/internal/asset"
	"github.com/tomz197/asteroid-avoidance/internal/draw"
)

var borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

// Screen renders frames onto a tcell screen. The caller owns the screen's
// Init and Fini.
type Screen struct {
	*draw.Frame
	screen tcell.Screen
	width  float64
	height float64

	termWidth  int
	termHeight int
	col, row   int // offset of the play area in cells
}

// NewScreen creates a renderer for a logical width x height field.
func NewScreen(s tcell.Screen, width, height float64, sheet *asset.Sheet) *Screen {
	s.HideCursor()
	return &Screen{
		Frame:  draw.NewFrame(1, 1, width, height, sheet),
		screen: s,
		width:  width,
		height: height,
	}
}

// Begin adapts to the current screen size and clears the frame.
func (s *Screen) Begin() error {
	w, h := s.screen.Size()
	if w != s.termWidth || h != s.termHeight {
		s.termWidth, s.termHeight = w, h
		cols, rows, col, row := draw.FitArea(w, h, s.width, s.height)
		s.Frame.Resize(cols, rows)
		s.col, s.row = col, row
		s.screen.Sync()
	}
	return s.Frame.Begin()
}

// End copies the frame to the screen and shows it.
func (s *Screen) End() error {
	s.screen.Clear()
	c := s.Canvas()
	s.border(c.TerminalWidth(), c.TerminalHeight())

	for row := 0; row < c.TerminalHeight(); row++ {
		for col := 0; col < c.TerminalWidth(); col++ {
			ch, style, ok := cellContent(c.Cell(col, row))
			if ok {
				s.screen.SetContent(s.col+col, s.row+row, ch, nil, style)
			}
		}
	}

	for _, l := range s.Labels() {
		style := tcell.StyleDefault.Foreground(tcellColor(l.Color)).Bold(l.Bold)
		for i, r := range []rune(l.Text) {
			s.screen.SetContent(s.col+l.Col+i, s.row+l.Row, r, nil, style)
		}
	}

	s.screen.Show()
	return nil
}

// border frames the play area where the screen leaves room for it.
func (s *Screen) border(cols, rows int) {
	left, right := s.col-1, s.col+cols
	top, bottom := s.row-1, s.row+rows
	if top >= 0 {
		for x := s.col; x < right; x++ {
			s.screen.SetContent(x, top, tcell.RuneHLine, nil, borderStyle)
			s.screen.SetContent(x, bottom, tcell.RuneHLine, nil, borderStyle)
		}
	}
	if left >= 0 {
		for y := s.row; y < bottom; y++ {
			s.screen.SetContent(left, y, tcell.RuneVLine, nil, borderStyle)
			s.screen.SetContent(right, y, tcell.RuneVLine, nil, borderStyle)
		}
	}
	if top >= 0 && left >= 0 {
		s.screen.SetContent(left, top, tcell.RuneULCorner, nil, borderStyle)
		s.screen.SetContent(right, top, tcell.RuneURCorner, nil, borderStyle)
		s.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, borderStyle)
		s.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, borderStyle)
	}
}

// cellContent picks the half-block glyph and colors for a cell's two pixels.
func cellContent(top, bottom draw.Color) (rune, tcell.Style, bool) {
	style := tcell.StyleDefault
	switch {
	case top != draw.ColorNone && top == bottom:
		return draw.BlockFull, style.Foreground(tcellColor(top)), true
	case top != draw.ColorNone && bottom != draw.ColorNone:
		return draw.BlockUpperHalf, style.Foreground(tcellColor(top)).Background(tcellColor(bottom)), true
	case top != draw.ColorNone:
		return draw.BlockUpperHalf, style.Foreground(tcellColor(top)), true
	case bottom != draw.ColorNone:
		return draw.BlockLowerHalf, style.Foreground(tcellColor(bottom)), true
	}
	return ' ', style, false
}

func tcellColor(c draw.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
