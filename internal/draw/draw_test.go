package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/asteroid-avoidance/internal/asset"
	"github.com/tomz197/asteroid-avoidance/internal/physics"
)

func TestCanvasCellHalves(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(1, 0, ColorRed)
	c.Set(1, 1, ColorBlue)
	c.Set(2, 3, ColorYellow)

	if top, bottom := c.Cell(1, 0); top != ColorRed || bottom != ColorBlue {
		t.Errorf("Cell(1,0) = %v,%v, want red,blue", top, bottom)
	}
	if top, bottom := c.Cell(2, 1); top != ColorNone || bottom != ColorYellow {
		t.Errorf("Cell(2,1) = %v,%v, want none,yellow", top, bottom)
	}

	c.Set(-5, 100, ColorRed) // ignored
	c.Clear()
	if top, _ := c.Cell(1, 0); top != ColorNone {
		t.Error("Clear left pixels behind")
	}
}

func TestCanvasScaling(t *testing.T) {
	// 80x30 cells -> 80x60 sub-pixels for an 800x600 field: 10 units per pixel.
	c := NewScaledCanvas(80, 30, 800, 600)
	c.FillRect(physics.NewRect(100, 100, 20, 20), ColorGreen)

	for _, p := range [][2]int{{10, 10}, {11, 11}} {
		if got := c.Pixel(p[0], p[1]); got != ColorGreen {
			t.Errorf("Pixel%v = %v, want green", p, got)
		}
	}
	if got := c.Pixel(12, 12); got != ColorNone {
		t.Errorf("Pixel outside rect = %v", got)
	}
}

func TestFillRectKeepsTinyRectsVisible(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	c.FillRect(physics.NewRect(401, 301, 5, 5), ColorYellow)

	found := false
	for y := 0; y < 60; y++ {
		for x := 0; x < 80; x++ {
			if c.Pixel(x, y) == ColorYellow {
				found = true
			}
		}
	}
	if !found {
		t.Error("5x5 rect vanished on a coarse canvas")
	}
}

func TestDrawCircle(t *testing.T) {
	c := NewCanvas(40, 20)
	c.DrawCircle(20, 20, 10, ColorBlue, 0)
	if got := c.Pixel(20, 20); got != ColorBlue {
		t.Errorf("filled circle center = %v, want blue", got)
	}

	c.Clear()
	c.DrawCircle(20, 20, 10, ColorBlue, 1)
	if got := c.Pixel(20, 20); got != ColorNone {
		t.Errorf("ring center = %v, want empty", got)
	}
	if got := c.Pixel(30, 20); got != ColorBlue {
		t.Errorf("ring edge = %v, want blue", got)
	}
}

func TestRenderEmitsColoredBlocks(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Set(0, 0, ColorRed)
	c.Set(0, 1, ColorRed)
	c.Set(1, 0, ColorYellow)
	c.Set(2, 1, ColorBlue)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	for _, want := range []string{"█", "▀", "▄", "\033[38;5;196m", "\033[38;5;226m", "\033[38;5;21m", "\033[1;1H"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}
	if !strings.HasSuffix(out, sgrReset) {
		t.Error("render output must end with a color reset")
	}
}

func TestFitArea(t *testing.T) {
	tests := []struct {
		name                 string
		tw, th               int
		cols, rows, col, row int
	}{
		{"exact fit", 80, 30, 80, 30, 0, 0},
		{"wide terminal", 200, 30, 80, 30, 60, 0},
		{"tall terminal", 80, 50, 80, 30, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows, col, row := FitArea(tt.tw, tt.th, 800, 600)
			if cols != tt.cols || rows != tt.rows || col != tt.col || row != tt.row {
				t.Errorf("FitArea = %d,%d,%d,%d, want %d,%d,%d,%d",
					cols, rows, col, row, tt.cols, tt.rows, tt.col, tt.row)
			}
		})
	}
}

func TestFrameTextAlignment(t *testing.T) {
	f := NewFrame(80, 30, 800, 600, nil)
	f.Text("HELLO", 400, 300, TextStyle{Align: AlignCenter})
	f.Text("R", 800, 0, TextStyle{Align: AlignRight, Color: ColorGreen})
	f.Text("TITLE", 0, 0, TextStyle{Size: TextLarge})

	labels := f.Labels()
	if len(labels) != 3 {
		t.Fatalf("labels = %d, want 3", len(labels))
	}
	if l := labels[0]; l.Col != 38 || l.Row != 15 || l.Color != ColorWhite || !strings.EqualFold(l.Text, "hello") {
		t.Errorf("centered label = %+v", l)
	}
	if l := labels[1]; l.Col != 79 || l.Color != ColorGreen {
		t.Errorf("right aligned label = %+v", l)
	}
	if l := labels[2]; l.Text != "T I T L E" || !l.Bold {
		t.Errorf("large label = %+v", l)
	}

	f.Begin()
	if len(f.Labels()) != 0 {
		t.Error("Begin did not clear labels")
	}
}

func TestFrameSprite(t *testing.T) {
	sheet, err := asset.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	f := NewFrame(80, 30, 800, 600, sheet)
	f.Sprite("bullet", physics.NewRect(400, 300, 10, 20))

	if got := f.Canvas().Pixel(40, 30); got != ColorYellow {
		t.Errorf("bullet pixel = %v, want yellow", got)
	}

	f.Sprite("unknown", physics.NewRect(0, 0, 10, 10))
	if got := f.Canvas().Pixel(0, 0); got != ColorGray {
		t.Errorf("unknown sprite pixel = %v, want gray", got)
	}
}

func TestTerminalRendersFrame(t *testing.T) {
	var buf bytes.Buffer
	size := func() (int, int, error) { return 100, 30, nil }
	term := NewTerminal(&buf, size, 800, 600, nil)

	if err := term.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if term.Canvas().OffsetCol() != 10 {
		t.Errorf("offset col = %d, want 10", term.Canvas().OffsetCol())
	}
	term.Circle(400, 300, 50, ColorRed, 0)
	term.Text("SCORE", 10, 10, TextStyle{})
	if err := term.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"\033[?25l", "SCORE", "│", "\033[38;5;196m"} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q", want)
		}
	}

	buf.Reset()
	if err := term.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !strings.Contains(buf.String(), "\033[?25h") {
		t.Error("Close did not show the cursor")
	}
}

func TestParseColor(t *testing.T) {
	if ParseColor('r') != ColorRed || ParseColor('Y') != ColorYellow || ParseColor('?') != ColorNone {
		t.Error("ParseColor mapping broken")
	}
	if r, g, b := ColorCyan.RGB(); r != 0 || g != 255 || b != 255 {
		t.Errorf("cyan RGB = %d,%d,%d", r, g, b)
	}
}
