package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tomz197/asteroid-avoidance/internal/asset"
	"golang.org/x/term"
)

const sgrReset = "\033[0m"

// ChunkWriter accumulates text for terminal output and writes in chunks for optimal
// network flow (e.g. over SSH). Implements io.Writer for Canvas.Render.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf [20]byte      // Scratch buffer for allocation-free integer formatting
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w. offsetCol and offsetRow
// are added to all MoveCursor coordinates (for canvas centering).
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset (e.g. after terminal resize).
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends an ANSI cursor position sequence. col and row are 1-based
// canvas coordinates; offset is applied automatically.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteAt writes a string at a 1-based canvas position.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

// SetColor appends an SGR sequence selecting the foreground color.
func (cw *ChunkWriter) SetColor(c Color, bold bool) {
	cw.buf.WriteString(sgrReset)
	if bold {
		cw.buf.WriteString("\033[1m")
	}
	cw.buf.WriteString("\033[38;5;")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(c.Xterm()), 10))
	cw.buf.WriteByte('m')
}

// ResetColor appends the SGR reset sequence.
func (cw *ChunkWriter) ResetColor() {
	cw.buf.WriteString(sgrReset)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	io.WriteString(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	io.WriteString(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	io.WriteString(w, "\033[?25h")
}

// FitArea returns the largest cell area inside a termWidth x termHeight terminal
// that keeps the aspect ratio of a logical width x height field, given that one
// cell holds two square sub-pixels stacked vertically. col and row are the
// 0-based offsets that center the area.
func FitArea(termWidth, termHeight int, width, height float64) (cols, rows, col, row int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)

	cols = termWidth
	rows = int(float64(cols)*height/width/2 + 0.5)
	if rows > termHeight {
		rows = termHeight
		cols = int(float64(rows)*2*width/height + 0.5)
	}
	cols = max(min(cols, termWidth), 1)
	rows = max(min(rows, termHeight), 1)
	return cols, rows, (termWidth - cols) / 2, (termHeight - rows) / 2
}

// Terminal renders frames to an ANSI terminal. It is the default display backend
// for the local game and for SSH sessions.
type Terminal struct {
	*Frame
	out    *ChunkWriter
	size   TermSizeFunc
	width  float64
	height float64

	termWidth  int
	termHeight int
}

// NewTerminal creates a terminal renderer writing to w. size reports the
// current terminal dimensions and is queried once per frame.
func NewTerminal(w io.Writer, size TermSizeFunc, width, height float64, sheet *asset.Sheet) *Terminal {
	t := &Terminal{
		Frame:  NewFrame(1, 1, width, height, sheet),
		out:    NewChunkWriter(w, 0, 0),
		size:   size,
		width:  width,
		height: height,
	}
	HideCursor(t.out)
	ClearScreen(t.out)
	return t
}

// Begin picks up terminal resizes and clears the frame.
func (t *Terminal) Begin() error {
	termWidth, termHeight, err := t.size()
	if err != nil {
		return err
	}
	if termWidth != t.termWidth || termHeight != t.termHeight {
		t.termWidth, t.termHeight = termWidth, termHeight
		cols, rows, col, row := FitArea(termWidth, termHeight, t.width, t.height)
		t.Frame.Resize(cols, rows)
		t.canvas.SetOffset(col, row)
		t.out.SetOffset(col, row)
	}
	return t.Frame.Begin()
}

// End writes the frame to the terminal.
func (t *Terminal) End() error {
	ClearScreen(t.out)
	t.canvas.RenderBorder(t.out)
	t.canvas.Render(t.out)
	for _, l := range t.labels {
		t.out.SetColor(l.Color, l.Bold)
		t.out.WriteAt(l.Col+1, l.Row+1, l.Text)
	}
	t.out.ResetColor()
	return t.out.Flush()
}

// Close restores the cursor and clears the screen.
func (t *Terminal) Close() error {
	ClearScreen(t.out)
	ShowCursor(t.out)
	t.out.ResetColor()
	return t.out.Flush()
}
