package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ChunkWriter accumulates text overlays and writes them in chunks, so a frame
// reaches an SSH client in a few packets. Offsets are added to every cursor
// move so overlays follow a centered canvas.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte // Scratch buffer for integer formatting
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w.
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
// canvas coordinates.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer so a Canvas can render into the same frame.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.buf.Write(p)
}

// WriteAt writes s at 1-based canvas coordinates.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

// WriteString appends s.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated frame to the underlying writer and resets the
// buffer.
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

// TermSizeFunc returns the terminal dimensions in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Layout is the placement of a square field view inside a terminal.
type Layout struct {
	Cols, Rows int // Canvas size in cells
	OffsetCol  int // 0-based column of the canvas
	OffsetRow  int // 0-based row of the canvas
}

// FitSquare sizes a canvas showing a square field inside a terminal of
// width x height cells, keeping reserved rows free at the bottom. Cells are
// two pixels tall, so the canvas has twice as many columns as rows. The size
// is capped at maxCols x maxRows and the canvas is centered.
func FitSquare(width, height, reserved, maxCols, maxRows int) Layout {
	rows := min(height-reserved, maxRows, width/2, maxCols/2)
	if rows < 0 {
		rows = 0
	}
	cols := rows * 2
	return Layout{
		Cols:      cols,
		Rows:      rows,
		OffsetCol: max((width-cols)/2, 0),
		OffsetRow: max((height-reserved-rows)/2, 0),
	}
}
