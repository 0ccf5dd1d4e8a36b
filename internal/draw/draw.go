// Package draw renders the field to a terminal with half-block characters
// and 24-bit ANSI colors.
package draw

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// ResetColor restores the default foreground and background.
const ResetColor = "\033[0m"

// writeColor appends a 24-bit color sequence. layer is 38 for the foreground
// and 48 for the background.
func writeColor(b *strings.Builder, layer int, c color.RGBA) {
	var num [3]byte
	b.WriteString("\033[")
	b.Write(strconv.AppendInt(num[:0], int64(layer), 10))
	b.WriteString(";2;")
	b.Write(strconv.AppendInt(num[:0], int64(c.R), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(num[:0], int64(c.G), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(num[:0], int64(c.B), 10))
	b.WriteByte('m')
}

// Foreground returns the sequence selecting c as the text color.
func Foreground(c color.RGBA) string {
	var b strings.Builder
	writeColor(&b, 38, c)
	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
