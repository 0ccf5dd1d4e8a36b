package draw

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/tomz197/collider/internal/geom"
)

// Canvas is a color drawing buffer with 2x vertical resolution using
// half-block characters. It scales from logical field coordinates to
// terminal pixels.
type Canvas struct {
	termWidth      int          // Terminal columns used by the canvas
	termHeight     int          // Terminal rows used by the canvas
	subPixelHeight int          // termHeight * 2
	pixels         []color.RGBA // Flat slice: [y * termWidth + x]; zero alpha is empty

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets of the render area
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
}

// NewScaledCanvas creates a canvas of termWidth x termHeight cells showing
// the logical area [0, logicalWidth] x [0, logicalHeight].
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 0)
	termHeight = max(termHeight, 0)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]color.RGBA, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// At returns the pixel at terminal pixel coordinates; empty pixels have zero
// alpha.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return color.RGBA{}
	}
	return c.pixels[y*c.termWidth+x]
}

// setPixel sets a pixel at terminal pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col color.RGBA) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

func (c *Canvas) toPixel(p geom.Point) (int, int) {
	return int(math.Floor(p.X * c.scaleX)), int(math.Floor(p.Y * c.scaleY))
}

// Plot sets the pixel covering logical point p.
func (c *Canvas) Plot(p geom.Point, col color.RGBA) {
	x, y := c.toPixel(p)
	c.setPixel(x, y, col)
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 geom.Point, col color.RGBA) {
	x1, y1 := c.toPixel(p1)
	x2, y2 := c.toPixel(p2)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawRect outlines r.
func (c *Canvas) DrawRect(r geom.Rect, col color.RGBA) {
	if r.Empty() {
		return
	}
	corners := r.Corners()
	for i := range corners {
		c.DrawLine(corners[i], corners[(i+1)%len(corners)], col)
	}
}

// maxChunkSize is the maximum bytes to write at once for smooth SSH flow.
const maxChunkSize = 1400

// Render outputs the canvas to w. Each cell shows its top pixel in the
// foreground of an upper half block and its bottom pixel in the background,
// or a single block when only one of them is set. Empty cells are skipped.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 24)

	var fg, bg color.RGBA
	hasFg, hasBg := false, false
	setFg := func(col color.RGBA) {
		if !hasFg || fg != col {
			writeColor(&c.renderBuf, 38, col)
			fg, hasFg = col, true
		}
	}
	setBg := func(col color.RGBA) {
		if !hasBg || bg != col {
			writeColor(&c.renderBuf, 48, col)
			bg, hasBg = col, true
		}
	}
	clearBg := func() {
		if hasBg {
			c.renderBuf.WriteString("\033[49m")
			hasBg = false
		}
	}

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			topSet, bottomSet := top.A != 0, bottom.A != 0
			if !topSet && !bottomSet {
				continue
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH", row+1+c.offsetRow, col+1+c.offsetCol)
			switch {
			case topSet && bottomSet && top == bottom:
				clearBg()
				setFg(top)
				c.renderBuf.WriteRune(BlockFull)
			case topSet && bottomSet:
				setFg(top)
				setBg(bottom)
				c.renderBuf.WriteRune(BlockUpperHalf)
			case topSet:
				clearBg()
				setFg(top)
				c.renderBuf.WriteRune(BlockUpperHalf)
			default:
				clearBg()
				setFg(bottom)
				c.renderBuf.WriteRune(BlockLowerHalf)
			}
		}
	}
	c.renderBuf.WriteString(ResetColor)

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// RenderBorder draws a box border around the canvas area when the terminal
// leaves room for it on either axis.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// 1-based terminal coordinates
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	line := strings.Repeat("─", c.termWidth)
	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, line)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	_, err := io.WriteString(w, buf.String())
	return err
}
