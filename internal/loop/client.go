package loop

import (
	"bufio"
	"context"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/tomz197/collider/internal/config"
	"github.com/tomz197/collider/internal/draw"
	"github.com/tomz197/collider/internal/input"
)

// boxColor is used for the bounding box overlay.
var boxColor = color.RGBA{R: 90, G: 90, B: 200, A: 255}

// statusRows is the number of terminal rows kept below the field.
const statusRows = 1

// Client renders snapshots and forwards commands for a single terminal.
type Client struct {
	server       Simulation
	handle       *ViewerHandle
	canvas       *draw.Canvas
	out          *draw.ChunkWriter
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	showBoxes    bool
	running      bool

	// Last known terminal size
	width  int
	height int
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
}

// NewClient creates a viewer of server reading keys from r and drawing to w.
func NewClient(server Simulation, name string, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}

	return &Client{
		server:       server,
		handle:       server.RegisterViewer(name),
		canvas:       draw.NewScaledCanvas(0, 0, config.FieldWidth, config.FieldHeight),
		out:          draw.NewChunkWriter(w, 0, 0),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		running:      true,
	}
}

// Run starts the client loop. Blocks until the viewer quits, the server shuts
// down or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	defer c.server.UnregisterViewer(c.handle.ID)
	defer c.inputStream.Close()

	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	for c.running {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			c.running = false
			continue
		default:
		}

		c.processInput()
		c.processServerEvents()
		c.updateScreen()

		if err := c.drawFrame(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads keys and sends commands to the server.
func (c *Client) processInput() {
	in := input.ReadInput(c.inputStream)
	c.apply(in)
}

func (c *Client) apply(in input.Input) {
	if in.Quit {
		c.running = false
		return
	}
	if in.Pause {
		c.server.SendCommand(CommandTogglePause)
	}
	for i := 0; i < in.Step; i++ {
		c.server.SendCommand(CommandStep)
	}
	if in.Boxes {
		c.showBoxes = !c.showBoxes
	}
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents() {
	for {
		select {
		case ev, ok := <-c.handle.Events:
			if !ok || ev == EventShutdown {
				c.running = false
				return
			}
		default:
			return
		}
	}
}

// updateScreen fits the canvas to the current terminal size.
func (c *Client) updateScreen() {
	width, height, err := c.termSizeFunc()
	if err != nil {
		return
	}
	c.width, c.height = width, height
	l := draw.FitSquare(width, height, statusRows, config.MaxRenderCols, config.MaxRenderRows)
	c.canvas.Resize(l.Cols, l.Rows)
	c.canvas.SetOffset(l.OffsetCol, l.OffsetRow)
	c.out.SetOffset(l.OffsetCol, l.OffsetRow)
}

// drawFrame clears the screen and draws the latest snapshot.
func (c *Client) drawFrame() error {
	snap := c.server.Snapshot()

	c.out.WriteString("\033[H\033[2J")
	drawSnapshot(c.canvas, snap, c.showBoxes)
	if err := c.canvas.Render(c.out); err != nil {
		return err
	}
	if err := c.canvas.RenderBorder(c.out); err != nil {
		return err
	}
	c.drawStatus(snap)
	return c.out.Flush()
}

// drawStatus writes the status line on the last terminal row.
func (c *Client) drawStatus(snap *Snapshot) {
	if c.width <= 0 || c.height <= 0 {
		return
	}
	line := statusLine(snap, c.showBoxes)
	if len(line) > c.width {
		line = line[:c.width]
	}
	fmt.Fprintf(c.out, "\033[%d;1H%s", c.height, line)
}

// drawSnapshot plots the sample points of every body in its state color, and
// the bounding boxes when boxes is set.
func drawSnapshot(canvas *draw.Canvas, snap *Snapshot, boxes bool) {
	canvas.Clear()
	if boxes {
		for _, b := range snap.Bodies {
			canvas.DrawRect(b.Box, boxColor)
		}
	}
	for _, b := range snap.Bodies {
		for _, p := range b.Points {
			canvas.Plot(p, b.Color)
		}
	}
}

func statusLine(snap *Snapshot, boxes bool) string {
	mode := "running"
	if snap.Paused {
		mode = "paused"
	}
	overlay := ""
	if boxes {
		overlay = " boxes"
	}
	return fmt.Sprintf("tick %d  bodies %d  colliding %d  viewers %d  %s%s  [space] pause  [n] step  [b] boxes  [q] quit",
		snap.Tick, len(snap.Bodies), snap.Colliding, snap.Viewers, mode, overlay)
}
