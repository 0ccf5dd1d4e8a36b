// Package input turns raw terminal bytes into viewer commands.
package input

import (
	"bufio"
	"sync"
)

// Input holds the commands pressed since the previous frame. Every field is
// an event: a key held down through several frames fires once per byte the
// terminal repeats.
type Input struct {
	Quit    bool // q, Q, ctrl-c
	Pause   bool // space: toggle pause
	Step    int  // n or right arrow: single ticks requested while paused
	Boxes   bool // b: toggle the bounding box overlay
	Pressed []byte
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch     chan byte
	closed bool

	done      chan struct{}
	exited    chan struct{}
	closeOnce sync.Once
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The goroutine exits when r fails or the stream is closed.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:     make(chan byte, 128),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go func() {
		defer close(s.exited)
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Closed reports whether the reader behind the stream has ended.
func (s *Stream) Closed() bool { return s.closed }

// Close stops delivery. A goroutine blocked in a read of r exits once that
// read returns.
func (s *Stream) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// ReadInput drains all available bytes from the stream without blocking and
// parses them. A closed stream reports Quit.
func ReadInput(s *Stream) Input {
	var buf []byte
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := Parse(buf)
	if s.closed {
		in.Quit = true
	}
	return in
}

// Parse interprets a batch of terminal bytes. Toggle keys pressed an even
// number of times cancel out.
func Parse(buf []byte) Input {
	in := Input{Pressed: buf}
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if buf[i+2] == 'C' { // Right arrow
				in.Step++
			}
			i += 2
			continue
		}

		switch b {
		case 'q', 'Q', '\x03':
			in.Quit = true
		case ' ':
			in.Pause = !in.Pause
		case 'n', 'N':
			in.Step++
		case 'b', 'B':
			in.Boxes = !in.Boxes
		}
	}
	return in
}
