package loop

import (
	"context"
	"image/color"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tomz197/collider/internal/config"
	"github.com/tomz197/collider/internal/geom"
	"github.com/tomz197/collider/internal/object"
	"github.com/tomz197/collider/internal/scene"
)

// Simulation is the interface viewers use to talk to the tick server.
type Simulation interface {
	RegisterViewer(name string) *ViewerHandle
	UnregisterViewer(id int)
	SendCommand(cmd Command)
	Snapshot() *Snapshot
}

// Command is a request from a viewer to the tick server.
type Command int

const (
	CommandTogglePause Command = iota
	CommandStep                // Advance one tick while paused
)

// Event is a notice from the server to a viewer.
type Event int

const (
	EventShutdown Event = iota
)

// ViewerHandle represents a viewer's connection to the server.
type ViewerHandle struct {
	ID     int
	Name   string
	Events chan Event
}

// BodyView is the immutable render state of one body.
type BodyView struct {
	ID       uuid.UUID
	Kind     object.Kind
	State    object.State
	Color    color.RGBA
	Position geom.Point
	Box      geom.Rect
	Points   []geom.Point // World points drawn from the body's shape
}

// Snapshot is an immutable copy of the scene published after every tick.
type Snapshot struct {
	Tick      uint64
	Bodies    []BodyView
	Colliding int
	Paused    bool
	Viewers   int
}

// Server owns the scene and advances it on a fixed interval. Viewers read
// published snapshots and never touch the scene.
type Server struct {
	scene    *scene.Scene
	interval time.Duration
	samples  int
	render   *rand.Rand // Drawn from for render points only
	logger   *zap.Logger

	snapshot atomic.Pointer[Snapshot]
	commands chan Command

	// Owned by the tick goroutine
	paused bool
	steps  int

	mu         sync.RWMutex
	viewers    map[int]*ViewerHandle
	nextViewer int
}

// Compile-time check that Server implements Simulation.
var _ Simulation = (*Server)(nil)

// NewServer creates a tick server for sc and publishes its first snapshot.
func NewServer(sc *scene.Scene, conf *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		scene:      sc,
		interval:   conf.TickInterval.Duration,
		samples:    conf.RenderSamples,
		render:     rand.New(rand.NewPCG(sc.Rand().Uint64(), sc.Rand().Uint64())),
		logger:     logger,
		commands:   make(chan Command, 64),
		viewers:    make(map[int]*ViewerHandle),
		nextViewer: 1,
	}
	s.publish()
	return s
}

// Run advances the scene once per interval until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("tick server started",
		zap.Duration("interval", s.interval),
		zap.Int("bodies", s.scene.Len()),
		zap.Int("nb_tested", s.scene.NbTested()),
	)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("tick server stopped", zap.Uint64("tick", s.scene.Ticks()))
			return nil
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick applies pending commands, advances the scene and publishes a snapshot.
// While paused the scene is advanced with step 0, which leaves it unchanged.
func (s *Server) tick() {
	s.collectCommands()

	step := 1
	if s.paused {
		step = 0
		if s.steps > 0 {
			s.steps--
			step = 1
		}
	}
	s.scene.Advance(step)
	s.publish()
}

func (s *Server) collectCommands() {
	for {
		select {
		case cmd := <-s.commands:
			switch cmd {
			case CommandTogglePause:
				s.paused = !s.paused
				s.steps = 0
				s.logger.Debug("pause toggled", zap.Bool("paused", s.paused))
			case CommandStep:
				if s.paused {
					s.steps++
				}
			}
		default:
			return
		}
	}
}

// publish builds a snapshot of the scene and makes it visible to viewers.
func (s *Server) publish() {
	bodies := s.scene.Bodies()
	snap := &Snapshot{
		Tick:    s.scene.Ticks(),
		Bodies:  make([]BodyView, len(bodies)),
		Paused:  s.paused,
		Viewers: s.ViewerCount(),
	}
	for i, b := range bodies {
		points := make([]geom.Point, s.samples)
		for j := range points {
			points[j] = b.Sample(s.render)
		}
		snap.Bodies[i] = BodyView{
			ID:       b.ID(),
			Kind:     b.Kind(),
			State:    b.State(),
			Color:    b.Color(),
			Position: b.Position(),
			Box:      b.BoundingBox(),
			Points:   points,
		}
		if b.State() == object.StateColliding {
			snap.Colliding++
		}
	}
	s.snapshot.Store(snap)
}

// Snapshot returns the latest published snapshot.
func (s *Server) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// SendCommand queues cmd for the next tick. Commands are dropped when the
// queue is full.
func (s *Server) SendCommand(cmd Command) {
	select {
	case s.commands <- cmd:
	default:
	}
}

// RegisterViewer registers a new viewer and returns its handle.
func (s *Server) RegisterViewer(name string) *ViewerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := &ViewerHandle{
		ID:     s.nextViewer,
		Name:   name,
		Events: make(chan Event, 4),
	}
	s.nextViewer++
	s.viewers[h.ID] = h
	s.logger.Info("viewer joined", zap.Int("viewer", h.ID), zap.String("name", name))
	return h
}

// UnregisterViewer removes a viewer from the server.
func (s *Server) UnregisterViewer(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.viewers[id]; ok {
		close(h.Events)
		delete(s.viewers, id)
		s.logger.Info("viewer left", zap.Int("viewer", id), zap.String("name", h.Name))
	}
}

// ViewerCount returns the number of registered viewers.
func (s *Server) ViewerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.viewers)
}

// Shutdown notifies all viewers and waits for them to disconnect, up to
// timeout. The caller cancels the server context afterwards.
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.RLock()
	for _, h := range s.viewers {
		select {
		case h.Events <- EventShutdown:
		default:
		}
	}
	s.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for s.ViewerCount() > 0 {
		select {
		case <-deadline:
			s.logger.Warn("viewers still connected at shutdown", zap.Int("viewers", s.ViewerCount()))
			return
		case <-ticker.C:
		}
	}
}
