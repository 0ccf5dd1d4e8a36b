package loop

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/collider/internal/config"
	"github.com/tomz197/collider/internal/draw"
	"github.com/tomz197/collider/internal/geom"
	"github.com/tomz197/collider/internal/input"
	"github.com/tomz197/collider/internal/object"
	"github.com/tomz197/collider/internal/scene"
)

func newTestServer(t *testing.T) (*Server, *scene.Scene) {
	t.Helper()
	sc, err := scene.New(50, scene.WithSeed(7))
	require.NoError(t, err)

	a := object.NewAsteroid(object.AsteroidPalette, 2, 10)
	a.SetPosition(geom.Pt(100, 100))
	b := object.NewAsteroid(object.AsteroidPalette, 0, 10)
	b.SetPosition(geom.Pt(104, 100))
	c := object.NewAsteroid(object.AsteroidPalette, 0, 10)
	c.SetPosition(geom.Pt(400, 400))
	sc.Add(a)
	sc.Add(b)
	sc.Add(c)

	conf := config.Default()
	conf.RenderSamples = 20
	conf.TickInterval = config.Duration{Duration: time.Millisecond}
	return NewServer(sc, conf, nil), sc
}

func TestNewServerPublishesSnapshot(t *testing.T) {
	s, _ := newTestServer(t)
	snap := s.Snapshot()
	require.NotNil(t, snap)

	assert.Zero(t, snap.Tick)
	assert.False(t, snap.Paused)
	require.Len(t, snap.Bodies, 3)
	for _, b := range snap.Bodies {
		assert.Len(t, b.Points, 20)
		loose := geom.R(b.Box.Min.X-1e-9, b.Box.Min.Y-1e-9, b.Box.Max.X+1e-9, b.Box.Max.Y+1e-9)
		for _, p := range b.Points {
			assert.True(t, loose.Contains(p))
		}
	}
}

func TestTickAdvancesScene(t *testing.T) {
	s, sc := newTestServer(t)
	s.tick()

	snap := s.Snapshot()
	assert.Equal(t, uint64(1), snap.Tick)
	assert.Equal(t, 2, snap.Colliding)
	assert.Equal(t, object.StateColliding, snap.Bodies[0].State)
	assert.Equal(t, object.CollisionColor, snap.Bodies[0].Color)
	assert.Equal(t, object.StateClear, snap.Bodies[2].State)
	assert.Equal(t, geom.Pt(102, 100), sc.Bodies()[0].Position())
}

func TestPauseAndStep(t *testing.T) {
	s, sc := newTestServer(t)
	first := sc.Bodies()[0]

	s.SendCommand(CommandTogglePause)
	s.tick()
	s.tick()
	assert.True(t, s.Snapshot().Paused)
	assert.Zero(t, s.Snapshot().Tick)
	assert.Equal(t, geom.Pt(100, 100), first.Position())

	s.SendCommand(CommandStep)
	s.SendCommand(CommandStep)
	s.tick()
	s.tick()
	s.tick()
	assert.Equal(t, uint64(2), s.Snapshot().Tick)
	assert.Equal(t, geom.Pt(104, 100), first.Position())

	s.SendCommand(CommandTogglePause)
	s.tick()
	assert.False(t, s.Snapshot().Paused)
	assert.Equal(t, uint64(3), s.Snapshot().Tick)
}

func TestStepIgnoredWhileRunning(t *testing.T) {
	s, _ := newTestServer(t)
	s.SendCommand(CommandStep)
	s.tick()
	s.SendCommand(CommandTogglePause)
	s.tick()
	assert.Equal(t, uint64(1), s.Snapshot().Tick)
}

func TestViewers(t *testing.T) {
	s, _ := newTestServer(t)
	a := s.RegisterViewer("alice")
	b := s.RegisterViewer("bob")
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, s.ViewerCount())

	s.tick()
	assert.Equal(t, 2, s.Snapshot().Viewers)

	s.UnregisterViewer(a.ID)
	s.UnregisterViewer(a.ID)
	assert.Equal(t, 1, s.ViewerCount())
	_, ok := <-a.Events
	assert.False(t, ok)
}

func TestShutdownNotifiesViewers(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.RegisterViewer("carol")

	go func() {
		ev := <-h.Events
		assert.Equal(t, EventShutdown, ev)
		s.UnregisterViewer(h.ID)
	}()
	s.Shutdown(time.Second)
	assert.Zero(t, s.ViewerCount())
}

func TestServerRunStopsOnCancel(t *testing.T) {
	s, _ := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	assert.Eventually(t, func() bool { return s.Snapshot().Tick >= 3 }, time.Second, time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}
}

func TestDrawSnapshot(t *testing.T) {
	canvas := draw.NewScaledCanvas(60, 30, config.FieldWidth, config.FieldHeight)
	red := object.CollisionColor
	snap := &Snapshot{
		Bodies: []BodyView{{
			Color:  red,
			Box:    geom.R(100, 100, 200, 200),
			Points: []geom.Point{geom.Pt(150, 150)},
		}},
	}

	drawSnapshot(canvas, snap, false)
	assert.Equal(t, red, canvas.At(15, 15))
	assert.Zero(t, canvas.At(10, 10).A)

	drawSnapshot(canvas, snap, true)
	assert.Equal(t, boxColor, canvas.At(10, 10))
	assert.Equal(t, red, canvas.At(15, 15))
}

func TestStatusLine(t *testing.T) {
	line := statusLine(&Snapshot{Tick: 12, Bodies: make([]BodyView, 3), Colliding: 1, Viewers: 2, Paused: true}, true)
	assert.True(t, strings.HasPrefix(line, "tick 12  bodies 3  colliding 1  viewers 2  paused boxes"))
}

func TestClientApply(t *testing.T) {
	s, _ := newTestServer(t)
	c := NewClient(s, "dave", bufio.NewReader(strings.NewReader("")), &bytes.Buffer{}, ClientOptions{
		TermSizeFunc: func() (int, int, error) { return 80, 24, nil },
	})

	c.apply(input.Input{Boxes: true, Pause: true})
	assert.True(t, c.showBoxes)
	s.tick()
	assert.True(t, s.Snapshot().Paused)

	c.apply(input.Input{Quit: true})
	assert.False(t, c.running)
}

func TestClientRunDrawsAndQuits(t *testing.T) {
	s, _ := newTestServer(t)
	var out bytes.Buffer
	c := NewClient(s, "erin", bufio.NewReader(strings.NewReader("q")), &out, ClientOptions{
		TermSizeFunc: func() (int, int, error) { return 80, 24, nil },
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, c.Run(ctx))
	assert.Zero(t, s.ViewerCount())
	assert.Contains(t, out.String(), "\033[?25h")
}
