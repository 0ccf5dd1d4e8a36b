package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/collider/internal/config"
	"github.com/tomz197/collider/internal/draw"
	applog "github.com/tomz197/collider/internal/logging"
	"github.com/tomz197/collider/internal/loop"
	"github.com/tomz197/collider/internal/scene"
)

func main() {
	conf, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := applog.New(conf.SSH.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(conf, logger); err != nil {
		logger.Fatal("ssh server failed", zap.Error(err))
	}
}

func run(conf *config.Config, logger *zap.Logger) error {
	host := config.GetEnv("SSH_HOST", conf.SSH.Host)
	port := config.GetEnv("SSH_PORT", conf.SSH.Port)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", conf.SSH.HostKey)
	logger.Info("ssh config", zap.String("host", host), zap.String("port", port), zap.String("host_key", hostKeyPath))

	sc, err := scene.FromConfig(conf, logger)
	if err != nil {
		return err
	}
	// Every session watches the same simulation.
	sim := loop.NewServer(sc, conf, logger)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			viewerMiddleware(sim, logger),
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// TCP_NODELAY keeps frames flowing without batching delays
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	simCtx, cancelSim := context.WithCancel(context.Background())
	defer cancelSim()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sim.Run(simCtx)
	})
	g.Go(func() error {
		logger.Info("starting ssh server", zap.String("addr", net.JoinHostPort(host, port)))
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		sim.Shutdown(15 * time.Second)
		cancelSim()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// viewerMiddleware runs a viewer of sim for every session with a PTY.
func viewerMiddleware(sim *loop.Server, logger *zap.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			log := logger.With(zap.String("user", sess.User()))
			log.Info("session opened",
				zap.String("term", pty.Term),
				zap.Int("width", pty.Window.Width),
				zap.Int("height", pty.Window.Height),
			)

			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			c := loop.NewClient(sim, sess.User(), bufio.NewReader(sess), sess, loop.ClientOptions{
				TermSizeFunc: sizeTracker.getSize,
			})
			if err := c.Run(sess.Context()); err != nil {
				log.Warn("viewer error", zap.Error(err))
			}

			log.Info("session closed")
			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
