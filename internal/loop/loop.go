// Package loop runs the simulation: a tick server that owns the scene and
// publishes snapshots, and terminal clients that draw them.
package loop

import (
	"bufio"
	"context"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/collider/internal/config"
	"github.com/tomz197/collider/internal/scene"
)

// Run drives sc in the local terminal until the viewer quits or ctx is
// cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, sc *scene.Scene, conf *config.Config, logger *zap.Logger) error {
	server := NewServer(sc, conf, logger)
	client := NewClient(server, "local", r, w, ClientOptions{})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		return client.Run(gctx)
	})
	return g.Wait()
}
