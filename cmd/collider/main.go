package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tomz197/collider/internal/config"
	"github.com/tomz197/collider/internal/logging"
	"github.com/tomz197/collider/internal/loop"
	"github.com/tomz197/collider/internal/scene"
)

func main() {
	conf, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(conf.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	sc, err := scene.FromConfig(conf, logger)
	if err != nil {
		logger.Fatal("failed to create scene", zap.Error(err))
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", zap.Error(err))
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(ctx, reader, os.Stdout, sc, conf, logger); err != nil {
		_ = term.Restore(fd, oldState)
		logger.Error("simulation error", zap.Error(err))
		os.Exit(1)
	}
}
