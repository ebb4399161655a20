package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"rsabackend/src/config"
	"rsabackend/src/server"
)

// ConfigEnv names an optional YAML config file; absent, defaults plus the
// port environment override apply.
const ConfigEnv = "RSABACKEND_CONFIG"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(os.Getenv(ConfigEnv))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	slog.Info("rsa backend starting", "bind", cfg.BindAddress, "port", cfg.Port)

	if err := server.New(cfg).Run(ctx); err != nil {
		return fmt.Errorf("running server: %w", err)
	}
	return nil
}
