package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	json "github.com/goccy/go-json"

	"github.com/gonkalabs/opendlp-go/internal/config"
	"github.com/gonkalabs/opendlp-go/internal/dlpclient"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		slog.Error("dlp client failed", "addr", cfg.Addr, "err", err)
		stop()
		os.Exit(1)
	}
}

// run inspects cfg.Input and prints the results as JSON. With
// cfg.Deidentify it also prints the de-identified text.
func run(ctx context.Context, cfg *config.Cfg, out io.Writer, opts ...dlpclient.Option) error {
	inspector := dlpclient.NewInspector(cfg.Addr, opts...)
	if err := inspector.Configure(cfg.InfoTypes); err != nil {
		return err
	}

	slog.Info("inspecting content",
		"addr", cfg.Addr,
		"info_types", cfg.InfoTypes,
		"deidentify", cfg.Deidentify,
	)

	results, err := callWithTimeout(ctx, cfg, func(ctx context.Context) ([]dlpclient.Result, error) {
		return inspector.Run(ctx, cfg.Input)
	})
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}

	b, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	if _, err := fmt.Fprintln(out, string(b)); err != nil {
		return err
	}

	if !cfg.Deidentify {
		return nil
	}

	deidentifier := dlpclient.NewDeidentifier(cfg.Addr, opts...)
	if err := deidentifier.Configure(cfg.InfoTypes); err != nil {
		return err
	}
	text, err := callWithTimeout(ctx, cfg, func(ctx context.Context) (string, error) {
		return deidentifier.Run(ctx, cfg.Input)
	})
	if err != nil {
		return fmt.Errorf("deidentify: %w", err)
	}
	_, err = fmt.Fprintln(out, text)
	return err
}

func callWithTimeout[T any](ctx context.Context, cfg *config.Cfg, fn func(context.Context) (T, error)) (T, error) {
	if cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.CallTimeout)
		defer cancel()
	}
	return fn(ctx)
}
