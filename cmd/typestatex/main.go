package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/comalice/typestatex/internal/cli"
	"github.com/comalice/typestatex/internal/layouts"
	"github.com/comalice/typestatex/internal/orders"
	"github.com/comalice/typestatex/internal/production"
)

// main is the entrypoint for the typestatex tool.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	logger := cli.NewLogger(cfg)

	switch cfg.Command {
	case cli.Graph:
		l, err := layouts.Lookup(cfg.Layout)
		if err != nil {
			return &cli.ExitError{Code: 2, Message: err.Error()}
		}
		_, err = io.WriteString(outW, (&production.DOTVisualizer{}).ExportDOT(l))
		return err
	case cli.Layout:
		l, err := layouts.Lookup(cfg.Layout)
		if err != nil {
			return &cli.ExitError{Code: 2, Message: err.Error()}
		}
		data, err := (&production.DOTVisualizer{}).ExportYAML(l)
		if err != nil {
			return err
		}
		_, err = outW.Write(data)
		return err
	default:
		return build(ctx, outW, cfg, logger)
	}
}

func build(ctx context.Context, outW io.Writer, cfg *cli.Config, logger *slog.Logger) error {
	specs, err := orders.Load(cfg.Manifest)
	if err != nil {
		return err
	}

	opts := []orders.Option{
		orders.WithLogger(logger),
		orders.WithMetrics(orders.NewMetrics(prometheus.NewRegistry())),
	}
	if cfg.StoreDir != "" {
		newStore := production.NewYAMLStore
		if cfg.Format == "json" {
			newStore = production.NewJSONStore
		}
		store, err := newStore(cfg.StoreDir)
		if err != nil {
			return err
		}
		opts = append(opts, orders.WithStore(store))
	}

	results, err := orders.NewRunner(opts...).Run(ctx, specs)
	if err != nil {
		return err
	}

	rejected := 0
	for _, res := range results {
		if res.OK() {
			fmt.Fprintf(outW, "built    %s %s\n", res.ID, res.Computer)
			continue
		}
		rejected++
		fmt.Fprintf(outW, "rejected %s %v\n", res.ID, res.Err)
	}
	if rejected > 0 {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("%d of %d orders rejected", rejected, len(results))}
	}
	return nil
}
