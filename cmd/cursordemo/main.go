package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/urfave/cli.v2"

	"go.llib.dev/seqcursor/internal/demo"
	"go.llib.dev/seqcursor/pkg/logger"
)

const (
	Version = "0.1.0"
)

const (
	argItems        = "items"
	argMinLatencyMS = "min-latency-ms"
	argMaxLatencyMS = "max-latency-ms"
	argTimeoutSec   = "timeout-sec"
	argLogLevel     = "log-level"
	argMetricsAddr  = "metrics-addr"
)

func main() {
	app := &cli.App{
		Name:    "cursordemo",
		Version: Version,
		Usage:   "Drive a batch of demo items through a simulated remote check",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  argItems,
				Usage: "Number of demo items to generate",
				Value: 3,
			},
			&cli.IntFlag{
				Name:  argMinLatencyMS,
				Usage: "Lower bound of the simulated remote latency in milliseconds",
				Value: 1000,
			},
			&cli.IntFlag{
				Name:  argMaxLatencyMS,
				Usage: "Upper bound (exclusive) of the simulated remote latency in milliseconds",
				Value: 4000,
			},
			&cli.IntFlag{
				Name:  argTimeoutSec,
				Usage: "Deadline in seconds for the whole run, 0 means no deadline",
				Value: 30,
			},
			&cli.StringFlag{
				Name:  argLogLevel,
				Usage: "Logging level (debug, info, warn, error), overrides LOG_LEVEL",
			},
			&cli.StringFlag{
				Name:  argMetricsAddr,
				Usage: "When set, prometheus metrics are served on this address under /metrics",
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if raw := c.String(argLogLevel); raw != "" {
		level, ok := logger.ParseLevel(raw)
		if !ok {
			return fmt.Errorf("unknown log level: %q", raw)
		}
		logger.Default.Level = level
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if addr := c.String(argMetricsAddr); addr != "" {
		srv := serveMetrics(ctx, addr)
		defer srv.Close()
	}

	cfg := demo.Config{
		Items:      c.Int(argItems),
		MinLatency: time.Duration(c.Int(argMinLatencyMS)) * time.Millisecond,
		MaxLatency: time.Duration(c.Int(argMaxLatencyMS)) * time.Millisecond,
		Timeout:    time.Duration(c.Int(argTimeoutSec)) * time.Second,
	}

	items, err := demo.Run(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "demo run failed", logger.ErrField(err))
		return err
	}

	fmt.Printf("All done: 🎉 %d\n", len(items))
	for _, item := range items {
		fmt.Printf("  #%d %s\n", item.ID, item.Name)
	}
	return nil
}

func serveMetrics(ctx context.Context, addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "metrics server stopped", logger.ErrField(err))
		}
	}()
	return srv
}
