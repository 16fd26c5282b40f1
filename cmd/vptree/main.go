// Command vptree builds a vantage-point tree over generated or stored 2-D
// points and queries it, checks it against exhaustive search, or benchmarks
// the two.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "vptree: %v\n", err)
		os.Exit(2)
	}
	logger := newLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("run failed", "mode", cfg.Mode, "error", err)
		os.Exit(1)
	}
}
