// Command seriesmath evaluates the series approximations from the command
// line and compares them against the standard library.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "seriesmath:", err)
		os.Exit(2)
	}

	logger, err := NewLogger(os.Stderr, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "seriesmath:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg, logger).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
