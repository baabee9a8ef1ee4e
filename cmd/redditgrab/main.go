package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
)

// version injected at build time
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(&runner{})
	if err := app.RunContext(ctx, os.Args); err != nil {
		if !errors.Is(err, errReported) {
			color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		}
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "Interrupted.")
			os.Exit(130)
		}
		os.Exit(1)
	}
}
