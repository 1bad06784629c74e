package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

// run starts the app and blocks until a signal arrives or a component
// requests shutdown.
func run(ctx context.Context, app *fx.App) {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "suitopia: start: %v\n", err)
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
	case sig := <-app.Done():
		fmt.Fprintf(os.Stderr, "suitopia: received %s, stopping\n", sig)
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(os.Stderr, "suitopia: stop: %v\n", err)
		os.Exit(1)
	}
}
