// Command styleselector applies prompt styles to image generation batches.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/style-selector/internal/adapters/driving/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.Execute(ctx, wire)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
