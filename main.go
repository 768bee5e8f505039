package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rook-computer/shieldicon/internal/app"
	"github.com/rook-computer/shieldicon/internal/render"
)

// Relative to the project root.
var iconsDir = filepath.Join("public", "icons")

func main() {
	logger := app.NewFileLogger(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := render.NewIconRenderer()
	renderer.Logger = logger

	a := app.New(renderer, iconsDir)
	a.Logger = logger

	if err := a.Run(ctx); err != nil {
		logger.Errorf("main", "icon generation failed: %v", err)
		stop()
		os.Exit(1)
	}
}
