package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rook-computer/shieldicon/internal/render"
)

type App struct {
	Renderer render.Renderer
	IconsDir string
	Sizes    []int
	Logger   Logger
}

func New(renderer render.Renderer, iconsDir string) *App {
	return &App{Renderer: renderer, IconsDir: iconsDir, Sizes: render.DefaultSizes, Logger: NoopLogger{}}
}

// SizeError reports which icon size failed.
type SizeError struct {
	Size int
	Path string
	Err  error
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("icon %dx%d (%s): %v", e.Size, e.Size, e.Path, e.Err)
}

func (e *SizeError) Unwrap() error { return e.Err }

// IconPath returns <dir>/icon<size>.png.
func IconPath(dir string, size int) string {
	return filepath.Join(dir, fmt.Sprintf("icon%d.png", size))
}

// Run creates the icons directory if needed and renders every size in order.
// It stops at the first failing size.
func (app *App) Run(ctx context.Context) error {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Renderer == nil {
		app.Renderer = render.NewIconRenderer()
	}
	if icons, ok := app.Renderer.(*render.IconRenderer); ok && icons.Logger == nil {
		icons.Logger = app.Logger
	}

	if err := os.MkdirAll(app.IconsDir, 0o755); err != nil {
		app.Logger.Errorf("app", "create %s failed: %v", app.IconsDir, err)
		return fmt.Errorf("create icons dir: %w", err)
	}

	for _, size := range app.Sizes {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := IconPath(app.IconsDir, size)
		if err := app.Renderer.Render(size, path); err != nil {
			app.Logger.Errorf("app", "icon %dx%d failed: %v", size, size, err)
			return &SizeError{Size: size, Path: path, Err: err}
		}
		app.Logger.Infof("app", "generated: %s (%dx%d)", path, size, size)
	}
	app.Logger.Infof("app", "all icons generated")
	return nil
}
