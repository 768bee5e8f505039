package app

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rook-computer/shieldicon/internal/render"
)

type fakeRenderer struct {
	failOn int
	err    error
	calls  []int
}

func (f *fakeRenderer) Render(size int, outputPath string) error {
	f.calls = append(f.calls, size)
	if size == f.failOn {
		return f.err
	}
	return nil
}

func TestIconPath(t *testing.T) {
	got := IconPath(filepath.Join("public", "icons"), 48)
	want := filepath.Join("public", "icons", "icon48.png")
	if got != want {
		t.Errorf("IconPath = %q, want %q", got, want)
	}
}

func TestRunCreatesDirectoryAndIcons(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public", "icons")
	a := New(render.NewIconRenderer(), dir)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, size := range []int{16, 32, 48, 128} {
		f, err := os.Open(IconPath(dir, size))
		if err != nil {
			t.Fatalf("icon %d: %v", size, err)
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("icon %d decode: %v", size, err)
		}
		if cfg.Width != size || cfg.Height != size {
			t.Errorf("icon %d is %dx%d", size, cfg.Width, cfg.Height)
		}
	}
}

func TestRunWithExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	a := New(render.NewIconRenderer(), dir)
	for i := 0; i < 2; i++ {
		if err := a.Run(context.Background()); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
}

func TestRunRendersSizesInOrder(t *testing.T) {
	fake := &fakeRenderer{}
	if err := New(fake, t.TempDir()).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := []int{16, 32, 48, 128}
	if len(fake.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", fake.calls, want)
	}
	for i := range want {
		if fake.calls[i] != want[i] {
			t.Errorf("calls = %v, want %v", fake.calls, want)
			break
		}
	}
}

func TestRunReportsFailingSize(t *testing.T) {
	boom := errors.New("disk full")
	fake := &fakeRenderer{failOn: 32, err: boom}
	dir := t.TempDir()

	err := New(fake, dir).Run(context.Background())

	var sizeErr *SizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("err = %v, want *SizeError", err)
	}
	if sizeErr.Size != 32 || sizeErr.Path != IconPath(dir, 32) {
		t.Errorf("SizeError = %+v", sizeErr)
	}
	if !errors.Is(err, boom) {
		t.Errorf("err does not wrap cause: %v", err)
	}
	if !strings.Contains(err.Error(), "32x32") {
		t.Errorf("error %q does not name the size", err.Error())
	}
	if len(fake.calls) != 2 {
		t.Errorf("calls = %v, want abort after 32", fake.calls)
	}
}

func TestRunStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fake := &fakeRenderer{}

	err := New(fake, t.TempDir()).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if len(fake.calls) != 0 {
		t.Errorf("rendered %v after cancel", fake.calls)
	}
}

func TestRunDirectoryCreationFails(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	fake := &fakeRenderer{}

	if err := New(fake, filepath.Join(file, "icons")).Run(context.Background()); err == nil {
		t.Fatal("Run succeeded under a regular file")
	}
	if len(fake.calls) != 0 {
		t.Errorf("rendered %v without a directory", fake.calls)
	}
}

func TestRunNoopRendererCreatesOnlyDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "icons")
	if err := New(render.NoopRenderer{}, dir).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("dir has %d entries, want 0", len(entries))
	}
}

func TestRunLogsProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := FileLogger{w: &buf, now: func() time.Time { return time.Unix(0, 0).UTC() }}
	dir := t.TempDir()

	a := New(&fakeRenderer{}, dir)
	a.Logger = logger
	if err := a.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	want := "1970-01-01T00:00:00Z [INFO] app: generated: " + IconPath(dir, 16) + " (16x16)\n"
	if !strings.Contains(out, want) {
		t.Errorf("log missing %q:\n%s", want, out)
	}
	if !strings.HasSuffix(out, "[INFO] app: all icons generated\n") {
		t.Errorf("log does not end with completion line:\n%s", out)
	}
}

func TestRunPassesLoggerToIconRenderer(t *testing.T) {
	renderer := render.NewIconRenderer()
	a := New(renderer, t.TempDir())
	a.Logger = NewFileLogger(&bytes.Buffer{})
	if err := a.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if renderer.Logger == nil {
		t.Error("IconRenderer.Logger not set")
	}
}
