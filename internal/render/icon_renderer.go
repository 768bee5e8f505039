package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

var ErrInvalidSize = errors.New("icon size must be a positive integer")

// IconRenderer draws the shield icon and writes it as PNG.
type IconRenderer struct {
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewIconRenderer() *IconRenderer { return &IconRenderer{} }

// Draw composes the icon at size×size. Layers go down shadow first and sparkles last.
func (r *IconRenderer) Draw(size int) (*image.RGBA, error) {
	geometry, err := NewGeometry(size)
	if err != nil {
		return nil, err
	}
	canvas := NewCanvas(size)

	canvas.FillPolygon(geometry.Shadow, Shadow)
	canvas.FillPolygon(geometry.Shield, ShieldFill)
	canvas.StrokePolygon(geometry.Shield, geometry.OutlineWidth, ShieldOutline)
	canvas.FillPolygon(geometry.Highlight, Highlight)
	canvas.StrokePolyline(geometry.Check, geometry.CheckWidth, Checkmark)
	for _, mark := range geometry.Sparkles {
		horizontal, vertical := mark.Segments()
		canvas.Line(horizontal[0], horizontal[1], geometry.SparkleWidth, Sparkle)
		canvas.Line(vertical[0], vertical[1], geometry.SparkleWidth, Sparkle)
	}
	return canvas.Image(), nil
}

// Render draws the icon at size and writes it to outputPath, replacing any existing file.
// The parent directory must already exist.
func (r *IconRenderer) Render(size int, outputPath string) error {
	img, err := r.Draw(size)
	if err != nil {
		return fmt.Errorf("render %d: %w", size, err)
	}

	if err := writePNG(outputPath, img); err != nil {
		if r.Logger != nil {
			r.Logger.Errorf("render", "icon %dx%d: %v", size, size, err)
		}
		return err
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Encode writes img as PNG. Output depends only on the pixels.
func Encode(w io.Writer, img image.Image) error {
	encoder := png.Encoder{CompressionLevel: png.BestCompression}
	return encoder.Encode(w, img)
}
