package render

// Renderer writes one icon of the given pixel size to a file.
type Renderer interface {
	Render(size int, outputPath string) error
}

var _ Renderer = (*IconRenderer)(nil)

// NoopRenderer accepts every request and writes nothing.
type NoopRenderer struct{}

func (NoopRenderer) Render(size int, outputPath string) error { return nil }
