// internal/writers/dir.go
package writers

import (
	"io"
	"os"
	"path/filepath"
)

// Dir creates output files in a directory, making the directory on first
// use. Mapped output is kept separate from the input directory.
type Dir struct {
	Path string
}

func (d Dir) Create(name string) (io.WriteCloser, error) {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return nil, err
	}
	return os.Create(filepath.Join(d.Path, name))
}
