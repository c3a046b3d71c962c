package archive

import (
	"os"
	"path/filepath"
)

// DirSink copies entries into an output directory as individual files.
type DirSink struct {
	dir string
}

// NewDirSink ensures dir exists and returns a sink writing into it.
func NewDirSink(dir string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DirSink{dir: dir}, nil
}

// Add writes one file under the sink directory. Names are sanitized by the
// renderer before they get here, so no path separators survive.
func (d *DirSink) Add(name string, data []byte) error {
	return os.WriteFile(filepath.Join(d.dir, name), data, 0o644)
}

// Close is a no-op; files are flushed as they are written.
func (d *DirSink) Close() error { return nil }
