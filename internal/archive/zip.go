// Package archive provides the sinks that receive resolved (name, bytes)
// entries from a commit pass: a single ZIP file or an output directory.
package archive

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
)

// ZipSink writes entries into one ZIP archive. Add must be called from a
// single writer; entry order is whatever order the caller feeds.
type ZipSink struct {
	f  *os.File
	zw *zip.Writer
}

// NewZipSink creates (truncating) the archive at path and stores comment in
// the ZIP end-of-central-directory record.
func NewZipSink(path, comment string) (*ZipSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	zw := zip.NewWriter(f)
	if comment != "" {
		if err := zw.SetComment(comment); err != nil {
			zw.Close()
			f.Close()
			return nil, err
		}
	}
	return &ZipSink{f: f, zw: zw}, nil
}

// Add appends one entry under name.
func (z *ZipSink) Add(name string, data []byte) error {
	w, err := z.zw.Create(name)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write zip entry %s: %w", name, err)
	}
	return nil
}

// Close finalizes the central directory and closes the file. Safe to call
// more than once.
func (z *ZipSink) Close() error {
	if z.zw == nil {
		return nil
	}
	zerr := z.zw.Close()
	ferr := z.f.Close()
	z.zw = nil
	if zerr != nil {
		return zerr
	}
	return ferr
}
