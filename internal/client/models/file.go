// Package models defines the values exchanged between the uploader's
// selection, orchestration, transfer and presentation layers.
package models

import (
	"bytes"
	"errors"
	"io"
	"os"
)

var ErrNoContent = errors.New("file has no content source")

// SelectedFile is one file chosen for upload. Name identifies the file in the
// status store; two files with the same Name share one status entry.
type SelectedFile struct {
	Name        string
	Path        string
	ContentType string
	Size        int64

	open func() (io.ReadCloser, error)
}

// NewSelectedFile describes a file whose content is produced by opener.
// A nil opener falls back to os.Open(path).
func NewSelectedFile(name, path, contentType string, size int64, opener func() (io.ReadCloser, error)) SelectedFile {
	if opener == nil && path != "" {
		opener = func() (io.ReadCloser, error) { return os.Open(path) }
	}
	return SelectedFile{Name: name, Path: path, ContentType: contentType, Size: size, open: opener}
}

// NewMemoryFile wraps in-memory content. Every Open returns a fresh reader
// over the same bytes.
func NewMemoryFile(name, contentType string, data []byte) SelectedFile {
	return SelectedFile{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(data)),
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// Open returns the file content. The caller closes the reader.
func (f SelectedFile) Open() (io.ReadCloser, error) {
	if f.open == nil {
		return nil, ErrNoContent
	}
	return f.open()
}
