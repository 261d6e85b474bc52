// Package source loads file contents for searching.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"
)

// Kind classifies a read failure.
type Kind int

const (
	// Other covers failures with no more specific kind, such as reading a directory.
	Other Kind = iota
	// NotFound means the path does not exist.
	NotFound
	// PermissionDenied means the file exists but cannot be opened.
	PermissionDenied
	// InvalidEncoding means the file is not valid UTF-8 text.
	InvalidEncoding
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case PermissionDenied:
		return "permission denied"
	case InvalidEncoding:
		return "invalid encoding"
	default:
		return "read failed"
	}
}

// ErrInvalidEncoding is wrapped by ReadError when file content is not UTF-8.
var ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")

// ReadError reports why a file could not be read.
type ReadError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a ReadError of the given kind.
func IsKind(err error, kind Kind) bool {
	var re *ReadError
	return errors.As(err, &re) && re.Kind == kind
}

// FileReader reads files from the local file system.
type FileReader struct{}

// New creates a FileReader.
func New() *FileReader {
	return &FileReader{}
}

// Read returns the full contents of path as text.
func (r *FileReader) Read(path string) (string, error) {
	return Read(path)
}

// Read returns the full contents of path as text. The content must be valid UTF-8.
func Read(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		kind := Other
		switch {
		case errors.Is(err, fs.ErrNotExist):
			kind = NotFound
		case errors.Is(err, fs.ErrPermission):
			kind = PermissionDenied
		}
		return "", &ReadError{Kind: kind, Path: path, Err: err}
	}

	if !utf8.Valid(content) {
		return "", &ReadError{Kind: InvalidEncoding, Path: path, Err: ErrInvalidEncoding}
	}

	return string(content), nil
}
