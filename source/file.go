package source

import (
	"context"
	"fmt"
	"os"
)

// FileReader reads configuration content from the local filesystem.
type FileReader struct{}

// NewFileReader constructs a [FileReader].
func NewFileReader() *FileReader {
	return &FileReader{}
}

// Read implements [Reader]. Missing and unreadable files fail with a wrapped
// ErrSourceUnreadable.
func (r *FileReader) Read(_ context.Context, ref string) ([]byte, error) {
	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}

	return data, nil
}
