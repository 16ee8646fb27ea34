package storage

import (
	"context"
	"fmt"
	"os"
)

// FileSource reads the brokerage activity export from disk on every request,
// so a replaced file is picked up without a restart.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("reading transaction export %s: %w", s.path, err)
	}
	return string(raw), nil
}
