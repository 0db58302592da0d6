package history

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by a Persister that holds no saved history.
var ErrNotFound = errors.New("no history file found")

// Persister stores the full entry sequence.
type Persister interface {
	Save(ctx context.Context, lines []string) error
	Load(ctx context.Context) ([]string, error)
	Location() string
}

// FilePersister keeps one entry per line in a UTF-8 text file.
type FilePersister struct {
	path string
}

// NewFilePersister returns a persister for the file at path.
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

func (p *FilePersister) Location() string {
	return p.path
}

func (p *FilePersister) Save(ctx context.Context, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return os.WriteFile(p.path, []byte(b.String()), 0o644)
}

func (p *FilePersister) Load(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return []string{}, nil
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}

// Backend names accepted by NewPersister.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// NewPersister returns the persister for a configured backend.
func NewPersister(backend, path string) (Persister, error) {
	switch backend {
	case "", BackendFile:
		return NewFilePersister(path), nil
	case BackendSQLite:
		return NewSQLitePersister(path), nil
	}
	return nil, fmt.Errorf("unknown history backend %q", backend)
}
