package repo

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/firefly-engineering/skillify/internal/errors"
	"github.com/firefly-engineering/skillify/internal/system"
)

// Provider yields a local directory holding the repository to analyze.
// The returned cleanup releases any temporary state and is safe to call
// exactly once, also on the error path of later pipeline stages.
type Provider interface {
	Fetch(ctx context.Context) (dir string, cleanup func(), err error)
}

// IsRemote reports whether source looks like a git URL rather than a local
// path.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") ||
		strings.HasPrefix(source, "https://") ||
		strings.HasPrefix(source, "git@")
}

// For selects the provider for a source string.
func For(source string, keepClone bool, exec system.CommandExecutor) Provider {
	if IsRemote(source) {
		return &Git{URL: source, Keep: keepClone, Exec: exec}
	}
	return &Local{Path: source}
}

// Local provides an existing directory as-is. No cleanup is needed.
type Local struct {
	Path string
}

func (l *Local) Fetch(ctx context.Context) (string, func(), error) {
	abs, err := filepath.Abs(l.Path)
	if err != nil {
		return "", nil, errors.RepositoryNotFound(l.Path)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", nil, errors.RepositoryNotFound(l.Path)
	}
	if !info.IsDir() {
		return "", nil, errors.ValidationError("repository path is not a directory: " + l.Path)
	}
	return abs, func() {}, nil
}

var _ Provider = (*Local)(nil)
