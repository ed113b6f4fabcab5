package evidence

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/firefly-engineering/skillify/internal/config"
	"github.com/firefly-engineering/skillify/internal/errors"
	"github.com/firefly-engineering/skillify/internal/logging"
)

// Entry describes one path in a repository snapshot.
type Entry struct {
	IsDir bool
	Size  int64
	Depth int
}

// RepositorySnapshot is an immutable view of a local directory tree at
// analysis time. It is built once per run and never mutated afterward.
type RepositorySnapshot struct {
	Root    string
	Entries map[string]Entry
}

// Snapshot walks root and records every entry within the configured depth
// bound, pruning VCS and build directories. It fails only when root does
// not exist or is not a directory; unreadable entries below the root are
// recorded as absent and the walk continues.
func Snapshot(root string, opts config.Options) (*RepositorySnapshot, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.RepositoryNotFound(root)
	}
	if !info.IsDir() {
		return nil, errors.ValidationError("repository path is not a directory: " + root)
	}

	snap := &RepositorySnapshot{
		Root:    root,
		Entries: make(map[string]Entry),
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Partial evidence is valid evidence.
			logging.Debug("skipping unreadable entry", "path", path, "error", walkErr)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		depth := strings.Count(rel, "/")

		if d.IsDir() {
			snap.Entries[rel] = Entry{IsDir: true, Depth: depth}
			if opts.PruneDirs[d.Name()] || depth >= opts.MaxWalkDepth {
				return fs.SkipDir
			}
			return nil
		}

		var size int64
		if fi, err := d.Info(); err == nil {
			size = fi.Size()
		}
		snap.Entries[rel] = Entry{Size: size, Depth: depth}
		return nil
	})
	if err != nil {
		return nil, errors.AnalysisFailed("snapshot", err)
	}

	logging.Debug("snapshot complete", "root", root, "entries", len(snap.Entries))
	return snap, nil
}

// Has reports whether the snapshot contains the given relative path.
func (s *RepositorySnapshot) Has(rel string) bool {
	_, ok := s.Entries[rel]
	return ok
}

// IsDir reports whether the given relative path is a directory in the snapshot.
func (s *RepositorySnapshot) IsDir(rel string) bool {
	e, ok := s.Entries[rel]
	return ok && e.IsDir
}

// ReadFile reads at most max bytes of a file in the snapshot.
// A zero or negative max reads the whole file.
func (s *RepositorySnapshot) ReadFile(rel string, max int) ([]byte, error) {
	f, err := os.Open(filepath.Join(s.Root, filepath.FromSlash(rel)))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if max <= 0 {
		return io.ReadAll(f)
	}
	// Read one byte past the bound so callers can tell truncation apart
	// from an exact fit.
	data, err := io.ReadAll(io.LimitReader(f, int64(max)+1))
	if err != nil {
		return nil, err
	}
	return data, nil
}
