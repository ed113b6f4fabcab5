// Package testutil provides fixture repositories for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// FixtureRepo builds a throwaway repository tree under t.TempDir().
type FixtureRepo struct {
	T    *testing.T
	Root string
}

// NewFixtureRepo creates an empty fixture repository.
func NewFixtureRepo(t *testing.T) *FixtureRepo {
	t.Helper()
	return &FixtureRepo{T: t, Root: t.TempDir()}
}

// WriteFile adds a file, creating parent directories as needed.
func (r *FixtureRepo) WriteFile(rel, content string) *FixtureRepo {
	r.T.Helper()
	path := filepath.Join(r.Root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.T.Fatalf("Failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		r.T.Fatalf("Failed to write %s: %v", rel, err)
	}
	return r
}

// WriteBinary adds a file with raw bytes.
func (r *FixtureRepo) WriteBinary(rel string, content []byte) *FixtureRepo {
	r.T.Helper()
	path := filepath.Join(r.Root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.T.Fatalf("Failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		r.T.Fatalf("Failed to write %s: %v", rel, err)
	}
	return r
}

// MkDir adds an empty directory.
func (r *FixtureRepo) MkDir(rel string) *FixtureRepo {
	r.T.Helper()
	if err := os.MkdirAll(filepath.Join(r.Root, filepath.FromSlash(rel)), 0755); err != nil {
		r.T.Fatalf("Failed to create directory %s: %v", rel, err)
	}
	return r
}

// PythonProject populates a minimal python repository with a manifest,
// entry point and README.
func (r *FixtureRepo) PythonProject(name string) *FixtureRepo {
	r.T.Helper()
	r.WriteFile("pyproject.toml", `[project]
name = "`+name+`"
description = "A test project."
version = "0.1.0"
`)
	r.WriteFile("main.py", "print('hello')\n")
	r.WriteFile("README.md", "# "+name+"\n\nThis project is a fixture used to exercise skill generation end to end.\n")
	return r
}
