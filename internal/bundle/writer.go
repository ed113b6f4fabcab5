package bundle

import (
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/skillify/internal/errors"
	"github.com/firefly-engineering/skillify/internal/logging"
)

// FileWriter persists a composed bundle. Publishing is all-or-nothing:
// either every planned file lands at outputDir and the call succeeds, or
// the first failure aborts the run and nothing is left at outputDir.
type FileWriter interface {
	Publish(b *SkillBundle, outputDir string) error
}

// StagedWriter implements FileWriter by staging the bundle into a sibling
// scratch directory, verifying completeness, and renaming it into place.
// A failed publish removes the stage; the target path never holds a
// partial bundle.
type StagedWriter struct{}

func (w *StagedWriter) Publish(b *SkillBundle, outputDir string) error {
	if _, err := os.Stat(outputDir); err == nil {
		return errors.OutputExists(outputDir)
	}

	parent := filepath.Dir(outputDir)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return errors.ComposeFailed(parent, err)
	}

	stage, err := os.MkdirTemp(parent, "."+filepath.Base(outputDir)+".stage-")
	if err != nil {
		return errors.ComposeFailed(parent, err)
	}
	defer os.RemoveAll(stage)

	// MkdirTemp creates the stage 0700; the published bundle should be
	// world-readable like any generated directory.
	if err := os.Chmod(stage, 0755); err != nil {
		return errors.ComposeFailed(stage, err)
	}

	if err := w.writeTo(b, stage); err != nil {
		return err
	}

	// Completeness check before publishing: every planned file must exist
	// in the stage.
	for _, f := range b.Files {
		if _, err := os.Stat(filepath.Join(stage, filepath.FromSlash(f.Path))); err != nil {
			return errors.ComposeFailed(f.Path, err)
		}
	}

	if err := os.Rename(stage, outputDir); err != nil {
		return errors.ComposeFailed(outputDir, err)
	}

	logging.Debug("bundle published", "output", outputDir, "files", len(b.Files))
	return nil
}

func (w *StagedWriter) writeTo(b *SkillBundle, stage string) error {
	for _, dir := range b.Dirs {
		path, err := securejoin.SecureJoin(stage, dir)
		if err != nil {
			return errors.ComposeFailed(dir, err)
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return errors.ComposeFailed(dir, err)
		}
	}

	for _, f := range b.Files {
		path, err := securejoin.SecureJoin(stage, f.Path)
		if err != nil {
			return errors.ComposeFailed(f.Path, err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errors.ComposeFailed(f.Path, err)
		}
		if err := os.WriteFile(path, f.Content, f.Mode); err != nil {
			return errors.ComposeFailed(f.Path, err)
		}
	}

	if b.VendorRoot != "" {
		if err := vendorTree(b.VendorRoot, stage, b.PruneDirs); err != nil {
			return err
		}
	}

	return nil
}

var _ FileWriter = (*StagedWriter)(nil)
