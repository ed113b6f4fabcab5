package bundle

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/skillify/internal/config"
	"github.com/firefly-engineering/skillify/internal/errors"
)

// vendorTree copies the source tree verbatim under <stage>/vendor/,
// skipping pruned directories. Destination paths are resolved inside the
// stage so a hostile tree cannot escape it.
func vendorTree(srcRoot, stage string, prune map[string]bool) error {
	vendorRoot, err := securejoin.SecureJoin(stage, config.VendorDir)
	if err != nil {
		return errors.ComposeFailed(config.VendorDir, err)
	}
	if err := os.MkdirAll(vendorRoot, 0755); err != nil {
		return errors.ComposeFailed(config.VendorDir, err)
	}

	return filepath.WalkDir(srcRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return errors.ComposeFailed(path, walkErr)
		}

		rel, relErr := filepath.Rel(srcRoot, path)
		if relErr != nil || rel == "." {
			return nil
		}

		if d.IsDir() && prune[d.Name()] {
			return fs.SkipDir
		}
		// Symlinks are not followed into the bundle.
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		dst, err := securejoin.SecureJoin(vendorRoot, filepath.ToSlash(rel))
		if err != nil {
			return errors.ComposeFailed(rel, err)
		}

		if d.IsDir() {
			if err := os.MkdirAll(dst, 0755); err != nil {
				return errors.ComposeFailed(rel, err)
			}
			return nil
		}

		if err := copyFile(path, dst); err != nil {
			return errors.ComposeFailed(rel, err)
		}
		return nil
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
