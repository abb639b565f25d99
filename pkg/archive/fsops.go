package archive

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/matzehuels/mvnsrc/pkg/errors"
)

// CopyDir mirrors the directory tree at source into target. Any existing
// target is removed first. Files that cannot be read are skipped.
func CopyDir(source, target string) error {
	info, err := os.Stat(source)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "copy source missing")
	}
	if !info.IsDir() {
		return errors.New(errors.ErrCodeInvalidPath, "copy source is not a directory: "+source)
	}

	if err := RemoveTree(target); err != nil {
		return err
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to create "+filepath.Base(target))
	}

	return filepath.WalkDir(source, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(source, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(target, rel)
		if d.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		_ = copyFile(path, dest)
		return nil
	})
}

// RemoveTree deletes path and everything under it, children before
// parents. A missing path is not an error.
func RemoveTree(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to remove "+filepath.Base(path))
	}
	return nil
}

func copyFile(source, dest string) error {
	src, err := os.Open(source)
	if err != nil {
		return err
	}
	defer src.Close()
	return writeFile(dest, src)
}
