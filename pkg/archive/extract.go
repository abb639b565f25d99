// Package archive unpacks dependency archives and shuffles extracted
// trees around on disk.
//
// Two container formats are supported, chosen by filename suffix: zip
// archives (.zip, .jar) and gzipped tarballs (.tar.gz, .tgz). Entry names
// are validated before anything touches the filesystem so a crafted
// archive cannot write outside the destination directory.
package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/mvnsrc/pkg/errors"
)

// Extract unpacks the archive at path into destDir, creating the
// destination when needed. Existing files are overwritten.
func Extract(path, destDir string) error {
	switch {
	case strings.HasSuffix(path, ".zip"), strings.HasSuffix(path, ".jar"):
		return extractZip(path, destDir)
	case strings.HasSuffix(path, ".tar.gz"), strings.HasSuffix(path, ".tgz"):
		return extractTarGz(path, destDir)
	default:
		return errors.New(errors.ErrCodeUnsupportedFormat, "unsupported archive format: "+filepath.Base(path))
	}
}

func extractZip(path, destDir string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		// Since Go 1.20 OpenReader hands back a usable reader together
		// with ErrInsecurePath for non-local entry names.
		if r != nil {
			r.Close()
		}
		return errors.Wrap(errors.ErrCodeExtraction, err, "failed to open archive "+filepath.Base(path))
	}
	defer r.Close()

	for _, f := range r.File {
		if err := errors.ValidateEntryName(f.Name); err != nil {
			return errors.Wrap(errors.ErrCodeExtraction, err, "rejecting archive entry")
		}
		target := filepath.Join(destDir, filepath.FromSlash(f.Name))
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return errors.Wrap(errors.ErrCodeExtraction, err, "failed to create directory")
			}
			continue
		}
		if err := writeZipEntry(target, f); err != nil {
			return err
		}
	}
	return nil
}

func writeZipEntry(target string, f *zip.File) error {
	src, err := f.Open()
	if err != nil {
		return errors.Wrap(errors.ErrCodeExtraction, err, "failed to read entry "+f.Name)
	}
	defer src.Close()
	return writeFile(target, src)
}

func extractTarGz(path, destDir string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeExtraction, err, "failed to open archive "+filepath.Base(path))
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return errors.Wrap(errors.ErrCodeExtraction, err, "failed to read gzip stream")
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(errors.ErrCodeExtraction, err, "failed to read tar stream")
		}
		// Directories materialize through their children's parent dirs.
		if hdr.Typeflag == tar.TypeDir {
			continue
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		if err := errors.ValidateEntryName(hdr.Name); err != nil {
			return errors.Wrap(errors.ErrCodeExtraction, err, "rejecting archive entry")
		}
		target := filepath.Join(destDir, filepath.FromSlash(hdr.Name))
		if err := writeFile(target, tr); err != nil {
			return err
		}
	}
}

func writeFile(target string, src io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeExtraction, err, "failed to create directory")
	}
	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(errors.ErrCodeExtraction, err, "failed to create "+filepath.Base(target))
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.Wrap(errors.ErrCodeExtraction, err, "failed to write "+filepath.Base(target))
	}
	return nil
}
