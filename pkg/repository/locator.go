// Package repository resolves Maven coordinates to artifact files in the
// local repository on disk.
//
// The local repository lays artifacts out as
//
//	<root>/<group path>/<artifactId>/<version>/<artifactId>-<version>.<ext>
//
// where the group path is the group ID with dots replaced by directory
// separators. Source archives sit next to the binary with a "-sources"
// suffix before the extension. The locator only reports files that
// actually exist; it never touches the network.
package repository

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/mvnsrc/pkg/maven"
)

// Location holds the on-disk paths for one artifact. A path is empty when
// the corresponding file is not present in the repository.
type Location struct {
	Binary string
	Source string
}

// HasBinary reports whether the compiled artifact was found.
func (l Location) HasBinary() bool { return l.Binary != "" }

// HasSource reports whether the sources archive was found.
func (l Location) HasSource() bool { return l.Source != "" }

// Locator finds artifacts under a local repository root.
type Locator struct {
	Root string
}

// Locate returns the paths of the dependency's binary and sources archives,
// checking each for existence.
func (l *Locator) Locate(dep maven.Dependency) Location {
	ext := dep.Type
	if ext == "" {
		ext = "jar"
	}

	groupPath := filepath.FromSlash(strings.ReplaceAll(dep.GroupID, ".", "/"))
	dir := filepath.Join(l.Root, groupPath, dep.ArtifactID, dep.Version)
	stem := dep.ArtifactID + "-" + dep.Version

	var loc Location
	if p := filepath.Join(dir, stem+"."+ext); regularFile(p) {
		loc.Binary = p
	}
	if p := filepath.Join(dir, stem+"-sources."+ext); regularFile(p) {
		loc.Source = p
	}
	return loc
}

// DefaultRoot returns the conventional local repository location,
// ~/.m2/repository.
func DefaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".m2", "repository")
	}
	return filepath.Join(home, ".m2", "repository")
}

func regularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
