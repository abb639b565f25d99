// Package extract orchestrates the end-to-end source extraction for a
// Maven project: enumerate the dependency tree, ask Maven to fetch source
// archives, then walk the dependencies one by one and unpack sources,
// decompile binaries, or record why neither was possible.
//
// Dependencies are processed strictly sequentially. The run is dominated
// by subprocess and filesystem work against a shared local repository, and
// Maven itself does not tolerate concurrent invocations in one project
// directory.
package extract

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mvnsrc/pkg/archive"
	"github.com/matzehuels/mvnsrc/pkg/decompile"
	"github.com/matzehuels/mvnsrc/pkg/errors"
	"github.com/matzehuels/mvnsrc/pkg/maven"
	"github.com/matzehuels/mvnsrc/pkg/repository"
)

// Options configures an Extractor.
type Options struct {
	Invoker    *maven.Invoker
	Locator    *repository.Locator
	Decompiler *decompile.Decompiler // nil disables decompilation
	OutputDir  string
	DirectOnly bool
	Logger     *log.Logger
}

// Extractor drives one extraction run.
type Extractor struct {
	opts Options
	log  *log.Logger
}

// New returns an Extractor for the given options.
func New(opts Options) *Extractor {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Extractor{opts: opts, log: logger}
}

// Per-dependency outcomes. Each processed dependency lands in exactly one.
type outcome int

const (
	outcomeSourceExtracted outcome = iota
	outcomeDecompiled
	outcomeSkipped
	outcomeFailed
)

// Run enumerates the project's dependencies and processes all of them.
func (e *Extractor) Run(ctx context.Context) (*Stats, error) {
	deps, err := e.Dependencies(ctx)
	if err != nil {
		return nil, err
	}
	return e.Process(ctx, deps)
}

// Dependencies resolves the project's dependency list without processing
// it, honoring the configured direct-only setting.
func (e *Extractor) Dependencies(ctx context.Context) ([]maven.Dependency, error) {
	return e.opts.Invoker.DependencyTree(ctx, e.opts.DirectOnly)
}

// Process handles an explicit dependency list. The interactive flow hands
// a user-chosen subset here; Run passes the full tree.
func (e *Extractor) Process(ctx context.Context, deps []maven.Dependency) (*Stats, error) {
	stats := &Stats{Total: len(deps)}
	if len(deps) == 0 {
		e.log.Warn("no dependencies found, nothing to extract")
		return stats, nil
	}

	// One bulk download for the whole set. Failure only means later
	// lookups find fewer source jars.
	if err := e.opts.Invoker.DownloadSources(ctx); err != nil {
		e.log.Warn("source download failed, relying on local repository", "err", err)
	}

	if err := os.MkdirAll(e.opts.OutputDir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to create output directory")
	}

	for _, dep := range deps {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		switch e.processDependency(ctx, dep) {
		case outcomeSourceExtracted:
			stats.SourceExtracted++
		case outcomeDecompiled:
			stats.Decompiled++
		case outcomeSkipped:
			stats.Skipped++
		case outcomeFailed:
			stats.Failed++
		}
	}
	return stats, nil
}

func (e *Extractor) processDependency(ctx context.Context, dep maven.Dependency) outcome {
	if err := errors.ValidateDirName(dep.ArtifactID); err != nil {
		e.log.Error("unusable artifact id", "dependency", dep.Key(), "err", err)
		return outcomeFailed
	}

	loc := e.opts.Locator.Locate(dep)
	switch {
	case loc.HasSource():
		dest := filepath.Join(e.opts.OutputDir, dep.ArtifactID)
		if err := archive.Extract(loc.Source, dest); err != nil {
			e.log.Error("source extraction failed", "dependency", dep.Key(), "err", err)
			return outcomeFailed
		}
		e.log.Info("extracted sources", "dependency", dep.Key())
		return outcomeSourceExtracted

	case loc.HasBinary() && e.opts.Decompiler != nil && e.opts.Decompiler.Available():
		if err := e.decompileBinary(ctx, dep, loc.Binary); err != nil {
			e.log.Error("decompilation failed", "dependency", dep.Key(), "err", err)
			return outcomeFailed
		}
		e.log.Info("decompiled binary", "dependency", dep.Key())
		return outcomeDecompiled

	case loc.HasBinary():
		// A binary without a usable decompiler is degraded, not failed.
		e.log.Warn("no sources and no usable decompiler", "dependency", dep.Key())
		return outcomeSkipped

	default:
		e.log.Warn("artifact not found in local repository", "dependency", dep.Key())
		return outcomeFailed
	}
}

// decompileBinary runs the decompiler into a scratch directory next to the
// final destination, then relocates the single nested tree the decompiler
// produces to <outputDir>/<artifactId>.
func (e *Extractor) decompileBinary(ctx context.Context, dep maven.Dependency, binary string) error {
	scratch := filepath.Join(e.opts.OutputDir, dep.ArtifactID+"_temp")
	if err := e.opts.Decompiler.Decompile(ctx, binary, scratch); err != nil {
		_ = archive.RemoveTree(scratch)
		return err
	}

	entries, err := os.ReadDir(scratch)
	if err != nil {
		_ = archive.RemoveTree(scratch)
		return errors.Wrap(errors.ErrCodeDecompile, err, "failed to read decompiler output")
	}
	if len(entries) == 0 {
		_ = archive.RemoveTree(scratch)
		return errors.New(errors.ErrCodeDecompile, "decompiler produced no output")
	}

	nested := filepath.Join(scratch, entries[0].Name())
	dest := filepath.Join(e.opts.OutputDir, dep.ArtifactID)
	if err := archive.CopyDir(nested, dest); err != nil {
		_ = archive.RemoveTree(scratch)
		return err
	}
	return archive.RemoveTree(scratch)
}
