package maven

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/mvnsrc/pkg/errors"
	"github.com/matzehuels/mvnsrc/pkg/procutil"
)

// Goal timeouts. Resolving a large tree is quick next to downloading the
// source jars for it, hence the asymmetry.
const (
	treeTimeout    = 5 * time.Minute
	sourcesTimeout = 10 * time.Minute
)

// DefaultTreeFile is the scratch file the dependency:tree goal writes into
// the project directory. It is deleted again after parsing.
const DefaultTreeFile = "dependency-tree.txt"

// Invoker shells out to Maven inside a single project directory.
type Invoker struct {
	Maven      string // mvn executable, full path or bare name
	ProjectDir string // directory containing pom.xml
	TreeFile   string // scratch file name; DefaultTreeFile when empty
}

// DependencyTree enumerates the project's dependencies by running
// `mvn dependency:tree` with a file output, parsing the scratch file and
// deleting it afterwards. The project's own coordinate is not included.
//
// Errors here are fatal to a run: a missing pom.xml, a Maven invocation
// that cannot start or exits non-zero, or a scratch file that never
// appeared despite a clean exit.
func (inv *Invoker) DependencyTree(ctx context.Context, directOnly bool) ([]Dependency, error) {
	data, err := inv.treeData(ctx)
	if err != nil {
		return nil, err
	}
	return ParseTreeText(string(data), directOnly), nil
}

// DependencyTreeGraph is the structure-preserving variant used for
// rendering: it keeps the project root, duplicates and parent links.
func (inv *Invoker) DependencyTreeGraph(ctx context.Context) ([]TreeNode, error) {
	data, err := inv.treeData(ctx)
	if err != nil {
		return nil, err
	}
	return ParseTreeGraphText(string(data)), nil
}

// DownloadSources asks Maven to fetch the -sources artifacts for the whole
// dependency set in one pass. Callers treat a failure as a warning: later
// per-dependency lookups simply find fewer source jars.
func (inv *Invoker) DownloadSources(ctx context.Context) error {
	res, err := procutil.Run(ctx, procutil.Options{
		Command: []string{inv.Maven, "dependency:sources"},
		Dir:     inv.ProjectDir,
		Timeout: sourcesTimeout,
	})
	if err != nil {
		return err
	}
	if !res.Success() {
		return errors.Wrap(errors.ErrCodeProcess,
			&errors.ExitError{ExitCode: res.ExitCode, Stderr: res.Tail()},
			"maven dependency:sources failed")
	}
	return nil
}

func (inv *Invoker) treeData(ctx context.Context) ([]byte, error) {
	pom := filepath.Join(inv.ProjectDir, "pom.xml")
	if _, err := os.Stat(pom); err != nil {
		return nil, errors.New(errors.ErrCodePomNotFound, "pom.xml not found: %s", pom)
	}

	treeFile := inv.treeFile()
	res, err := procutil.Run(ctx, procutil.Options{
		Command: []string{inv.Maven, "dependency:tree", "-DoutputFile=" + treeFile, "-DappendOutput=false"},
		Dir:     inv.ProjectDir,
		Timeout: treeTimeout,
	})
	if err != nil {
		return nil, err
	}
	if !res.Success() {
		return nil, errors.Wrap(errors.ErrCodeProcess,
			&errors.ExitError{ExitCode: res.ExitCode, Stderr: res.Tail()},
			"maven dependency:tree failed")
	}

	path := filepath.Join(inv.ProjectDir, treeFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err,
			"dependency tree output missing: %s", treeFile)
	}
	_ = os.Remove(path)

	return data, nil
}

func (inv *Invoker) treeFile() string {
	if inv.TreeFile != "" {
		return inv.TreeFile
	}
	return DefaultTreeFile
}
