// Package decompile turns compiled class archives back into Java sources
// by driving a Fernflower decompiler jar through an external JVM.
package decompile

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/matzehuels/mvnsrc/pkg/errors"
	"github.com/matzehuels/mvnsrc/pkg/procutil"
)

// Decompiling a single dependency jar is usually a matter of seconds;
// anything beyond this deadline is a hung JVM.
const decompileTimeout = 2 * time.Minute

// Decompiler wraps one Fernflower jar. The zero value is unusable; set
// JarPath, and optionally Java to pin a specific JVM launcher.
type Decompiler struct {
	JarPath string
	Java    string
}

// New returns a Decompiler for the given Fernflower jar, resolving the JVM
// launcher from the environment.
func New(jarPath string) *Decompiler {
	return &Decompiler{JarPath: jarPath, Java: JavaExecutable()}
}

// Available reports whether the decompiler jar exists on disk. Callers
// check this once up front so a misconfigured path disables decompilation
// instead of failing every dependency individually.
func (d *Decompiler) Available() bool {
	info, err := os.Stat(d.JarPath)
	return err == nil && info.Mode().IsRegular()
}

// Decompile reconstructs sources for the classes in jarPath, writing the
// result into outDir. Fernflower emits an archive-shaped tree there, one
// entry per input archive.
func (d *Decompiler) Decompile(ctx context.Context, jarPath, outDir string) error {
	if !d.Available() {
		return errors.New(errors.ErrCodeFileNotFound, "decompiler jar not found: %s", d.JarPath)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeDecompile, err, "failed to create "+filepath.Base(outDir))
	}

	java := d.Java
	if java == "" {
		java = JavaExecutable()
	}

	// -hes=0 -hdc=0 keep default constructors and empty super() calls
	// in the emitted sources.
	res, err := procutil.Run(ctx, procutil.Options{
		Command: []string{java, "-jar", d.JarPath, "-hes=0", "-hdc=0", jarPath, outDir},
		Timeout: decompileTimeout,
	})
	if err != nil {
		return err
	}
	if !res.Success() {
		return errors.Wrap(errors.ErrCodeDecompile,
			&errors.ExitError{ExitCode: res.ExitCode, Stderr: res.Tail()},
			"decompiler failed on "+filepath.Base(jarPath))
	}
	return nil
}

// JavaExecutable resolves the JVM launcher, preferring JAVA_HOME over a
// bare PATH lookup.
func JavaExecutable() string {
	if home := strings.TrimSpace(os.Getenv("JAVA_HOME")); home != "" {
		return filepath.Join(home, "bin", launcherName())
	}
	return launcherName()
}

func launcherName() string {
	if runtime.GOOS == "windows" {
		return "java.exe"
	}
	return "java"
}
