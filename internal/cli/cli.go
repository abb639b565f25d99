// Package cli implements the mvnsrc command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mvnsrc/pkg/buildinfo"
	"github.com/matzehuels/mvnsrc/pkg/decompile"
	"github.com/matzehuels/mvnsrc/pkg/errors"
	"github.com/matzehuels/mvnsrc/pkg/maven"
	"github.com/matzehuels/mvnsrc/pkg/repository"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "mvnsrc"

	// defaultOutputDir is where extracted sources land, relative to the
	// project directory.
	defaultOutputDir = "third"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configFile string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "mvnsrc",
		Short: "Mvnsrc extracts the sources of a Maven project's dependencies",
		Long: `Mvnsrc collects readable source code for every dependency of a Maven
project: it unpacks published source jars from the local repository and
falls back to decompiling the binary artifact when no sources exist.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/mvnsrc/config.toml)")

	// Register all subcommands
	root.AddCommand(c.extractCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Collaborator Resolution
// =============================================================================

// resolveProjectDir validates and absolutizes the project directory argument.
func resolveProjectDir(arg string) (string, error) {
	dir, err := filepath.Abs(arg)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "invalid project directory")
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", errors.New(errors.ErrCodeInvalidPath, "not a directory: %s", dir)
	}
	return dir, nil
}

// resolveMaven picks the mvn executable. An explicitly configured path must
// prove itself with a version probe; otherwise MAVEN_HOME and PATH are
// searched.
func resolveMaven(ctx context.Context, explicit string) (string, error) {
	if explicit != "" {
		if !maven.Available(ctx, explicit) {
			return "", errors.New(errors.ErrCodeCommandNotFound, "not a usable maven executable: %s", explicit)
		}
		return explicit, nil
	}
	return maven.Find(ctx)
}

// resolveOutputDir applies the precedence chain for the extraction target
// and anchors relative paths at the project directory.
func resolveOutputDir(flagValue string, cfg Config, projectDir string) string {
	out := firstNonEmpty(flagValue, os.Getenv(envOutput), cfg.Output, defaultOutputDir)
	if !filepath.IsAbs(out) {
		out = filepath.Join(projectDir, out)
	}
	return out
}

// resolveRepositoryRoot applies the precedence chain for the local Maven
// repository.
func resolveRepositoryRoot(flagValue string, cfg Config) string {
	if root := firstNonEmpty(flagValue, os.Getenv(envRepository), cfg.Repository); root != "" {
		return root
	}
	return repository.DefaultRoot()
}

// newDecompiler builds the decompiler when one is configured and its jar
// exists. A configured-but-missing jar is reported once and decompilation
// disabled for the run.
func newDecompiler(flagValue string, cfg Config) *decompile.Decompiler {
	path := firstNonEmpty(flagValue, os.Getenv(envDecompiler), cfg.Decompiler)
	if path == "" {
		return nil
	}
	d := decompile.New(path)
	if !d.Available() {
		printWarning("Decompiler jar not found at %s, decompilation disabled", path)
		return nil
	}
	return d
}
