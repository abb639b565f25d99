package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mvnsrc/pkg/errors"
	"github.com/matzehuels/mvnsrc/pkg/maven"
	"github.com/matzehuels/mvnsrc/pkg/treeviz"
)

// treeFormats lists the accepted --format values.
var treeFormats = []string{"list", "dot", "svg", "json"}

// treeCommand creates the tree command.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		format    string
		output    string
		mavenPath string
	)

	cmd := &cobra.Command{
		Use:   "tree <project-dir>",
		Short: "Render the project's dependency tree",
		Long: `Tree resolves the project's dependency graph without extracting
anything and renders it as an indented list, Graphviz DOT, SVG, or a
JSON node/edge document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTree(cmd.Context(), args[0], format, output, mavenPath)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "list", fmt.Sprintf("output format: %s", strings.Join(treeFormats, ", ")))
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	cmd.Flags().StringVar(&mavenPath, "maven", "", "mvn executable (default $MAVEN_HOME/bin/mvn, then PATH)")

	return cmd
}

// runTree executes the tree command.
func (c *CLI) runTree(ctx context.Context, projectArg, format, outPath, mavenPath string) error {
	ctx = withLogger(ctx, c.Logger)

	if !validTreeFormat(format) {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (expected one of: %s)", format, strings.Join(treeFormats, ", "))
	}

	cfg, err := loadConfig(c.configFile)
	if err != nil {
		return err
	}

	projectDir, err := resolveProjectDir(projectArg)
	if err != nil {
		return err
	}

	mvn, err := resolveMaven(ctx, firstNonEmpty(mavenPath, cfg.Maven))
	if err != nil {
		return err
	}

	spin := newSpinner(ctx, "Resolving dependency tree")
	spin.Start()
	nodes, err := (&maven.Invoker{Maven: mvn, ProjectDir: projectDir}).DependencyTreeGraph(ctx)
	if err != nil {
		spin.StopWithError("Dependency tree failed")
		return err
	}
	spin.Stop()

	out, err := openOutput(outPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to create "+outPath)
	}
	defer out.Close()

	if err := renderTree(ctx, nodes, format, out); err != nil {
		return err
	}

	if outPath != "" {
		printSuccess("Dependency tree written")
		printFile(outPath)
	}
	return nil
}

// renderTree writes nodes to w in the requested format.
func renderTree(ctx context.Context, nodes []maven.TreeNode, format string, w io.Writer) error {
	switch format {
	case "dot":
		_, err := io.WriteString(w, treeviz.ToDOT(nodes))
		return err
	case "svg":
		svg, err := treeviz.RenderSVG(ctx, treeviz.ToDOT(nodes))
		if err != nil {
			return err
		}
		_, err = w.Write(svg)
		return err
	case "json":
		return treeviz.WriteJSON(nodes, w)
	default:
		_, err := io.WriteString(w, treeviz.ToText(nodes))
		return err
	}
}

func validTreeFormat(format string) bool {
	for _, f := range treeFormats {
		if f == format {
			return true
		}
	}
	return false
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
