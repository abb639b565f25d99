package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mvnsrc/pkg/errors"
	"github.com/matzehuels/mvnsrc/pkg/extract"
	"github.com/matzehuels/mvnsrc/pkg/maven"
	"github.com/matzehuels/mvnsrc/pkg/repository"
)

// extractOptions collects the extract command's flag values.
type extractOptions struct {
	output      string
	repoRoot    string
	mavenPath   string
	decompiler  string
	directOnly  bool
	interactive bool
}

// extractCommand creates the extract command.
func (c *CLI) extractCommand() *cobra.Command {
	var opts extractOptions

	cmd := &cobra.Command{
		Use:   "extract <project-dir>",
		Short: "Extract the sources of every project dependency",
		Long: `Extract resolves the project's dependency tree, downloads source jars
into the local Maven repository, and unpacks them into the output
directory, one folder per artifact. Dependencies without published
sources are decompiled from the binary jar when a decompiler is
configured, and skipped otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExtract(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output directory, resolved inside the project when relative (default "third")`)
	cmd.Flags().StringVar(&opts.repoRoot, "repository", "", "local Maven repository root (default ~/.m2/repository)")
	cmd.Flags().StringVar(&opts.mavenPath, "maven", "", "mvn executable (default $MAVEN_HOME/bin/mvn, then PATH)")
	cmd.Flags().StringVarP(&opts.decompiler, "decompiler", "d", "", "Fernflower jar used for artifacts without published sources")
	cmd.Flags().BoolVar(&opts.directOnly, "direct-only", false, "only process direct dependencies")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick dependencies from a list before extracting")

	return cmd
}

// runExtract executes the extract command.
func (c *CLI) runExtract(ctx context.Context, projectArg string, opts extractOptions) error {
	ctx = withLogger(ctx, c.Logger)

	cfg, err := loadConfig(c.configFile)
	if err != nil {
		return err
	}

	projectDir, err := resolveProjectDir(projectArg)
	if err != nil {
		return err
	}

	spin := newSpinner(ctx, "Locating Maven")
	spin.Start()
	mvn, err := resolveMaven(ctx, firstNonEmpty(opts.mavenPath, cfg.Maven))
	if err != nil {
		spin.StopWithError("No usable Maven installation")
		return err
	}
	spin.Stop()
	c.Logger.Debug("using maven", "executable", mvn)

	outputDir := resolveOutputDir(opts.output, cfg, projectDir)
	extractor := extract.New(extract.Options{
		Invoker:    &maven.Invoker{Maven: mvn, ProjectDir: projectDir},
		Locator:    &repository.Locator{Root: resolveRepositoryRoot(opts.repoRoot, cfg)},
		Decompiler: newDecompiler(opts.decompiler, cfg),
		OutputDir:  outputDir,
		DirectOnly: opts.directOnly,
		Logger:     c.Logger,
	})

	prog := newProgress(c.Logger)

	var stats *extract.Stats
	if opts.interactive {
		stats, err = c.runExtractInteractive(ctx, extractor)
	} else {
		stats, err = extractor.Run(ctx)
	}
	if err != nil {
		return err
	}
	if stats == nil || stats.Total == 0 {
		return nil
	}

	prog.done(fmt.Sprintf("Processed %d dependencies", stats.Total))

	printNewline()
	fmt.Println(renderSummary(stats))
	printNewline()

	if stats.Failed > 0 {
		printWarning("%d of %d dependencies could not be extracted", stats.Failed, stats.Total)
	} else {
		printSuccess("All dependencies extracted")
	}
	printFile(outputDir)
	printNextStep("Inspect the dependency tree", fmt.Sprintf("%s tree %s", appName, projectArg))

	return nil
}

// runExtractInteractive resolves the tree first, lets the user narrow the
// selection in a picker, and processes only the confirmed dependencies.
// A dismissed picker processes nothing.
func (c *CLI) runExtractInteractive(ctx context.Context, extractor *extract.Extractor) (*extract.Stats, error) {
	spin := newSpinner(ctx, "Resolving dependency tree")
	spin.Start()
	deps, err := extractor.Dependencies(ctx)
	if err != nil {
		spin.StopWithError("Dependency tree failed")
		return nil, err
	}
	spin.Stop()

	if len(deps) == 0 {
		c.Logger.Warn("no dependencies found, nothing to extract")
		return nil, nil
	}

	model, err := tea.NewProgram(NewDependencyPickerModel(deps), tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "dependency picker failed")
	}
	picker, ok := model.(DependencyPickerModel)
	if !ok {
		return nil, errors.New(errors.ErrCodeInternal, "unexpected picker model %T", model)
	}

	selected := picker.Selected()
	if len(selected) == 0 {
		printInfo("Nothing selected")
		return nil, nil
	}

	return extractor.Process(ctx, selected)
}
