package commands

import (
	"fmt"
	"io"
	"regexp"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"utgen/internal/cli"
	"utgen/internal/config"
	"utgen/internal/discovery"
	"utgen/internal/domain"
	"utgen/internal/rewrite"
	"utgen/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Generate *GenerateCommand
	List     *ListCommand
	Check    *CheckCommand

	deps *dependencies
}

// dependencies are shared by every command and wired once flags are parsed,
// since the logger depends on --debug.
type dependencies struct {
	config *config.Config
	out    io.Writer
	errOut io.Writer

	logger     *log.Logger
	discoverer *discovery.Discoverer
	rewriter   *rewrite.Rewriter
	formatter  *ui.Formatter
}

// NewCommands creates all commands. Summaries go to out, debug output and
// progress to errOut.
func NewCommands(cfg *config.Config, out, errOut io.Writer) *Commands {
	deps := &dependencies{
		config: cfg,
		out:    out,
		errOut: errOut,
	}

	return &Commands{
		Generate: newGenerateCommand(deps),
		List:     newListCommand(deps),
		Check:    newCheckCommand(deps),
		deps:     deps,
	}
}

// Register registers all commands with cobra. The root command itself runs
// the generator.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.RunE = c.Generate.Execute
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Apply(flags.ToConfigFlags())
		return c.deps.init()
	}
	rootCmd.PersistentFlags().BoolVarP(&flags.Debug, "debug", "d", false, "Enable debug messages")

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered unit tests",
		Long:  "Scan the unit test directory and print the discovered tests without touching any file",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	rootCmd.AddCommand(listCmd)

	// Check command
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Verify generated sections are up to date",
		Long:  "Fail when the declarations or the runner registrations do not match the discovered unit tests",
		Args:  cobra.NoArgs,
		RunE:  c.Check.Execute,
	}
	rootCmd.AddCommand(checkCmd)
}

func (d *dependencies) init() error {
	if err := d.config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	d.logger = ui.NewLogger(d.errOut, d.config.Flags.Debug)
	scanner := discovery.NewScanner(regexp.MustCompile(d.config.SourcePattern), d.config.RunnerFile)
	parser := discovery.NewParser(regexp.MustCompile(d.config.FunctionPattern))
	d.discoverer = discovery.NewDiscoverer(scanner, parser, d.logger)
	d.rewriter = rewrite.NewRewriter(d.logger)
	d.formatter = ui.NewFormatter(d.out)
	return nil
}

// discover builds the discovery mapping, showing a progress bar unless
// debug output is on.
func (d *dependencies) discover() (*domain.Mapping, error) {
	d.logger.Debug("collecting unit tests")

	files, err := d.discoverer.Scan(d.config.GetUnitTestDir())
	if err != nil {
		return nil, err
	}

	if !d.config.Flags.Debug && len(files) > 0 {
		d.discoverer.SetProgress(ui.NewProgressBar(d.errOut, len(files)))
		defer d.discoverer.SetProgress(nil)
	}

	return d.discoverer.Collect(files)
}

// sections returns the headers and runner sections, in the order they are rewritten
func (d *dependencies) sections() ([]rewrite.Section, error) {
	headers, err := rewrite.HeaderSection(d.config)
	if err != nil {
		return nil, err
	}
	runner, err := rewrite.RunnerSection(d.config)
	if err != nil {
		return nil, err
	}
	return []rewrite.Section{headers, runner}, nil
}
