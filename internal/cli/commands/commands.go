package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"testkit/internal/cli"
	"testkit/internal/config"
	"testkit/internal/discovery"
	"testkit/internal/execution"
	"testkit/internal/launch"
	"testkit/internal/report"
	"testkit/internal/storage"
	"testkit/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run    *RunCommand
	List   *ListCommand
	Report *ReportCommand
	View   *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) (*Commands, error) {
	opener := launch.NewBrowserOpener()
	return NewCommandsWithOpener(cfg, opener)
}

// NewCommandsWithOpener creates all commands, opening reports and images with opener
func NewCommandsWithOpener(cfg *config.Config, opener launch.Opener) (*Commands, error) {
	// Initialize dependencies
	parser := discovery.NewParser()
	lister := discovery.NewLister(parser)
	filter := discovery.NewFilter()
	grouper := discovery.NewGrouper()
	runner := execution.NewRunner(cfg)
	executor := execution.NewSequentialExecutor(cfg, runner)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	viewer := ui.NewResultsViewer(opener)

	htmlReport, err := report.NewHTMLReport()
	if err != nil {
		return nil, err
	}

	return &Commands{
		Run:    NewRunCommand(cfg, lister, filter, grouper, executor, htmlReport, jsonStorage, formatter, opener),
		List:   NewListCommand(cfg, lister, filter, grouper, formatter),
		Report: NewReportCommand(cfg, htmlReport, jsonStorage, formatter, opener),
		View:   NewViewCommand(cfg, jsonStorage, viewer),
	}, nil
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Load configuration once flags are parsed, for every command
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		// keep the pointer shared with the commands' dependencies
		search := cfg.SearchStart
		*cfg = *loaded
		if cfg.SearchStart == "" {
			cfg.SearchStart = search
		}
		return nil
	}
	rootCmd.PersistentFlags().StringVarP(&flags.Directory, "directory", "d", config.DefaultOutputDir, "Target directory for the generated test output and report")
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "", fmt.Sprintf("Path to a YAML config file (default ./%s when present)", config.DefaultConfigFile))
	rootCmd.PersistentFlags().BoolVar(&flags.NoOpen, "no-open", false, "Do not open the report in the default viewer")
	rootCmd.PersistentFlags().BoolVar(&flags.StrictColumns, "strict-columns", false, "Only report the configured backend columns")

	// The root command runs tests when given an executable
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return c.Run.Execute(cmd, args)
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run <executable>",
		Short: "Run the rendering tests and open the visual report",
		Long:  "Discover the tests of the TestKit executable, run every backend variant and write an HTML report comparing them with the reference images",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Run.Execute,
	}
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list <executable>",
		Short: "List discovered tests",
		Long:  "List the tests the TestKit executable would run, grouped by test case",
		Args:  cobra.ExactArgs(1),
		RunE:  c.List.Execute,
	}
	rootCmd.AddCommand(listCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Regenerate the report of the last run",
		Long:  "Write the HTML report again from the results of the last run and open it",
		Args:  cobra.NoArgs,
		RunE:  c.Report.Execute,
	}
	rootCmd.AddCommand(reportCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the results of the last run",
		Long:  "Display the images of the last run in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)
}
