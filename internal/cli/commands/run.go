package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"testkit/internal/config"
	"testkit/internal/discovery"
	"testkit/internal/domain"
	"testkit/internal/execution"
	"testkit/internal/launch"
	"testkit/internal/report"
	"testkit/internal/storage"
	"testkit/internal/ui"
	"testkit/internal/workspace"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	lister    *discovery.Lister
	filter    *discovery.Filter
	grouper   *discovery.Grouper
	executor  *execution.SequentialExecutor
	report    *report.HTMLReport
	storage   storage.Storage
	formatter *ui.Formatter
	opener    launch.Opener

	progress bool
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	lister *discovery.Lister,
	filter *discovery.Filter,
	grouper *discovery.Grouper,
	executor *execution.SequentialExecutor,
	htmlReport *report.HTMLReport,
	st storage.Storage,
	formatter *ui.Formatter,
	opener launch.Opener,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		lister:    lister,
		filter:    filter,
		grouper:   grouper,
		executor:  executor,
		report:    htmlReport,
		storage:   st,
		formatter: formatter,
		opener:    opener,
		progress:  true,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	executable, err := workspace.ResolveExecutable(args[0])
	if err != nil {
		return err
	}
	rc.config.Executable = executable
	rc.formatter.PrintHeader()

	if err := workspace.Prepare(rc.config.GetRunDir()); err != nil {
		return err
	}

	// Discover tests
	tests, err := rc.lister.List(cmd.Context(), rc.config.Executable, rc.config.GetListPath())
	if err != nil {
		return err
	}

	// Filter and group tests
	tests = rc.filter.Apply(tests, discovery.FilterOptions{
		Subsystem:    rc.config.Subsystem,
		NameContains: rc.config.NameFilter,
	})
	groups := rc.grouper.Group(tests)

	start, err := rc.config.GetSearchStart()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}
	repoRoot, err := workspace.FindRepositoryRoot(start, config.RepositoryMarker)
	if err != nil {
		return err
	}

	if len(groups) == 0 {
		color.Yellow("No tests to execute")
	} else if rc.progress {
		rc.executor.SetProgress(ui.NewProgressBar(groups.Len()))
	}

	// Execute tests
	results, duration, err := rc.executor.Execute(cmd.Context(), groups, repoRoot)
	if err != nil {
		return err
	}

	columns := report.Columns(rc.config.Backends, results, rc.config.StrictColumns)
	path, err := rc.report.Write(results, columns, rc.config.GetReportPath())
	if err != nil {
		return err
	}

	manifest := &domain.RunManifest{
		Meta:    domain.NewRunMeta(rc.config.Executable, rc.config.GetRunDir(), repoRoot, len(tests), len(groups), duration),
		Columns: columns,
		Rows:    results.Rows,
	}
	if err := rc.storage.Save(manifest); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	rc.formatter.PrintSummary(manifest)
	rc.formatter.PrintReport(path)

	openReport(rc.config, rc.opener, path)
	return nil
}

// openReport launches the report unless disabled; failing to open it does not fail the command
func openReport(cfg *config.Config, opener launch.Opener, path string) {
	if cfg.NoOpen {
		return
	}
	if err := opener.Open(path); err != nil {
		color.Yellow("Warning: could not open report: %v", err)
	}
}
