package commands

import (
	"github.com/spf13/cobra"

	"testkit/internal/config"
	"testkit/internal/launch"
	"testkit/internal/report"
	"testkit/internal/storage"
	"testkit/internal/ui"
)

// ReportCommand re-renders the report of the last run
type ReportCommand struct {
	config    *config.Config
	report    *report.HTMLReport
	storage   storage.Storage
	formatter *ui.Formatter
	opener    launch.Opener
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(cfg *config.Config, htmlReport *report.HTMLReport, st storage.Storage, formatter *ui.Formatter, opener launch.Opener) *ReportCommand {
	return &ReportCommand{
		config:    cfg,
		report:    htmlReport,
		storage:   st,
		formatter: formatter,
		opener:    opener,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	manifest, err := rc.storage.Load()
	if err != nil {
		return err
	}

	results := manifest.Table()
	columns := report.Columns(rc.config.Backends, results, rc.config.StrictColumns)
	path, err := rc.report.Write(results, columns, rc.config.GetReportPath())
	if err != nil {
		return err
	}

	rc.formatter.PrintReport(path)
	openReport(rc.config, rc.opener, path)
	return nil
}
