package commands

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"testkit/internal/config"
	"testkit/internal/discovery"
	"testkit/internal/execution"
	"testkit/internal/report"
	"testkit/internal/storage"
	"testkit/internal/ui"
)

type recordingOpener struct {
	opened []string
	err    error
}

func (o *recordingOpener) Open(path string) error {
	o.opened = append(o.opened, path)
	return o.err
}

type fixture struct {
	cfg     *config.Config
	opener  *recordingOpener
	storage storage.Storage
	run     *RunCommand
	list    *ListCommand
	report  *ReportCommand
	repo    string
	listOut *strings.Builder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := t.TempDir()
	if err := os.Mkdir(filepath.Join(repo, ".git"), 0755); err != nil {
		t.Fatalf("failed to create repository marker: %v", err)
	}

	cfg := config.New()
	cfg.OutputDir = t.TempDir()
	cfg.SearchStart = filepath.Join(repo, "build")

	lister := discovery.NewLister(discovery.NewParser())
	lister.SetOutput(io.Discard, io.Discard)
	runner := execution.NewRunner(cfg)
	runner.SetOutput(io.Discard, io.Discard)
	executor := execution.NewSequentialExecutor(cfg, runner)

	htmlReport, err := report.NewHTMLReport()
	if err != nil {
		t.Fatalf("failed to create report: %v", err)
	}

	listOut := &strings.Builder{}
	listFormatter := ui.NewFormatter(cfg)
	listFormatter.SetOutput(listOut)
	formatter := ui.NewFormatter(cfg)
	formatter.SetOutput(io.Discard)

	st := storage.NewJSONStorage(cfg)
	opener := &recordingOpener{}

	run := NewRunCommand(cfg, lister, discovery.NewFilter(), discovery.NewGrouper(), executor, htmlReport, st, formatter, opener)
	run.progress = false

	return &fixture{
		cfg:     cfg,
		opener:  opener,
		storage: st,
		run:     run,
		list:    NewListCommand(cfg, lister, discovery.NewFilter(), discovery.NewGrouper(), listFormatter),
		report:  NewReportCommand(cfg, htmlReport, st, formatter, opener),
		repo:    repo,
		listOut: listOut,
	}
}

func testCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func readReport(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	return string(data)
}
