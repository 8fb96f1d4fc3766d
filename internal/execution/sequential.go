package execution

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"testkit/internal/config"
	"testkit/internal/domain"
	"testkit/internal/ui"
)

// SequentialExecutor runs every variant of every group one after another
type SequentialExecutor struct {
	config   *config.Config
	runner   *Runner
	progress *ui.ProgressBar
}

var _ Executor = (*SequentialExecutor)(nil)

// NewSequentialExecutor creates a new SequentialExecutor
func NewSequentialExecutor(cfg *config.Config, runner *Runner) *SequentialExecutor {
	return &SequentialExecutor{
		config: cfg,
		runner: runner,
	}
}

// SetProgress sets the progress bar for the executor
func (e *SequentialExecutor) SetProgress(progress *ui.ProgressBar) {
	e.progress = progress
}

// Execute runs each group's variants in order and records the reference and backend images.
// The first failing variant aborts the run and no table is returned.
func (e *SequentialExecutor) Execute(ctx context.Context, groups domain.TestGroups, repoRoot string) (*domain.ResultTable, time.Duration, error) {
	startTime := time.Now()
	results := domain.NewResultTable()
	completed := 0

	for _, group := range groups {
		dir := e.config.GetCaseDir(group.Case)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, time.Since(startTime), fmt.Errorf("create test directory: %w", err)
		}

		results.Set(group.Case, domain.ReferenceColumn, e.config.GetReferencePath(repoRoot, group.Case))

		for _, variant := range group.Variants {
			if e.progress != nil {
				e.progress.Clear()
			}
			color.Cyan(strings.Join(variant.Components, domain.NameSeparator))

			contract := domain.NewOutputContract(variant, dir)
			if err := e.runner.Run(ctx, contract); err != nil {
				return nil, time.Since(startTime), err
			}

			completed++
			if e.progress != nil {
				e.progress.Update(completed, variant.Name)
			}

			if err := contract.Validate(); err != nil {
				color.Yellow("Warning: %v", err)
				continue
			}
			results.Set(group.Case, variant.Backend(), contract.Image)
		}
	}

	if e.progress != nil {
		e.progress.Finish()
	}
	return results, time.Since(startTime), nil
}
