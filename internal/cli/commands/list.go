package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"testkit/internal/config"
	"testkit/internal/discovery"
	"testkit/internal/ui"
	"testkit/internal/workspace"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	lister    *discovery.Lister
	filter    *discovery.Filter
	grouper   *discovery.Grouper
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	lister *discovery.Lister,
	filter *discovery.Filter,
	grouper *discovery.Grouper,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		lister:    lister,
		filter:    filter,
		grouper:   grouper,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	executable, err := workspace.ResolveExecutable(args[0])
	if err != nil {
		return err
	}
	lc.config.Executable = executable

	tests, err := lc.lister.List(cmd.Context(), lc.config.Executable, lc.config.GetListPath())
	if err != nil {
		return err
	}

	// Filter tests
	tests = lc.filter.Apply(tests, discovery.FilterOptions{
		Subsystem:    lc.config.Subsystem,
		NameContains: lc.config.NameFilter,
	})

	if len(tests) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	lc.formatter.PrintTestList(lc.grouper.Group(tests))
	return nil
}
