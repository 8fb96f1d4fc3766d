package commands

import (
	"github.com/spf13/cobra"

	"testkit/internal/config"
	"testkit/internal/storage"
	"testkit/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	manifest, err := vc.storage.Load()
	if err != nil {
		return err
	}

	return vc.viewer.View(manifest)
}
