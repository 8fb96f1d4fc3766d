package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"testkit/internal/cli"
	"testkit/internal/cli/commands"
	"testkit/internal/config"
	"testkit/internal/exitcodes"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "testkit <executable>",
		Short:         "Visual test runner for the rendering backends",
		Long:          `Runs every backend variant of the rhi tests in the TestKit executable and builds an HTML report that shows each rendered image next to its reference.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds, err := commands.NewCommands(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(exitcodes.RuntimeErr)
	}

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		stop()
		os.Exit(exitcodes.FromError(err))
	}
}
