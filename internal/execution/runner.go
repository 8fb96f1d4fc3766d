package execution

import (
	"context"
	"io"
	"os"
	"os/exec"

	"testkit/internal/config"
	"testkit/internal/domain"
)

// Runner executes a single test variant
type Runner struct {
	config *config.Config
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a new Runner for the configured test executable
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg, stdout: os.Stdout, stderr: os.Stderr}
}

// SetOutput redirects the executable's stdout and stderr
func (r *Runner) SetOutput(stdout, stderr io.Writer) {
	r.stdout = stdout
	r.stderr = stderr
}

// RunArgs returns the arguments selecting a single test case by qualified name
func RunArgs(name string) []string {
	return []string{"-tc=" + name}
}

// Run executes the contract's test inside the contract's directory.
// It blocks until the executable exits; a non-zero exit is an ExecutableError.
// The executable path must be absolute or resolvable from the case directory.
func (r *Runner) Run(ctx context.Context, contract domain.OutputContract) error {
	cmd := exec.CommandContext(ctx, r.config.Executable, RunArgs(contract.Test.Name)...)

	// Set working directory, the executable writes its image there
	cmd.Dir = contract.Dir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		return domain.NewExecutableError(domain.ModeRun, contract.Test.Name, err)
	}
	return nil
}
