package discovery

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"testkit/internal/domain"
)

// Lister asks the test executable for its test cases
type Lister struct {
	parser *Parser
	stdout io.Writer
	stderr io.Writer
}

// NewLister creates a new Lister writing executable output to the console
func NewLister(parser *Parser) *Lister {
	return &Lister{parser: parser, stdout: os.Stdout, stderr: os.Stderr}
}

// SetOutput redirects the executable's stdout and stderr
func (l *Lister) SetOutput(stdout, stderr io.Writer) {
	l.stdout = stdout
	l.stderr = stderr
}

// ListArgs returns the arguments that make the executable write its XML listing to out
func ListArgs(out string) []string {
	return []string{"-ltc", "-r=xml", "-out=" + out}
}

// List runs the executable in list mode, writing the listing to out, and parses it
func (l *Lister) List(ctx context.Context, executable, out string) ([]domain.TestDescriptor, error) {
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	cmd := exec.CommandContext(ctx, executable, ListArgs(out)...)
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	if err := cmd.Run(); err != nil {
		return nil, domain.NewExecutableError(domain.ModeList, "", err)
	}

	return l.parser.ParseFile(out)
}
