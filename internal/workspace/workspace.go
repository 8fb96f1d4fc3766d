package workspace

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"testkit/internal/domain"
)

// Prepare creates dir and removes everything inside it.
// An entry that cannot be removed is reported and left in place.
func Prepare(dir string) error {
	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create run directory: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read run directory: %w", err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			color.Yellow("Failed to delete %s. Reason: %v", path, err)
		}
	}
	return nil
}

// FindRepositoryRoot walks up from start until a directory containing marker is found
func FindRepositoryRoot(start, marker string) (string, error) {
	current, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", start, err)
	}

	for {
		// the marker is a directory in a plain checkout and a file in a worktree
		if _, err := os.Stat(filepath.Join(current, marker)); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("%w: searched upward from %s", domain.ErrRepositoryRootNotFound, start)
		}
		current = parent
	}
}

// ResolveExecutable returns the path the test executable can be invoked by from any directory.
// A bare name is looked up in PATH; a path with a separator is made absolute.
func ResolveExecutable(path string) (string, error) {
	resolved, err := exec.LookPath(path)
	if err != nil {
		return "", fmt.Errorf("test executable %s: %w", path, err)
	}
	if !strings.ContainsRune(resolved, filepath.Separator) && !strings.ContainsRune(resolved, '/') {
		return resolved, nil
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("resolve test executable %s: %w", path, err)
	}
	return abs, nil
}
