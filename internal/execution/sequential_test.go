package execution

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"testkit/internal/config"
	"testkit/internal/domain"
	"testkit/internal/fakeexec"
)

func groupsOf(names ...string) domain.TestGroups {
	var groups domain.TestGroups
	index := make(map[string]int)
	for _, name := range names {
		d := descriptor(name)
		i, ok := index[d.Case()]
		if !ok {
			i = len(groups)
			index[d.Case()] = i
			groups = append(groups, domain.TestGroup{Case: d.Case()})
		}
		groups[i].Variants = append(groups[i].Variants, d)
	}
	return groups
}

func newExecutor(t *testing.T, opts fakeexec.Options) (*SequentialExecutor, *config.Config, string) {
	t.Helper()
	executable, log := fakeexec.Setup(t, opts)

	cfg := config.New()
	cfg.Executable = executable
	cfg.OutputDir = t.TempDir()

	runner := NewRunner(cfg)
	runner.SetOutput(io.Discard, io.Discard)
	return NewSequentialExecutor(cfg, runner), cfg, log
}

func TestSequentialExecutor_Execute(t *testing.T) {
	executor, cfg, log := newExecutor(t, fakeexec.Options{})
	groups := groupsOf(
		"rhi::vulkan::triangle",
		"rhi::d3d12::triangle",
		"rhi::vulkan::depth_test",
	)

	results, _, err := executor.Execute(context.Background(), groups, "/repo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("one row per group", func(t *testing.T) {
		if len(results.Rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(results.Rows))
		}
	})

	t.Run("reference path is always recorded", func(t *testing.T) {
		for _, row := range results.Rows {
			path, ok := row.Image(domain.ReferenceColumn)
			expected := filepath.Join("/repo", "TestKit", row.Case, "reference.png")
			if !ok || path != expected {
				t.Errorf("expected reference %s, got %s", expected, path)
			}
		}
	})

	t.Run("backend images in the case directory", func(t *testing.T) {
		triangle := results.Row("triangle")
		for _, backend := range []string{"vulkan", "d3d12"} {
			expected := filepath.Join(cfg.GetCaseDir("triangle"), backend+".png")
			if path, _ := triangle.Image(backend); path != expected {
				t.Errorf("expected %s, got %s", expected, path)
			}
			if _, err := os.Stat(expected); err != nil {
				t.Errorf("expected %s on disk: %v", expected, err)
			}
		}
		if _, ok := results.Row("depth_test").Image("d3d12"); ok {
			t.Error("expected no d3d12 image for depth_test")
		}
	})

	t.Run("variants run in group order inside their case directory", func(t *testing.T) {
		invocations := fakeexec.Invocations(t, log)
		expected := []struct{ dir, test string }{
			{"triangle", "rhi::vulkan::triangle"},
			{"triangle", "rhi::d3d12::triangle"},
			{"depth_test", "rhi::vulkan::depth_test"},
		}
		if len(invocations) != len(expected) {
			t.Fatalf("expected %d invocations, got %v", len(expected), invocations)
		}
		for i, e := range expected {
			fields := strings.Fields(invocations[i])
			if filepath.Base(fields[0]) != e.dir || fields[1] != "-tc="+e.test {
				t.Errorf("invocation %d: expected %s in %s, got %s", i, e.test, e.dir, invocations[i])
			}
		}
	})
}

func TestSequentialExecutor_ReusesCaseDirectory(t *testing.T) {
	executor, cfg, _ := newExecutor(t, fakeexec.Options{})

	dir := cfg.GetCaseDir("triangle")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create case dir: %v", err)
	}
	marker := filepath.Join(dir, "keep.txt")
	if err := os.WriteFile(marker, []byte("keep"), 0644); err != nil {
		t.Fatalf("failed to write marker: %v", err)
	}

	if _, _, err := executor.Execute(context.Background(), groupsOf("rhi::vulkan::triangle"), "/repo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(marker); err != nil {
		t.Errorf("expected existing case directory to be reused: %v", err)
	}
}

func TestSequentialExecutor_AbortsOnFailure(t *testing.T) {
	executor, _, log := newExecutor(t, fakeexec.Options{FailRun: "rhi::d3d12::triangle"})
	groups := groupsOf(
		"rhi::vulkan::triangle",
		"rhi::d3d12::triangle",
		"rhi::vulkan::depth_test",
	)

	results, _, err := executor.Execute(context.Background(), groups, "/repo")

	var execErr *domain.ExecutableError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecutableError, got %v", err)
	}
	if execErr.Test != "rhi::d3d12::triangle" {
		t.Errorf("expected failure for rhi::d3d12::triangle, got %s", execErr.Test)
	}
	if results != nil {
		t.Error("expected no results after a failure")
	}
	if n := len(fakeexec.Invocations(t, log)); n != 2 {
		t.Errorf("expected the run to stop after 2 invocations, got %d", n)
	}
}

func TestSequentialExecutor_MissingOutput(t *testing.T) {
	executor, _, _ := newExecutor(t, fakeexec.Options{NoImage: "rhi::d3d12::triangle"})

	results, _, err := executor.Execute(context.Background(), groupsOf("rhi::vulkan::triangle", "rhi::d3d12::triangle"), "/repo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row := results.Row("triangle")
	if _, ok := row.Image("vulkan"); !ok {
		t.Error("expected a vulkan image")
	}
	if _, ok := row.Image("d3d12"); ok {
		t.Error("expected the d3d12 cell to stay empty without an image")
	}
	if _, ok := row.Image(domain.ReferenceColumn); !ok {
		t.Error("expected the reference to be recorded")
	}
}

func TestSequentialExecutor_NoGroups(t *testing.T) {
	executor, _, log := newExecutor(t, fakeexec.Options{})

	results, _, err := executor.Execute(context.Background(), nil, "/repo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results.Rows) != 0 {
		t.Errorf("expected no rows, got %d", len(results.Rows))
	}
	if n := len(fakeexec.Invocations(t, log)); n != 0 {
		t.Errorf("expected no invocations, got %d", n)
	}
}
