package discovery

import (
	"testing"

	"testkit/internal/domain"
)

func descriptors(names ...string) []domain.TestDescriptor {
	tests := make([]domain.TestDescriptor, 0, len(names))
	for _, name := range names {
		tests = append(tests, domain.TestDescriptor{Name: name, Components: domain.SplitName(name)})
	}
	return tests
}

func names(tests []domain.TestDescriptor) []string {
	var out []string
	for _, test := range tests {
		out = append(out, test.Name)
	}
	return out
}

func TestFilter_Apply(t *testing.T) {
	filter := NewFilter()
	all := descriptors(
		"rhi::vulkan::triangle",
		"slc::vulkan::shader_reflection",
		"rhi::d3d12::triangle",
		"rhi::vulkan::depth_test",
		"core::rhi::triangle",
	)

	tests := []struct {
		name     string
		opts     FilterOptions
		expected []string
	}{
		{
			name:     "subsystem only",
			opts:     FilterOptions{Subsystem: "rhi"},
			expected: []string{"rhi::vulkan::triangle", "rhi::d3d12::triangle", "rhi::vulkan::depth_test"},
		},
		{
			name:     "subsystem and substring",
			opts:     FilterOptions{Subsystem: "rhi", NameContains: "triangle"},
			expected: []string{"rhi::vulkan::triangle", "rhi::d3d12::triangle"},
		},
		{
			name:     "substring is case-sensitive",
			opts:     FilterOptions{Subsystem: "rhi", NameContains: "Triangle"},
			expected: nil,
		},
		{
			name:     "substring matching only other subsystems",
			opts:     FilterOptions{Subsystem: "rhi", NameContains: "shader"},
			expected: nil,
		},
		{
			name:     "unknown subsystem",
			opts:     FilterOptions{Subsystem: "gpu"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := names(filter.Apply(all, tt.opts))
			if len(result) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, result)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("expected %v, got %v", tt.expected, result)
				}
			}
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty test list", func(t *testing.T) {
		result := filter.FilterByName(nil, "triangle")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("empty substring returns all", func(t *testing.T) {
		tests := descriptors("rhi::vulkan::triangle", "rhi::d3d12::triangle")
		result := filter.FilterByName(tests, "")
		if len(result) != 2 {
			t.Errorf("expected 2 matches, got %d", len(result))
		}
	})

	t.Run("substring across separator", func(t *testing.T) {
		tests := descriptors("rhi::vulkan::triangle", "rhi::d3d12::triangle")
		result := filter.FilterByName(tests, "vulkan::tri")
		if len(result) != 1 {
			t.Errorf("expected 1 match, got %d", len(result))
		}
	})
}
