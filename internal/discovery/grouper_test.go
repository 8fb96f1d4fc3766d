package discovery

import (
	"reflect"
	"testing"
)

func TestGrouper_Group(t *testing.T) {
	grouper := NewGrouper()
	tests := descriptors(
		"rhi::vulkan::triangle",
		"rhi::vulkan::depth_test",
		"rhi::d3d12::triangle",
		"rhi::d3d12::depth_test",
		"rhi::metal::stencil_test",
	)

	groups := grouper.Group(tests)

	t.Run("keys in first-occurrence order", func(t *testing.T) {
		var keys []string
		for _, g := range groups {
			keys = append(keys, g.Case)
		}
		expected := []string{"triangle", "depth_test", "stencil_test"}
		if !reflect.DeepEqual(keys, expected) {
			t.Errorf("expected %v, got %v", expected, keys)
		}
	})

	t.Run("variants keep input order", func(t *testing.T) {
		expected := []string{"rhi::vulkan::triangle", "rhi::d3d12::triangle"}
		if got := names(groups[0].Variants); !reflect.DeepEqual(got, expected) {
			t.Errorf("expected %v, got %v", expected, got)
		}
	})

	t.Run("is a partition", func(t *testing.T) {
		seen := make(map[string]int)
		for _, g := range groups {
			for _, v := range g.Variants {
				if v.Case() != g.Case {
					t.Errorf("%s grouped under %s", v.Name, g.Case)
				}
				seen[v.Name]++
			}
		}
		if len(seen) != len(tests) || groups.Len() != len(tests) {
			t.Errorf("expected %d grouped tests, got %d", len(tests), groups.Len())
		}
		for name, n := range seen {
			if n != 1 {
				t.Errorf("%s appears %d times", name, n)
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := grouper.Group(nil); len(got) != 0 {
			t.Errorf("expected no groups, got %d", len(got))
		}
	})
}
