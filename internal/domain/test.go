package domain

import "strings"

// NameSeparator splits a qualified test name into its components
const NameSeparator = "::"

// TestDescriptor is one test case as listed by the test executable
type TestDescriptor struct {
	Name        string   `json:"name"`                  // Fully qualified name, e.g. rhi::vulkan::triangle
	SourceFile  string   `json:"source_file,omitempty"` // File the test is declared in
	Line        int      `json:"line,omitempty"`
	Description string   `json:"description,omitempty"`
	Components  []string `json:"components"` // Name split on NameSeparator
	Skipped     bool     `json:"skipped"`
}

// SplitName splits a qualified test name into its components
func SplitName(name string) []string {
	return strings.Split(name, NameSeparator)
}

// Subsystem returns the first name component
func (t TestDescriptor) Subsystem() string {
	if len(t.Components) == 0 {
		return ""
	}
	return t.Components[0]
}

// Backend returns the second name component, the rendering backend the variant targets
func (t TestDescriptor) Backend() string {
	if len(t.Components) < 2 {
		return ""
	}
	return t.Components[1]
}

// Case returns the last name component, the logical test case
func (t TestDescriptor) Case() string {
	if len(t.Components) == 0 {
		return ""
	}
	return t.Components[len(t.Components)-1]
}

// TestGroup holds every backend variant of one logical test case
type TestGroup struct {
	Case     string
	Variants []TestDescriptor
}

// TestGroups is ordered by the first occurrence of each case
type TestGroups []TestGroup

// Len returns the total number of variants across all groups
func (g TestGroups) Len() int {
	n := 0
	for _, group := range g {
		n += len(group.Variants)
	}
	return n
}
