package discovery

import (
	"strings"

	"testkit/internal/domain"
)

// FilterOptions selects the tests to run
type FilterOptions struct {
	Subsystem    string // Required first name component
	NameContains string // Substring of the qualified name, ignored when empty
}

// Filter narrows discovered tests to a subsystem and an optional name substring
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Apply keeps tests of opts.Subsystem whose name contains opts.NameContains.
// Order is preserved.
func (f *Filter) Apply(tests []domain.TestDescriptor, opts FilterOptions) []domain.TestDescriptor {
	filtered := f.FilterBySubsystem(tests, opts.Subsystem)
	return f.FilterByName(filtered, opts.NameContains)
}

// FilterBySubsystem keeps tests whose first name component equals subsystem
func (f *Filter) FilterBySubsystem(tests []domain.TestDescriptor, subsystem string) []domain.TestDescriptor {
	filtered := make([]domain.TestDescriptor, 0, len(tests))
	for _, test := range tests {
		if test.Subsystem() == subsystem {
			filtered = append(filtered, test)
		}
	}
	return filtered
}

// FilterByName keeps tests whose qualified name contains substr (case-sensitive).
// An empty substr keeps everything.
func (f *Filter) FilterByName(tests []domain.TestDescriptor, substr string) []domain.TestDescriptor {
	if substr == "" {
		return tests
	}

	var filtered []domain.TestDescriptor
	for _, test := range tests {
		if strings.Contains(test.Name, substr) {
			filtered = append(filtered, test)
		}
	}
	return filtered
}
