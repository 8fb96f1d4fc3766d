package discovery

import "testkit/internal/domain"

// Grouper buckets test variants by their logical test case
type Grouper struct{}

// NewGrouper creates a new Grouper
func NewGrouper() *Grouper {
	return &Grouper{}
}

// Group partitions tests by their last name component.
// Groups follow the first occurrence of each case; variants keep their input order.
func (g *Grouper) Group(tests []domain.TestDescriptor) domain.TestGroups {
	index := make(map[string]int)
	var groups domain.TestGroups

	for _, test := range tests {
		key := test.Case()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, domain.TestGroup{Case: key})
		}
		groups[i].Variants = append(groups[i].Variants, test)
	}
	return groups
}
