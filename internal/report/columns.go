package report

import "testkit/internal/domain"

// Columns returns the report columns: the reference, the configured backends,
// then any backend seen in results but not configured, in first-seen order.
// With strict set the configured backends are used unchanged.
func Columns(backends []string, results *domain.ResultTable, strict bool) []string {
	columns := []string{domain.ReferenceColumn}
	seen := map[string]bool{domain.ReferenceColumn: true}

	for _, backend := range backends {
		if seen[backend] {
			continue
		}
		seen[backend] = true
		columns = append(columns, backend)
	}

	if strict || results == nil {
		return columns
	}

	for _, backend := range results.Backends() {
		if !seen[backend] {
			seen[backend] = true
			columns = append(columns, backend)
		}
	}
	return columns
}
