package domain

import "time"

// ReferenceColumn is the result column holding the expected image
const ReferenceColumn = "reference"

// ResultRow maps columns (reference or a backend) to image paths for one test case
type ResultRow struct {
	Case    string            `json:"case"`
	Columns []string          `json:"columns"` // Columns in the order they were recorded
	Images  map[string]string `json:"images"`
}

// Image returns the path recorded for column, if any
func (r ResultRow) Image(column string) (string, bool) {
	path, ok := r.Images[column]
	return path, ok
}

// ResultTable collects image paths per test case in execution order
type ResultTable struct {
	Rows []ResultRow `json:"rows"`
}

// NewResultTable creates an empty ResultTable
func NewResultTable() *ResultTable {
	return &ResultTable{}
}

// Row returns the row for testCase, creating it when missing
func (t *ResultTable) Row(testCase string) *ResultRow {
	for i := range t.Rows {
		if t.Rows[i].Case == testCase {
			return &t.Rows[i]
		}
	}
	t.Rows = append(t.Rows, ResultRow{Case: testCase, Images: make(map[string]string)})
	return &t.Rows[len(t.Rows)-1]
}

// Set records path under column for testCase
func (t *ResultTable) Set(testCase, column, path string) {
	row := t.Row(testCase)
	if _, ok := row.Images[column]; !ok {
		row.Columns = append(row.Columns, column)
	}
	row.Images[column] = path
}

// Backends returns every non-reference column seen in the table, in first-seen order
func (t *ResultTable) Backends() []string {
	seen := make(map[string]bool)
	var backends []string
	for _, row := range t.Rows {
		for _, column := range row.Columns {
			if column == ReferenceColumn || seen[column] {
				continue
			}
			seen[column] = true
			backends = append(backends, column)
		}
	}
	return backends
}

// RunMeta describes a single run of the pipeline
type RunMeta struct {
	Executable      string  `json:"executable"`
	Directory       string  `json:"directory"`
	RepositoryRoot  string  `json:"repository_root"`
	Tests           int     `json:"tests"`
	Cases           int     `json:"cases"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunManifest is the complete output of a run, written next to the report
type RunManifest struct {
	Meta    RunMeta     `json:"meta"`
	Columns []string    `json:"columns"`
	Rows    []ResultRow `json:"rows"`
}

// NewRunMeta fills in the timing fields of a RunMeta
func NewRunMeta(executable, directory, repoRoot string, tests, cases int, duration time.Duration) RunMeta {
	return RunMeta{
		Executable:      executable,
		Directory:       directory,
		RepositoryRoot:  repoRoot,
		Tests:           tests,
		Cases:           cases,
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}
}

// Table rebuilds a ResultTable from the manifest rows
func (m *RunManifest) Table() *ResultTable {
	return &ResultTable{Rows: m.Rows}
}
