package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"os"
	"path/filepath"

	"testkit/internal/domain"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// Title is the heading of the report
const Title = "Test Result"

type reportData struct {
	Title   string
	Columns []string
	Rows    []rowData
}

type rowData struct {
	Case  string
	Cells []cellData
}

type cellData struct {
	Column  string
	Src     template.URL
	Present bool
}

// HTMLReport renders the result table as a static HTML page
type HTMLReport struct {
	template *template.Template
}

// NewHTMLReport creates a new HTMLReport from the embedded template
func NewHTMLReport() (*HTMLReport, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/report.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML template: %w", err)
	}
	return &HTMLReport{template: tmpl}, nil
}

// Format renders one row per test case and one cell per column.
// Image paths are made relative to dir; cells without a result stay empty.
func (r *HTMLReport) Format(results *domain.ResultTable, columns []string, dir string) (string, error) {
	data := reportData{Title: Title, Columns: columns}
	for _, row := range results.Rows {
		rd := rowData{Case: row.Case}
		for _, column := range columns {
			cell := cellData{Column: column}
			if path, ok := row.Image(column); ok {
				cell.Present = true
				cell.Src = imageSrc(dir, path)
			}
			rd.Cells = append(rd.Cells, cell)
		}
		data.Rows = append(data.Rows, rd)
	}

	var buf bytes.Buffer
	if err := r.template.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute HTML template: %w", err)
	}
	return buf.String(), nil
}

// Write renders the report to path and returns it
func (r *HTMLReport) Write(results *domain.ResultTable, columns []string, path string) (string, error) {
	html, err := r.Format(results, columns, filepath.Dir(path))
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return "", fmt.Errorf("failed to write HTML file: %w", err)
	}
	return path, nil
}

// imageSrc returns path relative to dir as a URL, or a file URL when no relative form exists
func imageSrc(dir, path string) template.URL {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		abs := filepath.ToSlash(path)
		if abs != "" && abs[0] != '/' {
			abs = "/" + abs
		}
		u := url.URL{Scheme: "file", Path: abs}
		return template.URL(u.String())
	}
	u := url.URL{Path: filepath.ToSlash(rel)}
	return template.URL(u.String())
}
