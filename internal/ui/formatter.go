package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"testkit/internal/config"
	"testkit/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{
		config: cfg,
		out:    os.Stdout,
	}
}

// SetOutput redirects the formatter
func (f *Formatter) SetOutput(out io.Writer) {
	f.out = out
}

// PrintHeader prints the executable and run directory of a run
func (f *Formatter) PrintHeader() {
	fmt.Fprintln(f.out, color.CyanString("TestKit executable: %s", f.config.Executable))
	fmt.Fprintln(f.out, color.CyanString("TestKit directory: %s", f.config.GetRunDir()))
	if f.config.NameFilter != "" {
		fmt.Fprintln(f.out, color.CyanString("TestKit filter: %s", f.config.NameFilter))
	}
}

// PrintTestList prints grouped tests as a tree: test case, then its backend variants
func (f *Formatter) PrintTestList(groups domain.TestGroups) {
	fmt.Fprintln(f.out, color.GreenString("Found %d test case(s) with %d variant(s):", len(groups), groups.Len()))
	fmt.Fprintln(f.out)

	for i, group := range groups {
		isLastGroup := i == len(groups)-1
		if isLastGroup {
			fmt.Fprintln(f.out, color.CyanString("└── %s", group.Case))
		} else {
			fmt.Fprintln(f.out, color.CyanString("├── %s", group.Case))
		}

		for j, variant := range group.Variants {
			isLastVariant := j == len(group.Variants)-1

			var prefix string
			if isLastGroup {
				if isLastVariant {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastVariant {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}

			line := prefix + color.YellowString(variant.Backend()) + "  " + variant.Name
			if variant.Skipped {
				line += " " + color.RedString("[skipped]")
			}
			fmt.Fprintln(f.out, line)
		}
	}
}

// PrintSummary prints the result table of a run: one row per test case, one column per report column
func (f *Formatter) PrintSummary(manifest *domain.RunManifest) {
	meta := manifest.Meta

	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, color.CyanString("╔═══════════════════════════════════════════════════════════════╗"))
	fmt.Fprintln(f.out, color.CyanString("║                        Test Run Summary                       ║"))
	fmt.Fprintln(f.out, color.CyanString("╚═══════════════════════════════════════════════════════════════╝"))

	t := table.NewWriter()
	t.SetOutputMirror(f.out)
	t.SetStyle(table.StyleLight)

	header := table.Row{"TEST CASE"}
	for _, column := range manifest.Columns {
		header = append(header, column)
	}
	t.AppendHeader(header)

	configs := []table.ColumnConfig{{Number: 1, WidthMax: 60, WidthMaxEnforcer: text.WrapSoft}}
	for i := range manifest.Columns {
		configs = append(configs, table.ColumnConfig{Number: i + 2, Align: text.AlignCenter})
	}
	t.SetColumnConfigs(configs)

	for _, row := range manifest.Rows {
		r := table.Row{row.Case}
		for _, column := range manifest.Columns {
			r = append(r, imageStatus(row, column))
		}
		t.AppendRow(r)
	}

	t.AppendFooter(table.Row{fmt.Sprintf("%d case(s), %d test(s)", meta.Cases, meta.Tests)})
	t.Render()

	fmt.Fprintf(f.out, "Duration: %.2fs\n", meta.DurationSeconds)
}

// PrintReport prints where the report was written
func (f *Formatter) PrintReport(path string) {
	fmt.Fprintln(f.out, color.GreenString("✓ Report written to %s", path))
}

// imageStatus marks whether a column has an image and whether it exists on disk
func imageStatus(row domain.ResultRow, column string) string {
	path, ok := row.Image(column)
	if !ok {
		return "-"
	}
	if _, err := os.Stat(path); err != nil {
		return color.YellowString("missing")
	}
	return color.GreenString(filepath.Base(path))
}
