package ui

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"testkit/internal/domain"
)

// Opener opens a file in the host's default viewer
type Opener interface {
	Open(path string) error
}

// ResultsViewer browses the result table of the last run in a TUI
type ResultsViewer struct {
	opener Opener
}

// NewResultsViewer creates a new ResultsViewer
func NewResultsViewer(opener Opener) *ResultsViewer {
	return &ResultsViewer{opener: opener}
}

// View shows test cases on the left and the images of the selected case on the right.
// Enter on an image opens it in the default viewer.
func (rv *ResultsViewer) View(manifest *domain.RunManifest) error {
	if len(manifest.Rows) == 0 {
		color.Yellow("No test results found")
		return nil
	}

	app := tview.NewApplication()

	// Test cases (left side)
	cases := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, row := range manifest.Rows {
		cases.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, tview.Escape(row.Case)), "", 0, nil)
	}
	cases.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	// Images of the selected case (right side)
	images := tview.NewList().
		ShowSecondaryText(true).
		SetHighlightFullLine(true)
	images.SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	statusView := tview.NewTextView().
		SetDynamicColors(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(images, 0, 1, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(cases, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView.SetText(fmt.Sprintf(" Test Results (%d cases) | Use ↑↓ to navigate, → or Enter to select images, Enter to open, ← to go back, Ctrl+C to exit ", len(manifest.Rows)))

	updateImages := func() {
		index := cases.GetCurrentItem()
		if index < 0 || index >= len(manifest.Rows) {
			return
		}
		row := manifest.Rows[index]
		images.Clear()
		for _, column := range manifest.Columns {
			path, ok := row.Image(column)
			images.AddItem(tview.Escape(column), formatImageLine(path, ok), 0, nil)
		}
		detailsView.SetText(formatRowDetails(manifest, row))
	}

	images.SetSelectedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		row := manifest.Rows[cases.GetCurrentItem()]
		column := manifest.Columns[index]
		path, ok := row.Image(column)
		if !ok {
			statusView.SetText(fmt.Sprintf("[yellow]No %s image for %s[white]", tview.Escape(column), tview.Escape(row.Case)))
			return
		}
		if err := rv.opener.Open(path); err != nil {
			statusView.SetText(fmt.Sprintf("[red]Failed to open %s: %s[white]", tview.Escape(path), tview.Escape(err.Error())))
			return
		}
		statusView.SetText(fmt.Sprintf("[green]Opened %s[white]", tview.Escape(path)))
	})

	cases.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(images)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	images.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(cases)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	cases.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateImages()
	})

	updateImages()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true).
		AddItem(statusView, 1, 0, false)

	if err := app.SetRoot(mainLayout, true).SetFocus(cases).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatImageLine describes one image cell for the secondary list text
func formatImageLine(path string, ok bool) string {
	if !ok {
		return "[gray](no image)[white]"
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Sprintf("[yellow]%s (missing)[white]", tview.Escape(path))
	}
	return fmt.Sprintf("[green]%s[white]", tview.Escape(path))
}

// formatRowDetails formats the run metadata and image paths of one test case using tview color tags
func formatRowDetails(manifest *domain.RunManifest, row domain.ResultRow) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[cyan]Test case:[white]\t%s\n", tview.Escape(row.Case))
	fmt.Fprintf(w, "[cyan]Executable:[white]\t%s\n", tview.Escape(manifest.Meta.Executable))
	fmt.Fprintf(w, "[cyan]Run:[white]\t%s\n\n", manifest.Meta.Timestamp)

	for _, column := range manifest.Columns {
		path, ok := row.Image(column)
		if !ok {
			path = "-"
		}
		fmt.Fprintf(w, "[yellow]%s[white]\t%s\n", tview.Escape(column), tview.Escape(path))
	}

	w.Flush()
	return builder.String()
}
