package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a Bubbles table with the shared styling, sized to show
// every row. Used for static listings (gms list / gms available / backups).
func NewTable(columns []TableColumn, rows [][]string) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
	}

	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row(r)
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(tableRows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	styles := table.DefaultStyles()
	styles.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true)
	styles.Cell = lipgloss.NewStyle().Foreground(ColorPrimary)
	// Static listings have no selection; render the cursor row like any other.
	styles.Selected = styles.Cell
	t.SetStyles(styles)

	return t
}

// RenderTable returns the rendered text of a static table.
func RenderTable(columns []TableColumn, rows [][]string) string {
	t := NewTable(columns, rows)
	return t.View() + "\n"
}
