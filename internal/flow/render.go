package flow

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// maxCellWidth keeps a single runaway value (a long image tag, say) from
// blowing up the whole table.
const maxCellWidth = 48

// renderTable renders headers and rows as a static table string. The bubbles
// table component is used in its non-interactive form: no focus, no row
// highlight.
func renderTable(headers []string, rows [][]string) string {
	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		width := runewidth.StringWidth(h)
		for _, row := range rows {
			if i < len(row) {
				if w := runewidth.StringWidth(row[i]); w > width {
					width = w
				}
			}
		}
		if width > maxCellWidth {
			width = maxCellWidth
		}
		columns[i] = table.Column{Title: h, Width: width}
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = runewidth.Truncate(cell, maxCellWidth, "…")
		}
		tableRows[i] = cells
	}

	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithHeight(max(len(tableRows), 1)),
		table.WithStyles(styles),
	)
	return t.View()
}
