package ui

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/renato0307/prinbox/internal/domain"
)

// Columns are the table headers in display order
var Columns = []string{"Status", "Checks", "Account", "Type", "Repo", "Title", "Author", "Age"}

const (
	titleColumn   = 5
	minTitleWidth = 15
)

// fixedWidths holds the width of every column except Title, which takes the rest
var fixedWidths = []int{18, 6, 12, 22, 26, 0, 14, 5}

// RowCells returns the text of each column for a row, with the age computed at now
func RowCells(row domain.ClassifiedRow, now time.Time) []string {
	return []string{
		row.Icon() + " " + row.Label,
		row.Record.CheckStatus.Symbol(),
		row.Record.AccountLabel,
		row.Kind,
		row.Record.Repo,
		row.Record.Title,
		row.Record.Author,
		domain.FormatAge(row.Record.CreatedAt, now),
	}
}

// columnWidths distributes the terminal width across the columns
func columnWidths(total int) []int {
	widths := make([]int, len(fixedWidths))
	copy(widths, fixedWidths)

	used := len(widths) - 1 // one space between columns
	for _, w := range widths {
		used += w
	}

	widths[titleColumn] = total - used
	if widths[titleColumn] < minTitleWidth {
		widths[titleColumn] = minTitleWidth
	}
	return widths
}

// fitCell truncates or pads s to exactly width terminal cells
func fitCell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// renderCells lays out cells using widths
func renderCells(cells []string, widths []int) string {
	fitted := make([]string, len(cells))
	for i, c := range cells {
		fitted[i] = fitCell(c, widths[i])
	}
	return strings.Join(fitted, " ")
}
