package picocog

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// columnWidths returns the widest display width of each column across rows.
// Rows may have differing column counts; a row without column i contributes
// nothing to widths[i].
func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, col := range row {
			for len(widths) <= i {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(col); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// alignRows pads each column of each row to the batch-wide column width and
// joins the columns with no separator. The trailing column of a row pads
// like any other; callers rely on the trailing spaces.
func alignRows(rows [][]string) []string {
	widths := columnWidths(rows)
	out := make([]string, len(rows))
	var sb strings.Builder
	for r, row := range rows {
		sb.Reset()
		for i, col := range row {
			sb.WriteString(padRight(col, widths[i]))
		}
		out[r] = sb.String()
	}
	return out
}

// padRight right-pads s with spaces to the given display width. Strings at
// or beyond the width come back unchanged.
func padRight(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
