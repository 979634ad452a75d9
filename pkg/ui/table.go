package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// Alignment of a table column
type Alignment int

const (
	// AlignAuto right-aligns cells that read as numbers (counts, sizes,
	// percentages) and left-aligns everything else
	AlignAuto Alignment = iota
	AlignLeft
	AlignRight
)

// TableColumn is one column of a Table
type TableColumn struct {
	Header string
	Align  Alignment
}

// Table renders rows of report cells with a header rule. Widths are measured
// on the visible text so styled cells line up.
type Table struct {
	Columns []TableColumn
	Rows    [][]string
}

// NewTable creates a table with the given columns
func NewTable(columns []TableColumn) *Table {
	return &Table{Columns: columns}
}

// AddRow appends a row; missing cells render empty
func (t *Table) AddRow(cells []string) {
	t.Rows = append(t.Rows, cells)
}

// AddTypeRow appends the standard per-type row: extension, count and share
func (t *Table) AddTypeRow(ext string, count int, share float64) {
	t.AddRow([]string{FormatExtension(ext), fmt.Sprintf("%d", count), FormatPercent(share)})
}

// Render returns the table as text, one line per row
func (t *Table) Render() string {
	if len(t.Columns) == 0 {
		return ""
	}

	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = lipgloss.Width(col.Header)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	header := make([]string, len(t.Columns))
	rule := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = pad(col.Header, widths[i], t.align(i))
		rule[i] = strings.Repeat("─", widths[i])
	}
	b.WriteString(styleTableHeader.Render(strings.Join(header, "  ")) + "\n")
	b.WriteString(styleTableRule.Render(strings.Join(rule, "  ")) + "\n")

	for idx, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = pad(cell, widths[i], t.align(i))
		}

		style := styleTableRow
		if idx%2 == 1 {
			style = styleTableRowAlt
		}
		b.WriteString(style.Render(strings.Join(cells, "  ")) + "\n")
	}

	return b.String()
}

// align resolves AlignAuto for a column. A column whose cells are all
// numeric is right-aligned, header included.
func (t *Table) align(col int) Alignment {
	a := t.Columns[col].Align
	if a != AlignAuto {
		return a
	}
	if len(t.Rows) == 0 {
		return AlignLeft
	}
	for _, row := range t.Rows {
		if col < len(row) && !isNumeric(row[col]) {
			return AlignLeft
		}
	}
	return AlignRight
}

// isNumeric matches "12", "66.7%", "1.5 KiB", "300 B"
func isNumeric(cell string) bool {
	cell = strings.TrimSpace(cell)
	if cell == "" || !unicode.IsDigit(rune(cell[0])) {
		return false
	}
	for _, unit := range []string{"%", " B", " KiB", " MiB", " GiB", " TiB", " PiB", " EiB"} {
		if strings.HasSuffix(cell, unit) {
			cell = strings.TrimSuffix(cell, unit)
			break
		}
	}
	for _, r := range cell {
		if !unicode.IsDigit(r) && r != '.' {
			return false
		}
	}
	return true
}

func pad(s string, width int, align Alignment) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// RenderKeyValue renders one "key: value" summary line
func RenderKeyValue(key, value string) string {
	return StyleAccent.Render(key) + ": " + value
}
