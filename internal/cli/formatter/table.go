package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// Table is an aligned text table with a header separator line. Cell widths
// are measured with lipgloss so pre-styled cells keep their alignment.
type Table struct {
	Headers []string
	Rows    [][]string
	// RightAlign marks columns (by index) whose cells are right-aligned.
	RightAlign map[int]bool
}

// RenderTable renders a table whose columns are all left-aligned.
func RenderTable(headers []string, rows [][]string) string {
	return Table{Headers: headers, Rows: rows}.Render()
}

func (t Table) Render() string {
	cols := len(t.Headers)
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	styled := make([]string, cols)
	for i, h := range t.Headers {
		styled[i] = StyleHeader.Render(h)
	}
	t.writeLine(&b, styled, widths)

	rule := make([]string, cols)
	for i, w := range widths {
		rule[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	t.writeLine(&b, rule, widths)

	for _, row := range t.Rows {
		t.writeLine(&b, row, widths)
	}
	return b.String()
}

func (t Table) writeLine(b *strings.Builder, cells []string, widths []int) {
	last := len(widths) - 1
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := max(w-lipgloss.Width(cell), 0)
		switch {
		case t.RightAlign[i]:
			b.WriteString(strings.Repeat(" ", pad) + cell)
		case i < last:
			b.WriteString(cell + strings.Repeat(" ", pad))
		default:
			b.WriteString(cell)
		}
		if i < last {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
}
