package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// RenderSummary writes the per-category totals as a table, followed by the
// release counts. Rows are sorted by count, largest first, category name
// breaking ties.
func RenderSummary(w io.Writer, s Summary) error {
	type row struct {
		category string
		count    int
	}
	rows := make([]row, 0, len(s.Categories))
	for cat, count := range s.Categories {
		rows = append(rows, row{category: string(cat), count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].category < rows[j].category
	})

	tw := table.NewWriter()
	if isTerminal(w) {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleLight)
	}
	tw.AppendHeader(table.Row{"Category", "Findings"})
	for _, r := range rows {
		tw.AppendRow(table.Row{r.category, strconv.Itoa(r.count)})
	}
	tw.AppendFooter(table.Row{"total", strconv.Itoa(s.Findings)})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d releases scanned, %d flagged\n", s.Scanned, s.Flagged)
	return err
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
