package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// tableView is a titled grid rendered with go-pretty. Columns listed in
// numeric are right-aligned.
type tableView struct {
	title   string
	headers []string
	rows    [][]string
	numeric []int
}

func (v tableView) render() string {
	if len(v.headers) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if v.title != "" {
		tw.SetTitle(v.title)
	}
	tw.AppendHeader(toRow(v.headers, len(v.headers)))
	for _, row := range v.rows {
		tw.AppendRow(toRow(row, len(v.headers)))
	}

	configs := make([]table.ColumnConfig, 0, len(v.numeric))
	for _, col := range v.numeric {
		configs = append(configs, table.ColumnConfig{
			Number:      col + 1,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}

// toRow pads or trims cells to width.
func toRow(cells []string, width int) table.Row {
	row := make(table.Row, width)
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = ""
		}
	}
	return row
}
