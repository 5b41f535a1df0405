package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"label-exporter/internal/export"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderSummary lays out one row per processed code.
func renderSummary(s *export.Summary) string {
	headers := []string{"Code", "Page", "Ranges", "Labels", "Files", "Status"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft}

	rows := make([][]string, 0, len(s.Codes)+1)
	for _, c := range s.Codes {
		page := "-"
		if c.Page > 0 {
			page = strconv.Itoa(c.Page)
		}
		rows = append(rows, []string{
			c.Code,
			page,
			strconv.Itoa(c.Ranges),
			strconv.Itoa(c.Labels),
			strconv.Itoa(len(c.Files)),
			string(c.Status),
		})
	}
	rows = append(rows, []string{"TOTAL", "", "", strconv.Itoa(s.Labels), strconv.Itoa(s.Files), ""})
	return renderTable(headers, rows, aligns)
}
