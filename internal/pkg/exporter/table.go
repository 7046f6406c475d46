package exporter

import (
	"dentalclinic-service/internal/pkg/dto/responses"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Table renders the list for a terminal. An empty list still prints its
// header row.
func Table(list responses.RecordList) string {
	headers := make([]string, len(list.Columns))
	for i, column := range list.Columns {
		headers[i] = column.Header
	}

	rows := make([][]string, len(list.Rows))
	for i, row := range list.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.Value
		}
		rows[i] = cells
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	return t.Render() + "\n"
}
