package exporter

import (
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/dto/responses"
	"dentalclinic-service/internal/pkg/formatter"
	"dentalclinic-service/internal/pkg/recordlist"
	"fmt"
	"strings"
	"time"
)

const textBannerWidth = 40

// Text renders the list as a plain report: banner, export date, then one
// numbered entry per row with a "Header: value" line per column.
func Text(list responses.RecordList, now time.Time) []byte {
	var b strings.Builder

	banner := strings.Repeat("=", textBannerWidth)
	b.WriteString(banner + "\n")
	b.WriteString(center(strings.ToUpper(list.Title)+" EXPORT", textBannerWidth) + "\n")
	b.WriteString(banner + "\n\n")
	fmt.Fprintf(&b, "Export Date: %s\n\n", now.Format(constvars.DateTimeLongFormat))

	heading := strings.ToUpper(list.Title)
	b.WriteString(heading + "\n")
	b.WriteString(strings.Repeat("-", len(heading)) + "\n")

	if len(list.Rows) == 0 {
		b.WriteString("No records found.\n")
		return []byte(b.String())
	}

	for i, row := range list.Rows {
		for j, column := range list.Columns {
			value := textValue(column, row.Cells[j].Value)
			if j == 0 {
				fmt.Fprintf(&b, "\n%d. %s: %s\n", i+1, column.Header, value)
				continue
			}
			if value == "" {
				continue
			}
			fmt.Fprintf(&b, "   %s: %s\n", column.Header, value)
		}
	}

	return []byte(b.String())
}

func textValue(column responses.RecordColumn, value string) string {
	if column.Kind == recordlist.KindDate {
		return formatter.LongDate(value)
	}
	return value
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", (width-len(s))/2) + s
}
