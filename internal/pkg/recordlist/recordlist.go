// Package recordlist turns an ordered list of flat records into display rows.
//
// Render is a pure projection: one row per record, input order kept, every
// field mapped to a string through its column. The only derived value is the
// optional row status.
package recordlist

import (
	"dentalclinic-service/internal/pkg/dto/responses"
)

const (
	KindText   = ""
	KindAmount = "amount"
	KindDate   = "date"
	KindStatus = "status"
)

type Column[T any] struct {
	Key    string
	Header string
	Kind   string
	Value  func(T) string
}

type Scheme[T any] struct {
	Title   string
	Columns []Column[T]
	Key     func(T) int
	// Status is nil for records without a derived status.
	Status func(T) responses.RecordStatus
}

func Render[T any](records []T, scheme Scheme[T]) responses.RecordList {
	columns := make([]responses.RecordColumn, len(scheme.Columns))
	for i, column := range scheme.Columns {
		columns[i] = responses.RecordColumn{
			Key:    column.Key,
			Header: column.Header,
			Kind:   column.Kind,
		}
	}

	rows := make([]responses.RecordRow, len(records))
	for i, record := range records {
		rows[i] = renderRow(record, scheme)
	}

	return responses.RecordList{
		Title:   scheme.Title,
		Columns: columns,
		Rows:    rows,
	}
}

func renderRow[T any](record T, scheme Scheme[T]) responses.RecordRow {
	cells := make([]responses.RecordCell, len(scheme.Columns))
	for i, column := range scheme.Columns {
		cells[i] = responses.RecordCell{
			Key:   column.Key,
			Value: column.Value(record),
		}
	}

	row := responses.RecordRow{Cells: cells}
	if scheme.Key != nil {
		row.Key = scheme.Key(record)
	}
	if scheme.Status != nil {
		status := scheme.Status(record)
		row.Status = &status
	}
	return row
}
