// Package exporter serialises rendered record lists into downloadable documents.
package exporter

import (
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/dto/responses"
	"dentalclinic-service/internal/pkg/exceptions"
	"dentalclinic-service/internal/pkg/utils"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/goccy/go-json"
)

type Document struct {
	ContentType string
	FileName    string
	Body        []byte
}

// Request describes one export. Rows is a slice of structs carrying csv and
// json tags, built from the same display values as List.
type Request struct {
	List       responses.RecordList
	Rows       interface{}
	Format     string
	FilePrefix string
	Now        time.Time
}

func Export(req Request) (*Document, error) {
	switch req.Format {
	case constvars.ExportFormatCSV:
		body, err := gocsv.MarshalBytes(req.Rows)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalCSV(err)
		}
		return newDocument(constvars.MIMETextCSVCharsetUTF8, req, "csv", body), nil

	case constvars.ExportFormatJSON:
		body, err := json.MarshalIndent(req.Rows, "", "  ")
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		return newDocument(constvars.MIMEApplicationJSONCharsetUTF8, req, "json", body), nil

	case constvars.ExportFormatText:
		return newDocument(constvars.MIMETextPlainCharsetUTF8, req, "txt", Text(req.List, req.Now)), nil

	case constvars.ExportFormatTable:
		return newDocument(constvars.MIMETextPlainCharsetUTF8, req, "txt", []byte(Table(req.List))), nil

	default:
		return nil, exceptions.ErrUnsupportedExportFormat(req.Format)
	}
}

func newDocument(contentType string, req Request, extension string, body []byte) *Document {
	return &Document{
		ContentType: contentType,
		FileName:    utils.GenerateExportFileName(req.FilePrefix, extension, req.Now),
		Body:        body,
	}
}
