package constvars

const (
	URLQueryParamFormat = "format"
)

const (
	ExportFormatCSV   = "csv"
	ExportFormatJSON  = "json"
	ExportFormatText  = "text"
	ExportFormatTable = "table"
)
