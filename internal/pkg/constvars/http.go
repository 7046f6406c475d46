package constvars

const (
	MIMETextHTML        = "text/html"
	MIMETextPlain       = "text/plain"
	MIMETextCSV         = "text/csv"
	MIMEApplicationJSON = "application/json"

	MIMETextHTMLCharsetUTF8        = "text/html; charset=utf-8"
	MIMETextPlainCharsetUTF8       = "text/plain; charset=utf-8"
	MIMETextCSVCharsetUTF8         = "text/csv; charset=utf-8"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)

const (
	HeaderAccept             = "Accept"
	HeaderAuthorization      = "Authorization"
	HeaderCacheControl       = "Cache-Control"
	HeaderContentDisposition = "Content-Disposition"
	HeaderContentLength      = "Content-Length"
	HeaderContentType        = "Content-Type"
	HeaderXCSRFToken         = "X-CSRF-Token"
	HeaderXRequestID         = "X-Request-ID"
	HeaderXContentTypeOpts   = "X-Content-Type-Options"
)

const (
	AttachmentContentDispositionFormat = `attachment; filename="%s"`
)
