package constvars

// Used by exceptions.FormatFirstValidationError to build client messages.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"oneof":    "must be one of [%s]",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"url":      "must be a valid URL",
}

var TagsWithParams = map[string]bool{
	"oneof": true,
	"min":   true,
	"max":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientPageNotFound                  = "the page you are looking for does not exist"
)

// Error messages for developers
const (
	ErrDevValidationFailed          = "validation failed"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevCannotMarshalCSV          = "cannot marshal CSV"
	ErrDevUnsupportedExportFormat   = "unsupported export format %q"
	ErrDevFailedToLoadBillings      = "failed to load billings"
	ErrDevFailedToLoadClinicalVisit = "failed to load clinical visits"
	ErrDevFailedToLoadSiteContent   = "failed to load site content"
	ErrDevFailedToParseSiteContent  = "failed to parse site content"
	ErrDevFailedToRenderPage        = "failed to render page %q"
	ErrDevPanicRecovered            = "panic recovered"
	ErrDevRouteNotFound             = "no route for %s"
	ErrDevClientRateLimited         = "client %s exceeded the request rate"
)
