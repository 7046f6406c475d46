package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourceBillings = "billings"
	ResourceRecords  = "records"
	ResourceSite     = "site"
	ResourceHealthz  = "healthz"
)

const (
	PageHome           = "home"
	PageOwnerBilling   = "owner_billing"
	PagePatientRecords = "patient_records"
)

const (
	ExportFilePrefixBillings = "billings"
	ExportFilePrefixRecords  = "dental_records"
	ExportFileDateFormat     = "2006-01-02"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	PaymentStatusPaid    = "Paid"
	PaymentStatusPending = "Pending"

	StatusToneSuccess = "success"
	StatusToneWarning = "warning"
)

const (
	DateLongFormat     = "January 2, 2006"
	DateTimeLongFormat = "January 2, 2006 15:04"
	DateISOFormat      = "2006-01-02"
	DateNotAvailable   = "N/A"
)
