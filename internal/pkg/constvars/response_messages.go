package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"
	ResponseOK      = "ok"

	// Record list messages
	GetBillingsSuccessMessage       = "get billings successfully"
	GetClinicalVisitsSuccessMessage = "get clinical visits successfully"
	GetSiteContentSuccessMessage    = "get site content successfully"
)
