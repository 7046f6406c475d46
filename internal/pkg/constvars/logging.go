package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingDataKey           = "data"
	LoggingResponseLengthKey = "response_length"
	LoggingPageKey           = "page"
	LoggingFormatKey         = "format"
	LoggingFileNameKey       = "file_name"
	LoggingSizeKey           = "size"
)
