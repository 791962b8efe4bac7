package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingSessionIDKey  = "session_id"
	LoggingBundleIDKey   = "bundle_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingQueueNameKey  = "queue_name"
	LoggingObjectNameKey = "object_name"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
)
