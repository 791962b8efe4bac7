package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourceSessions      = "sessions"
	ResourceRosters       = "rosters"
	ResourcePractitioners = "practitioners"
	ResourceDocuments     = "documents"
)

const (
	// Redis key formats. Session documents and per-session build locks live
	// under separate prefixes so a lock never shadows its session.
	RedisSessionKeyFormat   = "session:%s"
	RedisBuildLockKeyFormat = "session:%s:build-lock"
)

const (
	MongoCollectionDocuments = "assembled_documents"
)

const (
	QueueDocumentAssembled = "document_assembled_queue"
)

const (
	ClinicalEntryKindImmunization = "immunization"
	ClinicalEntryKindDiagnostic   = "diagnostic"
)
