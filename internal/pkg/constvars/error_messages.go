package constvars

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientSessionNotFound               = "session not found or expired"
	ErrClientEntryNotFound                 = "clinical entry not found at the given position"
	ErrClientPractitionerNotFound          = "practitioner not found"
	ErrClientDocumentNotReady              = "document cannot be assembled yet"
	ErrClientBuildInProgress               = "a document build is already in progress for this session"
	ErrClientAttachmentUnreadable          = "one of the attachments could not be read"
	ErrClientRosterUnavailable             = "the patient roster is currently unavailable"
	ErrClientTooManyRequests               = "too many requests, slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevReadHTTPResponse         = "failed to read HTTP response body"
	ErrDevUpstreamFHIRServer       = "upstream FHIR server returned an error for resource: %s"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"

	ErrDevRedisSet       = "failed to set redis key"
	ErrDevRedisGet       = "failed to get redis key: %s"
	ErrDevRedisDelete    = "failed to delete redis key"
	ErrDevRedisSetNX     = "failed to acquire redis lock"
	ErrDevSessionMissing = "session document not found in redis"

	ErrDevMongoInsertDocument   = "failed to insert document into mongodb"
	ErrDevMongoFindDocuments    = "failed to find documents in mongodb"
	ErrDevMongoIterateDocuments = "failed to iterate mongodb cursor"

	ErrDevMinioCreateObject = "failed to put object into bucket: %s"
	ErrDevMinioGetObject    = "failed to get object from bucket: %s"

	ErrDevAMQPDeclareQueue = "failed to declare rabbitmq queue"
	ErrDevAMQPPublish      = "failed to publish rabbitmq message"

	ErrDevAssemblyValidation = "pre-build validation failed"
	ErrDevAttachmentDecode   = "attachment decode stage failed"
)
