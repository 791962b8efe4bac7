package constvars

const (
	ResponseUnknown = "unknown"

	CreateSessionSuccessMessage    = "session created successfully"
	GetSessionSuccessMessage       = "get session successfully"
	UpdateSessionSuccessMessage    = "session updated successfully"
	DeleteSessionSuccessMessage    = "session deleted successfully"
	AddEntrySuccessMessage         = "clinical entry added successfully"
	UpdateEntrySuccessMessage      = "clinical entry updated successfully"
	RemoveEntrySuccessMessage      = "clinical entry removed successfully"
	UploadAttachmentSuccessMessage = "attachment uploaded successfully"
	GetRosterSuccessMessage        = "get patient roster successfully"
	GetPractitionersSuccessMessage = "get practitioners successfully"
	AssembleDocumentSuccessMessage = "document assembled successfully"
	GetDocumentsSuccessMessage     = "get assembled documents successfully"
)
