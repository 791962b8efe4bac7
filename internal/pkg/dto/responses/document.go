package responses

type DocumentRecord struct {
	BundleID    string `json:"bundle_id"`
	SessionID   string `json:"session_id"`
	SubjectName string `json:"subject_name,omitempty"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	ObjectName  string `json:"object_name,omitempty"`
	EntryCount  int    `json:"entry_count"`
	AssembledAt string `json:"assembled_at"`
}
