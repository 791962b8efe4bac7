package models

import "time"

// DocumentRecord is the archive row persisted to mongo after each
// successful assembly. The full bundle lives in object storage; this record
// keeps the pointers and the summary fields list endpoints need.
type DocumentRecord struct {
	BundleID    string    `json:"bundle_id" bson:"bundle_id"`
	SessionID   string    `json:"session_id" bson:"session_id"`
	Title       string    `json:"title" bson:"title"`
	Status      string    `json:"status" bson:"status"`
	SubjectName string    `json:"subject_name" bson:"subject_name"`
	AuthorID    string    `json:"author_id" bson:"author_id"`
	ObjectName  string    `json:"object_name" bson:"object_name"`
	EntryCount  int       `json:"entry_count" bson:"entry_count"`
	SizeBytes   int64     `json:"size_bytes" bson:"size_bytes"`
	AssembledAt time.Time `json:"assembled_at" bson:"assembled_at"`
}
