package responses

import "sutra-service/internal/app/models"

type Session struct {
	SessionID         string                  `json:"session_id"`
	Subject           map[string]interface{}  `json:"subject,omitempty"`
	ExternalAddresses interface{}             `json:"external_addresses,omitempty"`
	AuthorID          string                  `json:"author_id,omitempty"`
	Title             string                  `json:"title,omitempty"`
	Status            string                  `json:"status,omitempty"`
	Recommendation    string                  `json:"recommendation,omitempty"`
	EncounterNote     string                  `json:"encounter_note,omitempty"`
	CustodianName     string                  `json:"custodian_name,omitempty"`
	EntryCount        int                     `json:"entry_count"`
	Entries           interface{}             `json:"entries,omitempty"`
	Attachments       []models.AttachmentMeta `json:"attachments,omitempty"`
}

type UploadAttachment struct {
	SessionID  string `json:"session_id"`
	ObjectName string `json:"object_name"`
	Title      string `json:"title"`
	Size       int64  `json:"size"`
}
