package models

import (
	"sutra-service/internal/pkg/assembler"
	"time"
)

// Session is one form-capture session, stored as a JSON document in redis.
// The clinical entry list is ordered and index-addressed from the edit
// surface.
type Session struct {
	ID              string                    `json:"id"`
	Subject         map[string]interface{}    `json:"subject,omitempty"`
	SelectedAddress string                    `json:"selected_address,omitempty"`
	AuthorID        string                    `json:"author_id,omitempty"`
	Title           string                    `json:"title,omitempty"`
	Status          string                    `json:"status,omitempty"`
	Recommendation  string                    `json:"recommendation,omitempty"`
	EncounterNote   string                    `json:"encounter_note,omitempty"`
	CustodianName   string                    `json:"custodian_name,omitempty"`
	Entries         []assembler.ClinicalEntry `json:"entries,omitempty"`
	Attachments     []AttachmentMeta          `json:"attachments,omitempty"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

// AttachmentMeta points at uploaded binary content in object storage; the
// bytes themselves only flow through the decode stage at build time.
type AttachmentMeta struct {
	ObjectName  string `json:"object_name"`
	Title       string `json:"title"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}
