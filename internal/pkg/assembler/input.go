package assembler

import (
	"context"
	"io"
	"strings"
	"sutra-service/internal/pkg/constvars"
)

// Subject is the selected roster entry, already flattened by the roster
// layer. Raw keeps the original roster document so the external-identifier
// normalizer can resolve legacy shapes itself.
type Subject struct {
	Name            string                 `json:"name"`
	BirthDate       string                 `json:"birth_date"`
	Gender          string                 `json:"gender"`
	Phone           string                 `json:"phone,omitempty"`
	Email           string                 `json:"email,omitempty"`
	PrimaryID       string                 `json:"primary_id,omitempty"`
	SecondaryID     string                 `json:"secondary_id,omitempty"`
	SelectedAddress string                 `json:"selected_address,omitempty"`
	Raw             map[string]interface{} `json:"raw,omitempty"`
}

// Author is the selected practitioner-directory entry. The registration
// identifier is only emitted when both system and value are present.
type Author struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Qualification      string `json:"qualification,omitempty"`
	Phone              string `json:"phone,omitempty"`
	Email              string `json:"email,omitempty"`
	RegistrationSystem string `json:"registration_system,omitempty"`
	RegistrationValue  string `json:"registration_value,omitempty"`
}

// ClinicalEntry is one session-captured clinical fact. Kind discriminates
// the variant; unused fields stay empty.
type ClinicalEntry struct {
	Kind string `json:"kind"`

	// immunization
	Agent          string `json:"agent,omitempty"`
	OccurrenceDate string `json:"occurrence_date,omitempty"`
	Status         string `json:"status,omitempty"`
	LotNumber      string `json:"lot_number,omitempty"`

	// diagnostic
	TestText   string `json:"test_text,omitempty"`
	TestCode   string `json:"test_code,omitempty"`
	TestSystem string `json:"test_system,omitempty"`
	Category   string `json:"category,omitempty"`
	IssuedDate string `json:"issued_date,omitempty"`
	Effective  string `json:"effective,omitempty"`

	Results   []ResultEntry   `json:"results,omitempty"`
	Specimens []SpecimenEntry `json:"specimens,omitempty"`
}

// KeyText is the field the pre-build gate inspects: an entry with an empty
// key text contributes nothing linkable to the document section.
func (e ClinicalEntry) KeyText() string {
	if e.Kind == constvars.ClinicalEntryKindImmunization {
		return strings.TrimSpace(e.Agent)
	}
	return strings.TrimSpace(e.TestText)
}

type ResultEntry struct {
	Name   string `json:"name"`
	Code   string `json:"code,omitempty"`
	System string `json:"system,omitempty"`
	Value  string `json:"value,omitempty"`
}

type SpecimenEntry struct {
	Type string `json:"type"`
}

// AttachmentSource defers reading binary content to the decode stage. Open
// is the only I/O the assembler performs.
type AttachmentSource struct {
	Title       string
	ContentType string
	Open        func(ctx context.Context) (io.ReadCloser, error)
}

// Input is everything one build invocation consumes. Builders never reach
// outside of it.
type Input struct {
	Subject        *Subject
	Author         *Author
	Title          string
	Status         string
	EncounterNote  string
	CustodianName  string
	Recommendation string
	Entries        []ClinicalEntry
	Attachments    []AttachmentSource
}
