package fhir_dto

type Composition struct {
	ResourceType string           `json:"resourceType"`
	ID           string           `json:"id"`
	Language     string           `json:"language,omitempty"`
	Text         *Narrative       `json:"text,omitempty"`
	Identifier   *Identifier      `json:"identifier,omitempty"`
	Status       string           `json:"status"`
	Type         *CodeableConcept `json:"type,omitempty"`
	Subject      *Reference       `json:"subject,omitempty"`
	Encounter    *Reference       `json:"encounter,omitempty"`
	Date         string           `json:"date,omitempty"`
	Author       []Reference      `json:"author,omitempty"`
	Title        string           `json:"title,omitempty"`
	Custodian    *Reference       `json:"custodian,omitempty"`
	Section      []Section        `json:"section,omitempty"`
}

type Section struct {
	Title string           `json:"title,omitempty"`
	Code  *CodeableConcept `json:"code,omitempty"`
	Text  *Narrative       `json:"text,omitempty"`
	Entry []Reference      `json:"entry,omitempty"`
}
