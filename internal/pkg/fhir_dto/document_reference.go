package fhir_dto

type DocumentReference struct {
	ResourceType string           `json:"resourceType"`
	ID           string           `json:"id"`
	Language     string           `json:"language,omitempty"`
	Text         *Narrative       `json:"text,omitempty"`
	Status       string           `json:"status"`
	Type         *CodeableConcept `json:"type,omitempty"`
	Subject      *Reference       `json:"subject,omitempty"`
	Date         string           `json:"date,omitempty"`
	Description  string           `json:"description,omitempty"`
	Content      []DocRefContent  `json:"content,omitempty"`
}

type DocRefContent struct {
	Attachment Attachment `json:"attachment"`
}

type Binary struct {
	ResourceType string `json:"resourceType"`
	ID           string `json:"id"`
	Language     string `json:"language,omitempty"`
	ContentType  string `json:"contentType"`
	Data         string `json:"data,omitempty"`
}
