package fhir_dto

type Encounter struct {
	ResourceType string            `json:"resourceType"`
	ID           string            `json:"id"`
	Language     string            `json:"language,omitempty"`
	Text         *Narrative        `json:"text,omitempty"`
	Status       string            `json:"status"`
	Class        *Coding           `json:"class,omitempty"`
	Type         []CodeableConcept `json:"type,omitempty"`
	Subject      *Reference        `json:"subject,omitempty"`
	Period       *Period           `json:"period,omitempty"`
}

type Organization struct {
	ResourceType string     `json:"resourceType"`
	ID           string     `json:"id"`
	Language     string     `json:"language,omitempty"`
	Text         *Narrative `json:"text,omitempty"`
	Active       bool       `json:"active,omitempty"`
	Name         string     `json:"name,omitempty"`
}
