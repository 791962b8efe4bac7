package fhir_dto

type Immunization struct {
	ResourceType       string           `json:"resourceType"`
	ID                 string           `json:"id"`
	Language           string           `json:"language,omitempty"`
	Text               *Narrative       `json:"text,omitempty"`
	Status             string           `json:"status"`
	VaccineCode        *CodeableConcept `json:"vaccineCode,omitempty"`
	Patient            *Reference       `json:"patient,omitempty"`
	OccurrenceDateTime string           `json:"occurrenceDateTime,omitempty"`
	LotNumber          string           `json:"lotNumber,omitempty"`
}

type DiagnosticReport struct {
	ResourceType      string            `json:"resourceType"`
	ID                string            `json:"id"`
	Language          string            `json:"language,omitempty"`
	Text              *Narrative        `json:"text,omitempty"`
	Status            string            `json:"status"`
	Category          []CodeableConcept `json:"category,omitempty"`
	Code              *CodeableConcept  `json:"code,omitempty"`
	Subject           *Reference        `json:"subject,omitempty"`
	EffectiveDateTime string            `json:"effectiveDateTime,omitempty"`
	Issued            string            `json:"issued,omitempty"`
	Specimen          []Reference       `json:"specimen,omitempty"`
	Result            []Reference       `json:"result,omitempty"`
}

type Observation struct {
	ResourceType      string           `json:"resourceType"`
	ID                string           `json:"id"`
	Language          string           `json:"language,omitempty"`
	Text              *Narrative       `json:"text,omitempty"`
	Status            string           `json:"status"`
	Code              *CodeableConcept `json:"code,omitempty"`
	Subject           *Reference       `json:"subject,omitempty"`
	EffectiveDateTime string           `json:"effectiveDateTime,omitempty"`
	ValueString       string           `json:"valueString,omitempty"`
}

type Specimen struct {
	ResourceType string           `json:"resourceType"`
	ID           string           `json:"id"`
	Language     string           `json:"language,omitempty"`
	Text         *Narrative       `json:"text,omitempty"`
	Status       string           `json:"status,omitempty"`
	Type         *CodeableConcept `json:"type,omitempty"`
	Subject      *Reference       `json:"subject,omitempty"`
	ReceivedTime string           `json:"receivedTime,omitempty"`
}

type CarePlan struct {
	ResourceType string     `json:"resourceType"`
	ID           string     `json:"id"`
	Language     string     `json:"language,omitempty"`
	Text         *Narrative `json:"text,omitempty"`
	Status       string     `json:"status"`
	Intent       string     `json:"intent"`
	Description  string     `json:"description,omitempty"`
	Subject      *Reference `json:"subject,omitempty"`
	Created      string     `json:"created,omitempty"`
}
