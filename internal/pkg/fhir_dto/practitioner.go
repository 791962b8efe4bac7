package fhir_dto

type Practitioner struct {
	ResourceType  string          `json:"resourceType"`
	ID            string          `json:"id"`
	Language      string          `json:"language,omitempty"`
	Text          *Narrative      `json:"text,omitempty"`
	Identifier    []Identifier    `json:"identifier,omitempty"`
	Active        bool            `json:"active,omitempty"`
	Name          []HumanName     `json:"name,omitempty"`
	Telecom       []ContactPoint  `json:"telecom,omitempty"`
	Qualification []Qualification `json:"qualification,omitempty"`
}
