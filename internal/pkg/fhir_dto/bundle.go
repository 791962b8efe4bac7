package fhir_dto

import "encoding/json"

// Bundle is the outer document container the assembler emits. Entry order is
// load-bearing: downstream validators treat the first entry as the root
// Composition.
type Bundle struct {
	ResourceType string      `json:"resourceType"`
	ID           string      `json:"id"`
	Identifier   *Identifier `json:"identifier,omitempty"`
	Type         string      `json:"type"`
	Timestamp    string      `json:"timestamp,omitempty"`
	Entry        []Entry     `json:"entry,omitempty"`
}

type Entry struct {
	FullUrl  string      `json:"fullUrl,omitempty"`
	Resource interface{} `json:"resource,omitempty"`
}

// SearchBundle matches the shape the upstream FHIR server returns for
// searches; entries stay raw until the roster client picks them apart.
type SearchBundle struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id"`
	Type         string        `json:"type"`
	Total        int           `json:"total"`
	Entry        []SearchEntry `json:"entry"`
}

type SearchEntry struct {
	FullUrl  string          `json:"fullUrl,omitempty"`
	Resource json.RawMessage `json:"resource"`
}
