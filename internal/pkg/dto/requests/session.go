package requests

// UpdateSession is a partial update: nil fields stay untouched. The subject
// is snapshotted from the roster by the client so the assembler never
// refetches it mid-session.
type UpdateSession struct {
	Subject         map[string]interface{} `json:"subject,omitempty"`
	AuthorID        *string                `json:"author_id,omitempty" validate:"omitempty,min=1"`
	Title           *string                `json:"title,omitempty" validate:"omitempty,max=200"`
	Status          *string                `json:"status,omitempty" validate:"omitempty,doc_status"`
	Recommendation  *string                `json:"recommendation,omitempty"`
	EncounterNote   *string                `json:"encounter_note,omitempty"`
	CustodianName   *string                `json:"custodian_name,omitempty"`
	SelectedAddress *string                `json:"selected_address,omitempty"`
}

type ClinicalEntry struct {
	Kind string `json:"kind" validate:"required,entry_kind"`

	Agent          string `json:"agent,omitempty"`
	OccurrenceDate string `json:"occurrence_date,omitempty"`
	Status         string `json:"status,omitempty" validate:"entry_status"`
	LotNumber      string `json:"lot_number,omitempty"`

	TestText   string `json:"test_text,omitempty"`
	TestCode   string `json:"test_code,omitempty"`
	TestSystem string `json:"test_system,omitempty"`
	Category   string `json:"category,omitempty"`
	IssuedDate string `json:"issued_date,omitempty"`
	Effective  string `json:"effective,omitempty"`

	Results   []ResultEntry   `json:"results,omitempty" validate:"dive"`
	Specimens []SpecimenEntry `json:"specimens,omitempty" validate:"dive"`
}

type ResultEntry struct {
	Name   string `json:"name" validate:"required"`
	Code   string `json:"code,omitempty"`
	System string `json:"system,omitempty"`
	Value  string `json:"value,omitempty"`
}

type SpecimenEntry struct {
	Type string `json:"type" validate:"required"`
}
