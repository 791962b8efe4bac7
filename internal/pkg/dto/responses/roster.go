package responses

// RosterPatient is a flattened roster entry: enough for the selection list,
// with the raw resource kept for the external-identifier normalizer.
type RosterPatient struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	BirthDate string                 `json:"birth_date,omitempty"`
	Gender    string                 `json:"gender,omitempty"`
	Phone     string                 `json:"phone,omitempty"`
	Email     string                 `json:"email,omitempty"`
	Raw       map[string]interface{} `json:"raw,omitempty"`
}

type PractitionerEntry struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Qualification string `json:"qualification,omitempty"`
	Registration  string `json:"registration,omitempty"`
}
