package assembler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sutra-service/internal/pkg/constvars"
	"sutra-service/internal/pkg/fhir_dto"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func pinnedAssembler() *Assembler {
	counter := 0
	return &Assembler{
		NewID: func() string {
			counter++
			return fmt.Sprintf("00000000-0000-4000-8000-%012d", counter)
		},
		Clock: func() time.Time {
			return time.Date(2024, 5, 1, 10, 30, 0, 0, time.FixedZone("IST", 5*3600+30*60))
		},
		Log: zap.NewNop(),
	}
}

func resourceTypeOf(entry fhir_dto.Entry) string {
	raw, _ := json.Marshal(entry.Resource)
	var head struct {
		ResourceType string `json:"resourceType"`
	}
	json.Unmarshal(raw, &head)
	return head.ResourceType
}

// collectReferences walks the marshaled bundle and gathers every urn:uuid
// locator embedded anywhere below the entry resources.
func collectReferences(t *testing.T, bundle *fhir_dto.Bundle) (fullURLs map[string]bool, refs []string) {
	t.Helper()
	fullURLs = make(map[string]bool)
	for _, entry := range bundle.Entry {
		assert.False(t, fullURLs[entry.FullUrl], "duplicate fullUrl %s", entry.FullUrl)
		fullURLs[entry.FullUrl] = true
	}

	raw, err := json.Marshal(bundle)
	assert.NoError(t, err)
	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &decoded))

	var walk func(node interface{})
	walk = func(node interface{}) {
		switch v := node.(type) {
		case map[string]interface{}:
			for key, value := range v {
				if text, ok := value.(string); ok && strings.HasPrefix(text, "urn:uuid:") {
					if key == "reference" || key == "url" {
						refs = append(refs, text)
					}
				}
				walk(value)
			}
		case []interface{}:
			for _, item := range v {
				walk(item)
			}
		}
	}
	for _, entry := range decoded["entry"].([]interface{}) {
		walk(entry.(map[string]interface{})["resource"])
	}
	return fullURLs, refs
}

func TestBuildScenario(t *testing.T) {
	bundle, err := pinnedAssembler().Build(context.Background(), validInput())
	assert.NoError(t, err)

	t.Run("Document Bundle Shape", func(t *testing.T) {
		assert.Equal(t, constvars.ResourceBundle, bundle.ResourceType)
		assert.Equal(t, constvars.FhirBundleTypeDocument, bundle.Type)
		assert.Equal(t, "2024-05-01T10:30:00+05:30", bundle.Timestamp)
	})

	t.Run("Exactly Six Entries In Fixed Order", func(t *testing.T) {
		types := make([]string, 0, len(bundle.Entry))
		for _, entry := range bundle.Entry {
			types = append(types, resourceTypeOf(entry))
		}
		assert.Equal(t, []string{
			constvars.ResourceComposition,
			constvars.ResourcePatient,
			constvars.ResourcePractitioner,
			constvars.ResourceImmunization,
			constvars.ResourceDocumentReference,
			constvars.ResourceBinary,
		}, types)
	})

	t.Run("Subject Demographics Normalized", func(t *testing.T) {
		patient := bundle.Entry[1].Resource.(*fhir_dto.Patient)
		assert.Equal(t, constvars.FhirGenderFemale, patient.Gender)
		assert.Equal(t, "1990-06-15", patient.BirthDate)
	})

	t.Run("Placeholder Pair Emitted Without Attachments", func(t *testing.T) {
		binary := bundle.Entry[5].Resource.(*fhir_dto.Binary)
		assert.Equal(t, placeholderData, binary.Data)
		assert.Equal(t, constvars.MIMETextPlain, binary.ContentType)

		docRef := bundle.Entry[4].Resource.(*fhir_dto.DocumentReference)
		assert.Equal(t, urn(binary.ID), docRef.Content[0].Attachment.Url)
	})

	t.Run("Every Resource Carries A Narrative Except Binary", func(t *testing.T) {
		for _, entry := range bundle.Entry[:5] {
			raw, _ := json.Marshal(entry.Resource)
			assert.Contains(t, string(raw), `"text"`, "%s should carry a narrative", resourceTypeOf(entry))
		}
	})
}

func TestBuildReferentialClosure(t *testing.T) {
	in := validInput()
	in.EncounterNote = "annual check-up"
	in.CustodianName = "City Clinic"
	in.Recommendation = "repeat CBC in six months"
	in.Entries = append(in.Entries, ClinicalEntry{
		Kind:       constvars.ClinicalEntryKindDiagnostic,
		TestText:   "Complete Blood Count",
		TestCode:   "58410-2",
		Category:   "hematology",
		IssuedDate: "2024-04-20",
		Results: []ResultEntry{
			{Name: "Hemoglobin", Code: "718-7", Value: "13.2 g/dL"},
			{Name: "WBC", Value: "6.1 x10^9/L"},
		},
		Specimens: []SpecimenEntry{{Type: "venous blood"}},
	})
	in.Attachments = []AttachmentSource{{
		Title:       "lab-report.pdf",
		ContentType: constvars.MIMEApplicationPDF,
		Open: func(ctx context.Context) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("%PDF-1.4")), nil
		},
	}}

	bundle, err := pinnedAssembler().Build(context.Background(), in)
	assert.NoError(t, err)

	t.Run("Every Reference Resolves To An Entry", func(t *testing.T) {
		fullURLs, refs := collectReferences(t, bundle)
		assert.NotEmpty(t, refs)
		for _, ref := range refs {
			assert.True(t, fullURLs[ref], "dangling reference %s", ref)
		}
	})

	t.Run("Entry FullUrl Matches Resource ID", func(t *testing.T) {
		for _, entry := range bundle.Entry {
			raw, _ := json.Marshal(entry.Resource)
			var head struct {
				ID string `json:"id"`
			}
			json.Unmarshal(raw, &head)
			assert.Equal(t, urn(head.ID), entry.FullUrl)
		}
	})

	t.Run("Section References Facts Recommendation And Pointers", func(t *testing.T) {
		composition := bundle.Entry[0].Resource.(*fhir_dto.Composition)
		assert.Len(t, composition.Section, 1)
		// immunization + report + careplan + docref
		assert.Len(t, composition.Section[0].Entry, 4)
	})

	t.Run("Observations Share Parent Report Timestamp", func(t *testing.T) {
		var report *fhir_dto.DiagnosticReport
		var observations []*fhir_dto.Observation
		for _, entry := range bundle.Entry {
			switch resource := entry.Resource.(type) {
			case *fhir_dto.DiagnosticReport:
				report = resource
			case *fhir_dto.Observation:
				observations = append(observations, resource)
			}
		}
		assert.NotNil(t, report)
		assert.Equal(t, "2024-04-20", report.Issued)
		assert.Len(t, observations, 2)
		for _, observation := range observations {
			assert.Equal(t, report.Issued, observation.EffectiveDateTime)
		}
	})

	t.Run("Fixed Entry Ordering", func(t *testing.T) {
		types := make([]string, 0, len(bundle.Entry))
		for _, entry := range bundle.Entry {
			types = append(types, resourceTypeOf(entry))
		}
		assert.Equal(t, []string{
			constvars.ResourceComposition,
			constvars.ResourcePatient,
			constvars.ResourcePractitioner,
			constvars.ResourceEncounter,
			constvars.ResourceOrganization,
			constvars.ResourceImmunization,
			constvars.ResourceDiagnosticReport,
			constvars.ResourceCarePlan,
			constvars.ResourceObservation,
			constvars.ResourceObservation,
			constvars.ResourceSpecimen,
			constvars.ResourceDocumentReference,
			constvars.ResourceBinary,
		}, types)
	})
}

func TestBuildDeterminism(t *testing.T) {
	build := func() []byte {
		bundle, err := pinnedAssembler().Build(context.Background(), validInput())
		assert.NoError(t, err)
		raw, err := json.Marshal(bundle)
		assert.NoError(t, err)
		return raw
	}

	assert.Equal(t, string(build()), string(build()), "pinned clock and ids must give byte-identical output")
}

func TestBuildFailsAtomically(t *testing.T) {
	t.Run("Validation Failure Yields No Bundle", func(t *testing.T) {
		bundle, err := pinnedAssembler().Build(context.Background(), Input{})
		assert.Nil(t, bundle)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Decode Failure Yields No Bundle", func(t *testing.T) {
		in := validInput()
		in.Attachments = []AttachmentSource{{
			Title:       "missing.pdf",
			ContentType: constvars.MIMEApplicationPDF,
			Open: func(ctx context.Context) (io.ReadCloser, error) {
				return nil, errors.New("storage down")
			},
		}}

		bundle, err := pinnedAssembler().Build(context.Background(), in)
		assert.Nil(t, bundle)
		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})
}
