package assembler

import (
	"context"
	"io"
	"strings"
	"sutra-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() Input {
	return Input{
		Subject: &Subject{Name: "Asha Singh", BirthDate: "15-06-1990", Gender: "F"},
		Author:  &Author{ID: "prac-1", Name: "Dr. A. Verma"},
		Title:   "Immunization Record",
		Status:  "final",
		Entries: []ClinicalEntry{{
			Kind:   constvars.ClinicalEntryKindImmunization,
			Agent:  "BCG",
			Status: "completed",
		}},
	}
}

func TestValidate(t *testing.T) {
	t.Run("Valid Input Passes", func(t *testing.T) {
		assert.NoError(t, Validate(validInput()))
	})

	t.Run("All Violations Reported Together", func(t *testing.T) {
		err := Validate(Input{})

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Len(t, validationErr.Violations, 4)
		assert.Contains(t, validationErr.Violations, violationNoSubject)
		assert.Contains(t, validationErr.Violations, violationNoTitle)
		assert.Contains(t, validationErr.Violations, violationNoStatus)
		assert.Contains(t, validationErr.Violations, violationNoContent)
	})

	t.Run("Subject Without Content Fails On Content Only", func(t *testing.T) {
		in := validInput()
		in.Entries = nil

		err := Validate(in)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{violationNoContent}, validationErr.Violations)
	})

	t.Run("Entry With Empty Key Text Is Not Linkable", func(t *testing.T) {
		in := validInput()
		in.Entries = []ClinicalEntry{{Kind: constvars.ClinicalEntryKindImmunization, Agent: "   "}}

		assert.Error(t, Validate(in))
	})

	t.Run("One Non Empty Entry Makes It Succeed", func(t *testing.T) {
		in := validInput()
		in.Entries = []ClinicalEntry{
			{Kind: constvars.ClinicalEntryKindImmunization, Agent: ""},
			{Kind: constvars.ClinicalEntryKindDiagnostic, TestText: "CBC"},
		}

		assert.NoError(t, Validate(in))
	})

	t.Run("Recommendation Alone Is Linkable", func(t *testing.T) {
		in := validInput()
		in.Entries = nil
		in.Recommendation = "follow up in two weeks"

		assert.NoError(t, Validate(in))
	})

	t.Run("Attachment Alone Is Linkable", func(t *testing.T) {
		in := validInput()
		in.Entries = nil
		in.Attachments = []AttachmentSource{{
			Title:       "scan.pdf",
			ContentType: constvars.MIMEApplicationPDF,
			Open: func(ctx context.Context) (io.ReadCloser, error) {
				return io.NopCloser(strings.NewReader("pdf")), nil
			},
		}}

		assert.NoError(t, Validate(in))
	})
}
