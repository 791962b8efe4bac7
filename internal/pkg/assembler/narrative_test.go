package assembler

import (
	"sutra-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeNarrative(t *testing.T) {
	t.Run("Declares Generation Status And Language", func(t *testing.T) {
		narrative := synthesizeNarrative("Immunization Record", "final")

		assert.Equal(t, constvars.FhirNarrativeStatusGenerated, narrative.Status)
		assert.Contains(t, narrative.Div, `xmlns="http://www.w3.org/1999/xhtml"`)
		assert.Contains(t, narrative.Div, `lang="en"`)
		assert.Contains(t, narrative.Div, "Immunization Record")
		assert.Contains(t, narrative.Div, "final")
	})

	t.Run("Escapes Markup Special Characters", func(t *testing.T) {
		narrative := synthesizeNarrative(`<script>alert("x")</script>`, "a & b")

		assert.NotContains(t, narrative.Div, "<script>")
		assert.Contains(t, narrative.Div, "&lt;script&gt;")
		assert.Contains(t, narrative.Div, "a &amp; b")
	})

	t.Run("Blank Fields Omitted", func(t *testing.T) {
		narrative := synthesizeNarrative("Title", "", "   ")

		assert.NotContains(t, narrative.Div, "&middot;")
	})
}

func TestEmptySectionNarrative(t *testing.T) {
	narrative := emptySectionNarrative()

	assert.Equal(t, constvars.FhirNarrativeStatusEmpty, narrative.Status)
	assert.Contains(t, narrative.Div, "no entries")
}
