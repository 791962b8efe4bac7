package assembler

import (
	"fmt"
	"html"
	"strings"
	"sutra-service/internal/pkg/constvars"
	"sutra-service/internal/pkg/fhir_dto"
)

// synthesizeNarrative produces the minimal generated xhtml every resource in
// the bundle carries. User-entered text is escaped so markup-special
// characters never break the div structure.
func synthesizeNarrative(title string, fields ...string) *fhir_dto.Narrative {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<div xmlns=%q lang=%q xml:lang=%q>`,
		constvars.FhirXhtmlNamespace, constvars.FhirDefaultLanguage, constvars.FhirDefaultLanguage))
	sb.WriteString("<p><b>" + html.EscapeString(title) + "</b></p>")

	present := make([]string, 0, len(fields))
	for _, field := range fields {
		if strings.TrimSpace(field) == "" {
			continue
		}
		present = append(present, html.EscapeString(field))
	}
	if len(present) > 0 {
		sb.WriteString("<p>" + strings.Join(present, " &middot; ") + "</p>")
	}
	sb.WriteString("</div>")

	return &fhir_dto.Narrative{
		Status: constvars.FhirNarrativeStatusGenerated,
		Div:    sb.String(),
	}
}

// emptySectionNarrative replaces the entry list when a section would
// otherwise be empty.
func emptySectionNarrative() *fhir_dto.Narrative {
	return &fhir_dto.Narrative{
		Status: constvars.FhirNarrativeStatusEmpty,
		Div: fmt.Sprintf(`<div xmlns=%q lang=%q xml:lang=%q><p>no entries</p></div>`,
			constvars.FhirXhtmlNamespace, constvars.FhirDefaultLanguage, constvars.FhirDefaultLanguage),
	}
}
