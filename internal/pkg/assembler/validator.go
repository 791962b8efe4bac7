package assembler

import (
	"strings"
)

// ValidationError aggregates every gate violation found in one pass so the
// caller can report them together.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "document cannot be assembled: " + strings.Join(e.Violations, "; ")
}

const (
	violationNoSubject = "no subject selected"
	violationNoTitle   = "document title is empty"
	violationNoStatus  = "document status is not chosen"
	violationNoContent = "document section has no linkable content: add a clinical entry, a recommendation or an attachment"
)

// Validate gates composition on the minimum-content invariants. It returns
// nil when the input can produce a structurally complete document.
func Validate(in Input) error {
	var violations []string

	if in.Subject == nil {
		violations = append(violations, violationNoSubject)
	}
	if strings.TrimSpace(in.Title) == "" {
		violations = append(violations, violationNoTitle)
	}
	if strings.TrimSpace(in.Status) == "" {
		violations = append(violations, violationNoStatus)
	}
	if !hasLinkableContent(in) {
		violations = append(violations, violationNoContent)
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func hasLinkableContent(in Input) bool {
	for _, entry := range in.Entries {
		if entry.KeyText() != "" {
			return true
		}
	}
	if strings.TrimSpace(in.Recommendation) != "" {
		return true
	}
	return len(in.Attachments) > 0
}
