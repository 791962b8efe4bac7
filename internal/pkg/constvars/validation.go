package constvars

// Validation messages, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"oneof":        "must be one of [%s]",
	"uuid":         "must be a valid UUID",
	"entry_kind":   "must be either 'immunization' or 'diagnostic'",
	"entry_status": "must be a valid entry status",
	"doc_status":   "must be one of 'preliminary', 'final' or 'amended'",
}

// Tags whose message needs the tag parameter substituted in.
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
