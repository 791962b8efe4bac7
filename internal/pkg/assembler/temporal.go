package assembler

import (
	"regexp"
	"time"
)

const localTimestampLayout = "2006-01-02T15:04:05-07:00"

var (
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dmyDatePattern = regexp.MustCompile(`^(\d{2})[-/](\d{2})[-/](\d{4})$`)
)

// NormalizeDate canonicalizes a captured date to YYYY-MM-DD. It accepts
// ISO dates as-is and reorders DD-MM-YYYY / DD/MM/YYYY; anything else
// yields an empty string rather than a guess.
func NormalizeDate(s string) string {
	if isoDatePattern.MatchString(s) {
		return s
	}
	if m := dmyDatePattern.FindStringSubmatch(s); m != nil {
		return m[3] + "-" + m[2] + "-" + m[1]
	}
	return ""
}

// FormatLocal renders t as YYYY-MM-DDTHH:mm:ss±HH:MM in t's own zone.
// Sign, hour and minute of the offset are zero-padded, so the value
// round-trips through ParseLocal to the same wall-clock time.
func FormatLocal(t time.Time) string {
	return t.Format(localTimestampLayout)
}

func ParseLocal(s string) (time.Time, error) {
	return time.Parse(localTimestampLayout, s)
}

// normalizeOrFallback resolves a captured clinical date to a FHIR dateTime,
// falling back to the build instant when the input is absent or
// unparseable. The fallback is deliberate recovery, not an error.
func normalizeOrFallback(raw string, now time.Time) (string, bool) {
	if normalized := NormalizeDate(raw); normalized != "" {
		return normalized, false
	}
	return FormatLocal(now), true
}
