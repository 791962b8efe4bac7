package assembler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	t.Run("ISO Date Passes Through", func(t *testing.T) {
		assert.Equal(t, "1990-06-15", NormalizeDate("1990-06-15"))
	})

	t.Run("Day First With Dashes", func(t *testing.T) {
		assert.Equal(t, "1990-06-15", NormalizeDate("15-06-1990"))
	})

	t.Run("Day First With Slashes", func(t *testing.T) {
		assert.Equal(t, "2021-01-02", NormalizeDate("02/01/2021"))
	})

	t.Run("Unrecognized Formats Yield Empty", func(t *testing.T) {
		for _, raw := range []string{"", "June 15 1990", "15.06.1990", "1990/06/15", "garbage"} {
			assert.Empty(t, NormalizeDate(raw), "input %q should not be guessed at", raw)
		}
	})
}

func TestFormatLocalRoundTrip(t *testing.T) {
	zones := map[string]*time.Location{
		"positive offset": time.FixedZone("IST", 5*3600+30*60),
		"negative offset": time.FixedZone("EST", -5*3600),
		"utc":             time.UTC,
	}

	for name, zone := range zones {
		t.Run(name, func(t *testing.T) {
			original := time.Date(2024, 3, 9, 18, 5, 4, 0, zone)
			formatted := FormatLocal(original)

			parsed, err := ParseLocal(formatted)
			assert.NoError(t, err)
			assert.Equal(t, formatted, FormatLocal(parsed), "normalize(parse(normalize(x))) must equal normalize(x)")
			assert.True(t, original.Equal(parsed), "round-trip must keep the same instant")
		})
	}
}

func TestFormatLocalPadding(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)
	assert.Equal(t, "2024-03-09T08:05:04+05:30", FormatLocal(time.Date(2024, 3, 9, 8, 5, 4, 0, ist)))

	est := time.FixedZone("EST", -5*3600)
	assert.Equal(t, "2024-03-09T08:05:04-05:00", FormatLocal(time.Date(2024, 3, 9, 8, 5, 4, 0, est)))
}

func TestNormalizeOrFallback(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Valid Date Keeps Date", func(t *testing.T) {
		value, fellBack := normalizeOrFallback("01-02-2023", now)
		assert.Equal(t, "2023-02-01", value)
		assert.False(t, fellBack)
	})

	t.Run("Unparseable Date Falls Back To Build Time", func(t *testing.T) {
		value, fellBack := normalizeOrFallback("last tuesday", now)
		assert.Equal(t, FormatLocal(now), value)
		assert.True(t, fellBack)
	})

	t.Run("Absent Date Falls Back To Build Time", func(t *testing.T) {
		value, fellBack := normalizeOrFallback("", now)
		assert.Equal(t, FormatLocal(now), value)
		assert.True(t, fellBack)
	})
}
