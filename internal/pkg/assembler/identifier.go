package assembler

import (
	"time"

	"github.com/google/uuid"
)

// IDGenerator yields one fresh resource identifier per call. The default is
// a random v4 UUID in canonical hyphenated form; tests swap in a sequential
// generator to pin bundle output.
type IDGenerator func() string

// Clock supplies the single build-time instant. Captured once per build so
// every timestamp inside one document agrees.
type Clock func() time.Time

func NewUUIDGenerator() IDGenerator {
	return uuid.NewString
}

func urn(id string) string {
	return "urn:uuid:" + id
}
