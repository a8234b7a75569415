// Package generator provides the id and timestamp capabilities injected into
// the storage layer, so record creation stays deterministic under test.
package generator

import (
	"time"

	"github.com/google/uuid"
)

// IdGenerator produces unique, prefixed record ids ("thread-<uuid>").
type IdGenerator interface {
	Generate(prefix string) string
}

// Clock supplies creation timestamps.
type Clock interface {
	Now() time.Time
}

type UUID struct{}

func (UUID) Generate(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
