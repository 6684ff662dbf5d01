// Package uuid wraps github.com/google/uuid so that IDs can be bound from
// path and query parameters.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID identifies transactions, savings goals and debts.
type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// Parse decodes s into a UUID.
func Parse(s string) (UUID, error) {
	parsed, err := google_uuid.Parse(s)
	if err != nil {
		return Nil, err
	}

	return UUID{parsed}, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) UUID {
	return UUID{google_uuid.MustParse(s)}
}

// IsNil reports whether u is the nil UUID.
func (u UUID) IsNil() bool {
	return u == Nil
}

// UnmarshalParam implements the uuid.Parse method
// from https://pkg.go.dev/github.com/google/uuid#Parse
// for UUID
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := Parse(p)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}
