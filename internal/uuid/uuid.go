// Package uuid wraps github.com/google/uuid so that IDs can be bound from
// URI parameters and query strings by gin.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID is a google/uuid UUID that implements gin's BindUnmarshaler.
type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// UnmarshalParam parses p with uuid.Parse. An empty string is the Nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
