package id

import "github.com/google/uuid"

// New returns a fresh opaque record ID. IDs are assigned once at creation
// and never reused, even when a record is duplicated or renewed.
func New() string {
	return uuid.NewString()
}

// Short returns the display prefix of an ID for tables and logs.
func Short(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
