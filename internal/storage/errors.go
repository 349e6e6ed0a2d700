// ABOUTME: Sentinel errors and SQLite error classification.
// ABOUTME: Maps UNIQUE constraint failures to a domain-level duplicate error.
package storage

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a read misses. Updates and deletes of
// missing ids are silent no-ops and never return this.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a catalog insert violates a UNIQUE
// constraint, so handlers can surface it as a warning instead of a raw
// storage error.
var ErrAlreadyExists = errors.New("already exists")

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
