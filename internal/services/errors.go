package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Error kinds the API boundary translates into status codes. Repositories
// wrap storage failures; anything not matching one of these surfaces as an
// internal error.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrStateNotFound      = errors.New("state not found")
	ErrStateNameTaken     = errors.New("state name already exists")
	ErrStateInUse         = errors.New("state is referenced by existing tasks")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// isDuplicateKey reports whether a storage error is a unique-constraint
// violation. The existence pre-checks before insert are racy; when two
// concurrent creates both pass the pre-check the database rejects the loser,
// and we map that rejection to the same conflict kind as the pre-check.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
