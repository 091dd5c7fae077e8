package session

import "errors"

var (
	// IncompleteSessionErr is returned when Set is asked to store a token
	// without an identity or an identity without a token.
	IncompleteSessionErr = errors.New("session requires both a token and an identity")
	// SealCorruptErr is returned when a persisted credentials file cannot be
	// opened with the install's seal key.
	SealCorruptErr = errors.New("credentials file is corrupt or sealed with a different key")
)
