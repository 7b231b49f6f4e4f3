package service

import (
	"errors"
	"strings"
)

// Sentinel errors returned by service methods. Handlers match against them
// with [errors.Is] to choose a status code and response body.
var (
	// ErrInvalidDataProvided is returned when a register or login request
	// arrives with an empty username or password.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when the supplied password does not match
	// the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every JWT validation failure
	// (expired, wrong issuer, bad signature, malformed) so callers do not
	// inspect low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrInvalidUpdateParams is returned when an update body is empty or
	// contains a key outside the allowlisted field set. The check runs
	// before any store access.
	ErrInvalidUpdateParams = errors.New("invalid update parameters")
)

// MissingFieldsError reports which required create fields were absent, in
// the fixed order title, amount, category. Its message is part of the public
// contract: the field names joined by ", " followed by " is required".
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return strings.Join(e.Fields, ", ") + " is required"
}
