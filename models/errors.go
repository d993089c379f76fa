// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionClosed covers votes and close requests arriving after a
	// session ended. Closed sessions are removed from the store, so an
	// unknown session id on a vote is reported the same way.
	ErrSessionClosed = errors.New("poll ended")

	// ErrNotEligible rejects a voter absent from a non-empty eligibility set.
	ErrNotEligible = errors.New("not eligible to vote in this poll")

	// ErrInvalidOption rejects an option index outside the option list.
	ErrInvalidOption = errors.New("option index out of range")
)

// ValidationError rejects a malformed creation or configuration request
// before any state is created.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
