// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package model

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers distinguish failures with errors.Is rather
// than string matching (see spec §7: failures are distinguished by kind).
var (
	// ErrValidation marks an invalid config or body.
	ErrValidation = errors.New("validation failed")
	// ErrState marks an operation attempted in the wrong engine lifecycle
	// state, or against an unknown id.
	ErrState = errors.New("invalid engine state")
	// ErrNumerical marks a live body that became non-finite during
	// integration.
	ErrNumerical = errors.New("numerical instability")
)

// ValidationErrorf wraps ErrValidation with a formatted, descriptive
// message.
func ValidationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// StateErrorf wraps ErrState with a formatted, descriptive message.
func StateErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrState, fmt.Sprintf(format, args...))
}

// NumericalErrorf wraps ErrNumerical with a formatted, descriptive message.
func NumericalErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNumerical, fmt.Sprintf(format, args...))
}
