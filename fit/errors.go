// SPDX-License-Identifier: MIT
// Package fit: sentinel error set. All fit entry points return these
// sentinels (possibly wrapped with context via %w) and tests match them
// with errors.Is.

package fit

import "errors"

var (
	// ErrInsufficientData is returned when no strain samples are
	// available for fitting. Fatal to the fit step; never recovered here.
	ErrInsufficientData = errors.New("fit: no strain samples to fit")

	// ErrInputMismatch is returned when neither stress nor energy+volume
	// data align in length with the rotation-augmented strain count.
	// Signals a caller contract violation.
	ErrInputMismatch = errors.New("fit: provide stress, or energy and volume, matching the strain count")
)
