// SPDX-License-Identifier: MIT

// Package geom: sentinel errors.
// Declared once here; other files wrap them with operation context via
// fmt.Errorf("Op: ...: %w", Err).
package geom

import "errors"

// ErrDimensionMismatch is returned when a transform or locus is applied to a
// point of a different dimension.
var ErrDimensionMismatch = errors.New("geom: dimension mismatch")

// ErrZeroNormal is returned when a hyperplane is built from a normal vector
// of (near-)zero length, which defines no orientation.
var ErrZeroNormal = errors.New("geom: hyperplane normal has zero length")
