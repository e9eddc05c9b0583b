package math

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace for linear algebra errors
const Codespace = "geomath"

// ErrSingularMatrix is returned when an inverse is requested for a matrix
// whose determinant is zero or numerically indistinguishable from zero.
var ErrSingularMatrix = errorsmod.Register(Codespace, 2, "matrix is singular")
