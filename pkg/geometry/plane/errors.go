package plane

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

// Codespace for plane construction errors
const Codespace = "plane"

var (
	// ErrDegenerateBasis is returned when the in-plane directions are zero
	// length or parallel, so no normal can be derived from them.
	ErrDegenerateBasis = errorsmod.Register(Codespace, 2, "degenerate basis: in-plane directions are zero or parallel")
	// ErrSingularTransform is returned when the supplied transform (or the
	// rotation derived from the basis) cannot be inverted.
	ErrSingularTransform = errorsmod.Register(Codespace, 3, "singular transform")
	// ErrInvalidBounds is returned for a nil bound or one whose Validate
	// method fails, e.g. a rectangle with a non-positive side.
	ErrInvalidBounds = errorsmod.Register(Codespace, 4, "invalid bounds")
	// ErrNonAffineTransform is returned for a 4x4 matrix whose bottom row
	// is not [0 0 0 1].
	ErrNonAffineTransform = errorsmod.Register(Codespace, 5, "transform is not affine")
	// ErrNonFinite is returned when the center, a direction or the
	// transform contains NaN or an infinity.
	ErrNonFinite = errorsmod.Register(Codespace, 6, "non-finite coordinate")
	// ErrInvalidTolerance is returned when WithTolerance is given a negative
	// or non-finite value.
	ErrInvalidTolerance = errorsmod.Register(Codespace, 7, "tolerance must be finite and non-negative")
)

// singularTransform keeps both ErrSingularTransform and the underlying
// linear algebra error (geomath.ErrSingularMatrix) reachable via errors.Is.
func singularTransform(err error) error {
	return fmt.Errorf("%w: %w", ErrSingularTransform, err)
}
