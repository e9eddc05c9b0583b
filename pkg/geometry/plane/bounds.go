package plane

import (
	"math"

	errorsmod "cosmossdk.io/errors"

	geomath "github.com/oxygene76/boundedplane/pkg/geometry/math"
)

// BoundCheck decides whether a point given in a plane's local frame lies
// within the plane's extent. Only the local X and Y coordinates are
// considered; planarity is the plane's concern.
type BoundCheck interface {
	InsideBounds(local geomath.Point3) bool
}

// validator is implemented by bounds that can check their own parameters.
// Plane constructors call it when present.
type validator interface {
	Validate() error
}

// RectangularBounds is a rectangle centred on the plane origin, Width along
// the local X axis and Height along the local Y axis.
type RectangularBounds struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

var _ BoundCheck = RectangularBounds{}

// NewRectangularBounds returns validated rectangular bounds
func NewRectangularBounds(width, height float64) (RectangularBounds, error) {
	b := RectangularBounds{Width: width, Height: height}
	if err := b.Validate(); err != nil {
		return RectangularBounds{}, err
	}
	return b, nil
}

// Validate requires both dimensions to be positive and finite
func (b RectangularBounds) Validate() error {
	if !(b.Width > 0) || math.IsInf(b.Width, 0) {
		return errorsmod.Wrapf(ErrInvalidBounds, "width must be positive, got %g", b.Width)
	}
	if !(b.Height > 0) || math.IsInf(b.Height, 0) {
		return errorsmod.Wrapf(ErrInvalidBounds, "height must be positive, got %g", b.Height)
	}
	return nil
}

// InsideBounds is inclusive: points exactly on an edge are inside.
func (b RectangularBounds) InsideBounds(local geomath.Point3) bool {
	return math.Abs(local.X) <= b.Width/2 && math.Abs(local.Y) <= b.Height/2
}

func validateBounds(bound BoundCheck) error {
	if bound == nil {
		return errorsmod.Wrap(ErrInvalidBounds, "bound is nil")
	}
	if v, ok := bound.(validator); ok {
		return v.Validate()
	}
	return nil
}
