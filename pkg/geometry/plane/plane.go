// Package plane implements a bounded plane embedded in 3D space: conversion
// between the plane's local frame and the global frame, and containment
// tests against the plane's bound.
package plane

import (
	"math"

	errorsmod "cosmossdk.io/errors"

	geomath "github.com/oxygene76/boundedplane/pkg/geometry/math"
)

const (
	// DefaultTolerance is the largest |local z| still treated as on-plane
	DefaultTolerance = 1e-6

	// DegeneracyEpsilon bounds |diru x dirv| relative to |diru||dirv|,
	// i.e. the sine of the angle between the two directions.
	DegeneracyEpsilon = 1e-9
)

// Plane is immutable after construction and safe for concurrent reads.
//
// Local coordinates are three dimensional: X and Y run along the supplied
// in-plane directions, Z along the unit normal. A point lies on the plane
// when its local Z is (within tolerance) zero.
type Plane struct {
	center    geomath.Point3
	rotation  geomath.Matrix3
	inverse   geomath.Matrix3
	bounds    BoundCheck
	tolerance float64
}

// Option customises a plane at construction time
type Option func(*Plane)

// WithTolerance sets the planarity tolerance used by IsInside
func WithTolerance(tolerance float64) Option {
	return func(p *Plane) {
		p.tolerance = tolerance
	}
}

// New builds a plane centred at center whose local X and Y axes are diru
// and dirv. The normal is the normalised cross product diru x dirv. The
// directions are used as given, so non-unit directions scale the local
// frame.
func New(center geomath.Point3, diru, dirv geomath.Vector3, bound BoundCheck, opts ...Option) (*Plane, error) {
	if !center.IsFinite() {
		return nil, errorsmod.Wrapf(ErrNonFinite, "center %s", center)
	}
	if !diru.IsFinite() || !dirv.IsFinite() {
		return nil, errorsmod.Wrapf(ErrNonFinite, "directions %s, %s", diru, dirv)
	}
	if err := validateBounds(bound); err != nil {
		return nil, err
	}

	if diru.IsZero() || dirv.IsZero() {
		return nil, errorsmod.Wrapf(ErrDegenerateBasis, "zero-length direction: %s, %s", diru, dirv)
	}

	// |u x v| of the unit directions is the sine of the angle between them
	normal := diru.Normalize().Cross(dirv.Normalize())
	if !(normal.Magnitude() > DegeneracyEpsilon) {
		return nil, errorsmod.Wrapf(ErrDegenerateBasis, "parallel directions: %s, %s (sin %g, cos %g)",
			diru, dirv, normal.Magnitude(), diru.Normalize().Dot(dirv.Normalize()))
	}

	rotation := geomath.FromColumns(diru, dirv, normal.Normalize())
	return build(center, rotation, bound, opts)
}

// NewFromTransform builds a plane from an affine local-to-global transform.
// The transform's inverse is computed once here and cached.
func NewFromTransform(transform geomath.AffineTransform, bound BoundCheck, opts ...Option) (*Plane, error) {
	if !transform.IsFinite() {
		return nil, errorsmod.Wrap(ErrNonFinite, "transform")
	}
	if !transform.IsAffine() {
		return nil, errorsmod.Wrapf(ErrNonAffineTransform, "bottom row %v", transform[3])
	}
	if err := validateBounds(bound); err != nil {
		return nil, err
	}

	inv, err := transform.Inverse()
	if err != nil {
		return nil, singularTransform(err)
	}

	center, rotation := transform.Decompose()
	_, inverse := inv.Decompose()

	return newPlane(center, rotation, inverse, bound, opts)
}

func build(center geomath.Point3, rotation geomath.Matrix3, bound BoundCheck, opts []Option) (*Plane, error) {
	inverse, err := rotation.Inverse()
	if err != nil {
		return nil, singularTransform(err)
	}
	return newPlane(center, rotation, inverse, bound, opts)
}

func newPlane(center geomath.Point3, rotation, inverse geomath.Matrix3, bound BoundCheck, opts []Option) (*Plane, error) {
	p := &Plane{
		center:    center,
		rotation:  rotation,
		inverse:   inverse,
		bounds:    bound,
		tolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		opt(p)
	}
	if !(p.tolerance >= 0) || math.IsInf(p.tolerance, 0) {
		return nil, errorsmod.Wrapf(ErrInvalidTolerance, "got %g", p.tolerance)
	}
	return p, nil
}

// LocalToGlobal maps a point from the plane's frame into the global frame
func (p *Plane) LocalToGlobal(local geomath.Point3) geomath.Point3 {
	return p.center.Add(p.rotation.MulVec(local.Vector()))
}

// GlobalToLocal maps a global point into the plane's frame using the
// inverse cached at construction.
func (p *Plane) GlobalToLocal(global geomath.Point3) geomath.Point3 {
	return geomath.PointFromVector(p.inverse.MulVec(global.Sub(p.center)))
}

// IsInside reports whether a global point lies on the plane and within its
// bound. Off-plane points are rejected without consulting the bound.
func (p *Plane) IsInside(global geomath.Point3) bool {
	local := p.GlobalToLocal(global)
	if !p.OnPlane(local) {
		return false
	}
	return p.bounds.InsideBounds(local)
}

// OnPlane reports whether a local point's Z is within tolerance of zero
func (p *Plane) OnPlane(local geomath.Point3) bool {
	return math.Abs(local.Z) <= p.tolerance
}

// Center returns the plane origin in global coordinates
func (p *Plane) Center() geomath.Point3 {
	return p.center
}

// AxisU returns the local X axis
func (p *Plane) AxisU() geomath.Vector3 {
	return p.rotation.Column(0)
}

// AxisV returns the local Y axis
func (p *Plane) AxisV() geomath.Vector3 {
	return p.rotation.Column(1)
}

// Normal returns the local Z axis
func (p *Plane) Normal() geomath.Vector3 {
	return p.rotation.Column(2)
}

// Rotation returns the basis matrix with columns [AxisU AxisV Normal]
func (p *Plane) Rotation() geomath.Matrix3 {
	return p.rotation
}

// InverseRotation returns the cached inverse of Rotation
func (p *Plane) InverseRotation() geomath.Matrix3 {
	return p.inverse
}

// Transform returns the local-to-global map as one affine matrix
func (p *Plane) Transform() geomath.AffineTransform {
	return geomath.NewAffineTransform(p.center, p.rotation)
}

// InverseTransform returns the global-to-local map as one affine matrix
func (p *Plane) InverseTransform() geomath.AffineTransform {
	offset := p.inverse.MulVec(p.center.Vector()).Scale(-1)
	return geomath.NewAffineTransform(geomath.PointFromVector(offset), p.inverse)
}

// Bounds returns the bound the plane was constructed with
func (p *Plane) Bounds() BoundCheck {
	return p.bounds
}

// Tolerance returns the planarity tolerance used by OnPlane
func (p *Plane) Tolerance() float64 {
	return p.tolerance
}
