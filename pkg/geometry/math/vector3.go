package math

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Vector3 represents a free 3D vector (direction or offset)
type Vector3 struct {
	X, Y, Z float64
}

// Point3 represents a position in 3D space. A point minus a point is a
// vector, a point plus a vector is a point.
type Point3 struct {
	X, Y, Z float64
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Scale returns the vector scaled by a scalar
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{
		X: v.X * s,
		Y: v.Y * s,
		Z: v.Z * s,
	}
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Magnitude returns the length of the vector without overflowing for
// components beyond sqrt(MaxFloat64)
func (v Vector3) Magnitude() float64 {
	return math.Hypot(math.Hypot(v.X, v.Y), v.Z)
}

// Normalize returns a unit vector in the same direction. The zero vector
// is returned unchanged; callers that need a direction must check
// Magnitude first.
func (v Vector3) Normalize() Vector3 {
	mag := v.Magnitude()
	if mag == 0 {
		return v
	}
	return v.Scale(1.0 / mag)
}

// IsZero checks if the vector is zero
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsFinite reports whether no component is NaN or infinite
func (v Vector3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// ApproxEqual compares component-wise within an absolute tolerance
func (v Vector3) ApproxEqual(other Vector3, tol float64) bool {
	return scalar.EqualWithinAbs(v.X, other.X, tol) &&
		scalar.EqualWithinAbs(v.Y, other.Y, tol) &&
		scalar.EqualWithinAbs(v.Z, other.Z, tol)
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Vector returns the offset of the point from the origin
func (p Point3) Vector() Vector3 {
	return Vector3{X: p.X, Y: p.Y, Z: p.Z}
}

// Add translates the point by a vector
func (p Point3) Add(v Vector3) Point3 {
	return Point3{
		X: p.X + v.X,
		Y: p.Y + v.Y,
		Z: p.Z + v.Z,
	}
}

// Sub returns the vector from other to p
func (p Point3) Sub(other Point3) Vector3 {
	return Vector3{
		X: p.X - other.X,
		Y: p.Y - other.Y,
		Z: p.Z - other.Z,
	}
}

// Distance returns the distance between two points
func (p Point3) Distance(other Point3) float64 {
	return p.Sub(other).Magnitude()
}

// IsFinite reports whether no coordinate is NaN or infinite
func (p Point3) IsFinite() bool {
	return p.Vector().IsFinite()
}

// ApproxEqual compares coordinate-wise within an absolute tolerance
func (p Point3) ApproxEqual(other Point3, tol float64) bool {
	return p.Vector().ApproxEqual(other.Vector(), tol)
}

func (p Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// PointFromVector interprets v as an offset from the origin
func PointFromVector(v Vector3) Point3 {
	return Point3{X: v.X, Y: v.Y, Z: v.Z}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
