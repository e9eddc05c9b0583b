package math

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"gonum.org/v1/gonum/mat"
)

// AffineTransform is a homogeneous 4x4 transform stored row-major. The
// upper-left 3x3 block is the linear part, the last column the translation.
type AffineTransform [4][4]float64

// IdentityAffine returns the identity transform
func IdentityAffine() AffineTransform {
	return AffineTransform{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewAffineTransform combines a linear part and a translation into one matrix
func NewAffineTransform(translation Point3, linear Matrix3) AffineTransform {
	return AffineTransform{
		{linear[0][0], linear[0][1], linear[0][2], translation.X},
		{linear[1][0], linear[1][1], linear[1][2], translation.Y},
		{linear[2][0], linear[2][1], linear[2][2], translation.Z},
		{0, 0, 0, 1},
	}
}

// Decompose splits the transform into its translation and linear part
func (t AffineTransform) Decompose() (Point3, Matrix3) {
	translation := Point3{X: t[0][3], Y: t[1][3], Z: t[2][3]}
	linear := Matrix3{
		{t[0][0], t[0][1], t[0][2]},
		{t[1][0], t[1][1], t[1][2]},
		{t[2][0], t[2][1], t[2][2]},
	}
	return translation, linear
}

// IsAffine reports whether the bottom row is exactly [0 0 0 1]
func (t AffineTransform) IsAffine() bool {
	return t[3][0] == 0 && t[3][1] == 0 && t[3][2] == 0 && t[3][3] == 1
}

// IsFinite reports whether every element is finite
func (t AffineTransform) IsFinite() bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !isFinite(t[i][j]) {
				return false
			}
		}
	}
	return true
}

// TransformPoint applies the full transform, translation included
func (t AffineTransform) TransformPoint(p Point3) Point3 {
	return Point3{
		X: t[0][0]*p.X + t[0][1]*p.Y + t[0][2]*p.Z + t[0][3],
		Y: t[1][0]*p.X + t[1][1]*p.Y + t[1][2]*p.Z + t[1][3],
		Z: t[2][0]*p.X + t[2][1]*p.Y + t[2][2]*p.Z + t[2][3],
	}
}

// TransformVector applies only the linear part
func (t AffineTransform) TransformVector(v Vector3) Vector3 {
	return Vector3{
		X: t[0][0]*v.X + t[0][1]*v.Y + t[0][2]*v.Z,
		Y: t[1][0]*v.X + t[1][1]*v.Y + t[1][2]*v.Z,
		Z: t[2][0]*v.X + t[2][1]*v.Y + t[2][2]*v.Z,
	}
}

// Mul returns the composition t * other (other is applied first)
func (t AffineTransform) Mul(other AffineTransform) AffineTransform {
	var result AffineTransform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				result[i][j] += t[i][k] * other[k][j]
			}
		}
	}
	return result
}

// Dense copies the transform into a gonum matrix
func (t AffineTransform) Dense() *mat.Dense {
	data := make([]float64, 0, 16)
	for i := 0; i < 4; i++ {
		data = append(data, t[i][:]...)
	}
	return mat.NewDense(4, 4, data)
}

// AffineFromDense copies a 4x4 gonum matrix into an AffineTransform
func AffineFromDense(m mat.Matrix) (AffineTransform, error) {
	r, c := m.Dims()
	if r != 4 || c != 4 {
		return AffineTransform{}, fmt.Errorf("expected 4x4 matrix, got %dx%d", r, c)
	}
	var t AffineTransform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t[i][j] = m.At(i, j)
		}
	}
	return t, nil
}

// Inverse returns the inverse transform. Affine input is inverted blockwise
// as [L^-1 | -L^-1 t], so invertibility depends only on the linear block L
// and not on how far the translation t is from the origin. Other 4x4
// matrices go through gonum's LU inverse, whose mat.Condition error is
// surfaced as ErrSingularMatrix.
func (t AffineTransform) Inverse() (AffineTransform, error) {
	if t.IsAffine() {
		translation, linear := t.Decompose()
		inv, err := linear.Inverse()
		if err != nil {
			return AffineTransform{}, err
		}
		offset := inv.MulVec(translation.Vector()).Scale(-1)
		return NewAffineTransform(PointFromVector(offset), inv), nil
	}

	var inv mat.Dense
	if err := inv.Inverse(t.Dense()); err != nil {
		return AffineTransform{}, errorsmod.Wrap(ErrSingularMatrix, err.Error())
	}
	result, err := AffineFromDense(&inv)
	if err != nil {
		return AffineTransform{}, err
	}
	if !result.IsFinite() {
		return AffineTransform{}, errorsmod.Wrap(ErrSingularMatrix, "inverse has non-finite elements")
	}
	return result, nil
}

// ApproxEqual compares element-wise, absolute or relative to magnitude
func (t AffineTransform) ApproxEqual(other AffineTransform, tol float64) bool {
	return mat.EqualApprox(t.Dense(), other.Dense(), tol)
}

func (t AffineTransform) String() string {
	return fmt.Sprintf("%v", mat.Formatted(t.Dense(), mat.Squeeze()))
}
