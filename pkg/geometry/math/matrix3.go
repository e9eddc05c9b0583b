package math

import (
	"fmt"
	"math"

	errorsmod "cosmossdk.io/errors"
	"gonum.org/v1/gonum/floats/scalar"
)

// SingularityEpsilon bounds |det| relative to the product of the column
// lengths. Below it a 3x3 matrix is treated as singular.
const SingularityEpsilon = 1e-12

// Matrix3 is a dense 3x3 matrix stored row-major: m[row][col]
type Matrix3 [3][3]float64

// Identity3 returns the 3x3 identity matrix
func Identity3() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// FromColumns builds a matrix whose columns are c0, c1 and c2
func FromColumns(c0, c1, c2 Vector3) Matrix3 {
	return Matrix3{
		{c0.X, c1.X, c2.X},
		{c0.Y, c1.Y, c2.Y},
		{c0.Z, c1.Z, c2.Z},
	}
}

// Column returns column i (0, 1 or 2)
func (m Matrix3) Column(i int) Vector3 {
	return Vector3{X: m[0][i], Y: m[1][i], Z: m[2][i]}
}

// MulVec returns m * v
func (m Matrix3) MulVec(v Vector3) Vector3 {
	return Vector3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns the matrix product m * other
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var result Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j] + m[i][2]*other[2][j]
		}
	}
	return result
}

// Transpose returns the transposed matrix
func (m Matrix3) Transpose() Matrix3 {
	var result Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i][j] = m[j][i]
		}
	}
	return result
}

// Scale multiplies every element by s
func (m Matrix3) Scale(s float64) Matrix3 {
	var result Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i][j] = m[i][j] * s
		}
	}
	return result
}

// Determinant expands along the first row
func (m Matrix3) Determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Adjugate returns the transpose of the cofactor matrix
func (m Matrix3) Adjugate() Matrix3 {
	return Matrix3{
		{
			m[1][1]*m[2][2] - m[1][2]*m[2][1],
			m[0][2]*m[2][1] - m[0][1]*m[2][2],
			m[0][1]*m[1][2] - m[0][2]*m[1][1],
		},
		{
			m[1][2]*m[2][0] - m[1][0]*m[2][2],
			m[0][0]*m[2][2] - m[0][2]*m[2][0],
			m[0][2]*m[1][0] - m[0][0]*m[1][2],
		},
		{
			m[1][0]*m[2][1] - m[1][1]*m[2][0],
			m[0][1]*m[2][0] - m[0][0]*m[2][1],
			m[0][0]*m[1][1] - m[0][1]*m[1][0],
		},
	}
}

// normalized divides every column by its length. The lengths are returned
// so callers can undo the scaling; ok is false if a column is zero or not
// finite.
func (m Matrix3) normalized() (n Matrix3, scales [3]float64, ok bool) {
	for j := 0; j < 3; j++ {
		s := m.Column(j).Magnitude()
		if !(s > 0) || math.IsInf(s, 0) {
			return Matrix3{}, scales, false
		}
		scales[j] = s
		for i := 0; i < 3; i++ {
			n[i][j] = m[i][j] / s
		}
	}
	return n, scales, true
}

// IsSingular reports whether the determinant is negligible compared to the
// product of the column lengths (Hadamard's bound), so the test does not
// depend on the overall scale of the matrix.
func (m Matrix3) IsSingular() bool {
	n, _, ok := m.normalized()
	if !ok {
		return true
	}
	det := n.Determinant()
	return !isFinite(det) || math.Abs(det) <= SingularityEpsilon
}

// Inverse computes adj(m) / det(m). Singular matrices yield ErrSingularMatrix
// instead of a matrix of infinities.
//
// The columns are normalised first and the result rescaled, so cofactor
// products stay in range for very large or very small entries.
func (m Matrix3) Inverse() (Matrix3, error) {
	n, scales, ok := m.normalized()
	if !ok {
		return Matrix3{}, errorsmod.Wrapf(ErrSingularMatrix, "zero or non-finite column in %s", m)
	}
	det := n.Determinant()
	if !isFinite(det) || math.Abs(det) <= SingularityEpsilon {
		return Matrix3{}, errorsmod.Wrapf(ErrSingularMatrix, "relative determinant %g", det)
	}

	inv := n.Adjugate().Scale(1 / det)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv[i][j] /= scales[i]
		}
	}
	return inv, nil
}

// IsFinite reports whether every element is finite
func (m Matrix3) IsFinite() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !isFinite(m[i][j]) {
				return false
			}
		}
	}
	return true
}

// ApproxEqual compares element-wise within an absolute tolerance
func (m Matrix3) ApproxEqual(other Matrix3, tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !scalar.EqualWithinAbs(m[i][j], other[i][j], tol) {
				return false
			}
		}
	}
	return true
}

func (m Matrix3) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]",
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2])
}
