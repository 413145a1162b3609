package prim

import "math"

const matEps = 1e-6

// Matrix3 is a row-major 3x3 matrix of doubles, used for rotation and
// non-uniform scale of scene primitives.
type Matrix3 struct {
	m [3][3]float64
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{m: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// NewMatrix3 builds a matrix from explicit row-major entries.
func NewMatrix3(rows [3][3]float64) Matrix3 {
	return Matrix3{m: rows}
}

// Rotation3 builds the rotation matrix for a right-handed rotation of
// angleDeg degrees about axis, via Rodrigues' formula. axis is normalized
// internally.
func Rotation3(axis Vec3, angleDeg float64) (Matrix3, error) {
	unit, err := axis.Normalized()
	if err != nil {
		return Matrix3{}, err
	}
	angle := angleDeg / 180 * math.Pi
	cosA := math.Cos(angle)
	sinA := math.Sin(angle)
	ux, uy, uz := unit.X, unit.Y, unit.Z

	return NewMatrix3([3][3]float64{
		{ux*ux*(1-cosA) + cosA, ux*uy*(1-cosA) - uz*sinA, ux*uz*(1-cosA) + uy*sinA},
		{uy*ux*(1-cosA) + uz*sinA, uy*uy*(1-cosA) + cosA, uy*uz*(1-cosA) - ux*sinA},
		{uz*ux*(1-cosA) - uy*sinA, uz*uy*(1-cosA) + ux*sinA, uz*uz*(1-cosA) + cosA},
	}), nil
}

// FromBasis builds a rotation matrix whose columns are right, up, and
// forward, in that order (so MulVec(UnitX) == right, and so on). The
// three vectors are assumed already orthonormal; callers that start from
// an approximate up vector should orthogonalize it first (see
// Vec3.ProjectOn).
func FromBasis(right, up, forward Vec3) Matrix3 {
	return NewMatrix3([3][3]float64{
		{right.X, up.X, forward.X},
		{right.Y, up.Y, forward.Y},
		{right.Z, up.Z, forward.Z},
	})
}

// Scale3 builds a diagonal scale matrix.
func Scale3(scale Vec3) Matrix3 {
	return NewMatrix3([3][3]float64{
		{scale.X, 0, 0},
		{0, scale.Y, 0},
		{0, 0, scale.Z},
	})
}

// At returns the entry at row i, column j.
func (m Matrix3) At(i, j int) float64 {
	return m.m[i][j]
}

// Mul returns the matrix product m * other.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m.m[i][k] * other.m[k][j]
			}
			out[i][j] = sum
		}
	}
	return Matrix3{m: out}
}

// MulVec returns m * v.
func (m Matrix3) MulVec(v Vec3) Vec3 {
	row := func(i int) Vec3 { return Vec3{m.m[i][0], m.m[i][1], m.m[i][2]} }
	return Vec3{
		X: row(0).Dot(v),
		Y: row(1).Dot(v),
		Z: row(2).Dot(v),
	}
}

// Scale scales every entry by s.
func (m Matrix3) Scale(s float64) Matrix3 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m.m[i][j] * s
		}
	}
	return Matrix3{m: out}
}

// Add returns the component-wise sum.
func (m Matrix3) Add(other Matrix3) Matrix3 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m.m[i][j] + other.m[i][j]
		}
	}
	return Matrix3{m: out}
}

// Sub returns the component-wise difference.
func (m Matrix3) Sub(other Matrix3) Matrix3 {
	return m.Add(other.Scale(-1))
}

// Determinant returns det(m).
func (m Matrix3) Determinant() float64 {
	return m.m[0][0]*m.m[1][1]*m.m[2][2] +
		m.m[0][1]*m.m[1][2]*m.m[2][0] +
		m.m[0][2]*m.m[1][0]*m.m[2][1] -
		m.m[0][2]*m.m[1][1]*m.m[2][0] -
		m.m[0][1]*m.m[1][0]*m.m[2][2] -
		m.m[0][0]*m.m[1][2]*m.m[2][1]
}

// HasInverse reports whether m is invertible (|det| >= eps).
func (m Matrix3) HasInverse() bool {
	return math.Abs(m.Determinant()) >= matEps
}

// Inverse returns the matrix inverse via the cofactor/adjugate method. It
// fails with a NumericError when m is singular.
func (m Matrix3) Inverse() (Matrix3, error) {
	if !m.HasInverse() {
		return Matrix3{}, numericErrorf("Matrix3.Inverse", "matrix is singular (det=%g)", m.Determinant())
	}
	det := m.Determinant()
	adj := [3][3]float64{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// adjugate[i][j] = cofactor[j][i]
			adj[i][j] = m.cofactor(j, i)
		}
	}
	return NewMatrix3(adj).Scale(1.0 / det), nil
}

func (m Matrix3) cofactor(i, j int) float64 {
	sign := 1.0
	if (i+j)%2 != 0 {
		sign = -1.0
	}
	i0, i1 := minorIndices(i)
	j0, j1 := minorIndices(j)
	return sign * (m.m[i0][j0]*m.m[i1][j1] - m.m[i0][j1]*m.m[i1][j0])
}

// minorIndices returns the two row/column indices other than i, in order.
func minorIndices(i int) (int, int) {
	switch i {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}
