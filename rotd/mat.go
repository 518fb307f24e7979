package rotd

import (
	"fmt"

	"github.com/pkg/errors"
)

// A Mat is an N x M matrix stored in row-major order.
//
// Entries outside of the N x M block are always zero, so two matrices may be
// compared with ==.
type Mat[N, M Dim, S Ring] struct {
	c [MaxDim][MaxDim]S
}

type Mat2[S Ring] = Mat[D2, D2, S]
type Mat3[S Ring] = Mat[D3, D3, S]
type Mat4[S Ring] = Mat[D4, D4, S]

// NewMat creates a matrix from N rows of M entries each.
func NewMat[N, M Dim, S Ring](rows ...[]S) Mat[N, M, S] {
	var res Mat[N, M, S]
	if len(rows) != res.Rows() {
		panic(fmt.Sprintf("expected %d rows but got %d", res.Rows(), len(rows)))
	}
	for i, row := range rows {
		if len(row) != res.Cols() {
			panic(fmt.Sprintf("expected %d columns but row %d has %d", res.Cols(), i, len(row)))
		}
		copy(res.c[i][:], row)
	}
	return res
}

// MatFromFunc creates a matrix whose entry (i, j) is f(i, j).
func MatFromFunc[N, M Dim, S Ring](f func(i, j int) S) Mat[N, M, S] {
	var res Mat[N, M, S]
	for i := 0; i < res.Rows(); i++ {
		for j := 0; j < res.Cols(); j++ {
			res.c[i][j] = f(i, j)
		}
	}
	return res
}

// MatIdent creates the N x N identity matrix.
func MatIdent[N Dim, S Ring]() Mat[N, N, S] {
	var res Mat[N, N, S]
	for i := 0; i < res.Rows(); i++ {
		res.c[i][i] = 1
	}
	return res
}

func (m Mat[N, M, S]) Rows() int {
	return dimOf[N]()
}

func (m Mat[N, M, S]) Cols() int {
	return dimOf[M]()
}

func (m Mat[N, M, S]) At(i, j int) S {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		panic(fmt.Sprintf("entry (%d, %d) out of range for %dx%d matrix", i, j, m.Rows(), m.Cols()))
	}
	return m.c[i][j]
}

func (m Mat[N, M, S]) Row(i int) Vect[M, S] {
	return VectFromFunc[M](func(j int) S { return m.At(i, j) })
}

func (m Mat[N, M, S]) Col(j int) Vect[N, S] {
	return VectFromFunc[N](func(i int) S { return m.At(i, j) })
}

func (m Mat[N, M, S]) Add(m1 Mat[N, M, S]) Mat[N, M, S] {
	return MatFromFunc[N, M](func(i, j int) S { return m.c[i][j] + m1.c[i][j] })
}

func (m Mat[N, M, S]) Sub(m1 Mat[N, M, S]) Mat[N, M, S] {
	return MatFromFunc[N, M](func(i, j int) S { return m.c[i][j] - m1.c[i][j] })
}

func (m Mat[N, M, S]) Neg() Mat[N, M, S] {
	return MatFromFunc[N, M](func(i, j int) S { return -m.c[i][j] })
}

func (m Mat[N, M, S]) Scale(s S) Mat[N, M, S] {
	return MatFromFunc[N, M](func(i, j int) S { return m.c[i][j] * s })
}

func (m Mat[N, M, S]) Transpose() Mat[M, N, S] {
	return MatFromFunc[M, N](func(i, j int) S { return m.c[j][i] })
}

// MulVect computes the matrix-column product m*v.
func (m Mat[N, M, S]) MulVect(v Vect[M, S]) Vect[N, S] {
	return VectFromFunc[N](func(i int) S { return m.Row(i).Dot(v) })
}

// VectMul computes the row-matrix product v*m.
func (m Mat[N, M, S]) VectMul(v Vect[N, S]) Vect[M, S] {
	return VectFromFunc[M](func(j int) S { return v.Dot(m.Col(j)) })
}

// IsFinite checks that no entry is NaN or infinite.
func (m Mat[N, M, S]) IsFinite() bool {
	for i := 0; i < m.Rows(); i++ {
		if !m.Row(i).IsFinite() {
			return false
		}
	}
	return true
}

// MatMul computes the matrix product a*b.
func MatMul[N, M, P Dim, S Ring](a Mat[N, M, S], b Mat[M, P, S]) Mat[N, P, S] {
	return MatFromFunc[N, P](func(i, j int) S { return a.Row(i).Dot(b.Col(j)) })
}

// Det computes the determinant of a 1x1, 2x2 or 3x3 matrix.
func Det[N SmallDim, S Ring](m Mat[N, N, S]) S {
	c := m.c
	switch m.Rows() {
	case 1:
		return c[0][0]
	case 2:
		return c[0][0]*c[1][1] - c[0][1]*c[1][0]
	default:
		a, b, cc := c[0][0], c[0][1], c[0][2]
		d, e, f := c[1][0], c[1][1], c[1][2]
		g, h, i := c[2][0], c[2][1], c[2][2]
		return (a*e*i + b*f*g + cc*d*h) - (cc*e*g + b*d*i + a*f*h)
	}
}

// Inverse computes the inverse of a square matrix using Gauss-Jordan
// elimination with partial pivoting.
//
// Singular matrices are not detected. A zero pivot produces NaN or infinite
// entries in the result; use TryInverse to turn these into an error.
func Inverse[N Dim, S Field](m Mat[N, N, S]) Mat[N, N, S] {
	aug := augMat[N, S]{left: m, right: MatIdent[N, S]()}
	n := m.Rows()
	for j := 0; j < n; j++ {
		iMax := j
		maxValue := abs(aug.left.c[j][j])
		for i := j + 1; i < n; i++ {
			if value := abs(aug.left.c[i][j]); value > maxValue {
				maxValue = value
				iMax = i
			}
		}
		if iMax != j {
			aug.swapRows(j, iMax)
		}
		aug.divRow(j, aug.left.c[j][j])
		for i := j + 1; i < n; i++ {
			aug.subRow(i, aug.left.c[i][j], j)
		}
	}
	for i := n - 2; i >= 0; i-- {
		for j := i + 1; j < n; j++ {
			aug.subRow(i, aug.left.c[i][j], j)
		}
	}
	return aug.right
}

// TryInverse is like Inverse, but returns ErrSingular if the result contains
// non-finite entries.
func TryInverse[N Dim, S Field](m Mat[N, N, S]) (Mat[N, N, S], error) {
	res := Inverse(m)
	if !res.IsFinite() {
		return res, errors.WithStack(ErrSingular)
	}
	return res, nil
}

// augMat is the augmented pair [left | right] used during elimination.
type augMat[N Dim, S Field] struct {
	left  Mat[N, N, S]
	right Mat[N, N, S]
}

func (a *augMat[N, S]) swapRows(i1, i2 int) {
	a.left.c[i1], a.left.c[i2] = a.left.c[i2], a.left.c[i1]
	a.right.c[i1], a.right.c[i2] = a.right.c[i2], a.right.c[i1]
}

// subRow subtracts coeff times row src from row dst.
func (a *augMat[N, S]) subRow(dst int, coeff S, src int) {
	for j := 0; j < a.left.Cols(); j++ {
		a.left.c[dst][j] -= a.left.c[src][j] * coeff
		a.right.c[dst][j] -= a.right.c[src][j] * coeff
	}
}

func (a *augMat[N, S]) divRow(i int, divisor S) {
	for j := 0; j < a.left.Cols(); j++ {
		a.left.c[i][j] /= divisor
		a.right.c[i][j] /= divisor
	}
}
