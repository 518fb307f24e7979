package rotd

import (
	"fmt"
	"math"
)

// A Vect is an ordered tuple of D.Len() scalars.
//
// Components beyond D.Len() are always zero, so two vectors may be compared
// with ==.
type Vect[D Dim, S Ring] struct {
	c [MaxDim]S
}

type Vect1[S Ring] = Vect[D1, S]
type Vect2[S Ring] = Vect[D2, S]
type Vect3[S Ring] = Vect[D3, S]
type Vect4[S Ring] = Vect[D4, S]

// NewVect creates a vector from exactly D.Len() components.
func NewVect[D Dim, S Ring](components ...S) Vect[D, S] {
	var res Vect[D, S]
	if len(components) != res.Len() {
		panic(fmt.Sprintf("expected %d components but got %d", res.Len(), len(components)))
	}
	copy(res.c[:], components)
	return res
}

// VectFromFunc creates a vector whose i-th component is f(i).
func VectFromFunc[D Dim, S Ring](f func(i int) S) Vect[D, S] {
	var res Vect[D, S]
	for i := 0; i < res.Len(); i++ {
		res.c[i] = f(i)
	}
	return res
}

// VectAxis creates a vector which is zero except for component i.
func VectAxis[D Dim, S Ring](i int, value S) Vect[D, S] {
	var res Vect[D, S]
	res.checkIndex(i)
	res.c[i] = value
	return res
}

// VectSplat creates a vector with every component set to s.
func VectSplat[D Dim, S Ring](s S) Vect[D, S] {
	return VectFromFunc[D](func(int) S { return s })
}

func XY[S Ring](x, y S) Vect2[S] {
	return Vect2[S]{c: [MaxDim]S{x, y}}
}

func XYZ[S Ring](x, y, z S) Vect3[S] {
	return Vect3[S]{c: [MaxDim]S{x, y, z}}
}

func XYZW[S Ring](x, y, z, w S) Vect4[S] {
	return Vect4[S]{c: [MaxDim]S{x, y, z, w}}
}

// Len returns the number of components.
func (v Vect[D, S]) Len() int {
	return dimOf[D]()
}

func (v Vect[D, S]) At(i int) S {
	v.checkIndex(i)
	return v.c[i]
}

// With returns a copy of v with component i replaced.
func (v Vect[D, S]) With(i int, s S) Vect[D, S] {
	v.checkIndex(i)
	v.c[i] = s
	return v
}

// Components returns a freshly allocated slice of the components.
func (v Vect[D, S]) Components() []S {
	return append([]S{}, v.c[:v.Len()]...)
}

func (v Vect[D, S]) Map(f func(S) S) Vect[D, S] {
	return VectFromFunc[D](func(i int) S { return f(v.c[i]) })
}

func (v Vect[D, S]) Add(v1 Vect[D, S]) Vect[D, S] {
	for i := 0; i < v.Len(); i++ {
		v.c[i] += v1.c[i]
	}
	return v
}

func (v Vect[D, S]) Sub(v1 Vect[D, S]) Vect[D, S] {
	for i := 0; i < v.Len(); i++ {
		v.c[i] -= v1.c[i]
	}
	return v
}

func (v Vect[D, S]) Neg() Vect[D, S] {
	for i := 0; i < v.Len(); i++ {
		v.c[i] = -v.c[i]
	}
	return v
}

func (v Vect[D, S]) Scale(s S) Vect[D, S] {
	for i := 0; i < v.Len(); i++ {
		v.c[i] *= s
	}
	return v
}

func (v Vect[D, S]) Div(s S) Vect[D, S] {
	for i := 0; i < v.Len(); i++ {
		v.c[i] /= s
	}
	return v
}

// Mul multiplies v and v1 component by component.
func (v Vect[D, S]) Mul(v1 Vect[D, S]) Vect[D, S] {
	for i := 0; i < v.Len(); i++ {
		v.c[i] *= v1.c[i]
	}
	return v
}

func (v Vect[D, S]) Dot(v1 Vect[D, S]) S {
	var res S
	for i := 0; i < v.Len(); i++ {
		res += v.c[i] * v1.c[i]
	}
	return res
}

func (v Vect[D, S]) SqrMagn() S {
	return v.Dot(v)
}

// IsNaN checks if any component is NaN.
func (v Vect[D, S]) IsNaN() bool {
	for i := 0; i < v.Len(); i++ {
		if isNaN(v.c[i]) {
			return true
		}
	}
	return false
}

// IsFinite checks that no component is NaN or infinite.
func (v Vect[D, S]) IsFinite() bool {
	for i := 0; i < v.Len(); i++ {
		if !isFinite(v.c[i]) {
			return false
		}
	}
	return true
}

func (v Vect[D, S]) checkIndex(i int) {
	if i < 0 || i >= v.Len() {
		panic(fmt.Sprintf("component index %d out of range for dimension %d", i, v.Len()))
	}
}

// Sum adds up vectors, starting from the zero vector.
func Sum[D Dim, S Ring](vs ...Vect[D, S]) Vect[D, S] {
	var res Vect[D, S]
	for _, v := range vs {
		res = res.Add(v)
	}
	return res
}

// LinearCombination computes the sum of vs[i]*weights[i].
func LinearCombination[D Dim, S Ring](vs []Vect[D, S], weights []S) Vect[D, S] {
	if len(vs) != len(weights) {
		panic("vectors and weights must have same length")
	}
	var res Vect[D, S]
	for i, v := range vs {
		res = res.Add(v.Scale(weights[i]))
	}
	return res
}

// Lerp linearly interpolates between a (t=0) and b (t=1).
func Lerp[D Dim, S Field](a, b Vect[D, S], t S) Vect[D, S] {
	return LinearCombination([]Vect[D, S]{a, b}, []S{1 - t, t})
}

// Magn computes the Euclidean norm of v.
func Magn[D Dim, S Field](v Vect[D, S]) S {
	return sqrt(v.SqrMagn())
}

// Normal computes the unit vector pointing in the direction of v.
//
// The second return value is false if v is zero, contains a NaN, or has
// infinite components which do not resolve to a finite direction.
func Normal[D Dim, S Field](v Vect[D, S]) (Nrml[D, S], bool) {
	_, n, ok := MagnNormal(v)
	return n, ok
}

// NormalOrZero is like Normal, but returns the zero vector on failure.
func NormalOrZero[D Dim, S Field](v Vect[D, S]) Vect[D, S] {
	if n, ok := Normal(v); ok {
		return n.Vect()
	}
	return Vect[D, S]{}
}

// MagnNormal splits v into its magnitude and direction.
//
// For vectors with infinite components, the magnitude is +Inf and the
// direction is computed with DivideByInfinity. Finite vectors are scaled by
// their largest component first, so very small and very large vectors still
// produce a unit direction. The magnitude is +Inf if it is not representable.
func MagnNormal[D Dim, S Field](v Vect[D, S]) (S, Nrml[D, S], bool) {
	if !v.IsFinite() {
		if dir, ok := DivideByInfinity(v); ok {
			return S(math.Inf(1)), NrmlUnchecked(dir), true
		}
		return 0, Nrml[D, S]{}, false
	}
	var maxAbs S
	for i := 0; i < v.Len(); i++ {
		if a := abs(v.c[i]); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		return 0, Nrml[D, S]{}, false
	}
	scaled := v.Div(maxAbs)
	scaledMagn := Magn(scaled)
	return maxAbs * scaledMagn, NrmlUnchecked(scaled.Div(scaledMagn)), true
}

// MagnNormalOrZero is like MagnNormal, but returns zeros on failure.
func MagnNormalOrZero[D Dim, S Field](v Vect[D, S]) (S, Vect[D, S]) {
	if magn, n, ok := MagnNormal(v); ok {
		return magn, n.Vect()
	}
	return 0, Vect[D, S]{}
}

// DivideByInfinity computes the direction of a vector with infinite
// components.
//
// Every infinite component is replaced by its sign and every finite component
// by zero, and the result is divided by the square root of the number of
// infinite components.
// Fails if v contains a NaN or the result is not finite.
func DivideByInfinity[D Dim, S Field](v Vect[D, S]) (Vect[D, S], bool) {
	if v.IsNaN() {
		return Vect[D, S]{}, false
	}
	var count S
	for i := 0; i < v.Len(); i++ {
		if isFinite(v.c[i]) {
			v.c[i] = 0
		} else {
			v.c[i] = sign(v.c[i])
			count++
		}
	}
	res := v.Div(sqrt(count))
	if !res.IsFinite() {
		return Vect[D, S]{}, false
	}
	return res, true
}

// ProjVect projects v onto an arbitrary axis.
//
// The result is zero if the axis is zero.
func ProjVect[D Dim, S Field](v, axis Vect[D, S]) Vect[D, S] {
	magn2 := axis.SqrMagn()
	if magn2 == 0 {
		return Vect[D, S]{}
	}
	return axis.Scale(v.Dot(axis) / magn2)
}

// RejVect removes the component of v along an arbitrary axis.
func RejVect[D Dim, S Field](v, axis Vect[D, S]) Vect[D, S] {
	return v.Sub(ProjVect(v, axis))
}

// ReflVect reflects v across the hyperplane orthogonal to axis.
func ReflVect[D Dim, S Field](v, axis Vect[D, S]) Vect[D, S] {
	return v.Sub(ProjVect(v, axis).Scale(2))
}
