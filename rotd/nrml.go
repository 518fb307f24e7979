package rotd

import "math/rand"

// A Nrml is a unit-length vector.
//
// A Nrml can only be created by normalizing a vector (see Normal), from a
// standard basis axis, or through NrmlUnchecked.
type Nrml[D Dim, S Field] struct {
	v Vect[D, S]
}

type Nrml1[S Field] = Nrml[D1, S]
type Nrml2[S Field] = Nrml[D2, S]
type Nrml3[S Field] = Nrml[D3, S]

// NrmlUnchecked wraps a vector which is already known to have unit length.
//
// The caller must have just divided v by its magnitude. Passing any other
// vector breaks every operation that relies on the unit-length invariant.
func NrmlUnchecked[D Dim, S Field](v Vect[D, S]) Nrml[D, S] {
	return Nrml[D, S]{v: v}
}

// NrmlAxis returns the i-th standard basis vector.
func NrmlAxis[D Dim, S Field](i int) Nrml[D, S] {
	return Nrml[D, S]{v: VectAxis[D, S](i, 1)}
}

// NewNrmlRand samples a uniformly random direction.
func NewNrmlRand[D Dim, S Field](r *rand.Rand) Nrml[D, S] {
	for {
		v := VectFromFunc[D](func(int) S {
			return S(r.NormFloat64())
		})
		if Magn(v) > 1e-5 {
			n, _ := Normal(v)
			return n
		}
	}
}

// Vect returns the underlying vector.
func (n Nrml[D, S]) Vect() Vect[D, S] {
	return n.v
}

func (n Nrml[D, S]) Len() int {
	return n.v.Len()
}

func (n Nrml[D, S]) At(i int) S {
	return n.v.At(i)
}

func (n Nrml[D, S]) Components() []S {
	return n.v.Components()
}

func (n Nrml[D, S]) Neg() Nrml[D, S] {
	return Nrml[D, S]{v: n.v.Neg()}
}

func (n Nrml[D, S]) Scale(s S) Vect[D, S] {
	return n.v.Scale(s)
}

func (n Nrml[D, S]) Div(s S) Vect[D, S] {
	return n.v.Div(s)
}

func (n Nrml[D, S]) Add(v Vect[D, S]) Vect[D, S] {
	return n.v.Add(v)
}

func (n Nrml[D, S]) Sub(v Vect[D, S]) Vect[D, S] {
	return n.v.Sub(v)
}

// Dot computes the dot product of two unit vectors, clamped to [-1, 1] so
// that the result is always a valid cosine.
func (n Nrml[D, S]) Dot(n1 Nrml[D, S]) S {
	return clamp(n.v.Dot(n1.v), -1, 1)
}

func (n Nrml[D, S]) DotVect(v Vect[D, S]) S {
	return n.v.Dot(v)
}

// AngleTo computes the angle between two directions, in [0, pi].
func (n Nrml[D, S]) AngleTo(n1 Nrml[D, S]) S {
	return acos(n.Dot(n1))
}

// Proj projects v onto the line spanned by n.
func (n Nrml[D, S]) Proj(v Vect[D, S]) Vect[D, S] {
	return n.v.Scale(v.Dot(n.v))
}

// Rej removes the component of v along n.
func (n Nrml[D, S]) Rej(v Vect[D, S]) Vect[D, S] {
	return v.Sub(n.Proj(v))
}

// Refl reflects v across the hyperplane orthogonal to n.
func (n Nrml[D, S]) Refl(v Vect[D, S]) Vect[D, S] {
	return v.Sub(n.Proj(v).Scale(2))
}

// Cross3Nrml computes the cross product of two 3D unit vectors.
//
// The result is a plain vector, since it is only unit length when the inputs
// are orthogonal.
func Cross3Nrml[S Field](n, n1 Nrml3[S]) Vect3[S] {
	return Cross3(n.v, n1.v)
}

// RejNrml removes the component of n1 along n and renormalizes the result.
//
// Returns false if n1 is parallel to n.
func (n Nrml[D, S]) RejNrml(n1 Nrml[D, S]) (Nrml[D, S], bool) {
	return Normal(n.Rej(n1.v))
}
