package rotd

import "math"

// A Rot2 is a rotation of the plane, stored as a unit complex number
// w + b*e12 where w = cos(angle/2) and b = sin(angle/2).
type Rot2[S Field] struct {
	w  S
	bi Vect1[S]
}

// Rot2Ident returns the identity rotation.
func Rot2Ident[S Field]() Rot2[S] {
	return Rot2[S]{w: 1}
}

// Rot2AngleAxis creates a rotation by angle, counter-clockwise when axis is
// positive.
func Rot2AngleAxis[S Field](angle S, axis Nrml1[S]) Rot2[S] {
	sin, cos := sinCos(angle / 2)
	return Rot2[S]{w: cos, bi: axis.Scale(sin)}
}

// Rot2Angle creates a counter-clockwise rotation by angle.
func Rot2Angle[S Field](angle S) Rot2[S] {
	return Rot2AngleAxis(angle, NrmlAxis[D1, S](0))
}

// Rot2FromTo creates the rotation which carries from onto to.
//
// Opposite directions produce a half turn.
func Rot2FromTo[S Field](from, to Nrml2[S]) Rot2[S] {
	dot := to.Dot(from)
	cross := Cross2(from.Vect(), to.Vect())
	if cross == (Vect1[S]{}) {
		if dot > 0 {
			return Rot2Ident[S]()
		}
		return Rot2[S]{w: 0, bi: VectAxis[D1, S](0, 1)}
	}
	// (1+dot, cross) is the rotor scaled by 2*cos(angle/2).
	return Rot2[S]{w: 1 + dot, bi: cross}.renormalize()
}

// Rot2FromToVects is like Rot2FromTo, but accepts arbitrary vectors and
// returns the identity if either of them has no direction.
func Rot2FromToVects[S Field](from, to Vect2[S]) Rot2[S] {
	fromN, ok1 := Normal(from)
	toN, ok2 := Normal(to)
	if !ok1 || !ok2 {
		return Rot2Ident[S]()
	}
	return Rot2FromTo(fromN, toN)
}

// Rot2FromTorq creates a rotation from a signed angle stored in a 1D vector.
func Rot2FromTorq[S Field](torq Vect1[S]) Rot2[S] {
	if angle, axis, ok := MagnNormal(torq); ok {
		return Rot2AngleAxis(angle, axis)
	}
	return Rot2Ident[S]()
}

// Rot2Unchecked creates a rotation from its raw components.
//
// The caller must guarantee that w*w + bi.Dot(bi) == 1, for example because
// the components were just divided by their joint magnitude.
func Rot2Unchecked[S Field](w S, bi Vect1[S]) Rot2[S] {
	return Rot2[S]{w: w, bi: bi}
}

// Rot2FromOrtho creates the rotation which carries the standard basis onto
// the axes of o.
func Rot2FromOrtho[S Field](o Ortho2[S]) Rot2[S] {
	return Rot2FromTo(NrmlAxis[D2, S](1), o.Axis(1))
}

func (r Rot2[S]) W() S {
	return r.w
}

// Bi returns the bivector part, sin(angle/2).
func (r Rot2[S]) Bi() Vect1[S] {
	return r.bi
}

func (r Rot2[S]) Angle() S {
	return 2 * acos(clamp(r.w, -1, 1))
}

// SignedAngle returns the counter-clockwise angle in [-pi, pi).
func (r Rot2[S]) SignedAngle() S {
	pi := S(math.Pi)
	signed := r.Angle() * NormalOrZero(r.bi).At(0)
	return remEuclid(signed+pi, 2*pi) - pi
}

// Axis returns the orientation of the rotation, or false for the identity.
func (r Rot2[S]) Axis() (Nrml1[S], bool) {
	return Normal(r.bi)
}

func (r Rot2[S]) AxisOrZero() Vect1[S] {
	return NormalOrZero(r.bi)
}

// ToTorq returns the signed rotation angle as a 1D vector.
//
// As with Rot3, a full turn comes back from Rot2FromTorq as the identity.
func (r Rot2[S]) ToTorq() Vect1[S] {
	return r.AxisOrZero().Scale(r.Angle())
}

func (r Rot2[S]) Part(t S) Rot2[S] {
	if axis, ok := r.Axis(); ok {
		return Rot2AngleAxis(r.Angle()*t, axis)
	}
	return Rot2Ident[S]()
}

func (r Rot2[S]) Inv() Rot2[S] {
	return Rot2[S]{w: r.w, bi: r.bi.Neg()}
}

func (r Rot2[S]) Aft(other Rot2[S]) Rot2[S] {
	return Rot2[S]{
		w:  r.w*other.w - r.bi.Dot(other.bi),
		bi: other.bi.Scale(r.w).Add(r.bi.Scale(other.w)),
	}.renormalize()
}

func (r Rot2[S]) Bef(other Rot2[S]) Rot2[S] {
	return other.Aft(r)
}

// Slerp interpolates from r (t=0) to other (t=1).
func (r Rot2[S]) Slerp(other Rot2[S], t S) Rot2[S] {
	return slerp[Rot2[S], D2, S](r, other, t)
}

func (r Rot2[S]) Apl(v Vect2[S]) Vect2[S] {
	perp := XY(-v.c[1], v.c[0])
	return v.Scale(r.w*r.w - r.bi.Dot(r.bi)).Add(perp.Scale(2 * r.bi.c[0] * r.w))
}

func (r Rot2[S]) AplNrml(n Nrml2[S]) Nrml2[S] {
	return aplNrml(r.Apl, n)
}

func (r Rot2[S]) Mat() Mat2[S] {
	b := r.bi.c[0]
	cos := r.w*r.w - b*b
	sin := 2 * r.w * b
	return NewMat[D2, D2](
		[]S{cos, -sin},
		[]S{sin, cos},
	)
}

// Lift3 embeds r into 3D space as a rotation about axis.
func (r Rot2[S]) Lift3(axis Nrml3[S]) Rot3[S] {
	return Rot3Unchecked(r.w, axis.Scale(r.bi.c[0]))
}

func (r Rot2[S]) renormalize() Rot2[S] {
	if n, ok := Normal(XY(r.w, r.bi.c[0])); ok {
		return Rot2[S]{w: n.At(0), bi: VectAxis[D1](0, n.At(1))}
	}
	return Rot2Ident[S]()
}

func (r Rot2[S]) ident() Rot2[S] {
	return Rot2Ident[S]()
}

func (r Rot2[S]) torqArray() [MaxDim]S {
	return r.ToTorq().c
}

func (r Rot2[S]) fromTorqArray(t [MaxDim]S) Rot2[S] {
	return Rot2FromTorq(VectAxis[D1](0, t[0]))
}
