package rotd

import "math"

// A Rot3 is a rotation of 3D space, stored as a unit quaternion with scalar
// part w and bivector (vector) part bi.
type Rot3[S Field] struct {
	w  S
	bi Vect3[S]
}

// Rot3Ident returns the identity rotation.
func Rot3Ident[S Field]() Rot3[S] {
	return Rot3[S]{w: 1}
}

// Rot3AngleAxis creates a rotation by angle around axis, following the
// right-hand rule.
func Rot3AngleAxis[S Field](angle S, axis Nrml3[S]) Rot3[S] {
	sin, cos := sinCos(angle / 2)
	return Rot3[S]{w: cos, bi: axis.Scale(sin)}
}

// Pitch rotates around the X axis.
func Pitch[S Field](angle S) Rot3[S] {
	return Rot3AngleAxis(angle, NrmlAxis[D3, S](0))
}

// Yaw rotates around the Y axis.
func Yaw[S Field](angle S) Rot3[S] {
	return Rot3AngleAxis(angle, NrmlAxis[D3, S](1))
}

// Roll rotates around the Z axis.
func Roll[S Field](angle S) Rot3[S] {
	return Rot3AngleAxis(angle, NrmlAxis[D3, S](2))
}

// Rot3FromEuler creates Yaw(yaw) after Pitch(pitch) after Roll(roll).
func Rot3FromEuler[S Field](yaw, pitch, roll S) Rot3[S] {
	return Yaw(yaw).Aft(Pitch(pitch)).Aft(Roll(roll))
}

// Rot3FromTo creates the shortest rotation which carries from onto to.
//
// Opposite directions produce a half turn around an axis orthogonal to from.
func Rot3FromTo[S Field](from, to Nrml3[S]) Rot3[S] {
	dot := to.Dot(from)
	cross := Cross3Nrml(from, to)
	if cross == (Vect3[S]{}) {
		if dot > 0 {
			return Rot3Ident[S]()
		}
		axis, ok := Normal(Cross3(from.Vect(), VectAxis[D3, S](0, 1)))
		if !ok {
			axis = NrmlAxis[D3, S](1)
		}
		return Rot3[S]{w: 0, bi: axis.Vect()}
	}
	// (1+dot, cross) is the rotor scaled by 2*cos(angle/2).
	bi := from.Rej(cross)
	if bi == (Vect3[S]{}) {
		bi = cross
	}
	return Rot3[S]{w: 1 + dot, bi: bi}.renormalize()
}

// Rot3FromToVects is like Rot3FromTo, but accepts arbitrary vectors and
// returns the identity if either of them has no direction.
func Rot3FromToVects[S Field](from, to Vect3[S]) Rot3[S] {
	fromN, ok1 := Normal(from)
	toN, ok2 := Normal(to)
	if !ok1 || !ok2 {
		return Rot3Ident[S]()
	}
	return Rot3FromTo(fromN, toN)
}

// Rot3FromTorq creates a rotation from an axis scaled by an angle.
func Rot3FromTorq[S Field](torq Vect3[S]) Rot3[S] {
	if angle, axis, ok := MagnNormal(torq); ok {
		return Rot3AngleAxis(angle, axis)
	}
	return Rot3Ident[S]()
}

// Rot3Unchecked creates a rotation from its raw components.
//
// The caller must guarantee that w*w + bi.Dot(bi) == 1.
func Rot3Unchecked[S Field](w S, bi Vect3[S]) Rot3[S] {
	return Rot3[S]{w: w, bi: bi}
}

// Rot3FromOrtho creates the rotation which carries the standard basis onto
// the axes of o.
//
// The Z axis is aligned first, and then the Y axis is turned into place
// around the new Z axis.
func Rot3FromOrtho[S Field](o Ortho3[S]) Rot3[S] {
	fy, fz := o.Axis(1), o.Axis(2)
	r1 := Rot3FromTo(NrmlAxis[D3, S](2), fz)
	y := r1.AplNrml(NrmlAxis[D3, S](1))

	var r2 Rot3[S]
	if Cross3Nrml(y, fy) == (Vect3[S]{}) && y.Dot(fy) <= 0 {
		r2 = Rot3AngleAxis(S(math.Pi), fz)
	} else {
		r2 = Rot3FromTo(y, fy)
	}
	return r2.Aft(r1)
}

func (r Rot3[S]) W() S {
	return r.w
}

// Bi returns the bivector part, axis*sin(angle/2).
func (r Rot3[S]) Bi() Vect3[S] {
	return r.bi
}

func (r Rot3[S]) Angle() S {
	return 2 * acos(clamp(r.w, -1, 1))
}

// Axis returns the rotation axis, or false for the identity.
func (r Rot3[S]) Axis() (Nrml3[S], bool) {
	return Normal(r.bi)
}

func (r Rot3[S]) AxisOrZero() Vect3[S] {
	return NormalOrZero(r.bi)
}

// ToTorq returns the rotation axis scaled by the rotation angle.
//
// Rot3FromTorq(r.ToTorq()) is the same rotation as r, but its components may
// have the opposite sign: a full turn (w=-1) comes back as the identity
// (w=1).
func (r Rot3[S]) ToTorq() Vect3[S] {
	return r.AxisOrZero().Scale(r.Angle())
}

// EulerAngles decomposes r so that
// r == Rot3FromEuler(yaw, pitch, roll) up to rounding.
func (r Rot3[S]) EulerAngles() (yaw, pitch, roll S) {
	w := r.w
	x, y, z := r.bi.c[0], r.bi.c[1], r.bi.c[2]
	yaw = atan2(2*(x*z+w*y), 1-2*(x*x+y*y))
	pitch = asin(clamp(2*(w*x-y*z), -1, 1))
	roll = atan2(2*(x*y+w*z), 1-2*(x*x+z*z))
	return
}

func (r Rot3[S]) Part(t S) Rot3[S] {
	if axis, ok := r.Axis(); ok {
		return Rot3AngleAxis(r.Angle()*t, axis)
	}
	return Rot3Ident[S]()
}

func (r Rot3[S]) Inv() Rot3[S] {
	return Rot3[S]{w: r.w, bi: r.bi.Neg()}
}

func (r Rot3[S]) Aft(other Rot3[S]) Rot3[S] {
	return Rot3[S]{
		w: r.w*other.w - r.bi.Dot(other.bi),
		bi: Sum(
			Cross3(r.bi, other.bi),
			other.bi.Scale(r.w),
			r.bi.Scale(other.w),
		),
	}.renormalize()
}

func (r Rot3[S]) Bef(other Rot3[S]) Rot3[S] {
	return other.Aft(r)
}

// Slerp interpolates from r (t=0) to other (t=1).
func (r Rot3[S]) Slerp(other Rot3[S], t S) Rot3[S] {
	return slerp[Rot3[S], D3, S](r, other, t)
}

func (r Rot3[S]) Apl(v Vect3[S]) Vect3[S] {
	return v.Scale(r.w*r.w - r.bi.Dot(r.bi)).Add(
		r.bi.Scale(r.bi.Dot(v)).Add(Cross3(r.bi, v).Scale(r.w)).Scale(2),
	)
}

func (r Rot3[S]) AplNrml(n Nrml3[S]) Nrml3[S] {
	return aplNrml(r.Apl, n)
}

func (r Rot3[S]) Mat() Mat3[S] {
	w := r.w
	x, y, z := r.bi.c[0], r.bi.c[1], r.bi.c[2]
	return MatIdent[D3, S]().Add(NewMat[D3, D3](
		[]S{-(y*y + z*z), x*y - z*w, z*x + y*w},
		[]S{x*y + z*w, -(z*z + x*x), y*z - x*w},
		[]S{z*x - y*w, y*z + x*w, -(x*x + y*y)},
	).Scale(2))
}

func (r Rot3[S]) renormalize() Rot3[S] {
	if n, ok := Normal(XYZW(r.w, r.bi.c[0], r.bi.c[1], r.bi.c[2])); ok {
		return Rot3[S]{w: n.At(0), bi: XYZ(n.At(1), n.At(2), n.At(3))}
	}
	return Rot3Ident[S]()
}

func (r Rot3[S]) ident() Rot3[S] {
	return Rot3Ident[S]()
}

func (r Rot3[S]) torqArray() [MaxDim]S {
	return r.ToTorq().c
}

func (r Rot3[S]) fromTorqArray(t [MaxDim]S) Rot3[S] {
	return Rot3FromTorq(XYZ(t[0], t[1], t[2]))
}
