package rotd

// A Rig is a rigid transformation: a rotation followed by a translation.
type Rig[R Rotor[R, D, S], D Dim, S Field] struct {
	Rot   R          `json:"rot" yaml:"rot"`
	Trans Vect[D, S] `json:"trans" yaml:"trans"`
}

type Rig2[S Field] = Rig[Rot2[S], D2, S]
type Rig3[S Field] = Rig[Rot3[S], D3, S]

// NewRig creates a rig which rotates by rot and then translates by trans.
func NewRig[R Rotor[R, D, S], D Dim, S Field](trans Vect[D, S], rot R) Rig[R, D, S] {
	return Rig[R, D, S]{Rot: rot, Trans: trans}
}

func Rig2Ident[S Field]() Rig2[S] {
	return Rig2[S]{Rot: Rot2Ident[S]()}
}

func Rig3Ident[S Field]() Rig3[S] {
	return Rig3[S]{Rot: Rot3Ident[S]()}
}

// Rig2Rot creates a rig with a rotation and no translation.
func Rig2Rot[S Field](rot Rot2[S]) Rig2[S] {
	return Rig2[S]{Rot: rot}
}

// Rig3Rot creates a rig with a rotation and no translation.
func Rig3Rot[S Field](rot Rot3[S]) Rig3[S] {
	return Rig3[S]{Rot: rot}
}

// Apl transforms a point.
func (r Rig[R, D, S]) Apl(v Vect[D, S]) Vect[D, S] {
	return r.Rot.Apl(v).Add(r.Trans)
}

// AplNrml transforms the point at the tip of n.
func (r Rig[R, D, S]) AplNrml(n Nrml[D, S]) Vect[D, S] {
	return r.Rot.Apl(n.Vect()).Add(r.Trans)
}

// Aft returns the rig which performs r after other.
func (r Rig[R, D, S]) Aft(other Rig[R, D, S]) Rig[R, D, S] {
	return Rig[R, D, S]{
		Rot:   r.Rot.Aft(other.Rot),
		Trans: r.Rot.Apl(other.Trans).Add(r.Trans),
	}
}

// Bef returns the rig which performs r before other.
func (r Rig[R, D, S]) Bef(other Rig[R, D, S]) Rig[R, D, S] {
	return other.Aft(r)
}

func (r Rig[R, D, S]) Inv() Rig[R, D, S] {
	rot := r.Rot.Inv()
	return Rig[R, D, S]{Rot: rot, Trans: rot.Apl(r.Trans.Neg())}
}

// Interp moves from r (t=0) to other (t=1), interpolating the rotation
// spherically and the translation linearly.
func (r Rig[R, D, S]) Interp(other Rig[R, D, S], t S) Rig[R, D, S] {
	return Rig[R, D, S]{
		Rot:   slerp[R, D, S](r.Rot, other.Rot, t),
		Trans: Lerp(r.Trans, other.Trans, t),
	}
}

// Mat returns the linear part of the transform.
func (r Rig[R, D, S]) Mat() Mat[D, D, S] {
	return r.Rot.Mat()
}

// Compose combines rigs so that rigs[0] is applied first.
//
// Returns the identity for an empty list.
func Compose[R Rotor[R, D, S], D Dim, S Field](rigs ...Rig[R, D, S]) Rig[R, D, S] {
	var res Rig[R, D, S]
	res.Rot = res.Rot.ident()
	for _, rig := range rigs {
		res = rig.Aft(res)
	}
	return res
}
