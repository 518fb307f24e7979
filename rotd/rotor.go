package rotd

// A Rotor is a rotation of D-dimensional space, represented as a unit scalar
// plus bivector pair.
//
// Rotor is sealed. It is implemented by Rot2 (complex numbers) and Rot3
// (quaternions), and R is always the implementing type itself.
type Rotor[R any, D Dim, S Field] interface {
	// W returns the scalar part, cos(angle/2).
	W() S

	// Angle returns the rotation angle in [0, 2*pi].
	Angle() S

	// Inv returns the inverse rotation.
	Inv() R

	// Aft returns the rotation performing r after other.
	Aft(other R) R

	// Bef returns the rotation performing r before other.
	Bef(other R) R

	// Part scales the rotation angle by t, keeping the axis.
	Part(t S) R

	// Apl rotates a vector.
	Apl(v Vect[D, S]) Vect[D, S]

	// AplNrml rotates a unit vector.
	AplNrml(n Nrml[D, S]) Nrml[D, S]

	// Mat returns the equivalent orthogonal matrix.
	Mat() Mat[D, D, S]

	ident() R
	torqArray() [MaxDim]S
	fromTorqArray(t [MaxDim]S) R
}

func slerp[R Rotor[R, D, S], D Dim, S Field](a, b R, t S) R {
	return b.Aft(a.Inv()).Part(t).Aft(a)
}

// aplNrml rotates a unit vector with apl and renormalizes the result to
// remove drift, keeping n if the result cannot be normalized.
func aplNrml[D Dim, S Field](apl func(Vect[D, S]) Vect[D, S], n Nrml[D, S]) Nrml[D, S] {
	if res, ok := Normal(apl(n.Vect())); ok {
		return res
	}
	return n
}
