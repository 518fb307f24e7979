package rotd

// An Ortho is an orthonormal, right-handed frame of D.Len() unit vectors.
//
// Orthos are built with OrthoFromVects or OrthoFromNrmls and never change
// afterwards.
type Ortho[D SmallDim, S Field] struct {
	axes [MaxDim]Nrml[D, S]
}

type Ortho2[S Field] = Ortho[D2, S]
type Ortho3[S Field] = Ortho[D3, S]

// OrthoIdent returns the standard basis.
func OrthoIdent[D SmallDim, S Field]() Ortho[D, S] {
	var res Ortho[D, S]
	for i := 0; i < dimOf[D](); i++ {
		res.axes[i] = NrmlAxis[D, S](i)
	}
	return res
}

// OrthoFromVects builds a frame from candidate vectors using Gram-Schmidt.
//
// Zero and non-normalizable candidates are skipped. See OrthoFromNrmls for
// how the frame is filled in.
func OrthoFromVects[D SmallDim, S Field](vs ...Vect[D, S]) Ortho[D, S] {
	normals := make([]Nrml[D, S], 0, len(vs))
	for _, v := range vs {
		if n, ok := Normal(v); ok {
			normals = append(normals, n)
		}
	}
	return OrthoFromNrmls(normals...)
}

// OrthoFromNrmls builds a frame from candidate directions using
// Gram-Schmidt.
//
// The first independent candidate becomes the last axis of the frame, the
// next one the second-to-last axis, and so on. Candidates which are linearly
// dependent on the axes already placed are skipped. Once the candidates run
// out, standard basis axes (last axis first, cycling) are used to complete
// the frame.
//
// If the resulting frame is a reflection, the first axis is negated.
func OrthoFromNrmls[D SmallDim, S Field](ns ...Nrml[D, S]) Ortho[D, S] {
	n := dimOf[D]()
	res := OrthoIdent[D, S]()

	next := n - 1
	for k := 0; next >= 0; k++ {
		var candidate Nrml[D, S]
		if k < len(ns) {
			candidate = ns[k]
		} else {
			candidate = NrmlAxis[D, S](n - 1 - k%n)
		}
		if rejected, ok := res.rejectFixed(candidate, next); ok {
			res.axes[next] = rejected
			next--
		}
	}

	if Det(res.AsRows()) < 0 {
		res.axes[0] = res.axes[0].Neg()
	}
	return res
}

// rejectFixed removes the components of candidate along every axis after
// index free, renormalizing after each step.
//
// A rejection shorter than the square root of the machine epsilon is only
// rounding noise and counts as zero.
func (o *Ortho[D, S]) rejectFixed(candidate Nrml[D, S], free int) (Nrml[D, S], bool) {
	minMagn := sqrt(epsilon[S]())
	for i := free + 1; i < dimOf[D](); i++ {
		magn, rejected, ok := MagnNormal(o.axes[i].Rej(candidate.Vect()))
		if !ok || magn < minMagn {
			return Nrml[D, S]{}, false
		}
		candidate = rejected
	}
	return candidate, true
}

// Axis returns the i-th axis of the frame.
func (o Ortho[D, S]) Axis(i int) Nrml[D, S] {
	if i < 0 || i >= dimOf[D]() {
		panic("axis index out of range")
	}
	return o.axes[i]
}

// Axes returns all axes of the frame in order.
func (o Ortho[D, S]) Axes() []Nrml[D, S] {
	return append([]Nrml[D, S]{}, o.axes[:dimOf[D]()]...)
}

// AsRows creates a matrix whose rows are the axes of the frame.
func (o Ortho[D, S]) AsRows() Mat[D, D, S] {
	return MatFromFunc[D, D](func(i, j int) S { return o.axes[i].At(j) })
}

// AsCols creates a matrix whose columns are the axes of the frame.
//
// This is the matrix which maps the standard basis onto the frame.
func (o Ortho[D, S]) AsCols() Mat[D, D, S] {
	return o.AsRows().Transpose()
}
