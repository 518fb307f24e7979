package rotd

import "math"

// Point embeds a position in homogeneous coordinates.
func Point[S Field](position Vect3[S]) Vect4[S] {
	return XYZW(position.c[0], position.c[1], position.c[2], 1)
}

// PointAtInf embeds a direction as a point at infinity.
func PointAtInf[S Field](direction Nrml3[S]) Vect4[S] {
	return XYZW(direction.At(0), direction.At(1), direction.At(2), 0)
}

// Dehomogenize projects a homogeneous point back into 3D.
//
// Returns false for points at infinity.
func Dehomogenize[S Field](p Vect4[S]) (Vect3[S], bool) {
	w := p.c[3]
	if w == 0 {
		return Vect3[S]{}, false
	}
	return XYZ(p.c[0]/w, p.c[1]/w, p.c[2]/w), true
}

// Affine creates the homogeneous matrix which applies linear and then adds
// translation.
func Affine[S Field](linear Mat3[S], translation Vect3[S]) Mat4[S] {
	return MatFromFunc[D4, D4](func(i, j int) S {
		if i < 3 && j < 3 {
			return linear.c[i][j]
		} else if i < 3 {
			return translation.c[i]
		} else if j == 3 {
			return 1
		}
		return 0
	})
}

func LinearHMat[S Field](linear Mat3[S]) Mat4[S] {
	return Affine(linear, Vect3[S]{})
}

func TranslationHMat[S Field](translation Vect3[S]) Mat4[S] {
	return Affine(MatIdent[D3, S](), translation)
}

func UniformScaleHMat[S Field](scale S) Mat4[S] {
	return LinearHMat(MatIdent[D3, S]().Scale(scale))
}

// PerspectiveHMat creates a projection matrix for a camera looking down the
// negative Z axis.
//
// The fov is the vertical field of view in radians, and near and far are the
// distances to the clipping planes.
func PerspectiveHMat[S Field](aspect, fov, near, far S) Mat4[S] {
	view := S(math.Tan(float64(fov / 2)))
	return NewMat[D4, D4](
		[]S{1 / (aspect * view), 0, 0, 0},
		[]S{0, 1 / view, 0, 0},
		[]S{0, 0, ((far+near)/(near-far) - 1) / 2, far * near / (near - far)},
		[]S{0, 0, -1, 0},
	)
}

// Rig3HMat returns the homogeneous matrix of a rig.
func Rig3HMat[S Field](r Rig3[S]) Mat4[S] {
	return Affine(r.Rot.Mat(), r.Trans)
}
