package rotd

// Cross2 computes the planar cross product of two 2D vectors, which is a
// single scalar wrapped in a 1D vector.
func Cross2[S Ring](a, b Vect2[S]) Vect1[S] {
	return Vect1[S]{c: [MaxDim]S{a.c[0]*b.c[1] - b.c[0]*a.c[1]}}
}

// Cross3 computes the cross product of two 3D vectors.
func Cross3[S Ring](a, b Vect3[S]) Vect3[S] {
	return XYZ(
		a.c[1]*b.c[2]-b.c[1]*a.c[2],
		a.c[2]*b.c[0]-b.c[2]*a.c[0],
		a.c[0]*b.c[1]-b.c[0]*a.c[1],
	)
}
