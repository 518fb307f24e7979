package rotd

import (
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

func Vect3FromCoord[S Field](c model3d.Coord3D) Vect3[S] {
	return XYZ(S(c.X), S(c.Y), S(c.Z))
}

func CoordFromVect3[S Field](v Vect3[S]) model3d.Coord3D {
	return model3d.XYZ(float64(v.c[0]), float64(v.c[1]), float64(v.c[2]))
}

func Vect2FromCoord[S Field](c model2d.Coord) Vect2[S] {
	return XY(S(c.X), S(c.Y))
}

func CoordFromVect2[S Field](v Vect2[S]) model2d.Coord {
	return model2d.XY(float64(v.c[0]), float64(v.c[1]))
}

// Mat3FromMatrix converts a row-major model3d matrix.
func Mat3FromMatrix[S Field](m *model3d.Matrix3) Mat3[S] {
	return MatFromFunc[D3, D3](func(i, j int) S { return S(m[i*3+j]) })
}

func MatrixFromMat3[S Field](m Mat3[S]) *model3d.Matrix3 {
	var res model3d.Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[i*3+j] = float64(m.c[i][j])
		}
	}
	return &res
}

// Rig3CoordFunc wraps a rig as a coordinate mapping, for example to pass to
// model3d.Mesh.MapCoords.
func Rig3CoordFunc[S Field](r Rig3[S]) func(model3d.Coord3D) model3d.Coord3D {
	return func(c model3d.Coord3D) model3d.Coord3D {
		return CoordFromVect3(r.Apl(Vect3FromCoord[S](c)))
	}
}
