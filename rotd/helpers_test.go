package rotd

import (
	"math/rand"
	"testing"
)

func requireVectClose[D Dim](t *testing.T, expected, actual Vect[D, float64], eps float64) {
	t.Helper()
	if Magn(expected.Sub(actual)) > eps {
		t.Fatalf("expected %v but got %v", expected, actual)
	}
}

func requireMatClose[N, M Dim](t *testing.T, expected, actual Mat[N, M, float64], eps float64) {
	t.Helper()
	for i := 0; i < expected.Rows(); i++ {
		if Magn(expected.Row(i).Sub(actual.Row(i))) > eps {
			t.Fatalf("expected %v but got %v", expected, actual)
		}
	}
}

// requireRot3Close compares rotors by their action, since q and -q are the
// same rotation.
func requireRot3Close(t *testing.T, expected, actual Rot3[float64], eps float64) {
	t.Helper()
	requireMatClose(t, expected.Mat(), actual.Mat(), eps)
}

func randVect[D Dim](r *rand.Rand) Vect[D, float64] {
	return VectFromFunc[D](func(int) float64 { return r.NormFloat64() })
}

func randRot3(r *rand.Rand) Rot3[float64] {
	return Rot3AngleAxis(r.Float64()*6, NewNrmlRand[D3, float64](r))
}

func randRot2(r *rand.Rand) Rot2[float64] {
	return Rot2Angle(r.Float64()*12 - 6)
}
