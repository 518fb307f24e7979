package rotd

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRot2FromTo(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for i := 0; i < 1000; i++ {
		from := NewNrmlRand[D2, float64](r)
		to := NewNrmlRand[D2, float64](r)
		rot := Rot2FromTo(from, to)
		requireVectClose(t, to.Vect(), rot.AplNrml(from).Vect(), 1e-8)
		require.InDelta(t, from.AngleTo(to), rot.Angle(), 1e-6)
	}

	x := NrmlAxis[D2, float64](0)
	require.Equal(t, Rot2Ident[float64](), Rot2FromTo(x, x))
	requireVectClose(t, XY(-1.0, 0.0), Rot2FromTo(x, x.Neg()).Apl(x.Vect()), 1e-12)

	require.Equal(t, Rot2Ident[float64](), Rot2FromToVects(XY(0.0, 0.0), XY(1.0, 0.0)))
	rot := Rot2FromToVects(XY(2.0, 0.0), XY(0.0, -3.0))
	require.InDelta(t, -math.Pi/2, rot.SignedAngle(), 1e-8)
}

func TestRot2FromToNearlyOpposite(t *testing.T) {
	from := NrmlAxis[D2, float64](0)
	for _, eps := range []float64{1e-5, 1e-9, -1e-12, 1e-17} {
		to, _ := Normal(XY(-1, eps))
		rot := Rot2FromTo(from, to)
		require.InDelta(t, 1, rot.W()*rot.W()+rot.Bi().SqrMagn(), 1e-12)
		requireVectClose(t, to.Vect(), rot.Apl(from.Vect()), 1e-8)
	}
}

func TestRot2Angle(t *testing.T) {
	rot := Rot2Angle(math.Pi / 2)
	requireVectClose(t, XY(0.0, 1.0), rot.Apl(XY(1.0, 0.0)), 1e-12)
	requireVectClose(t, XY(-1.0, 0.0), rot.Apl(XY(0.0, 1.0)), 1e-12)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		theta := r.Float64()*6 - 3
		rot := Rot2Angle(theta)
		require.InDelta(t, theta, rot.SignedAngle(), 1e-8)
		require.InDelta(t, math.Abs(theta), rot.Angle(), 1e-8)
		require.InDelta(t, theta, rot.ToTorq().At(0), 1e-8)

		c, s := math.Cos(theta), math.Sin(theta)
		requireMatClose(t, NewMat[D2, D2]([]float64{c, -s}, []float64{s, c}), rot.Mat(), 1e-8)
	}

	// Angles past pi wrap around.
	require.InDelta(t, -math.Pi/2, Rot2Angle(3*math.Pi/2).SignedAngle(), 1e-8)
	require.Equal(t, 0.0, Rot2Ident[float64]().SignedAngle())
}

func TestRot2Composition(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		r1, r2 := randRot2(r), randRot2(r)
		v := randVect[D2](r)
		requireVectClose(t, r1.Apl(r2.Apl(v)), r1.Aft(r2).Apl(v), 1e-8)
		requireVectClose(t, r1.Apl(r2.Apl(v)), r2.Bef(r1).Apl(v), 1e-8)
		requireVectClose(t, v, r1.Aft(r1.Inv()).Apl(v), 1e-8)
		requireVectClose(t, r1.Apl(v), r1.Mat().MulVect(v), 1e-8)
	}
}

func TestRot2TorqPart(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		rot := randRot2(r)
		requireMatClose(t, rot.Mat(), Rot2FromTorq(rot.ToTorq()).Mat(), 1e-8)

		half := rot.Part(0.5)
		requireMatClose(t, rot.Mat(), half.Aft(half).Mat(), 1e-8)

		other := randRot2(r)
		requireMatClose(t, rot.Mat(), rot.Slerp(other, 0).Mat(), 1e-8)
		requireMatClose(t, other.Mat(), rot.Slerp(other, 1).Mat(), 1e-8)
	}
	require.Equal(t, Rot2Ident[float64](), Rot2FromTorq(Vect1[float64]{}))
	require.Equal(t, Rot2Ident[float64](), Rot2Ident[float64]().Part(0.5))
	_, ok := Rot2Ident[float64]().Axis()
	require.False(t, ok)

	fullTurn := Rot2Unchecked(-1, Vect1[float64]{})
	require.Equal(t, Rot2Ident[float64](), Rot2FromTorq(fullTurn.ToTorq()))
}

func TestRot2FromOrtho(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		o := OrthoFromVects(randVect[D2](r))
		rot := Rot2FromOrtho(o)
		for j := 0; j < 2; j++ {
			requireVectClose(t, o.Axis(j).Vect(), rot.Apl(VectAxis[D2](j, 1.0)), 1e-8)
		}
	}
}

func TestRot2Float32(t *testing.T) {
	rot := Rot2Angle[float32](math.Pi / 3)
	v := rot.Apl(XY[float32](1, 0))
	require.InDelta(t, 0.5, v.At(0), 1e-5)
	require.InDelta(t, math.Sqrt(3)/2, v.At(1), 1e-5)
}
