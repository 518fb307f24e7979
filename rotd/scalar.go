package rotd

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Ring is the set of scalar types supporting exact addition, subtraction,
// negation and multiplication. Signed integer types (including fixed-point
// types defined on top of them) may be used for the parts of the API that
// never need a square root or a trigonometric function.
type Ring interface {
	constraints.Signed | constraints.Float
}

// Field is the set of scalar types used for normalization, rotation and
// inversion.
type Field interface {
	constraints.Float
}

func abs[S Ring](x S) S {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or 1. Infinities keep their sign.
func sign[S Ring](x S) S {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func clamp[S Ring](x, lo, hi S) S {
	if x < lo {
		return lo
	} else if x > hi {
		return hi
	}
	return x
}

func isNaN[S Ring](x S) bool {
	return math.IsNaN(float64(x))
}

func isFinite[S Ring](x S) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func sqrt[S Field](x S) S {
	return S(math.Sqrt(float64(x)))
}

func acos[S Field](x S) S {
	return S(math.Acos(float64(x)))
}

func asin[S Field](x S) S {
	return S(math.Asin(float64(x)))
}

func atan2[S Field](y, x S) S {
	return S(math.Atan2(float64(y), float64(x)))
}

func sinCos[S Field](x S) (S, S) {
	s, c := math.Sincos(float64(x))
	return S(s), S(c)
}

func remEuclid[S Field](x, y S) S {
	r := S(math.Mod(float64(x), float64(y)))
	if r < 0 {
		r += abs(y)
	}
	return r
}

// epsilon returns the machine epsilon of S.
func epsilon[S Field]() S {
	if float64(S(1.0/3)) == 1.0/3 {
		return S(math.Nextafter(1, 2) - 1)
	}
	return S(math.Nextafter32(1, 2) - 1)
}
