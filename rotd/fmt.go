package rotd

import (
	"fmt"
	"math"
	"strings"
)

func (v Vect[D, S]) String() string {
	return "{" + joinScalars(v.Components()) + "}"
}

func (n Nrml[D, S]) String() string {
	return "N" + n.v.String()
}

// String formats m row by row, separating rows with "|".
func (m Mat[N, M, S]) String() string {
	rows := make([]string, m.Rows())
	for i := range rows {
		rows[i] = joinScalars(m.Row(i).Components())
	}
	return "[" + strings.Join(rows, "|") + "]"
}

// String formats the signed angle as a multiple of pi.
func (r Rot2[S]) String() string {
	return fmt.Sprintf("%vπ rad", float64(r.Angle()*r.AxisOrZero().At(0))/math.Pi)
}

func (r Rot3[S]) String() string {
	axis, ok := r.Axis()
	if !ok {
		return "0rad"
	}
	return fmt.Sprintf("%vπ rad about %v", float64(r.Angle())/math.Pi, axis)
}

func (r Rig[R, D, S]) String() string {
	return fmt.Sprintf("[%v & %v]", r.Trans, r.Rot)
}

func joinScalars[S Ring](s []S) string {
	parts := make([]string, len(s))
	for i, x := range s {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, ", ")
}
