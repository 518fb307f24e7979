package rotd

// A LinAng3 is a pair of linear and angular quantities, such as a velocity
// and an angular velocity. The angular part is a torque vector.
type LinAng3[S Field] struct {
	Lin Vect3[S] `json:"lin" yaml:"lin"`
	Ang Vect3[S] `json:"ang" yaml:"ang"`
}

func NewLinAng3[S Field](lin, ang Vect3[S]) LinAng3[S] {
	return LinAng3[S]{Lin: lin, Ang: ang}
}

func (l LinAng3[S]) Add(l1 LinAng3[S]) LinAng3[S] {
	return LinAng3[S]{Lin: l.Lin.Add(l1.Lin), Ang: l.Ang.Add(l1.Ang)}
}

func (l LinAng3[S]) Sub(l1 LinAng3[S]) LinAng3[S] {
	return LinAng3[S]{Lin: l.Lin.Sub(l1.Lin), Ang: l.Ang.Sub(l1.Ang)}
}

func (l LinAng3[S]) Scale(s S) LinAng3[S] {
	return LinAng3[S]{Lin: l.Lin.Scale(s), Ang: l.Ang.Scale(s)}
}

func (l LinAng3[S]) Div(s S) LinAng3[S] {
	return LinAng3[S]{Lin: l.Lin.Div(s), Ang: l.Ang.Div(s)}
}

// Rig converts the pair into a rigid transform, treating Lin as the
// translation and Ang as a torque vector.
//
// For a velocity pair, l.Scale(dt).Rig() is the motion over a time step dt.
func (l LinAng3[S]) Rig() Rig3[S] {
	return NewRig(l.Lin, Rot3FromTorq(l.Ang))
}
