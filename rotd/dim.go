package rotd

// MaxDim is the largest supported dimension.
const MaxDim = 4

// A Dim is a marker type selecting the number of components of a vector or
// the number of rows or columns of a matrix.
//
// Dim is sealed: the only implementations are D1, D2, D3 and D4.
type Dim interface {
	Len() int

	dim()
}

// SmallDim is the set of dimensions with a closed-form determinant.
type SmallDim interface {
	Dim
	D1 | D2 | D3
}

type D1 struct{}
type D2 struct{}
type D3 struct{}
type D4 struct{}

func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }

func (D1) dim() {}
func (D2) dim() {}
func (D3) dim() {}
func (D4) dim() {}

func dimOf[D Dim]() int {
	var d D
	return d.Len()
}
