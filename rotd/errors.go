package rotd

import "github.com/pkg/errors"

var (
	// ErrSingular is returned by TryInverse when elimination hit a zero pivot.
	ErrSingular = errors.New("rotd: singular matrix")

	// ErrDegenerate is returned when decoding a unit vector from data that
	// cannot be normalized.
	ErrDegenerate = errors.New("rotd: degenerate direction")

	// ErrComponentCount is returned when decoding a vector or matrix with the
	// wrong number of components.
	ErrComponentCount = errors.New("rotd: wrong number of components")
)
