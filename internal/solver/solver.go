// Package solver provides the linear-solve boundary used by the time
// stepper. The implicit diffusion operator is inverted here and nowhere
// else.
package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/rdsim/internal/rd"
)

// Solver solves A*x = rhs for a matrix fixed at construction time.
type Solver interface {
	Solve(rhs rd.Field) (rd.Field, error)
}

// Tridiagonal solves against a fixed tridiagonal matrix.
type Tridiagonal struct {
	a *mat.Tridiag
	n int
}

func NewTridiagonal(a *mat.Tridiag) *Tridiagonal {
	n, _ := a.Dims()
	return &Tridiagonal{a: a, n: n}
}

// Solve returns the solution as a freshly allocated field. It reports
// rd.ErrSingular if the matrix cannot be inverted and rd.ErrNonFinite if the
// solution contains NaN or Inf.
func (s *Tridiagonal) Solve(rhs rd.Field) (rd.Field, error) {
	if len(rhs) != s.n {
		return nil, fmt.Errorf("%w: rhs length %d, system size %d", rd.ErrGrid, len(rhs), s.n)
	}
	var dst mat.VecDense
	if err := s.a.SolveVecTo(&dst, false, mat.NewVecDense(s.n, rhs)); err != nil {
		return nil, fmt.Errorf("%w: %v", rd.ErrSingular, err)
	}
	x := make(rd.Field, s.n)
	for i := range x {
		x[i] = dst.AtVec(i)
	}
	if !x.IsValid() {
		return x, rd.ErrNonFinite
	}
	return x, nil
}
