// Package operator builds the Crank-Nicolson tridiagonal operator pair for
// one diffusing species on a zero-flux grid.
package operator

import (
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/rdsim/internal/rd"
)

// Pair holds the two constant operators discretizing the diffusion term of
// one species. A is applied through a linear solve (implicit side), B by
// direct multiplication (explicit side). Both are built once per run and
// never mutated.
type Pair struct {
	Sigma float64
	A     *mat.Tridiag
	B     *mat.Tridiag
}

// Build constructs the operator pair for diffusion coefficient d.
// sigma = d*dt / (2*dx^2). The first and last rows carry the one-sided
// 1±sigma coefficient instead of 1±2sigma, which is the zero-flux ghost
// point folded into the diagonal.
func Build(g rd.Grid, d float64) Pair {
	j := g.Points
	sigma := d * g.Dt / (2 * g.Dx * g.Dx)

	aDiag := make([]float64, j)
	aSub := make([]float64, j-1)
	aSup := make([]float64, j-1)
	bDiag := make([]float64, j)
	bSub := make([]float64, j-1)
	bSup := make([]float64, j-1)

	for i := 0; i < j; i++ {
		aDiag[i] = 1 + 2*sigma
		bDiag[i] = 1 - 2*sigma
	}
	aDiag[0], aDiag[j-1] = 1+sigma, 1+sigma
	bDiag[0], bDiag[j-1] = 1-sigma, 1-sigma

	for i := 0; i < j-1; i++ {
		aSub[i], aSup[i] = -sigma, -sigma
		bSub[i], bSup[i] = sigma, sigma
	}

	return Pair{
		Sigma: sigma,
		A:     mat.NewTridiag(j, aSub, aDiag, aSup),
		B:     mat.NewTridiag(j, bSub, bDiag, bSup),
	}
}

// ApplyExplicit computes dst = B*src. dst and src must not alias.
func (p *Pair) ApplyExplicit(dst, src rd.Field) {
	x := mat.NewVecDense(len(src), src)
	y := mat.NewVecDense(len(dst), dst)
	p.B.MulVecTo(y, false, x)
}
