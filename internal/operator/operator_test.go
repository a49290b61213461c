package operator

import (
	"math"
	"testing"

	"github.com/san-kum/rdsim/internal/rd"
)

func testGrid(t *testing.T) rd.Grid {
	t.Helper()
	g, err := rd.NewGrid(6, 0.1, 10, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestBuildSigma(t *testing.T) {
	g := testGrid(t)
	d := 0.05
	p := Build(g, d)

	want := d * g.Dt / (2 * g.Dx * g.Dx)
	if math.Abs(p.Sigma-want) > 1e-15 {
		t.Errorf("sigma = %g, want %g", p.Sigma, want)
	}
}

func TestBuildCoefficients(t *testing.T) {
	g := testGrid(t)
	p := Build(g, 0.05)
	s := p.Sigma
	j := g.Points

	// Boundary rows carry the one-sided 1±sigma, interior rows 1±2sigma.
	if got := p.A.At(0, 0); math.Abs(got-(1+s)) > 1e-15 {
		t.Errorf("A[0,0] = %g, want %g", got, 1+s)
	}
	if got := p.A.At(j-1, j-1); math.Abs(got-(1+s)) > 1e-15 {
		t.Errorf("A[J-1,J-1] = %g, want %g", got, 1+s)
	}
	if got := p.A.At(2, 2); math.Abs(got-(1+2*s)) > 1e-15 {
		t.Errorf("A[2,2] = %g, want %g", got, 1+2*s)
	}
	if got := p.A.At(2, 1); math.Abs(got-(-s)) > 1e-15 {
		t.Errorf("A[2,1] = %g, want %g", got, -s)
	}
	if got := p.A.At(2, 3); math.Abs(got-(-s)) > 1e-15 {
		t.Errorf("A[2,3] = %g, want %g", got, -s)
	}

	if got := p.B.At(0, 0); math.Abs(got-(1-s)) > 1e-15 {
		t.Errorf("B[0,0] = %g, want %g", got, 1-s)
	}
	if got := p.B.At(3, 3); math.Abs(got-(1-2*s)) > 1e-15 {
		t.Errorf("B[3,3] = %g, want %g", got, 1-2*s)
	}
	if got := p.B.At(3, 2); math.Abs(got-s) > 1e-15 {
		t.Errorf("B[3,2] = %g, want %g", got, s)
	}
}

// Flux conservation under zero-flux boundaries shows up as unit column sums
// in both operators: multiplying (or solving) by them preserves the total.
func TestBuildColumnSums(t *testing.T) {
	g := testGrid(t)
	p := Build(g, 0.05)
	j := g.Points

	for c := 0; c < j; c++ {
		sumA, sumB := 0.0, 0.0
		for r := 0; r < j; r++ {
			sumA += p.A.At(r, c)
			sumB += p.B.At(r, c)
		}
		if math.Abs(sumA-1) > 1e-14 {
			t.Errorf("A column %d sums to %g", c, sumA)
		}
		if math.Abs(sumB-1) > 1e-14 {
			t.Errorf("B column %d sums to %g", c, sumB)
		}
	}
}

func TestApplyExplicit(t *testing.T) {
	g := testGrid(t)
	p := Build(g, 0.05)
	s := p.Sigma

	u := make(rd.Field, g.Points)
	for i := range u {
		u[i] = float64(i + 1)
	}
	dst := make(rd.Field, g.Points)
	p.ApplyExplicit(dst, u)

	// Row 0: (1-s)*u0 + s*u1.
	want := (1-s)*u[0] + s*u[1]
	if math.Abs(dst[0]-want) > 1e-14 {
		t.Errorf("dst[0] = %g, want %g", dst[0], want)
	}
	// Interior row: s*u1 + (1-2s)*u2 + s*u3.
	want = s*u[1] + (1-2*s)*u[2] + s*u[3]
	if math.Abs(dst[2]-want) > 1e-14 {
		t.Errorf("dst[2] = %g, want %g", dst[2], want)
	}
}

func TestBuildZeroDiffusion(t *testing.T) {
	g := testGrid(t)
	p := Build(g, 0)

	u := rd.Field{1, 2, 3, 4, 5, 6}
	dst := make(rd.Field, g.Points)
	p.ApplyExplicit(dst, u)
	for i := range u {
		if dst[i] != u[i] {
			t.Fatalf("zero diffusion should be identity, dst[%d] = %g", i, dst[i])
		}
	}
}
