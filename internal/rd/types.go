package rd

import (
	"fmt"
	"math"
)

// Field is the concentration of one species sampled at every grid point.
type Field []float64

func (f Field) Clone() Field {
	c := make(Field, len(f))
	copy(c, f)
	return c
}

func (f Field) IsValid() bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Sum returns the plain sum of all point values (mass is Sum times dx).
func (f Field) Sum() float64 {
	s := 0.0
	for _, v := range f {
		s += v
	}
	return s
}

// Grid is the fixed discretization of space and time for one run.
type Grid struct {
	Points int     // J, number of spatial points
	Dx     float64 // spatial step
	Steps  int     // N, number of time indices including the initial one
	Dt     float64 // time step
}

// NewGrid validates the discretization parameters.
func NewGrid(points int, dx float64, steps int, dt float64) (Grid, error) {
	if points < 2 {
		return Grid{}, fmt.Errorf("%w: need at least 2 spatial points, got %d", ErrGrid, points)
	}
	if dx <= 0 {
		return Grid{}, fmt.Errorf("%w: dx must be positive, got %g", ErrGrid, dx)
	}
	if steps < 1 {
		return Grid{}, fmt.Errorf("%w: need at least 1 time step, got %d", ErrGrid, steps)
	}
	if dt <= 0 {
		return Grid{}, fmt.Errorf("%w: dt must be positive, got %g", ErrGrid, dt)
	}
	return Grid{Points: points, Dx: dx, Steps: steps, Dt: dt}, nil
}

// Params holds the reaction and diffusion constants, shared read-only by all
// components of a run.
type Params struct {
	K0 float64 // basal activation rate
	Du float64 // diffusion coefficient of the active species U
	Dv float64 // diffusion coefficient of the inactive species V
}

func (p Params) Validate() error {
	if p.Du < 0 || p.Dv < 0 {
		return fmt.Errorf("%w: diffusion coefficients must be nonnegative, got Du=%g Dv=%g", ErrGrid, p.Du, p.Dv)
	}
	return nil
}

// Metric observes the state at every time index during a run.
type Metric interface {
	Name() string
	Observe(u, v Field, t float64)
	Value() float64
	Reset()
}

// Result is the trajectory of one run. Entry 0 of U and V is the initial
// condition; entry n is the state after n implicit/reaction steps. Entries
// are appended in strictly increasing time order.
type Result struct {
	U, V       []Field
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
}

// Last returns the most recent state pair.
func (r *Result) Last() (Field, Field) {
	n := len(r.U)
	if n == 0 {
		return nil, nil
	}
	return r.U[n-1], r.V[n-1]
}
