// Package metrics provides run observables for conservation reporting.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/rdsim/internal/rd"
)

// Mass returns the discrete conserved quantity sum_j (u_j + v_j) * dx.
func Mass(u, v rd.Field, dx float64) float64 {
	return (floats.Sum(u) + floats.Sum(v)) * dx
}

// TotalMass tracks the conserved quantity over a run. Value reports the
// largest relative deviation from the step-0 mass seen so far.
type TotalMass struct {
	dx       float64
	initial  float64
	current  float64
	maxDrift float64
	samples  int
}

func NewTotalMass(dx float64) *TotalMass {
	return &TotalMass{dx: dx}
}

func (m *TotalMass) Name() string { return "mass_drift" }

func (m *TotalMass) Observe(u, v rd.Field, t float64) {
	mass := Mass(u, v, m.dx)
	m.current = mass
	if m.samples == 0 {
		m.initial = mass
	} else if m.initial != 0 {
		drift := math.Abs(mass-m.initial) / math.Abs(m.initial)
		if drift > m.maxDrift {
			m.maxDrift = drift
		}
	}
	m.samples++
}

func (m *TotalMass) Value() float64 { return m.maxDrift }

func (m *TotalMass) Initial() float64 { return m.initial }
func (m *TotalMass) Current() float64 { return m.current }

func (m *TotalMass) Reset() {
	m.initial = 0
	m.current = 0
	m.maxDrift = 0
	m.samples = 0
}
