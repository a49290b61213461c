// Package reaction advances the reaction kinetics of the two-species system
// by one time step. Two interchangeable schemes are provided: a single
// explicit evaluation and a four-stage Runge-Kutta update.
//
// The rate function is
//
//	rate(u, v) = v*(k0 + u^2/(1+u^2)) - u
//
// evaluated elementwise; all spatial coupling lives in the diffusion
// operators. Whatever the reaction adds to U it removes from V, so a scheme
// returns a single contribution vector that the stepper applies with both
// signs.
package reaction

import "github.com/san-kum/rdsim/internal/rd"

// Scheme computes the reaction contribution for one time step, given the
// previous-step concentrations. The result is added to U's equation and
// subtracted from V's.
type Scheme interface {
	Name() string
	Contribution(u, v rd.Field, dt float64) rd.Field
}

// Rate evaluates the unscaled reaction rate into dst.
func Rate(dst, u, v rd.Field, k0 float64) {
	for i := range u {
		s := u[i] * u[i]
		dst[i] = v[i]*(k0+s/(1+s)) - u[i]
	}
}
