// Package rd provides the core primitives for the two-species
// reaction-diffusion experiment.
//
// The package defines the fundamental types shared by the numerical
// components:
//
//   - [Field]: concentration of one species at every grid point
//   - [Grid]: the fixed space/time discretization
//   - [Params]: reaction and diffusion constants
//   - [Result]: the accumulated trajectory of a run
//
// The equation integrated is
//
//	du/dt = D_u * d2u/dx2 + v*(k0 + u^2/(1+u^2)) - u
//	dv/dt = D_v * d2v/dx2 - v*(k0 + u^2/(1+u^2)) + u
//
// on a 1-D interval with zero-flux boundaries. Diffusion is handled by a
// Crank-Nicolson split (package operator, package solver); the reaction term
// is advanced either explicitly or with a four-stage Runge-Kutta update
// (package reaction). Package stepper drives the time loop.
//
// # Thread Safety
//
// Grids, params and operator matrices are immutable after construction and
// safe to share. Fields are not; each time step owns its state vectors
// exclusively.
package rd
