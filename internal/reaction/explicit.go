package reaction

import "github.com/san-kum/rdsim/internal/rd"

// Explicit is the single-stage scheme: one rate evaluation at the previous
// state, scaled by dt.
type Explicit struct {
	k0 float64
}

func NewExplicit(k0 float64) *Explicit {
	return &Explicit{k0: k0}
}

func (e *Explicit) Name() string { return "explicit" }

func (e *Explicit) Contribution(u, v rd.Field, dt float64) rd.Field {
	out := make(rd.Field, len(u))
	for i := range u {
		s := u[i] * u[i]
		out[i] = dt * (v[i]*(e.k0+s/(1+s)) - u[i])
	}
	return out
}
