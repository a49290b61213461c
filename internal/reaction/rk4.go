package reaction

import "github.com/san-kum/rdsim/internal/rd"

// RK4 is the four-stage Runge-Kutta scheme. Each provisional stage state
// moves U and V in opposite directions by the same amount, so the
// redistribution between the species is exact at every stage, not only in
// the combined result.
type RK4 struct {
	k0             float64
	k1, k2, k3, k4 rd.Field
	su, sv         rd.Field
}

func NewRK4(k0 float64) *RK4 {
	return &RK4{k0: k0}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(rd.Field, n)
		r.k2 = make(rd.Field, n)
		r.k3 = make(rd.Field, n)
		r.k4 = make(rd.Field, n)
		r.su = make(rd.Field, n)
		r.sv = make(rd.Field, n)
	}
}

func (r *RK4) Contribution(u, v rd.Field, dt float64) rd.Field {
	n := len(u)
	r.ensureScratch(n)

	Rate(r.k1, u, v, r.k0)

	for i := 0; i < n; i++ {
		d := dt * 0.5 * r.k1[i]
		r.su[i] = u[i] + d
		r.sv[i] = v[i] - d
	}
	Rate(r.k2, r.su, r.sv, r.k0)

	for i := 0; i < n; i++ {
		d := dt * 0.5 * r.k2[i]
		r.su[i] = u[i] + d
		r.sv[i] = v[i] - d
	}
	Rate(r.k3, r.su, r.sv, r.k0)

	for i := 0; i < n; i++ {
		d := dt * r.k3[i]
		r.su[i] = u[i] + d
		r.sv[i] = v[i] - d
	}
	Rate(r.k4, r.su, r.sv, r.k0)

	out := make(rd.Field, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		out[i] = dt6 * (r.k1[i] + 2*r.k2[i] + 2*r.k3[i] + r.k4[i])
	}
	return out
}
