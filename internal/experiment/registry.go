// Package experiment wires configs, schemes and steppers into runnable
// experiments.
package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/rdsim/internal/reaction"
)

type Registry struct {
	schemes map[string]func(k0 float64) reaction.Scheme
}

func NewRegistry() *Registry {
	r := &Registry{schemes: make(map[string]func(float64) reaction.Scheme)}
	r.schemes["explicit"] = func(k0 float64) reaction.Scheme { return reaction.NewExplicit(k0) }
	r.schemes["rk4"] = func(k0 float64) reaction.Scheme { return reaction.NewRK4(k0) }
	return r
}

func (r *Registry) GetScheme(name string, k0 float64) (reaction.Scheme, error) {
	fn, ok := r.schemes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scheme: %s", name)
	}
	return fn(k0), nil
}

func (r *Registry) ListSchemes() []string {
	names := make([]string, 0, len(r.schemes))
	for name := range r.schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
