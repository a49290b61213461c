package rd

import (
	"errors"
	"math"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(200, 0.005, 1000, 0.5)
	if err != nil {
		t.Fatalf("valid grid rejected: %v", err)
	}
	if g.Points != 200 || g.Steps != 1000 {
		t.Errorf("grid fields not preserved: %+v", g)
	}
}

func TestNewGrid_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		points int
		dx     float64
		steps  int
		dt     float64
	}{
		{"one point", 1, 0.01, 10, 0.1},
		{"zero dx", 10, 0, 10, 0.1},
		{"negative dx", 10, -0.01, 10, 0.1},
		{"zero steps", 10, 0.01, 0, 0.1},
		{"zero dt", 10, 0.01, 10, 0},
		{"negative dt", 10, 0.01, 10, -0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.points, tt.dx, tt.steps, tt.dt)
			if !errors.Is(err, ErrGrid) {
				t.Errorf("expected ErrGrid, got %v", err)
			}
		})
	}
}

func TestParamsValidate(t *testing.T) {
	if err := (Params{K0: 0.067, Du: 0.001, Dv: 0.1}).Validate(); err != nil {
		t.Errorf("valid params rejected: %v", err)
	}
	if err := (Params{Du: -1}).Validate(); !errors.Is(err, ErrGrid) {
		t.Error("negative Du accepted")
	}
}

func TestFieldIsValid(t *testing.T) {
	if !(Field{1, 2, 3}).IsValid() {
		t.Error("finite field reported invalid")
	}
	if (Field{1, math.NaN()}).IsValid() {
		t.Error("NaN not detected")
	}
	if (Field{1, math.Inf(1)}).IsValid() {
		t.Error("Inf not detected")
	}
}

func TestFieldClone(t *testing.T) {
	f := Field{1, 2}
	c := f.Clone()
	c[0] = 9
	if f[0] != 1 {
		t.Error("clone aliases original")
	}
}

func TestStepError(t *testing.T) {
	err := &StepError{Step: 42, Scheme: "rk4", Wrapped: ErrNonFinite}
	if !errors.Is(err, ErrNonFinite) {
		t.Error("StepError does not unwrap")
	}
	if err.Error() == "" {
		t.Error("empty error message")
	}
}
