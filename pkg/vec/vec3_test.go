package vec

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); got != (Vec3{5, -3, 9}) {
		t.Errorf("Add: expected {5 -3 9}, got %v", got)
	}
	if got := a.Subtract(b); got != (Vec3{-3, 7, -3}) {
		t.Errorf("Subtract: expected {-3 7 -3}, got %v", got)
	}
	if got := a.Multiply(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Multiply: expected {2 4 6}, got %v", got)
	}
}

func TestVec3_Dot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected float64
	}{
		{"orthogonal", NewVec3(1, 0, 0), NewVec3(0, 1, 0), 0},
		{"parallel", NewVec3(0, 0, 2), NewVec3(0, 0, 3), 6},
		{"general", NewVec3(1, 2, 3), NewVec3(4, -5, 6), 12},
		{"self", NewVec3(2, 3, 6), NewVec3(2, 3, 6), 49},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Dot(tt.b); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_Length(t *testing.T) {
	v := NewVec3(2, 3, 6)
	if got := v.Length(); got != 7 {
		t.Errorf("Expected length 7, got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %v", v.Length())
	}
	if math.Abs(v.X-0.6) > 1e-12 || v.Y != 0 || math.Abs(v.Z-0.8) > 1e-12 {
		t.Errorf("Expected {0.6 0 0.8}, got %v", v)
	}

	// Zero vector stays zero rather than producing NaN
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", got)
	}
}

func TestRay_At(t *testing.T) {
	r := NewRay(NewVec3(1, 0, 0), NewVec3(0, 2, 0))
	if got := r.At(1.5); got != (Vec3{1, 3, 0}) {
		t.Errorf("Expected {1 3 0}, got %v", got)
	}
	if got := r.At(0); got != r.Origin {
		t.Errorf("Expected origin at t=0, got %v", got)
	}
}
