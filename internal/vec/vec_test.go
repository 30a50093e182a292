package vec

import (
	"math"
	"testing"
)

func TestArithmetic(t *testing.T) {
	a := New(1, 2)
	b := New(3, -4)

	if got := a.Add(b); got != New(4, -2) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != New(-2, 6) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != New(2, 4) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot: got %f", got)
	}
}

func TestLength(t *testing.T) {
	v := New(3, 4)

	if v.Length() != 5 {
		t.Errorf("expected length 5, got %f", v.Length())
	}
	if v.LengthSq() != 25 {
		t.Errorf("expected length squared 25, got %f", v.LengthSq())
	}
	if d := New(0, 0).Distance(v); d != 5 {
		t.Errorf("expected distance 5, got %f", d)
	}
}

func TestNormalize(t *testing.T) {
	n := New(10, 0).Normalize()
	if n != New(1, 0) {
		t.Errorf("expected unit x, got %v", n)
	}

	n = New(3, 4).Normalize()
	if math.Abs(n.Length()-1.0) > 1e-12 {
		t.Errorf("expected unit length, got %f", n.Length())
	}

	if Zero.Normalize() != Zero {
		t.Error("zero vector should normalize to itself")
	}
}
