package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Mul(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{2, 3, 4}
	got := a.Mul(b)
	want := Vec3{2, 6, 12}
	if got != want {
		t.Errorf("Vec3.Mul() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := Vec3{}.Normalize()
	if got != (Vec3{}) {
		t.Errorf("zero vector should normalize to itself, got %v", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestNormalWinding(t *testing.T) {
	v1 := Vec3{0, 0, 0}
	v2 := Vec3{1, 0, 0}
	v3 := Vec3{0, 1, 0}

	got := Normal(v1, v2, v3)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Normal() = %v, want %v", got, want)
	}

	// Reversing the winding flips the direction
	rev := Normal(v1, v3, v2)
	if rev != (Vec3{0, 0, -1}) {
		t.Errorf("reversed Normal() = %v, want %v", rev, Vec3{0, 0, -1})
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{1, 2, 8}
	if d := a.Distance(b); d != 5 {
		t.Errorf("Vec3.Distance() = %v, want 5", d)
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{-3.5, -1},
		{0, 0},
		{0.001, 1},
	}
	for _, tc := range tests {
		if got := Sign(tc.in); got != tc.want {
			t.Errorf("Sign(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRadiansDegrees(t *testing.T) {
	if r := Radians(180); r < 3.141 || r > 3.142 {
		t.Errorf("Radians(180) = %v, want ~pi", r)
	}
	if d := Degrees(Radians(90)); d < 89.99 || d > 90.01 {
		t.Errorf("Degrees(Radians(90)) = %v, want ~90", d)
	}
}
