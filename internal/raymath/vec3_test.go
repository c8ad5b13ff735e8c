package raymath

import (
	"math"
	"testing"
)

func TestVec3DotCross(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	cross := a.Cross(b)
	if math.Abs(cross.Dot(a)) > 1e-9 {
		t.Errorf("(a x b).a should be 0, got %f", cross.Dot(a))
	}
	if math.Abs(cross.Dot(b)) > 1e-9 {
		t.Errorf("(a x b).b should be 0, got %f", cross.Dot(b))
	}
	if cross != (Vec3{0, 0, 1}) {
		t.Errorf("expected (0,0,1), got %v", cross)
	}
}

func TestVec3NormalizeIdempotent(t *testing.T) {
	v := Vec3{3, 4, 0}
	n1 := v.Normalize()
	n2 := n1.Normalize()
	if math.Abs(n1.Length()-1) > 1e-9 {
		t.Errorf("normalized length should be 1, got %f", n1.Length())
	}
	if math.Abs(n1.X-n2.X) > 1e-12 || math.Abs(n1.Y-n2.Y) > 1e-12 || math.Abs(n1.Z-n2.Z) > 1e-12 {
		t.Errorf("normalize should be idempotent: %v vs %v", n1, n2)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	z := Vec3{}.Normalize()
	if z != (Vec3{}) {
		t.Errorf("normalizing the zero vector should stay zero, got %v", z)
	}
}

func TestVec3Clamp(t *testing.T) {
	v := Vec3{-1, 0.5, 2}.Clamp(0, 1)
	if v != (Vec3{0, 0.5, 1}) {
		t.Errorf("expected (0, 0.5, 1), got %v", v)
	}
}

func TestVec3MulDivComponentwise(t *testing.T) {
	a := Vec3{2, 3, 4}
	b := Vec3{5, 6, 7}
	m := a.Mul(b)
	if m != (Vec3{10, 18, 28}) {
		t.Errorf("expected (10,18,28), got %v", m)
	}
	d := m.Div(b)
	if math.Abs(d.X-a.X) > 1e-9 || math.Abs(d.Y-a.Y) > 1e-9 || math.Abs(d.Z-a.Z) > 1e-9 {
		t.Errorf("expected %v, got %v", a, d)
	}
}

func TestVec3Outer(t *testing.T) {
	v := Vec3{1, 2, 3}
	m := v.Outer(v)
	want := Matrix3{1, 2, 3, 2, 4, 6, 3, 6, 9}
	if m != want {
		t.Errorf("expected %v, got %v", want, m)
	}
}
