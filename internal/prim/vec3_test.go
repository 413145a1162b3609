package prim

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approxOpts = cmpopts.EquateApprox(1e-9, 0.0)

func TestNormalizedSimple(t *testing.T) {
	tests := []struct {
		v    Vec3
		want Vec3
	}{
		{v: Vec3{X: 2, Y: 0, Z: 0}, want: Vec3{X: 1, Y: 0, Z: 0}},
		{v: Vec3{X: 0, Y: -12, Z: 5}, want: Vec3{X: 0, Y: -12.0 / 13, Z: 5.0 / 13}},
		{v: Vec3{X: 3, Y: 4, Z: 0}, want: Vec3{X: 3.0 / 5.0, Y: 4.0 / 5.0, Z: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			got, err := tt.v.Normalized()
			if err != nil {
				t.Fatalf("Normalized() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got, approxOpts); diff != "" {
				t.Errorf("Normalized() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizedIsUnitLength(t *testing.T) {
	tests := []Vec3{
		{X: 2, Y: 0, Z: 0},
		{X: 12, Y: 14, Z: 23},
		{X: 0, Y: 83, Z: 0.32},
	}
	for _, v := range tests {
		t.Run(v.String(), func(t *testing.T) {
			normed, err := v.Normalized()
			if err != nil {
				t.Fatalf("Normalized() error = %v", err)
			}
			if diff := cmp.Diff(1.0, normed.Length(), approxOpts); diff != "" {
				t.Errorf("Length() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizedZeroFails(t *testing.T) {
	_, err := Vec3{}.Normalized()
	if err == nil {
		t.Fatal("Normalized() on zero vector: want error, got nil")
	}
	var numErr *NumericError
	if !errors.As(err, &numErr) {
		t.Errorf("Normalized() error = %v, want *NumericError", err)
	}
}

func TestCrossIsOrthogonalToBoth(t *testing.T) {
	tests := []struct{ a, b Vec3 }{
		{a: Vec3{1, 0, 0}, b: Vec3{0, 1, 0}},
		{a: Vec3{3, -2, 7}, b: Vec3{1, 5, -1}},
	}
	for _, tt := range tests {
		cross := tt.a.Cross(tt.b)
		if diff := cmp.Diff(0.0, cross.Dot(tt.a), approxOpts); diff != "" {
			t.Errorf("cross.Dot(a) mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(0.0, cross.Dot(tt.b), approxOpts); diff != "" {
			t.Errorf("cross.Dot(b) mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestDotIsCommutative(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-4, 5, 0.5}
	if diff := cmp.Diff(a.Dot(b), b.Dot(a), approxOpts); diff != "" {
		t.Errorf("Dot mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectOnUnitVectorIsScalarComponent(t *testing.T) {
	v := Vec3{X: 3, Y: 4, Z: 5}
	proj, err := v.ProjectOn(UnitY)
	if err != nil {
		t.Fatalf("ProjectOn() error = %v", err)
	}
	want := Vec3{X: 0, Y: 4, Z: 0}
	if diff := cmp.Diff(want, proj, approxOpts); diff != "" {
		t.Errorf("ProjectOn(UnitY) mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectOnScalesByInverseLength(t *testing.T) {
	v := Vec3{X: 1, Y: 1, Z: 0}
	other := Vec3{X: 2, Y: 0, Z: 0}
	proj, err := v.ProjectOn(other)
	if err != nil {
		t.Fatalf("ProjectOn() error = %v", err)
	}
	// dot(v, other) / |other| = 2 / 2 = 1, scaled onto other: (2, 0, 0).
	want := Vec3{X: 2, Y: 0, Z: 0}
	if diff := cmp.Diff(want, proj, approxOpts); diff != "" {
		t.Errorf("ProjectOn() mismatch (-want +got):\n%s", diff)
	}
}

func TestSubtractingProjectionOrthogonalizes(t *testing.T) {
	forward := Vec3{X: 0, Y: 0, Z: 1}
	up := Vec3{X: 0, Y: 1, Z: 1}
	proj, err := up.ProjectOn(forward)
	if err != nil {
		t.Fatalf("ProjectOn() error = %v", err)
	}
	orthogonalized := up.Sub(proj)
	if diff := cmp.Diff(0.0, orthogonalized.Dot(forward), approxOpts); diff != "" {
		t.Errorf("up - up.ProjectOn(forward) is not orthogonal to forward (-want +got):\n%s", diff)
	}
}

func TestProjectOnZeroFails(t *testing.T) {
	_, err := Vec3{X: 1, Y: 0, Z: 0}.ProjectOn(Vec3{})
	if err == nil {
		t.Fatal("ProjectOn(zero vector): want error, got nil")
	}
	var numErr *NumericError
	if !errors.As(err, &numErr) {
		t.Errorf("ProjectOn() error = %v, want *NumericError", err)
	}
}

func TestIsParallelTo(t *testing.T) {
	a := Vec3{1, 2, 3}
	if !a.IsParallelTo(a.Scale(-2)) {
		t.Error("a is not parallel to its own negative scale")
	}
	if a.IsParallelTo(Vec3{1, 0, 0}) {
		t.Error("a should not be parallel to an unrelated vector")
	}
}
