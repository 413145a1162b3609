package raycore

import (
	"testing"

	"github.com/go-raycore/raycore/internal/prim"
)

func TestAddPrimitiveRespectsCapacity(t *testing.T) {
	scene := NewScene(NewCamera(NewTransform(), 90), prim.Black, DirectedLight{})
	for i := 0; i < MaxPrimitives; i++ {
		if !scene.AddPrimitive(NewPrimitive(KindSphere, NewMaterial(1, prim.White, prim.Black), NewTransform())) {
			t.Fatalf("AddPrimitive(%d) = false, want true", i)
		}
	}
	if scene.AddPrimitive(NewPrimitive(KindSphere, NewMaterial(1, prim.White, prim.Black), NewTransform())) {
		t.Error("AddPrimitive past MaxPrimitives = true, want false")
	}
	if len(scene.Primitives) != MaxPrimitives {
		t.Errorf("len(Primitives) = %d, want %d", len(scene.Primitives), MaxPrimitives)
	}
}

func TestHasDirected(t *testing.T) {
	scene := NewScene(NewCamera(NewTransform(), 90), prim.Black, DirectedLight{})
	if scene.HasDirected() {
		t.Error("zero-value DirectedLight should report HasDirected() == false")
	}

	lit, err := NewDirectedLight(prim.Vec3{X: 0, Y: -1, Z: 0}, prim.White)
	if err != nil {
		t.Fatalf("NewDirectedLight() error = %v", err)
	}
	scene.Directed = lit
	if !scene.HasDirected() {
		t.Error("scene with White directed light should report HasDirected() == true")
	}
}

func TestNewDirectedLightNormalizesDirection(t *testing.T) {
	light, err := NewDirectedLight(prim.Vec3{X: 0, Y: 0, Z: 5}, prim.White)
	if err != nil {
		t.Fatalf("NewDirectedLight() error = %v", err)
	}
	if got, want := light.Direction.Length(), 1.0; abs(got-want) > 1e-9 {
		t.Errorf("Direction.Length() = %v, want %v", got, want)
	}
}

func TestNewDirectedLightZeroDirectionFails(t *testing.T) {
	if _, err := NewDirectedLight(prim.Vec3{}, prim.White); err == nil {
		t.Error("NewDirectedLight with zero direction: want error, got nil")
	}
}
