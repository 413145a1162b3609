package raycore

import "github.com/go-raycore/raycore/internal/prim"

// DirectedLight is a light at infinity, characterized by the direction
// rays travel from it (not the direction toward it) and a color.
type DirectedLight struct {
	Direction prim.Vec3
	Color     prim.Color
}

// NewDirectedLight normalizes direction and stores color.
func NewDirectedLight(direction prim.Vec3, color prim.Color) (DirectedLight, error) {
	normalized, err := direction.Normalized()
	if err != nil {
		return DirectedLight{}, err
	}
	return DirectedLight{Direction: normalized, Color: color}, nil
}

// MaxPrimitives bounds how many primitives a scene can hold. AddPrimitive
// silently drops additions past this bound.
const MaxPrimitives = 16

// Scene owns the camera, the ambient and directed lighting, and the list
// of primitives to render. It is immutable for the duration of a render.
type Scene struct {
	Camera     Camera
	Ambient    prim.Color
	Directed   DirectedLight
	Primitives []Primitive
}

// NewScene builds a scene with no primitives yet.
func NewScene(camera Camera, ambient prim.Color, directed DirectedLight) *Scene {
	return &Scene{
		Camera:   camera,
		Ambient:  ambient,
		Directed: directed,
	}
}

// HasDirected reports whether the scene's directed light is non-black.
func (s *Scene) HasDirected() bool { return !s.Directed.Color.IsBlack() }

// AddPrimitive appends a primitive, unless the scene is already at
// MaxPrimitives, in which case it is dropped and a warning is logged.
// Reports whether it was added.
func (s *Scene) AddPrimitive(p Primitive) bool {
	if len(s.Primitives) >= MaxPrimitives {
		warnLogger().Warn("scene primitive capacity reached, dropping addition",
			zapIntField("max_primitives", MaxPrimitives))
		return false
	}
	s.Primitives = append(s.Primitives, p)
	return true
}
