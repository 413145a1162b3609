package raycore

import (
	"math"

	"github.com/go-raycore/raycore/internal/prim"
)

// Ray is a cast ray: a source point and a unit direction. Color is a
// vestigial accumulator field; RayCast threads light through return
// values rather than through this field, so it only matters to callers
// that construct a Ray directly.
type Ray struct {
	Source    prim.Vec3
	Direction prim.Vec3
	Color     prim.Color
}

// NewRay builds a ray from source toward direction, normalizing direction.
func NewRay(source, direction prim.Vec3) (Ray, error) {
	unit, err := direction.Normalized()
	if err != nil {
		return Ray{}, err
	}
	return Ray{Source: source, Direction: unit}, nil
}

// RayHit is the result of intersecting a ray against a scene: the closest
// distance along the ray, the world-space hit point and normal, and the
// index of the hit primitive within Scene.Primitives. An index (rather
// than a pointer) is used because Scene.Primitives can grow via
// AddPrimitive; missHit.ObjectIndex is -1.
type RayHit struct {
	Distance    float64
	Point       prim.Vec3
	Normal      prim.Vec3
	ObjectIndex int
}

// missHit is the canonical "no intersection" result.
var missHit = RayHit{Distance: math.Inf(1), ObjectIndex: -1}

// HasHit reports whether the hit is a real intersection.
func (h RayHit) HasHit() bool {
	return !math.IsInf(h.Distance, 1) && h.ObjectIndex >= 0
}
