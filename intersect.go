package raycore

import (
	"math"

	"github.com/go-raycore/raycore/internal/prim"
)

const hitEpsilon = 1e-6

// Intersect tests ray against a single primitive (identified by its index
// within the owning scene) in its local (object) space, returning the
// world-space hit. A miss is reported as the missHit sentinel
// (ObjectIndex -1, Distance +Inf) rather than an error: a degenerate
// transform (non-invertible scale or rotation) is simply treated as a
// miss.
func Intersect(ray Ray, index int, p Primitive) RayHit {
	if p.Kind == KindEmpty || p.Material.IsHidden() {
		return missHit
	}

	sInv, rInv, ok := localInverse(p.Transform)
	if !ok {
		return missHit
	}

	localOrigin := sInv.MulVec(rInv.MulVec(ray.Source.Sub(p.Transform.Position)))
	localDir := sInv.MulVec(rInv.MulVec(ray.Direction))

	var t float64
	var localNormal prim.Vec3
	var hit bool

	switch p.Kind {
	case KindSphere:
		t, localNormal, hit = intersectSphereLocal(localOrigin, localDir)
	case KindPlane:
		t, localNormal, hit = intersectPlaneLocal(localOrigin, localDir)
	case KindBox:
		// Reserved: box intersection is not implemented in this core.
		hit = false
	}
	if !hit {
		return missHit
	}

	localPoint := localOrigin.Add(localDir.Scale(t))

	rotScale := p.Transform.Rotation.Mul(prim.Scale3(p.Transform.Scale))
	worldPoint := p.Transform.Position.Add(rotScale.MulVec(localPoint))

	worldNormalRaw := p.Transform.Rotation.MulVec(sInv.MulVec(localNormal))
	worldNormal, err := worldNormalRaw.Normalized()
	if err != nil {
		return missHit
	}

	distance := ray.Source.Sub(worldPoint).Length()

	return RayHit{
		Distance:    distance,
		Point:       worldPoint,
		Normal:      worldNormal,
		ObjectIndex: index,
	}
}

// localInverse computes Sinv = diag(1/scale) and Rinv = rotation^-1 for a
// transform, reporting false if either is singular.
func localInverse(t Transform) (sInv, rInv prim.Matrix3, ok bool) {
	rInv, err := t.Rotation.Inverse()
	if err != nil {
		return prim.Matrix3{}, prim.Matrix3{}, false
	}
	if t.Scale.X == 0 || t.Scale.Y == 0 || t.Scale.Z == 0 {
		return prim.Matrix3{}, prim.Matrix3{}, false
	}
	sInv = prim.Scale3(prim.Vec3{X: 1 / t.Scale.X, Y: 1 / t.Scale.Y, Z: 1 / t.Scale.Z})
	return sInv, rInv, true
}

// intersectSphereLocal solves |o + t*d|^2 = 1 for the smallest t > epsilon.
func intersectSphereLocal(o, d prim.Vec3) (t float64, normal prim.Vec3, hit bool) {
	a := d.Dot(d)
	bHalf := o.Dot(d)
	c := o.Dot(o) - 1
	discHalf := bHalf*bHalf - a*c
	if discHalf < 0 {
		return 0, prim.Vec3{}, false
	}
	sqrtDiscHalf := math.Sqrt(discHalf)
	t0 := (-bHalf - sqrtDiscHalf) / a
	t1 := (-bHalf + sqrtDiscHalf) / a

	var tHit float64
	switch {
	case t0 > hitEpsilon:
		tHit = t0
	case t1 > hitEpsilon:
		tHit = t1
	default:
		return 0, prim.Vec3{}, false
	}

	hitPoint := o.Add(d.Scale(tHit))
	normal, err := hitPoint.Normalized()
	if err != nil {
		return 0, prim.Vec3{}, false
	}
	return tHit, normal, true
}

// intersectPlaneLocal intersects the local plane y = 0, outward normal
// +UnitY.
func intersectPlaneLocal(o, d prim.Vec3) (t float64, normal prim.Vec3, hit bool) {
	if math.Abs(d.Y) < hitEpsilon {
		return 0, prim.Vec3{}, false
	}
	t = -o.Y / d.Y
	if t < hitEpsilon {
		return 0, prim.Vec3{}, false
	}
	return t, prim.UnitY, true
}

// Closest returns the nearest hit among scene.Primitives, or a miss if the
// ray strikes nothing. Ties are resolved by scan order.
func Closest(scene *Scene, ray Ray) RayHit {
	best := missHit
	for i, p := range scene.Primitives {
		hit := Intersect(ray, i, p)
		if !hit.HasHit() {
			continue
		}
		if hit.Distance < best.Distance {
			best = hit
		}
	}
	return best
}
