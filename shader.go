package raycore

import "github.com/go-raycore/raycore/internal/prim"

// RayCast computes the color seen along ray within scene, recursing up to
// maxReflections mirror bounces: direct lighting plus emission, modulated
// by the hit surface's diffuse response, with mirror reflection and
// ambient light added on top.
func RayCast(ray Ray, scene *Scene, maxReflections int) prim.Color {
	hit := Closest(scene, ray)
	if !hit.HasHit() {
		return backgroundColor(ray, scene)
	}

	object := scene.Primitives[hit.ObjectIndex]
	material := object.Material
	cos := abs(ray.Direction.Dot(hit.Normal))

	light := directLighting(hit, scene)
	light = light.Add(material.Emissive)
	light = material.Color.Mul(light).Scale(cos * material.Diffusion)

	if maxReflections > 0 {
		reflected := reflectDirection(ray.Direction, hit.Normal)
		reflectedRay := Ray{Source: hit.Point, Direction: reflected}
		bounced := RayCast(reflectedRay, scene, maxReflections-1)
		light = light.Add(bounced.Scale(material.Reflectivity()))
	}

	if !scene.Ambient.IsBlack() {
		light = light.Add(scene.Ambient.Mul(material.Color))
	}

	return light
}

// backgroundColor handles a primary/reflection ray that hit nothing: the
// scene's directed light contributes its color scaled by how directly the
// ray points toward it, or Black if there is no directed light or the ray
// points away from it.
func backgroundColor(ray Ray, scene *Scene) prim.Color {
	if !scene.HasDirected() {
		return prim.Black
	}
	c := ray.Direction.Dot(scene.Directed.Direction.Neg())
	if c < 0 {
		return prim.Black
	}
	return scene.Directed.Color.Scale(c)
}

// reflectDirection mirrors d about n: r = -d + 2*(d - dp*n).
func reflectDirection(d, n prim.Vec3) prim.Vec3 {
	dp := d.Dot(n)
	perp := d.Sub(n.Scale(dp))
	return d.Neg().Add(perp.Scale(2))
}

// directLighting sums the contribution of every emissive primitive and
// the scene's directed light, each gated by a shadow feeler ray.
func directLighting(hit RayHit, scene *Scene) prim.Color {
	light := prim.Black
	n := hit.Normal

	for i, p := range scene.Primitives {
		if !p.IsLightSource() || i == hit.ObjectIndex {
			continue
		}
		toLight := p.Transform.Position.Sub(hit.Point)
		dir, err := toLight.Normalized()
		if err != nil {
			continue
		}
		shadowRay := Ray{Source: hit.Point, Direction: dir}
		shadowHit := Closest(scene, shadowRay)
		if shadowHit.HasHit() && shadowHit.ObjectIndex == i {
			light = light.Add(p.Material.Emissive.Scale(abs(dir.Dot(n))))
		}
	}

	if scene.HasDirected() {
		dir := scene.Directed.Direction.Neg()
		shadowRay := Ray{Source: hit.Point, Direction: dir}
		shadowHit := Closest(scene, shadowRay)
		if !shadowHit.HasHit() {
			light = light.Add(scene.Directed.Color.Scale(abs(dir.Dot(n))))
		}
	}

	return light
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
