package raycore

import "github.com/go-raycore/raycore/internal/prim"

// ExampleEmptyScene is an empty scene with no lighting: every rendered
// pixel must be Black.
func ExampleEmptyScene() *Scene {
	camera := NewCamera(cameraLookingDownZ(), 90)
	return NewScene(camera, prim.Black, DirectedLight{})
}

// ExampleAmbientSphereScene places a fully-diffuse white sphere in front
// of the camera, lit only by white ambient light.
func ExampleAmbientSphereScene() *Scene {
	camera := NewCamera(cameraLookingDownZ(), 60)
	scene := NewScene(camera, prim.White, DirectedLight{})

	sphereTransform := NewTransform()
	sphereTransform.MoveTo(prim.Vec3{X: 0, Y: 0, Z: 10})
	scene.AddPrimitive(NewPrimitive(
		KindSphere,
		NewMaterial(1.0, prim.White, prim.Black),
		sphereTransform,
	))
	return scene
}

// ExampleDirectedLightScene lights the same sphere from above (and from the
// camera's side) with a directed light instead of ambient.
func ExampleDirectedLightScene() *Scene {
	camera := NewCamera(cameraLookingDownZ(), 60)
	directed, err := NewDirectedLight(prim.Vec3{X: 0, Y: -1, Z: 1}, prim.White.Scale(1.5))
	if err != nil {
		panic(err) // (0,-1,1) is never the zero vector
	}
	scene := NewScene(camera, prim.Black, directed)

	sphereTransform := NewTransform()
	sphereTransform.MoveTo(prim.Vec3{X: 0, Y: 0, Z: 10})
	scene.AddPrimitive(NewPrimitive(
		KindSphere,
		NewMaterial(1.0, prim.White, prim.Black),
		sphereTransform,
	))
	return scene
}

// ExampleMirrorScene places a mirror sphere (diffusion 0, white) beside an
// emissive red sphere, for testing one-bounce reflection. The light
// sphere's surface colour is red too: RayCast modulates emission by the
// surface colour, so a Black surface would hide its glow on every path. The
// light sphere sits off the camera's viewing axis (at x=4, not directly
// behind the mirror on the camera-to-mirror line): a specular reflection
// off a convex sphere can never bring a point directly behind it, along
// the incoming ray's own axis, back into view, so placing the light there
// would make every pixel's one-bounce reflection miss it.
func ExampleMirrorScene() *Scene {
	camera := NewCamera(cameraLookingDownZ(), 60)
	scene := NewScene(camera, prim.Black, DirectedLight{})

	mirrorTransform := NewTransform()
	mirrorTransform.MoveTo(prim.Vec3{X: 0, Y: 0, Z: 10})
	scene.AddPrimitive(NewPrimitive(
		KindSphere,
		NewMaterial(0.0, prim.White, prim.Black),
		mirrorTransform,
	))

	lightTransform := NewTransform()
	lightTransform.MoveTo(prim.Vec3{X: 4, Y: 0, Z: 8})
	scene.AddPrimitive(NewPrimitive(
		KindSphere,
		NewMaterial(1.0, prim.Red, prim.Red),
		lightTransform,
	))
	return scene
}

// ExampleCannedScene is a small multi-primitive scene (a diffuse red floor
// plane below a partially-reflective sphere, under ambient and directed
// light) exercised by the CLI and the parallel-render test.
func ExampleCannedScene() *Scene {
	camera := NewCamera(cameraLookingDownZ(), 70)
	directed, err := NewDirectedLight(prim.Vec3{X: 0, Y: -1, Z: 1}, prim.White)
	if err != nil {
		panic(err)
	}
	scene := NewScene(camera, prim.White.Scale(0.1), directed)

	sphereTransform := NewTransform()
	sphereTransform.MoveTo(prim.Vec3{X: 0, Y: 0, Z: 10})
	scene.AddPrimitive(NewPrimitive(
		KindSphere,
		NewMaterial(0.3, prim.White, prim.Black),
		sphereTransform,
	))

	wallTransform := NewTransform()
	wallTransform.MoveTo(prim.Vec3{X: 0, Y: -2, Z: 0})
	scene.AddPrimitive(NewPrimitive(
		KindPlane,
		NewMaterial(1.0, prim.Red, prim.Black),
		wallTransform,
	))

	return scene
}

func cameraLookingDownZ() Transform {
	return NewTransform()
}
