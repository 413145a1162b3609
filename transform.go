package raycore

import "github.com/go-raycore/raycore/internal/prim"

// Transform is the position, per-axis scale, and rotation of a scene
// object or camera.
type Transform struct {
	Position prim.Vec3
	Scale    prim.Vec3
	Rotation prim.Matrix3
}

// NewTransform returns the default transform: origin, unit scale, identity
// rotation.
func NewTransform() Transform {
	return Transform{
		Position: prim.Vec3{},
		Scale:    prim.Vec3{X: 1, Y: 1, Z: 1},
		Rotation: prim.Identity3(),
	}
}

// Right returns the transform's local +X axis in world space.
func (t Transform) Right() prim.Vec3 { return t.Rotation.MulVec(prim.UnitX) }

// Left returns the transform's local -X axis in world space.
func (t Transform) Left() prim.Vec3 { return t.Right().Neg() }

// Up returns the transform's local +Y axis in world space.
func (t Transform) Up() prim.Vec3 { return t.Rotation.MulVec(prim.UnitY) }

// Down returns the transform's local -Y axis in world space.
func (t Transform) Down() prim.Vec3 { return t.Up().Neg() }

// Forward returns the transform's local +Z axis in world space.
func (t Transform) Forward() prim.Vec3 { return t.Rotation.MulVec(prim.UnitZ) }

// Backward returns the transform's local -Z axis in world space.
func (t Transform) Backward() prim.Vec3 { return t.Forward().Neg() }

// Move translates the transform by delta.
func (t *Transform) Move(delta prim.Vec3) {
	t.Position = t.Position.Add(delta)
}

// MoveTo sets the position outright.
func (t *Transform) MoveTo(position prim.Vec3) {
	t.Position = position
}

// ScaleBy multiplies the current scale component-wise.
func (t *Transform) ScaleBy(scale prim.Vec3) {
	t.Scale = prim.Vec3{
		X: t.Scale.X * scale.X,
		Y: t.Scale.Y * scale.Y,
		Z: t.Scale.Z * scale.Z,
	}
}

// ScaleTo assigns the scale outright.
func (t *Transform) ScaleTo(scale prim.Vec3) {
	t.Scale = scale
}

// Rotate left-multiplies the rotation by the rotation matrix for axis and
// angleDeg degrees.
func (t *Transform) Rotate(axis prim.Vec3, angleDeg float64) error {
	delta, err := prim.Rotation3(axis, angleDeg)
	if err != nil {
		return err
	}
	t.Rotation = delta.Mul(t.Rotation)
	return nil
}

// NewLookAtTransform builds a transform at position with its forward axis
// pointing along forward and its up axis as close to approxUp as an
// orthonormal basis allows. approxUp is Gram-Schmidt orthogonalized
// against forward (projected out and renormalized); if it is the zero
// vector or parallel to forward, a fallback axis is substituted before
// orthogonalizing, the same two-step fallback the original camera
// construction uses. Scale is left at the default (1, 1, 1).
func NewLookAtTransform(position, forward, approxUp prim.Vec3) (Transform, error) {
	fwd, err := forward.Normalized()
	if err != nil {
		return Transform{}, err
	}

	up := approxUp
	if up.IsZero() || up.IsParallelTo(fwd) {
		up = prim.UnitZ
		if up.IsParallelTo(fwd) {
			up = prim.UnitY
		}
	}

	proj, err := up.ProjectOn(fwd)
	if err != nil {
		return Transform{}, err
	}
	up, err = up.Sub(proj).Normalized()
	if err != nil {
		return Transform{}, err
	}

	right, err := up.Cross(fwd).Normalized()
	if err != nil {
		return Transform{}, err
	}

	return Transform{
		Position: position,
		Scale:    prim.Vec3{X: 1, Y: 1, Z: 1},
		Rotation: prim.FromBasis(right, up, fwd),
	}, nil
}
