package raycore

import (
	"math"

	"github.com/go-raycore/raycore/internal/prim"
)

// DefaultFovDeg is the fallback full field of view used when a caller
// supplies an out-of-range value.
const DefaultFovDeg = 120.0

// Camera is a transform plus a field of view, generating primary ray
// directions via DirectionAt.
type Camera struct {
	Transform Transform
	// Fov is the full field of view, in radians, in the open interval
	// (0, pi).
	Fov float64
}

// NewCamera builds a camera. fovDeg is the full field of view in degrees;
// values outside the open interval (0, 180) fall back to DefaultFovDeg.
func NewCamera(transform Transform, fovDeg float64) Camera {
	clamped := fovDeg
	if clamped <= 0 || clamped >= 180 {
		warnLogger().Warn("camera fov out of range, using default",
			warnField("requested_deg", fovDeg), warnField("default_deg", DefaultFovDeg))
		clamped = DefaultFovDeg
	}
	return Camera{
		Transform: transform,
		Fov:       clamped / 180 * math.Pi,
	}
}

// NewCameraLookingAt builds a camera at position, facing forward with up
// as close to approxUp as an orthonormal basis allows (see
// NewLookAtTransform). fovDeg follows NewCamera's clamping rules.
func NewCameraLookingAt(position, forward, approxUp prim.Vec3, fovDeg float64) (Camera, error) {
	transform, err := NewLookAtTransform(position, forward, approxUp)
	if err != nil {
		return Camera{}, err
	}
	return NewCamera(transform, fovDeg), nil
}

// FovDeg returns the camera's field of view in degrees.
func (c Camera) FovDeg() float64 { return c.Fov / math.Pi * 180 }

// DirectionAt returns the normalized primary-ray direction for normalized
// screen offsets (u, v) in camera space.
func (c Camera) DirectionAt(u, v float64) (prim.Vec3, error) {
	cot := math.Cos(c.Fov/2) / math.Sin(c.Fov/2)
	dir := c.Transform.Forward().Scale(cot).
		Add(c.Transform.Right().Scale(u)).
		Add(c.Transform.Up().Scale(v))
	return dir.Normalized()
}
