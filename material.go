package raycore

import "github.com/go-raycore/raycore/internal/prim"

// MaterialKind distinguishes a hidden sentinel material from a real
// surface. Hidden materials cause the Intersector to report no hit.
type MaterialKind int

const (
	MaterialHidden MaterialKind = iota
	MaterialSolidColor
)

// Material is a primitive's surface response: how much incident light it
// diffusely re-emits, its base color, and what it emits on its own.
type Material struct {
	Kind      MaterialKind
	Diffusion float64
	Color     prim.Color
	Emissive  prim.Color
}

// NewMaterial builds a solid-color material, clamping diffusion into
// [0, 1] (no error is raised for an out-of-range value).
func NewMaterial(diffusion float64, color, emissive prim.Color) Material {
	clamped := diffusion
	if clamped < 0 {
		clamped = 0
	} else if clamped > 1 {
		clamped = 1
	}
	if clamped != diffusion {
		warnLogger().Warn("material diffusion out of range, clamped",
			warnField("requested", diffusion), warnField("clamped_to", clamped))
	}
	return Material{
		Kind:      MaterialSolidColor,
		Diffusion: clamped,
		Color:     color,
		Emissive:  emissive,
	}
}

// Reflectivity is the mirror-reflection weight, 1 - diffusion.
func (m Material) Reflectivity() float64 { return 1 - m.Diffusion }

// IsLightSource reports whether the material emits light on its own.
func (m Material) IsLightSource() bool { return !m.Emissive.IsBlack() }

// IsHidden reports whether the material is the Hidden sentinel.
func (m Material) IsHidden() bool { return m.Kind == MaterialHidden }
