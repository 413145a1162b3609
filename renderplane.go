package raycore

// RenderPlane is the ephemeral helper that maps pixel coordinates to
// primary rays for a given camera and output size. pixelSize is normally
// 3/width, with the parallax offset folded into the ray origin.
type RenderPlane struct {
	Camera    Camera
	Width     int
	Height    int
	PixelSize float64
}

// NewRenderPlane builds a render plane over a width x height output.
func NewRenderPlane(camera Camera, width, height int, pixelSize float64) RenderPlane {
	return RenderPlane{Camera: camera, Width: width, Height: height, PixelSize: pixelSize}
}

// RayAt returns the primary ray for pixel (x, y), 0 <= x < Width,
// 0 <= y < Height. Image Y is flipped so screen-up corresponds to
// +camera-up.
func (p RenderPlane) RayAt(x, y int) (Ray, error) {
	midX := p.Width / 2
	midY := p.Height / 2
	maxDim := p.Width
	if p.Height > maxDim {
		maxDim = p.Height
	}
	maxOffset := maxDim / 2

	dx := x - midX
	dy := midY - y

	direction, err := p.Camera.DirectionAt(
		float64(dx)/float64(maxOffset),
		float64(dy)/float64(maxOffset),
	)
	if err != nil {
		return Ray{}, err
	}

	origin := p.Camera.Transform.Position.Add(
		p.Camera.Transform.Right().Scale(float64(dx)).
			Add(p.Camera.Transform.Up().Scale(float64(dy))).
			Scale(p.PixelSize),
	)

	return Ray{Source: origin, Direction: direction}, nil
}
