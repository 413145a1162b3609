package raycore

import (
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
)

// MaxReflections is the mirror-bounce depth the reference renderer uses:
// exactly one reflection bounce per primary ray.
const MaxReflections = 1

// Renderer iterates the pixel grid, drives the shader, and writes an RGBA8
// pixel buffer. It carries no state across renders. Build one with
// NewRenderer, which substitutes a no-op logger for a nil one; the zero
// value has a nil logger, which the render methods do not replace.
type Renderer struct {
	logger *zap.Logger
}

// NewRenderer builds a Renderer. A nil logger is replaced with a no-op
// logger: render diagnostics are never fatal and never required.
func NewRenderer(logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{logger: logger}
}

// RenderInto renders scene into buf, a caller-owned width*height*4 byte
// RGBA8 buffer in row-major, top-left-origin order. It runs
// single-threaded; see RenderIntoParallel for the pooled variant.
func (r *Renderer) RenderInto(scene *Scene, buf []byte, width, height int) error {
	if err := checkBuffer(buf, width, height); err != nil {
		return err
	}
	r.logger.Info("render start",
		zap.Int("width", width), zap.Int("height", height),
		zap.Int("max_reflections", MaxReflections), zap.Bool("parallel", false))

	plane := NewRenderPlane(scene.Camera, width, height, 3.0/float64(width))
	for y := 0; y < height; y++ {
		if err := renderRow(plane, scene, buf, width, y); err != nil {
			return err
		}
	}

	r.logger.Info("render done", zap.Int("width", width), zap.Int("height", height))
	return nil
}

// RenderIntoParallel renders scene into buf using a bounded worker pool,
// partitioning the image into horizontal row-bands (one task per
// runtime.NumCPU() band, clamped to height), the same chunk-and-submit
// pattern a voxel generator uses for a 3D volume. Each band writes only
// its own rows, so no synchronization is needed across bands; pixel
// output is identical to RenderInto because RayCast is a pure function
// of (ray, scene).
func (r *Renderer) RenderIntoParallel(scene *Scene, buf []byte, width, height int) error {
	if err := checkBuffer(buf, width, height); err != nil {
		return err
	}
	r.logger.Info("render start",
		zap.Int("width", width), zap.Int("height", height),
		zap.Int("max_reflections", MaxReflections), zap.Bool("parallel", true))

	plane := NewRenderPlane(scene.Camera, width, height, 3.0/float64(width))

	numBands := runtime.NumCPU()
	if numBands > height {
		numBands = height
	}
	if numBands < 1 {
		numBands = 1
	}
	bandHeight := (height + numBands - 1) / numBands

	pool := pond.NewPool(numBands)
	defer pool.StopAndWait()

	var wg sync.WaitGroup
	var firstErr error
	var mu sync.Mutex

	for band := 0; band < numBands; band++ {
		startY := band * bandHeight
		endY := startY + bandHeight
		if endY > height {
			endY = height
		}
		if startY >= endY {
			continue
		}
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			for y := startY; y < endY; y++ {
				if err := renderRow(plane, scene, buf, width, y); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
			}
		})
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	r.logger.Info("render done", zap.Int("width", width), zap.Int("height", height))
	return nil
}

// Render is a convenience wrapper allocating and returning an
// *image.RGBA. Its Pix slice is exactly the buffer RenderInto writes
// into, since image.RGBA already uses RGBA8 row-major layout.
func (r *Renderer) Render(scene *Scene, width, height int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := r.RenderInto(scene, img.Pix, width, height); err != nil {
		return nil, err
	}
	return img, nil
}

func renderRow(plane RenderPlane, scene *Scene, buf []byte, width, y int) error {
	for x := 0; x < width; x++ {
		ray, err := plane.RayAt(x, y)
		if err != nil {
			return fmt.Errorf("raycore: primary ray at (%d, %d): %w", x, y, err)
		}
		color := RayCast(ray, scene, MaxReflections)
		rr, g, b := color.ToByte()
		idx := 4 * (y*width + x)
		buf[idx+0] = rr
		buf[idx+1] = g
		buf[idx+2] = b
		buf[idx+3] = 255
	}
	return nil
}

func checkBuffer(buf []byte, width, height int) error {
	want := width * height * 4
	if len(buf) != want {
		return fmt.Errorf("raycore: pixel buffer has %d bytes, want %d (%dx%d RGBA8)", len(buf), want, width, height)
	}
	return nil
}
