// Command render drives the raycore renderer against a canned scene and
// writes the result to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	raycore "github.com/go-raycore/raycore"
	"go.uber.org/zap"
)

var (
	width    = flag.Int("width", 640, "output image width in pixels")
	height   = flag.Int("height", 480, "output image height in pixels")
	outFile  = flag.String("out", "", "png filename to write (required)")
	scene    = flag.String("scene", "canned", "canned scene to render: empty, ambient, directed, mirror, canned")
	parallel = flag.Bool("parallel", true, "render with the pooled parallel scheduler instead of sequentially")
	verbose  = flag.Bool("v", false, "enable structured render diagnostics")
)

func selectScene(name string) (*raycore.Scene, error) {
	switch name {
	case "empty":
		return raycore.ExampleEmptyScene(), nil
	case "ambient":
		return raycore.ExampleAmbientSphereScene(), nil
	case "directed":
		return raycore.ExampleDirectedLightScene(), nil
	case "mirror":
		return raycore.ExampleMirrorScene(), nil
	case "canned":
		return raycore.ExampleCannedScene(), nil
	default:
		return nil, fmt.Errorf("unknown -scene %q", name)
	}
}

func writeImage(buf []byte, width, height int, filename string) error {
	img := &image.RGBA{
		Pix:    buf,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func main() {
	flag.Parse()
	if len(*outFile) == 0 {
		log.Fatal("-out is required")
	}
	if *width <= 0 || *height <= 0 {
		log.Fatalf("-width and -height must be positive, got %dx%d", *width, *height)
	}

	var logger *zap.Logger
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("building logger: %v", err)
		}
		logger = l
		defer logger.Sync()
	}

	s, err := selectScene(*scene)
	if err != nil {
		log.Fatal(err)
	}

	renderer := raycore.NewRenderer(logger)
	buf := make([]byte, *width**height*4)

	if *parallel {
		err = renderer.RenderIntoParallel(s, buf, *width, *height)
	} else {
		err = renderer.RenderInto(s, buf, *width, *height)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := writeImage(buf, *width, *height, *outFile); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", *outFile)
}
