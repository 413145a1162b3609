// Package raycore implements the rendering core of a small offline/
// interactive 3D renderer: camera ray generation, primitive intersection
// in object-local space via affine transforms, direct lighting with
// shadow feelers, emissive surfaces, and one-bounce mirror reflection.
//
// Scene construction, asset loading, window presentation, and image-file
// encoding are deliberately out of scope; see cmd/render for a thin
// external driver that picks a canned scene, renders it, and writes the
// result as a PNG file.
package raycore
