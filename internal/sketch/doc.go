// Package sketch provides the primitives shared by every animation sketch.
//
// The package defines the contract between the session core and the
// pluggable drawing routines:
//
//   - [Descriptor]: immutable metadata for one animation kind
//   - [Renderer]: per-animation drawing routine with private local state
//   - [Surface]: host-supplied drawing context (lines, rects, ellipses, text)
//   - [Registry]: ordered id -> (descriptor, renderer) mapping
//
// # Example
//
//	reg := sketch.NewRegistry()
//	_ = reg.Register(sketch.Descriptor{ID: "grid", Title: "Grid"}, grid)
//	desc, r, err := reg.Lookup("grid")
//
// Colours are expressed as [image/color.Color] values; [HSB] and [Lerp]
// build them from hue/saturation/brightness triples the way the sketches
// are authored.
package sketch
