// Package sketch draws hand-made texture on top of a precise vector layout.
//
// # Overview
//
// A [Renderer] wraps a [canvas.Surface] and a pseudo-random source. It has
// three groups of primitives:
//
//   - Jittered strokes: [Renderer.Line], [Renderer.Rect] and
//     [Renderer.Bubble] draw every shape twice with small random offsets and
//     two line widths, so the result reads as a pencil sketch.
//   - Paper texture: [Renderer.AgedBackground] fills the page with parchment,
//     then layers translucent stain blobs, glass rings and ink splatter.
//   - Ornaments: [Renderer.OrnateBorder] and [Renderer.InkBubble] draw the
//     curled double frame and the soft ink ovals of the vintage look.
//
// # Reproducible Randomness
//
// The random source is explicit. Pass a seed to get the same texture twice:
//
//	r := sketch.NewSeeded(surface, 42) // same seed = same wobble
//
// The renderer holds no other state. Pen state on the surface (colors, line
// width, dash) is set by every primitive and is not restored afterwards.
package sketch
