// Package theme describes how a tasting sheet looks.
//
// Every sheet shares one layout (see package sheet). A [Theme] supplies
// what varies: the palette, whether boxes are pencil sketches or ornate
// ink frames, whether the page is plain or aged parchment, the handwriting
// font and the two font size tables, plus the few labels that differ
// between looks.
//
// Two themes are built in, [Handwritten] and [Vintage]. Custom themes are
// TOML files that usually extend one of them:
//
//	name = "rose"
//	base = "handwritten"
//
//	[palette]
//	title = "#b03a5b"
//	box = "#b03a5b"
//
// A [Decorator] draws the theme-dependent primitives with a
// [sketch.Renderer].
package theme
