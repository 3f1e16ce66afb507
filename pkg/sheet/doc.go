// Package sheet lays out a wine tasting sheet.
//
// The layout is fixed: header fields across the top left, an aroma and
// flavor reference box in the top right, then Visual, Smell and Taste
// sections down the left with a notes box beside the last two, and a
// Verdict block at the bottom. Each section carries its title rotated in
// the left margin.
//
// [Draw] walks the layout top to bottom. Every row helper takes the y of
// its baseline and returns the y for the next row, so the page is a single
// pass of coordinate arithmetic. Theme-dependent drawing (background,
// frames, bubbles and writing lines) goes through a [theme.Decorator];
// everything else is plain text and is identical for every seed.
package sheet
