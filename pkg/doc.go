// Package pkg provides the libraries behind winesheet, a generator of
// hand-sketched wine tasting sheets.
//
// # Overview
//
// Every sheet is drawn on an abstract [canvas] surface with a seeded
// [sketch] renderer, so the same layout code writes PDF and SVG and any
// sheet can be reproduced from its seed.
//
//  1. [canvas] - Drawing surface contract, recorder, PDF and SVG backends
//  2. [sketch] - Jittered strokes, paper texture, ornate borders
//  3. [theme] - Palettes, fonts and labels; built-in and TOML themes
//  4. [sheet] - The tasting sheet layout engine
//  5. [render] - Format dispatch and PNG conversion
//  6. [pipeline] - Theme resolution, font fallback, seeding and caching
//  7. [server] - HTTP render service
//
// # Data Flow
//
//	theme name or TOML file
//	         ↓
//	    [theme] package (resolve, load fonts)
//	         ↓
//	    [sheet] package (layout, drawn through [sketch])
//	         ↓
//	    [canvas] backend (PDF, SVG)
//	         ↓
//	    PDF/SVG/PNG output
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{Theme: "vintage"})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile(res.Filename("pdf"), res.Artifacts["pdf"], 0o644)
//
// [canvas]: github.com/matzehuels/winesheet/pkg/canvas
// [sketch]: github.com/matzehuels/winesheet/pkg/sketch
// [theme]: github.com/matzehuels/winesheet/pkg/theme
// [sheet]: github.com/matzehuels/winesheet/pkg/sheet
// [render]: github.com/matzehuels/winesheet/pkg/render
// [pipeline]: github.com/matzehuels/winesheet/pkg/pipeline
// [server]: github.com/matzehuels/winesheet/pkg/server
package pkg
