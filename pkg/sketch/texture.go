package sketch

import (
	"math/rand/v2"

	"github.com/matzehuels/winesheet/pkg/canvas"
)

// Paper holds the colors of an aged page.
type Paper struct {
	Base       canvas.Color // parchment fill
	StainDark  canvas.Color // translucent water stain
	StainLight canvas.Color // translucent highlight
	Ring       canvas.Color // glass ring stroke
	Splatter   canvas.Color // ink dots
}

// TextureOptions configures [Renderer.AgedBackground].
type TextureOptions struct {
	// Blobs is the number of stain blobs. Default: 60.
	Blobs int `toml:"blobs"`
	// MinBlobSize and MaxBlobSize bound the blob reach in points. Default: 50-200.
	MinBlobSize int `toml:"min_blob_size"`
	MaxBlobSize int `toml:"max_blob_size"`

	// Rings is the number of glass rings. Default: 3.
	Rings int `toml:"rings"`
	// MinRing and MaxRing bound the ring radius. Default: 20-60.
	MinRing int `toml:"min_ring"`
	MaxRing int `toml:"max_ring"`
	// RingWidth is the ring stroke width. Default: 2.
	RingWidth float64 `toml:"ring_width"`

	// Splatters is the number of ink dots. Default: 40.
	Splatters int `toml:"splatters"`
	// MinSplatter and MaxSplatter bound the dot radius. Default: 0.5-2.5.
	MinSplatter float64 `toml:"min_splatter"`
	MaxSplatter float64 `toml:"max_splatter"`
}

var defaultTexture = TextureOptions{
	Blobs:       60,
	MinBlobSize: 50,
	MaxBlobSize: 200,
	Rings:       3,
	MinRing:     20,
	MaxRing:     60,
	RingWidth:   2,
	Splatters:   40,
	MinSplatter: 0.5,
	MaxSplatter: 2.5,
}

// DefaultTexture returns the default texture options.
func DefaultTexture() TextureOptions { return defaultTexture }

// BlobSegments is the number of cubic curves in a stain blob.
const BlobSegments = 5

// AgedBackground paints an aged paper texture over the whole page. It fills
// the page first, so it must run before anything else is drawn on it.
// Pass nil for opts to use defaults.
func (r *Renderer) AgedBackground(width, height float64, p Paper, opts *TextureOptions) {
	if opts == nil {
		opts = &defaultTexture
	}
	s := r.s

	s.SetFillColor(p.Base)
	s.Rect(0, 0, width, height, canvas.Fill)

	for range opts.Blobs {
		size := intBetween(r.rng, opts.MinBlobSize, opts.MaxBlobSize)
		center := r.randomPoint(width, height)
		if r.rng.Float64() > 0.5 {
			s.SetFillColor(p.StainDark)
		} else {
			s.SetFillColor(p.StainLight)
		}
		s.DrawPath(Blob(r.rng, center, size), canvas.Fill)
	}

	s.SetDash()
	s.SetLineWidth(opts.RingWidth)
	s.SetStrokeColor(p.Ring)
	for range opts.Rings {
		c := r.randomPoint(width, height)
		s.Circle(c.X, c.Y, float64(intBetween(r.rng, opts.MinRing, opts.MaxRing)), canvas.Stroke)
	}

	s.SetFillColor(p.Splatter)
	for range opts.Splatters {
		c := r.randomPoint(width, height)
		s.Circle(c.X, c.Y, floatBetween(r.rng, opts.MinSplatter, opts.MaxSplatter), canvas.Fill)
	}
}

// randomPoint picks integer coordinates within the page.
func (r *Renderer) randomPoint(width, height float64) canvas.Point {
	return canvas.Point{
		X: float64(intBetween(r.rng, 0, int(width))),
		Y: float64(intBetween(r.rng, 0, int(height))),
	}
}

// Blob builds a closed stain shape: BlobSegments cubic curves starting at
// center whose control and end points are center moved by integer offsets
// in [-size, size] on each axis.
func Blob(rng *rand.Rand, center canvas.Point, size int) *canvas.Path {
	offset := func() float64 { return float64(intBetween(rng, -size, size)) }
	p := canvas.NewPath().MoveTo(center.X, center.Y)
	for range BlobSegments {
		p.CurveTo(
			center.X+offset(), center.Y+offset(),
			center.X+offset(), center.Y+offset(),
			center.X+offset(), center.Y+offset(),
		)
	}
	return p.Close()
}
