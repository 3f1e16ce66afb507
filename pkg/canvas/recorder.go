package canvas

import "unicode/utf8"

// OpKind identifies a recorded drawing call.
type OpKind string

const (
	OpStrokeColor  OpKind = "stroke-color"
	OpFillColor    OpKind = "fill-color"
	OpLineWidth    OpKind = "line-width"
	OpDash         OpKind = "dash"
	OpLine         OpKind = "line"
	OpRect         OpKind = "rect"
	OpRoundRect    OpKind = "round-rect"
	OpCircle       OpKind = "circle"
	OpPath         OpKind = "path"
	OpFont         OpKind = "font"
	OpText         OpKind = "text"
	OpTextCentered OpKind = "text-centered"
	OpSave         OpKind = "save"
	OpRestore      OpKind = "restore"
	OpTranslate    OpKind = "translate"
	OpRotate       OpKind = "rotate"
)

// Op is one recorded call. Args holds the numeric arguments in call order.
type Op struct {
	Kind  OpKind
	Args  []float64
	Mode  PaintMode
	Color Color
	Text  string
	Font  Font
	Path  *Path
}

// recorderCharWidth is the advance width per rune as a fraction of the font
// size. It only needs to be stable, not accurate.
const recorderCharWidth = 0.5

// Recorder is a Surface that records every call instead of drawing.
type Recorder struct {
	Width, Height float64
	Ops           []Op
}

// NewRecorder returns a recorder for a page of the given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Filter returns the recorded ops of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int { return len(r.Filter(kind)) }

// Reset discards all recorded ops.
func (r *Recorder) Reset() { r.Ops = nil }

func (r *Recorder) record(op Op) { r.Ops = append(r.Ops, op) }

func (r *Recorder) PageSize() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) SetStrokeColor(c Color) { r.record(Op{Kind: OpStrokeColor, Color: c}) }
func (r *Recorder) SetFillColor(c Color)   { r.record(Op{Kind: OpFillColor, Color: c}) }
func (r *Recorder) SetLineWidth(w float64) { r.record(Op{Kind: OpLineWidth, Args: []float64{w}}) }

func (r *Recorder) SetDash(pattern ...float64) {
	r.record(Op{Kind: OpDash, Args: append([]float64(nil), pattern...)})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.record(Op{Kind: OpLine, Args: []float64{x1, y1, x2, y2}})
}

func (r *Recorder) Rect(x, y, w, h float64, mode PaintMode) {
	r.record(Op{Kind: OpRect, Args: []float64{x, y, w, h}, Mode: mode})
}

func (r *Recorder) RoundRect(x, y, w, h, rad float64, mode PaintMode) {
	r.record(Op{Kind: OpRoundRect, Args: []float64{x, y, w, h, rad}, Mode: mode})
}

func (r *Recorder) Circle(x, y, rad float64, mode PaintMode) {
	r.record(Op{Kind: OpCircle, Args: []float64{x, y, rad}, Mode: mode})
}

func (r *Recorder) DrawPath(p *Path, mode PaintMode) {
	r.record(Op{Kind: OpPath, Path: p, Mode: mode})
}

func (r *Recorder) SetFont(f Font, size float64) {
	r.record(Op{Kind: OpFont, Font: f, Args: []float64{size}})
}

func (r *Recorder) Text(x, y float64, s string) {
	r.record(Op{Kind: OpText, Args: []float64{x, y}, Text: s})
}

func (r *Recorder) TextCentered(x, y float64, s string) {
	r.record(Op{Kind: OpTextCentered, Args: []float64{x, y}, Text: s})
}

func (r *Recorder) StringWidth(s string, _ Font, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size * recorderCharWidth
}

func (r *Recorder) SaveState()    { r.record(Op{Kind: OpSave}) }
func (r *Recorder) RestoreState() { r.record(Op{Kind: OpRestore}) }

func (r *Recorder) Translate(dx, dy float64) {
	r.record(Op{Kind: OpTranslate, Args: []float64{dx, dy}})
}

func (r *Recorder) Rotate(degrees float64) {
	r.record(Op{Kind: OpRotate, Args: []float64{degrees}})
}

// Ensure Recorder implements Surface.
var _ Surface = (*Recorder)(nil)
