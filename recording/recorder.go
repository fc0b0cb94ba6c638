package recording

import (
	"fmt"
	"math"

	"github.com/gogpu/fastcanvas"
)

// Recorder is the command log of one drawing pass. It mirrors the HTML
// canvas 2D context API, but every call appends one command instead of
// drawing. Drain encodes the log and empties it, after which the Recorder
// can record the next pass.
//
// Example:
//
//	rec := recording.NewRecorder()
//	rec.BeginPath()
//	rec.MoveTo(0, 0)
//	rec.LineTo(10, 10)
//	rec.ClosePath()
//	rec.Fill()
//	payload, err := rec.Drain()
//
// Style properties are not tracked here; the renderer keeps them. The
// Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
}

// RecorderOption configures a Recorder during creation.
type RecorderOption func(*recorderOptions)

type recorderOptions struct {
	capacity int
}

func defaultRecorderOptions() recorderOptions {
	return recorderOptions{capacity: 256}
}

// WithCapacity pre-allocates room for n commands.
func WithCapacity(n int) RecorderOption {
	return func(o *recorderOptions) {
		if n >= 0 {
			o.capacity = n
		}
	}
}

// NewRecorder creates an empty Recorder.
func NewRecorder(opts ...RecorderOption) *Recorder {
	o := defaultRecorderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Recorder{commands: make([]Command, 0, o.capacity)}
}

func (r *Recorder) record(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// Len returns the number of commands recorded since the last drain.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Commands returns a copy of the commands recorded since the last drain.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Drain encodes every command recorded since the previous drain and empties
// the log. An empty log drains to []. The log is empty afterwards even when
// a command cannot be encoded; the commands are then discarded and the
// error is returned. Inspect them with Commands before draining if needed.
func (r *Recorder) Drain() ([]byte, error) {
	n := len(r.commands)
	payload, err := Marshal(r.commands)
	r.Reset()
	if err != nil {
		fastcanvas.Logger().Warn("recording: drain discarded log", "commands", n, "error", err)
		return nil, err
	}

	fastcanvas.Logger().Debug("recording: drained", "commands", n, "bytes", len(payload))
	return payload, nil
}

// Reset discards every command recorded since the last drain.
func (r *Recorder) Reset() {
	clear(r.commands)
	r.commands = r.commands[:0]
}

// --------------------------------------------------------------------------
// Text and Style Properties
// --------------------------------------------------------------------------

// SetDirection sets the text direction.
func (r *Recorder) SetDirection(d Direction) {
	mustValid(d)
	r.record(DirectionCommand{Direction: d})
}

// SetFont sets the font as a CSS font shorthand, e.g. "16px sans-serif".
func (r *Recorder) SetFont(font string) {
	r.record(FontCommand{Font: font})
}

// SetTextAlign sets horizontal text alignment.
func (r *Recorder) SetTextAlign(a TextAlign) {
	mustValid(a)
	r.record(TextAlignCommand{Align: a})
}

// SetTextBaseline sets the text baseline.
func (r *Recorder) SetTextBaseline(b TextBaseline) {
	mustValid(b)
	r.record(TextBaselineCommand{Baseline: b})
}

// SetFillStyle sets the fill style to a CSS color. Setting "" finishes a
// gradient started with CreateLinearGradient or CreateRadialGradient and
// makes it the fill style.
func (r *Recorder) SetFillStyle(style string) {
	r.record(FillStyleCommand{Style: style})
}

// SetStrokeStyle sets the stroke style to a CSS color. Setting "" finishes
// a pending gradient and makes it the stroke style.
func (r *Recorder) SetStrokeStyle(style string) {
	r.record(StrokeStyleCommand{Style: style})
}

// SetLineCap sets the shape of line endpoints.
func (r *Recorder) SetLineCap(c LineCap) {
	mustValid(c)
	r.record(LineCapCommand{Cap: c})
}

// SetLineJoin sets the shape of line joins.
func (r *Recorder) SetLineJoin(j LineJoin) {
	mustValid(j)
	r.record(LineJoinCommand{Join: j})
}

// SetLineWidth sets the stroke width.
func (r *Recorder) SetLineWidth(width float64) {
	r.record(LineWidthCommand{Width: width})
}

// SetMiterLimit sets the miter limit.
func (r *Recorder) SetMiterLimit(limit float64) {
	r.record(MiterLimitCommand{Limit: limit})
}

// SetShadowBlur sets the shadow blur radius.
func (r *Recorder) SetShadowBlur(blur float64) {
	r.record(ShadowBlurCommand{Blur: blur})
}

// SetShadowColor sets the shadow color to a CSS color.
func (r *Recorder) SetShadowColor(color string) {
	r.record(ShadowColorCommand{Color: color})
}

// SetShadowOffsetX sets the horizontal shadow offset.
func (r *Recorder) SetShadowOffsetX(offset float64) {
	r.record(ShadowOffsetXCommand{Offset: offset})
}

// SetShadowOffsetY sets the vertical shadow offset.
func (r *Recorder) SetShadowOffsetY(offset float64) {
	r.record(ShadowOffsetYCommand{Offset: offset})
}

// --------------------------------------------------------------------------
// Rectangles
// --------------------------------------------------------------------------

// FillRect fills a rectangle.
func (r *Recorder) FillRect(x, y, width, height float64) {
	r.record(FillRectCommand{Rect: Rect{X: x, Y: y, Width: width, Height: height}})
}

// StrokeRect outlines a rectangle.
func (r *Recorder) StrokeRect(x, y, width, height float64) {
	r.record(StrokeRectCommand{Rect: Rect{X: x, Y: y, Width: width, Height: height}})
}

// ClearRect erases a rectangle.
func (r *Recorder) ClearRect(x, y, width, height float64) {
	r.record(ClearRectCommand{Rect: Rect{X: x, Y: y, Width: width, Height: height}})
}

// ClearPage erases a width x height area from the origin, usually at the
// start of a pass.
func (r *Recorder) ClearPage(width, height float64) {
	r.ClearRect(0, 0, width, height)
}

// --------------------------------------------------------------------------
// Paths
// --------------------------------------------------------------------------

// BeginPath starts a new path.
func (r *Recorder) BeginPath() {
	r.record(BeginPathCommand{})
}

// ClosePath closes the current subpath.
func (r *Recorder) ClosePath() {
	r.record(ClosePathCommand{})
}

// MoveTo starts a new subpath at (x, y).
func (r *Recorder) MoveTo(x, y float64) {
	r.record(MoveToCommand{X: x, Y: y})
}

// LineTo adds a line to (x, y).
func (r *Recorder) LineTo(x, y float64) {
	r.record(LineToCommand{X: x, Y: y})
}

// Fill fills the current path.
func (r *Recorder) Fill() {
	r.record(FillCommand{})
}

// Stroke strokes the current path.
func (r *Recorder) Stroke() {
	r.record(StrokeCommand{})
}

// Rect adds a rectangle subpath.
func (r *Recorder) Rect(x, y, width, height float64) {
	r.record(RectCommand{Rect: Rect{X: x, Y: y, Width: width, Height: height}})
}

// BezierCurveTo adds a cubic Bézier curve through control points (c1x, c1y)
// and (c2x, c2y) ending at (x, y).
func (r *Recorder) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.record(BezierCurveToCommand{C1X: c1x, C1Y: c1y, C2X: c2x, C2Y: c2y, X: x, Y: y})
}

// QuadraticCurveTo adds a quadratic Bézier curve through (cx, cy) ending
// at (x, y).
func (r *Recorder) QuadraticCurveTo(cx, cy, x, y float64) {
	r.record(QuadraticCurveToCommand{CX: cx, CY: cy, X: x, Y: y})
}

// Arc adds an arc centered at (x, y). Angles are in radians; 0 points
// right and π/2 points down. The arc runs clockwise unless
// counterClockwise is set.
func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64, counterClockwise bool) {
	r.record(ArcCommand{
		X:                x,
		Y:                y,
		Radius:           radius,
		StartAngle:       startAngle,
		EndAngle:         endAngle,
		CounterClockwise: counterClockwise,
	})
}

// ArcDegrees is Arc with angles in degrees; 0 points right and 90 down.
func (r *Recorder) ArcDegrees(x, y, radius, startAngle, endAngle float64, counterClockwise bool) {
	r.Arc(x, y, radius, Radians(startAngle), Radians(endAngle), counterClockwise)
}

// Circle adds a full circle centered at (x, y).
func (r *Recorder) Circle(x, y, radius float64) {
	r.Arc(x, y, radius, 0, 2*math.Pi, false)
}

// ArcTo adds an arc of the given radius tangent to the line from the
// current point to (x1, y1) and the line from (x1, y1) to (x2, y2).
func (r *Recorder) ArcTo(x1, y1, x2, y2, radius float64) {
	r.record(ArcToCommand{X1: x1, Y1: y1, X2: x2, Y2: y2, Radius: radius})
}

// IsPointInPath would report whether a point lies in the current path.
// Answering needs the renderer's path state, so it always fails with
// ErrNotImplemented and records nothing.
func (r *Recorder) IsPointInPath() (bool, error) {
	return false, fmt.Errorf("isPointInPath: %w", ErrNotImplemented)
}

// --------------------------------------------------------------------------
// Text
// --------------------------------------------------------------------------

// FillText draws text at (x, y) with no width limit.
func (r *Recorder) FillText(text string, x, y float64) {
	r.FillTextWidth(text, x, y, UnboundedWidth)
}

// FillTextWidth draws text at (x, y), compressed to fit maxWidth.
func (r *Recorder) FillTextWidth(text string, x, y, maxWidth float64) {
	r.record(FillTextCommand{Text: text, X: x, Y: y, MaxWidth: maxWidth})
}

// StrokeText outlines text at (x, y) with no width limit.
func (r *Recorder) StrokeText(text string, x, y float64) {
	r.StrokeTextWidth(text, x, y, UnboundedWidth)
}

// StrokeTextWidth outlines text at (x, y), compressed to fit maxWidth.
func (r *Recorder) StrokeTextWidth(text string, x, y, maxWidth float64) {
	r.record(StrokeTextCommand{Text: text, X: x, Y: y, MaxWidth: maxWidth})
}

// MeasureText asks the renderer to measure text in the current font.
// The measurement is reported on the renderer side only.
func (r *Recorder) MeasureText(text string) {
	r.record(MeasureTextCommand{Text: text})
}

// --------------------------------------------------------------------------
// Gradients and Patterns
// --------------------------------------------------------------------------

// CreateLinearGradient starts a linear gradient from (x0, y0) to (x1, y1).
// Follow it with AddColorStop calls, then SetFillStyle("") or
// SetStrokeStyle("") to apply it.
func (r *Recorder) CreateLinearGradient(x0, y0, x1, y1 float64) {
	r.record(CreateLinearGradientCommand{X0: x0, Y0: y0, X1: x1, Y1: y1})
}

// CreateRadialGradient starts a radial gradient between the circle at
// (x0, y0) with radius r0 and the circle at (x1, y1) with radius r1.
// Finish it as with CreateLinearGradient.
func (r *Recorder) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) {
	r.record(CreateRadialGradientCommand{X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1})
}

// AddColorStop adds a color stop to the pending gradient. The offset must
// lie in [0, 1]; otherwise ErrOutOfRange is returned and nothing is
// recorded.
func (r *Recorder) AddColorStop(offset float64, color string) error {
	if !(offset >= 0 && offset <= 1) {
		fastcanvas.Logger().Debug("recording: color stop rejected", "offset", offset)
		return fmt.Errorf("%w: color stop offset %v not in [0, 1]", ErrOutOfRange, offset)
	}
	r.record(AddColorStopCommand{Offset: offset, Color: color})
	return nil
}

// CreatePattern makes the image element with the given id the fill
// pattern, tiled according to repeat.
func (r *Recorder) CreatePattern(elementID string, repeat Repeat) {
	mustValid(repeat)
	r.record(CreatePatternCommand{ElementID: elementID, Repeat: repeat})
}

// --------------------------------------------------------------------------
// Transforms
// --------------------------------------------------------------------------

// Scale scales subsequent drawing by (sx, sy).
func (r *Recorder) Scale(sx, sy float64) {
	r.record(ScaleCommand{X: sx, Y: sy})
}

// Rotate rotates subsequent drawing by angle radians, clockwise.
func (r *Recorder) Rotate(angle float64) {
	r.record(RotateCommand{Angle: angle})
}

// RotateDegrees rotates subsequent drawing by angle degrees, clockwise.
func (r *Recorder) RotateDegrees(angle float64) {
	r.Rotate(Radians(angle))
}

// Translate moves the origin by (x, y).
func (r *Recorder) Translate(x, y float64) {
	r.record(TranslateCommand{X: x, Y: y})
}

// Transform multiplies the current transform by the matrix a..f
// (see Matrix for the layout).
func (r *Recorder) Transform(a, b, c, d, e, f float64) {
	r.record(TransformCommand{Matrix: Matrix{A: a, B: b, C: c, D: d, E: e, F: f}})
}

// TransformMatrix multiplies the current transform by m.
func (r *Recorder) TransformMatrix(m Matrix) {
	r.Transform(m.A, m.B, m.C, m.D, m.E, m.F)
}

// SetTransform replaces the current transform with the matrix a..f.
func (r *Recorder) SetTransform(a, b, c, d, e, f float64) {
	r.record(SetTransformCommand{Matrix: Matrix{A: a, B: b, C: c, D: d, E: e, F: f}})
}

// SetTransformMatrix replaces the current transform with m.
func (r *Recorder) SetTransformMatrix(m Matrix) {
	r.SetTransform(m.A, m.B, m.C, m.D, m.E, m.F)
}

// ResetTransform restores the identity transform.
func (r *Recorder) ResetTransform() {
	r.SetTransformMatrix(Identity())
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
