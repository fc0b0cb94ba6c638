package recording

// CommandType identifies the canvas operation or property a command records.
// Its String form is the name the renderer dispatches on.
type CommandType uint8

const (
	// Text and style properties
	CmdDirection     CommandType = iota // direction
	CmdFont                             // font
	CmdTextAlign                        // textAlign
	CmdTextBaseline                     // textBaseline
	CmdFillStyle                        // fillStyle
	CmdStrokeStyle                      // strokeStyle
	CmdLineCap                          // lineCap
	CmdLineJoin                         // lineJoin
	CmdLineWidth                        // lineWidth
	CmdMiterLimit                       // miterLimit
	CmdShadowBlur                       // shadowBlur
	CmdShadowColor                      // shadowColor
	CmdShadowOffsetX                    // shadowOffsetX
	CmdShadowOffsetY                    // shadowOffsetY

	// Rectangles
	CmdFillRect   // fillRect
	CmdStrokeRect // strokeRect
	CmdClearRect  // clearRect

	// Paths
	CmdBeginPath        // beginPath
	CmdClosePath        // closePath
	CmdMoveTo           // moveTo
	CmdLineTo           // lineTo
	CmdFill             // fill
	CmdRect             // rect
	CmdStroke           // stroke
	CmdBezierCurveTo    // bezierCurveTo
	CmdArc              // arc
	CmdArcTo            // arcTo
	CmdQuadraticCurveTo // quadraticCurveTo

	// Text
	CmdFillText    // fillText
	CmdMeasureText // measureText
	CmdStrokeText  // strokeText

	// Gradients and patterns
	CmdAddColorStop         // addColorStop
	CmdCreateLinearGradient // createLinearGradient
	CmdCreatePattern        // createPattern
	CmdCreateRadialGradient // createRadialGradient

	// Transforms
	CmdScale        // scale
	CmdRotate       // rotate
	CmdTranslate    // translate
	CmdTransform    // transform
	CmdSetTransform // setTransform

	numCommandTypes
)

// commandTypeNames maps CommandType values to their wire names.
var commandTypeNames = [...]string{
	CmdDirection:            "direction",
	CmdFont:                 "font",
	CmdTextAlign:            "textAlign",
	CmdTextBaseline:         "textBaseline",
	CmdFillStyle:            "fillStyle",
	CmdStrokeStyle:          "strokeStyle",
	CmdLineCap:              "lineCap",
	CmdLineJoin:             "lineJoin",
	CmdLineWidth:            "lineWidth",
	CmdMiterLimit:           "miterLimit",
	CmdShadowBlur:           "shadowBlur",
	CmdShadowColor:          "shadowColor",
	CmdShadowOffsetX:        "shadowOffsetX",
	CmdShadowOffsetY:        "shadowOffsetY",
	CmdFillRect:             "fillRect",
	CmdStrokeRect:           "strokeRect",
	CmdClearRect:            "clearRect",
	CmdBeginPath:            "beginPath",
	CmdClosePath:            "closePath",
	CmdMoveTo:               "moveTo",
	CmdLineTo:               "lineTo",
	CmdFill:                 "fill",
	CmdRect:                 "rect",
	CmdStroke:               "stroke",
	CmdBezierCurveTo:        "bezierCurveTo",
	CmdArc:                  "arc",
	CmdArcTo:                "arcTo",
	CmdQuadraticCurveTo:     "quadraticCurveTo",
	CmdFillText:             "fillText",
	CmdMeasureText:          "measureText",
	CmdStrokeText:           "strokeText",
	CmdAddColorStop:         "addColorStop",
	CmdCreateLinearGradient: "createLinearGradient",
	CmdCreatePattern:        "createPattern",
	CmdCreateRadialGradient: "createRadialGradient",
	CmdScale:                "scale",
	CmdRotate:               "rotate",
	CmdTranslate:            "translate",
	CmdTransform:            "transform",
	CmdSetTransform:         "setTransform",
}

// Every CommandType must have a wire name.
func _() {
	var x [1]struct{}
	_ = x[len(commandTypeNames)-int(numCommandTypes)]
}

// String returns the wire name of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by every recorded operation. Each concrete type
// carries its operands as named fields and flattens them to the two
// positional lists of the wire format on demand.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	// Operands returns the numeric and string operands in wire order.
	// Neither slice is nil; the arity is fixed per CommandType.
	Operands() (numbers []float64, strings []string)
}

func numbers(v ...float64) []float64 {
	if v == nil {
		return []float64{}
	}
	return v
}

func texts(v ...string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) operands() []float64 {
	return numbers(r.X, r.Y, r.Width, r.Height)
}

// --------------------------------------------------------------------------
// Style Commands
// --------------------------------------------------------------------------

// DirectionCommand sets the text direction.
type DirectionCommand struct {
	Direction Direction
}

// Type implements Command.
func (DirectionCommand) Type() CommandType { return CmdDirection }

// Operands implements Command.
func (c DirectionCommand) Operands() ([]float64, []string) {
	return numbers(), texts(c.Direction.String())
}

// FontCommand sets the CSS font shorthand used for text.
type FontCommand struct {
	Font string
}

// Type implements Command.
func (FontCommand) Type() CommandType { return CmdFont }

// Operands implements Command.
func (c FontCommand) Operands() ([]float64, []string) {
	return numbers(), texts(c.Font)
}

// TextAlignCommand sets horizontal text alignment.
type TextAlignCommand struct {
	Align TextAlign
}

// Type implements Command.
func (TextAlignCommand) Type() CommandType { return CmdTextAlign }

// Operands implements Command.
func (c TextAlignCommand) Operands() ([]float64, []string) {
	return numbers(), texts(c.Align.String())
}

// TextBaselineCommand sets the text baseline.
type TextBaselineCommand struct {
	Baseline TextBaseline
}

// Type implements Command.
func (TextBaselineCommand) Type() CommandType { return CmdTextBaseline }

// Operands implements Command.
func (c TextBaselineCommand) Operands() ([]float64, []string) {
	return numbers(), texts(c.Baseline.String())
}

// FillStyleCommand sets the fill style. An empty Style closes a gradient
// or pattern definition on the renderer side.
type FillStyleCommand struct {
	Style string
}

// Type implements Command.
func (FillStyleCommand) Type() CommandType { return CmdFillStyle }

// Operands implements Command.
func (c FillStyleCommand) Operands() ([]float64, []string) {
	return numbers(), texts(c.Style)
}

// StrokeStyleCommand sets the stroke style. An empty Style closes a
// gradient or pattern definition on the renderer side.
type StrokeStyleCommand struct {
	Style string
}

// Type implements Command.
func (StrokeStyleCommand) Type() CommandType { return CmdStrokeStyle }

// Operands implements Command.
func (c StrokeStyleCommand) Operands() ([]float64, []string) {
	return numbers(), texts(c.Style)
}

// LineCapCommand sets the shape of line endpoints.
type LineCapCommand struct {
	Cap LineCap
}

// Type implements Command.
func (LineCapCommand) Type() CommandType { return CmdLineCap }

// Operands implements Command.
func (c LineCapCommand) Operands() ([]float64, []string) {
	return numbers(), texts(c.Cap.String())
}

// LineJoinCommand sets the shape of line joins.
type LineJoinCommand struct {
	Join LineJoin
}

// Type implements Command.
func (LineJoinCommand) Type() CommandType { return CmdLineJoin }

// Operands implements Command.
func (c LineJoinCommand) Operands() ([]float64, []string) {
	return numbers(), texts(c.Join.String())
}

// LineWidthCommand sets the stroke width in pixels.
type LineWidthCommand struct {
	Width float64
}

// Type implements Command.
func (LineWidthCommand) Type() CommandType { return CmdLineWidth }

// Operands implements Command.
func (c LineWidthCommand) Operands() ([]float64, []string) {
	return numbers(c.Width), texts()
}

// MiterLimitCommand sets the miter limit ratio.
type MiterLimitCommand struct {
	Limit float64
}

// Type implements Command.
func (MiterLimitCommand) Type() CommandType { return CmdMiterLimit }

// Operands implements Command.
func (c MiterLimitCommand) Operands() ([]float64, []string) {
	return numbers(c.Limit), texts()
}

// ShadowBlurCommand sets the shadow blur radius.
type ShadowBlurCommand struct {
	Blur float64
}

// Type implements Command.
func (ShadowBlurCommand) Type() CommandType { return CmdShadowBlur }

// Operands implements Command.
func (c ShadowBlurCommand) Operands() ([]float64, []string) {
	return numbers(c.Blur), texts()
}

// ShadowColorCommand sets the shadow color.
type ShadowColorCommand struct {
	Color string
}

// Type implements Command.
func (ShadowColorCommand) Type() CommandType { return CmdShadowColor }

// Operands implements Command.
func (c ShadowColorCommand) Operands() ([]float64, []string) {
	return numbers(), texts(c.Color)
}

// ShadowOffsetXCommand sets the horizontal shadow offset.
type ShadowOffsetXCommand struct {
	Offset float64
}

// Type implements Command.
func (ShadowOffsetXCommand) Type() CommandType { return CmdShadowOffsetX }

// Operands implements Command.
func (c ShadowOffsetXCommand) Operands() ([]float64, []string) {
	return numbers(c.Offset), texts()
}

// ShadowOffsetYCommand sets the vertical shadow offset.
type ShadowOffsetYCommand struct {
	Offset float64
}

// Type implements Command.
func (ShadowOffsetYCommand) Type() CommandType { return CmdShadowOffsetY }

// Operands implements Command.
func (c ShadowOffsetYCommand) Operands() ([]float64, []string) {
	return numbers(c.Offset), texts()
}

// --------------------------------------------------------------------------
// Rectangle Commands
// --------------------------------------------------------------------------

// FillRectCommand fills a rectangle with the current fill style.
type FillRectCommand struct {
	Rect Rect
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// Operands implements Command.
func (c FillRectCommand) Operands() ([]float64, []string) {
	return c.Rect.operands(), texts()
}

// StrokeRectCommand outlines a rectangle with the current stroke style.
type StrokeRectCommand struct {
	Rect Rect
}

// Type implements Command.
func (StrokeRectCommand) Type() CommandType { return CmdStrokeRect }

// Operands implements Command.
func (c StrokeRectCommand) Operands() ([]float64, []string) {
	return c.Rect.operands(), texts()
}

// ClearRectCommand erases a rectangle to transparent.
type ClearRectCommand struct {
	Rect Rect
}

// Type implements Command.
func (ClearRectCommand) Type() CommandType { return CmdClearRect }

// Operands implements Command.
func (c ClearRectCommand) Operands() ([]float64, []string) {
	return c.Rect.operands(), texts()
}

// --------------------------------------------------------------------------
// Path Commands
// --------------------------------------------------------------------------

// BeginPathCommand starts a new path.
type BeginPathCommand struct{}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

// Operands implements Command.
func (BeginPathCommand) Operands() ([]float64, []string) { return numbers(), texts() }

// ClosePathCommand closes the current subpath.
type ClosePathCommand struct{}

// Type implements Command.
func (ClosePathCommand) Type() CommandType { return CmdClosePath }

// Operands implements Command.
func (ClosePathCommand) Operands() ([]float64, []string) { return numbers(), texts() }

// MoveToCommand starts a new subpath at a point.
type MoveToCommand struct {
	X, Y float64
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// Operands implements Command.
func (c MoveToCommand) Operands() ([]float64, []string) {
	return numbers(c.X, c.Y), texts()
}

// LineToCommand adds a straight segment to a point.
type LineToCommand struct {
	X, Y float64
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// Operands implements Command.
func (c LineToCommand) Operands() ([]float64, []string) {
	return numbers(c.X, c.Y), texts()
}

// FillCommand fills the current path.
type FillCommand struct{}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// Operands implements Command.
func (FillCommand) Operands() ([]float64, []string) { return numbers(), texts() }

// RectCommand adds a closed rectangle subpath.
type RectCommand struct {
	Rect Rect
}

// Type implements Command.
func (RectCommand) Type() CommandType { return CmdRect }

// Operands implements Command.
func (c RectCommand) Operands() ([]float64, []string) {
	return c.Rect.operands(), texts()
}

// StrokeCommand strokes the current path.
type StrokeCommand struct{}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// Operands implements Command.
func (StrokeCommand) Operands() ([]float64, []string) { return numbers(), texts() }

// BezierCurveToCommand adds a cubic Bézier segment.
type BezierCurveToCommand struct {
	C1X, C1Y float64
	C2X, C2Y float64
	X, Y     float64
}

// Type implements Command.
func (BezierCurveToCommand) Type() CommandType { return CmdBezierCurveTo }

// Operands implements Command.
func (c BezierCurveToCommand) Operands() ([]float64, []string) {
	return numbers(c.C1X, c.C1Y, c.C2X, c.C2Y, c.X, c.Y), texts()
}

// QuadraticCurveToCommand adds a quadratic Bézier segment.
type QuadraticCurveToCommand struct {
	CX, CY float64
	X, Y   float64
}

// Type implements Command.
func (QuadraticCurveToCommand) Type() CommandType { return CmdQuadraticCurveTo }

// Operands implements Command.
func (c QuadraticCurveToCommand) Operands() ([]float64, []string) {
	return numbers(c.CX, c.CY, c.X, c.Y), texts()
}

// ArcCommand adds a circular arc. Angles are in radians, 0 pointing along
// the positive x axis. The direction flag travels as the literal string
// "true" or "false".
type ArcCommand struct {
	X, Y             float64
	Radius           float64
	StartAngle       float64
	EndAngle         float64
	CounterClockwise bool
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// Operands implements Command.
func (c ArcCommand) Operands() ([]float64, []string) {
	ccw := "false"
	if c.CounterClockwise {
		ccw = "true"
	}
	return numbers(c.X, c.Y, c.Radius, c.StartAngle, c.EndAngle), texts(ccw)
}

// ArcToCommand adds an arc tangent to two lines.
type ArcToCommand struct {
	X1, Y1 float64
	X2, Y2 float64
	Radius float64
}

// Type implements Command.
func (ArcToCommand) Type() CommandType { return CmdArcTo }

// Operands implements Command.
func (c ArcToCommand) Operands() ([]float64, []string) {
	return numbers(c.X1, c.Y1, c.X2, c.Y2, c.Radius), texts()
}

// --------------------------------------------------------------------------
// Text Commands
// --------------------------------------------------------------------------

// UnboundedWidth is the MaxWidth sentinel meaning "no width limit".
const UnboundedWidth = -1

// FillTextCommand draws filled text with its baseline origin at (X, Y).
type FillTextCommand struct {
	Text     string
	X, Y     float64
	MaxWidth float64
}

// Type implements Command.
func (FillTextCommand) Type() CommandType { return CmdFillText }

// Operands implements Command.
func (c FillTextCommand) Operands() ([]float64, []string) {
	return numbers(c.X, c.Y, c.MaxWidth), texts(c.Text)
}

// StrokeTextCommand draws outlined text with its baseline origin at (X, Y).
type StrokeTextCommand struct {
	Text     string
	X, Y     float64
	MaxWidth float64
}

// Type implements Command.
func (StrokeTextCommand) Type() CommandType { return CmdStrokeText }

// Operands implements Command.
func (c StrokeTextCommand) Operands() ([]float64, []string) {
	return numbers(c.X, c.Y, c.MaxWidth), texts(c.Text)
}

// MeasureTextCommand asks the renderer to measure text with the current
// font. The result stays on the renderer side.
type MeasureTextCommand struct {
	Text string
}

// Type implements Command.
func (MeasureTextCommand) Type() CommandType { return CmdMeasureText }

// Operands implements Command.
func (c MeasureTextCommand) Operands() ([]float64, []string) {
	return numbers(), texts(c.Text)
}

// --------------------------------------------------------------------------
// Gradient and Pattern Commands
// --------------------------------------------------------------------------

// AddColorStopCommand adds a color stop to the gradient being defined.
// Offset is within [0, 1].
type AddColorStopCommand struct {
	Offset float64
	Color  string
}

// Type implements Command.
func (AddColorStopCommand) Type() CommandType { return CmdAddColorStop }

// Operands implements Command.
func (c AddColorStopCommand) Operands() ([]float64, []string) {
	return numbers(c.Offset), texts(c.Color)
}

// CreateLinearGradientCommand starts a linear gradient between two points.
type CreateLinearGradientCommand struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Type implements Command.
func (CreateLinearGradientCommand) Type() CommandType { return CmdCreateLinearGradient }

// Operands implements Command.
func (c CreateLinearGradientCommand) Operands() ([]float64, []string) {
	return numbers(c.X0, c.Y0, c.X1, c.Y1), texts()
}

// CreateRadialGradientCommand starts a radial gradient between two circles.
type CreateRadialGradientCommand struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
}

// Type implements Command.
func (CreateRadialGradientCommand) Type() CommandType { return CmdCreateRadialGradient }

// Operands implements Command.
func (c CreateRadialGradientCommand) Operands() ([]float64, []string) {
	return numbers(c.X0, c.Y0, c.R0, c.X1, c.Y1, c.R1), texts()
}

// CreatePatternCommand makes the image element ElementID the fill pattern.
type CreatePatternCommand struct {
	ElementID string
	Repeat    Repeat
}

// Type implements Command.
func (CreatePatternCommand) Type() CommandType { return CmdCreatePattern }

// Operands implements Command.
func (c CreatePatternCommand) Operands() ([]float64, []string) {
	return numbers(), texts(c.ElementID, c.Repeat.String())
}

// --------------------------------------------------------------------------
// Transform Commands
// --------------------------------------------------------------------------

// ScaleCommand scales the current transform.
type ScaleCommand struct {
	X, Y float64
}

// Type implements Command.
func (ScaleCommand) Type() CommandType { return CmdScale }

// Operands implements Command.
func (c ScaleCommand) Operands() ([]float64, []string) {
	return numbers(c.X, c.Y), texts()
}

// RotateCommand rotates the current transform by Angle radians.
type RotateCommand struct {
	Angle float64
}

// Type implements Command.
func (RotateCommand) Type() CommandType { return CmdRotate }

// Operands implements Command.
func (c RotateCommand) Operands() ([]float64, []string) {
	return numbers(c.Angle), texts()
}

// TranslateCommand translates the current transform.
type TranslateCommand struct {
	X, Y float64
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// Operands implements Command.
func (c TranslateCommand) Operands() ([]float64, []string) {
	return numbers(c.X, c.Y), texts()
}

// TransformCommand multiplies the current transform by Matrix.
type TransformCommand struct {
	Matrix Matrix
}

// Type implements Command.
func (TransformCommand) Type() CommandType { return CmdTransform }

// Operands implements Command.
func (c TransformCommand) Operands() ([]float64, []string) {
	return c.Matrix.operands(), texts()
}

// SetTransformCommand replaces the current transform with Matrix.
type SetTransformCommand struct {
	Matrix Matrix
}

// Type implements Command.
func (SetTransformCommand) Type() CommandType { return CmdSetTransform }

// Operands implements Command.
func (c SetTransformCommand) Operands() ([]float64, []string) {
	return c.Matrix.operands(), texts()
}
