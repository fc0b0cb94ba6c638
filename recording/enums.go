package recording

import "strconv"

// Each enum below is a closed set. Its wire table lists the canonical
// canvas keyword for every value, and a compile-time check keeps the table
// and the value count in step.

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt ends lines flat at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound ends lines with a semicircle.
	LineCapRound
	// LineCapSquare ends lines with a half-width square.
	LineCapSquare

	numLineCaps
)

var lineCapNames = [...]string{
	LineCapButt:   "butt",
	LineCapRound:  "round",
	LineCapSquare: "square",
}

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// LineJoinMiter joins segments with a sharp corner.
	LineJoinMiter LineJoin = iota
	// LineJoinBevel joins segments with a flat corner.
	LineJoinBevel
	// LineJoinRound joins segments with a rounded corner.
	LineJoinRound

	numLineJoins
)

var lineJoinNames = [...]string{
	LineJoinMiter: "miter",
	LineJoinBevel: "bevel",
	LineJoinRound: "round",
}

// Direction specifies the text direction.
type Direction uint8

const (
	// DirectionLTR lays text out left to right.
	DirectionLTR Direction = iota
	// DirectionRTL lays text out right to left.
	DirectionRTL
	// DirectionInherit takes the direction from the canvas element.
	DirectionInherit

	numDirections
)

var directionNames = [...]string{
	DirectionLTR:     "ltr",
	DirectionRTL:     "rtl",
	DirectionInherit: "inherit",
}

// TextAlign specifies horizontal text alignment relative to the anchor.
type TextAlign uint8

const (
	TextAlignStart TextAlign = iota
	TextAlignEnd
	TextAlignCenter
	TextAlignLeft
	TextAlignRight

	numTextAligns
)

var textAlignNames = [...]string{
	TextAlignStart:  "start",
	TextAlignEnd:    "end",
	TextAlignCenter: "center",
	TextAlignLeft:   "left",
	TextAlignRight:  "right",
}

// TextBaseline specifies which text baseline sits on the anchor's y.
type TextBaseline uint8

const (
	TextBaselineAlphabetic TextBaseline = iota
	TextBaselineTop
	TextBaselineHanging
	TextBaselineMiddle
	TextBaselineIdeographic
	TextBaselineBottom

	numTextBaselines
)

var textBaselineNames = [...]string{
	TextBaselineAlphabetic:  "alphabetic",
	TextBaselineTop:         "top",
	TextBaselineHanging:     "hanging",
	TextBaselineMiddle:      "middle",
	TextBaselineIdeographic: "ideographic",
	TextBaselineBottom:      "bottom",
}

// Repeat specifies how a pattern tiles. The zero value repeats in both
// directions.
type Repeat uint8

const (
	// RepeatBoth tiles horizontally and vertically.
	RepeatBoth Repeat = iota
	// RepeatX tiles horizontally only.
	RepeatX
	// RepeatY tiles vertically only.
	RepeatY
	// NoRepeat draws the image once.
	NoRepeat

	numRepeats
)

var repeatNames = [...]string{
	RepeatBoth: "repeat",
	RepeatX:    "repeat-x",
	RepeatY:    "repeat-y",
	NoRepeat:   "no-repeat",
}

func _() {
	var x [1]struct{}
	_ = x[len(lineCapNames)-int(numLineCaps)]
	_ = x[len(lineJoinNames)-int(numLineJoins)]
	_ = x[len(directionNames)-int(numDirections)]
	_ = x[len(textAlignNames)-int(numTextAligns)]
	_ = x[len(textBaselineNames)-int(numTextBaselines)]
	_ = x[len(repeatNames)-int(numRepeats)]
}

func enumString(names []string, kind string, v uint8) string {
	if int(v) < len(names) {
		return names[v]
	}
	return kind + "(" + strconv.Itoa(int(v)) + ")"
}

// String returns the canvas keyword for the line cap.
func (c LineCap) String() string { return enumString(lineCapNames[:], "LineCap", uint8(c)) }

// IsValid reports whether c is one of the defined line caps.
func (c LineCap) IsValid() bool { return c < numLineCaps }

// String returns the canvas keyword for the line join.
func (j LineJoin) String() string { return enumString(lineJoinNames[:], "LineJoin", uint8(j)) }

// IsValid reports whether j is one of the defined line joins.
func (j LineJoin) IsValid() bool { return j < numLineJoins }

// String returns the canvas keyword for the direction.
func (d Direction) String() string { return enumString(directionNames[:], "Direction", uint8(d)) }

// IsValid reports whether d is one of the defined directions.
func (d Direction) IsValid() bool { return d < numDirections }

// String returns the canvas keyword for the alignment.
func (a TextAlign) String() string { return enumString(textAlignNames[:], "TextAlign", uint8(a)) }

// IsValid reports whether a is one of the defined alignments.
func (a TextAlign) IsValid() bool { return a < numTextAligns }

// String returns the canvas keyword for the baseline.
func (b TextBaseline) String() string {
	return enumString(textBaselineNames[:], "TextBaseline", uint8(b))
}

// IsValid reports whether b is one of the defined baselines.
func (b TextBaseline) IsValid() bool { return b < numTextBaselines }

// String returns the canvas keyword for the repeat mode.
func (r Repeat) String() string { return enumString(repeatNames[:], "Repeat", uint8(r)) }

// IsValid reports whether r is one of the defined repeat modes.
func (r Repeat) IsValid() bool { return r < numRepeats }

// enum is satisfied by every closed-set style value.
type enum interface {
	IsValid() bool
	String() string
}

// mustValid panics when v lies outside its closed set.
func mustValid(v enum) {
	if !v.IsValid() {
		panic("recording: invalid " + v.String())
	}
}
