package recording

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// CSSColor formats c as a CSS color string the renderer accepts as a
// style: "#rrggbb" when opaque, "rgba(r, g, b, a)" otherwise. c must not
// be nil.
func CSSColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	alpha := math.Round(float64(n.A)/0xff*1000) / 1000
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", n.R, n.G, n.B,
		strconv.FormatFloat(alpha, 'f', -1, 64))
}

// ColorByName looks up an SVG 1.1 / CSS named color, ignoring case.
func ColorByName(name string) (color.RGBA, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// SetFillColor sets the fill style to c.
func (r *Recorder) SetFillColor(c color.Color) {
	r.SetFillStyle(CSSColor(c))
}

// SetStrokeColor sets the stroke style to c.
func (r *Recorder) SetStrokeColor(c color.Color) {
	r.SetStrokeStyle(CSSColor(c))
}

// AddColorStopColor is AddColorStop with a color.Color.
func (r *Recorder) AddColorStopColor(offset float64, c color.Color) error {
	return r.AddColorStop(offset, CSSColor(c))
}
