package main

import (
	"image/color"
	"math"

	"github.com/gogpu/fastcanvas/recording"
)

// drawScene records one frame. frame advances the animated parts.
func drawScene(rec *recording.Recorder, cfg Config, frame int) error {
	w, h := float64(cfg.Width), float64(cfg.Height)

	rec.ResetTransform()
	rec.ClearPage(w, h)

	bg, ok := recording.ColorByName(cfg.Background)
	if !ok {
		bg = color.RGBA{A: 0xff}
	}
	rec.CreateLinearGradient(0, 0, 0, h)
	if err := rec.AddColorStopColor(0, bg); err != nil {
		return err
	}
	if err := rec.AddColorStop(1, "black"); err != nil {
		return err
	}
	rec.SetFillStyle("")
	rec.FillRect(0, 0, w, h)

	drawShapes(rec)
	drawSpinner(rec, w*0.75, h*0.3, float64(frame))
	drawWave(rec, w, h*0.7, float64(frame))
	drawPattern(rec, w, h)
	drawTitle(rec, cfg.Title, w)
	return nil
}

func drawShapes(rec *recording.Recorder) {
	rec.SetShadowColor(recording.CSSColor(color.NRGBA{A: 0x80}))
	rec.SetShadowBlur(8)
	rec.SetShadowOffsetX(4)
	rec.SetShadowOffsetY(4)

	circles := []struct {
		x, y float64
		name string
	}{
		{150, 150, "tomato"},
		{200, 150, "limegreen"},
		{175, 200, "dodgerblue"},
	}
	for _, c := range circles {
		col, _ := recording.ColorByName(c.name)
		rec.SetFillColor(color.NRGBA{R: col.R, G: col.G, B: col.B, A: 0xcc})
		rec.BeginPath()
		rec.Circle(c.x, c.y, 60)
		rec.Fill()
	}

	rec.SetShadowBlur(0)
	rec.SetShadowOffsetX(0)
	rec.SetShadowOffsetY(0)

	gold, _ := recording.ColorByName("gold")
	rec.SetFillColor(gold)
	rec.FillRect(350, 100, 120, 80)
	rec.SetStrokeStyle("white")
	rec.SetLineWidth(4)
	rec.SetLineJoin(recording.LineJoinRound)
	rec.StrokeRect(350, 100, 120, 80)

	// Rounded corner via arcTo.
	rec.BeginPath()
	rec.MoveTo(350, 220)
	rec.ArcTo(470, 220, 470, 300, 24)
	rec.LineTo(470, 300)
	rec.Stroke()
}

// spinnerMatrix places the spinner at (cx, cy), turning and wobbling
// with the frame number.
func spinnerMatrix(cx, cy, frame float64) recording.Matrix {
	return recording.Translate(cx, cy).
		Multiply(recording.Rotate(frame * math.Pi / 12)).
		Multiply(recording.Shear(0.25*math.Sin(frame/3), 0))
}

func drawSpinner(rec *recording.Recorder, cx, cy, frame float64) {
	m := spinnerMatrix(cx, cy, frame)
	if !m.IsIdentity() {
		rec.TransformMatrix(m)
	}
	rec.SetLineCap(recording.LineCapRound)
	rec.SetLineWidth(6)
	// Eight spokes of 45 degrees make a full turn, leaving m in place.
	for i := 0; i < 8; i++ {
		alpha := uint8(255 - i*28)
		rec.SetStrokeColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: alpha})
		rec.BeginPath()
		rec.MoveTo(0, 20)
		rec.LineTo(0, 40)
		rec.Stroke()
		rec.RotateDegrees(45)
	}

	switch {
	case m.IsIdentity():
	case m.Determinant() == 0:
		rec.ResetTransform()
	default:
		rec.TransformMatrix(m.Invert())
	}

	// Marker on the tip of the first spoke, drawn in page space.
	tipX, tipY := m.TransformPoint(0, 40)
	rec.SetFillStyle("orange")
	rec.BeginPath()
	rec.Circle(tipX, tipY, 4)
	rec.Fill()
}

func drawWave(rec *recording.Recorder, w, baseline, frame float64) {
	rec.SetStrokeStyle("aqua")
	rec.SetLineWidth(3)
	rec.SetLineCap(recording.LineCapButt)
	rec.BeginPath()
	rec.MoveTo(0, baseline)
	const segments = 8
	step := w / segments
	for i := 0; i < segments; i++ {
		x := float64(i) * step
		amp := 40 * math.Sin(frame/4+float64(i))
		rec.BezierCurveTo(x+step/3, baseline-amp, x+2*step/3, baseline+amp, x+step, baseline)
	}
	rec.Stroke()

	rec.CreateRadialGradient(w/2, baseline, 0, w/2, baseline, 80)
	_ = rec.AddColorStop(0, "rgba(255, 255, 255, 0.6)")
	_ = rec.AddColorStop(1, "rgba(255, 255, 255, 0)")
	rec.SetFillStyle("")
	rec.BeginPath()
	rec.MoveTo(w/2-80, baseline)
	rec.QuadraticCurveTo(w/2, baseline-120, w/2+80, baseline)
	rec.ClosePath()
	rec.Fill()
}

func drawPattern(rec *recording.Recorder, w, h float64) {
	rec.CreatePattern("tile", recording.RepeatX)
	rec.BeginPath()
	rec.Rect(0, h-40, w, 40)
	rec.Fill()
}

func drawTitle(rec *recording.Recorder, title string, w float64) {
	rec.SetDirectionFor(title)
	rec.SetFont("bold 36px sans-serif")
	rec.SetTextAlign(recording.TextAlignCenter)
	rec.SetTextBaseline(recording.TextBaselineTop)
	rec.SetFillStyle("white")
	rec.FillTextWidth(title, w/2, 20, w-40)
	rec.SetStrokeStyle("black")
	rec.SetLineWidth(1)
	rec.StrokeText(title, w/2, 20)
	rec.MeasureText(title)
}
