package recording

import "testing"

func TestEnumWireNames(t *testing.T) {
	tests := []struct {
		v    enum
		want string
	}{
		{LineCapButt, "butt"},
		{LineCapRound, "round"},
		{LineCapSquare, "square"},
		{LineJoinMiter, "miter"},
		{LineJoinBevel, "bevel"},
		{LineJoinRound, "round"},
		{DirectionLTR, "ltr"},
		{DirectionRTL, "rtl"},
		{DirectionInherit, "inherit"},
		{TextAlignStart, "start"},
		{TextAlignEnd, "end"},
		{TextAlignCenter, "center"},
		{TextAlignLeft, "left"},
		{TextAlignRight, "right"},
		{TextBaselineAlphabetic, "alphabetic"},
		{TextBaselineTop, "top"},
		{TextBaselineHanging, "hanging"},
		{TextBaselineMiddle, "middle"},
		{TextBaselineIdeographic, "ideographic"},
		{TextBaselineBottom, "bottom"},
		{RepeatBoth, "repeat"},
		{RepeatX, "repeat-x"},
		{RepeatY, "repeat-y"},
		{NoRepeat, "no-repeat"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if !tt.v.IsValid() {
				t.Errorf("%q: IsValid() = false, want true", tt.want)
			}
		})
	}
}

func TestEnumInvalid(t *testing.T) {
	tests := []struct {
		v    enum
		want string
	}{
		{LineCap(9), "LineCap(9)"},
		{LineJoin(3), "LineJoin(3)"},
		{Direction(200), "Direction(200)"},
		{TextAlign(5), "TextAlign(5)"},
		{TextBaseline(6), "TextBaseline(6)"},
		{Repeat(4), "Repeat(4)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if tt.v.IsValid() {
				t.Error("IsValid() = true, want false")
			}
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRepeatZeroValue(t *testing.T) {
	var r Repeat
	if r != RepeatBoth {
		t.Errorf("zero Repeat = %v, want repeat", r)
	}
}
