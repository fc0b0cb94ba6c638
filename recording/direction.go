package recording

import "golang.org/x/text/unicode/bidi"

// DirectionOf returns the paragraph direction of text as the Unicode
// bidirectional algorithm determines it (rule P2): the class of the first
// strong character decides. Text with no strong character, including empty
// text, yields DirectionInherit.
func DirectionOf(text string) Direction {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
	}
	return DirectionInherit
}

// SetDirectionFor sets the text direction to the one detected for text.
func (r *Recorder) SetDirectionFor(text string) {
	r.SetDirection(DirectionOf(text))
}
