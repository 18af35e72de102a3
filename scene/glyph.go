package scene

import (
	"fmt"
	"unicode"

	"golang.org/x/text/width"
)

// Default glyphs of a new area.
const (
	DefaultEmptyChar = '.'
	DefaultFillChar  = '@'
)

// ValidGlyph reports whether r can serve as an area's fill or empty glyph:
// it must be printable and occupy exactly one terminal column.
func ValidGlyph(r rune) bool {
	if r == unicode.ReplacementChar || !unicode.IsPrint(r) {
		return false
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return false
	}
	return !unicode.Is(unicode.Mn, r)
}

func checkGlyph(r rune) error {
	if !ValidGlyph(r) {
		return fmt.Errorf("%w: glyph %U is not a printable single-column character", ErrInvalidArgument, r)
	}
	return nil
}
