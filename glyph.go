package pixeltracer

import "strings"

// Glyph selects which of an area's two glyphs SetGlyph changes.
type Glyph uint8

const (
	// GlyphBorder is the glyph shapes are drawn with.
	GlyphBorder Glyph = iota

	// GlyphBackground is the glyph of empty cells.
	GlyphBackground
)

// String returns the command name of the glyph kind.
func (g Glyph) String() string {
	switch g {
	case GlyphBorder:
		return "border"
	case GlyphBackground:
		return "background"
	default:
		return "unknown"
	}
}

// ParseGlyph maps "border" or "background" (any case) to its Glyph.
func ParseGlyph(name string) (Glyph, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "border":
		return GlyphBorder, true
	case "background":
		return GlyphBackground, true
	}
	return 0, false
}
