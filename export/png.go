package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrEmptyGrid is returned when there is nothing to draw.
var ErrEmptyGrid = errors.New("export: empty grid")

// Image draws grids one glyph per cell on a solid background.
// Every cell has the same size, taken from the face metrics, so columns
// line up exactly as they do in the text output.
type Image struct {
	face   font.Face
	fg, bg color.Color

	cellW, cellH int
	ascent       int
}

// ImageOption configures an Image.
type ImageOption func(*Image)

// WithFace draws glyphs with f instead of the built-in 7x13 bitmap face.
func WithFace(f font.Face) ImageOption {
	return func(im *Image) {
		if f != nil {
			im.face = f
		}
	}
}

// WithColors sets the glyph and background colors.
func WithColors(fg, bg color.Color) ImageOption {
	return func(im *Image) {
		im.fg = fg
		im.bg = bg
	}
}

// NewImage returns an Image drawing black glyphs on white with
// basicfont.Face7x13 unless configured otherwise.
func NewImage(opts ...ImageOption) *Image {
	im := &Image{
		face: basicfont.Face7x13,
		fg:   color.Black,
		bg:   color.White,
	}
	for _, opt := range opts {
		opt(im)
	}

	m := im.face.Metrics()
	im.ascent = m.Ascent.Ceil()
	im.cellH = m.Height.Ceil()
	if h := im.ascent + m.Descent.Ceil(); h > im.cellH {
		im.cellH = h
	}
	im.cellW = 1
	if adv, ok := im.face.GlyphAdvance('M'); ok && adv.Ceil() > 0 {
		im.cellW = adv.Ceil()
	}
	return im
}

// MonoFace returns the Go Mono face at the given size in points (72 DPI).
func MonoFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse go mono: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("go mono face: %w", err)
	}
	return face, nil
}

// CellSize returns the pixel size of one grid cell.
func (im *Image) CellSize() (w, h int) {
	return im.cellW, im.cellH
}

// Render draws the rows into a new RGBA image. Rows shorter than the widest
// one are padded with background.
func (im *Image) Render(lines []string) *image.RGBA {
	cols := 0
	for _, line := range lines {
		cols = max(cols, utf8.RuneCountInString(line))
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols*im.cellW, len(lines)*im.cellH))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(im.bg), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(im.fg),
		Face: im.face,
	}
	for row, line := range lines {
		col := 0
		for _, r := range line {
			if r != ' ' {
				d.Dot = fixed.P(col*im.cellW, row*im.cellH+im.ascent)
				d.DrawString(string(r))
			}
			col++
		}
	}
	return dst
}

// WritePNG renders the rows and encodes them as PNG.
func (im *Image) WritePNG(w io.Writer, lines []string) error {
	if len(lines) == 0 {
		return ErrEmptyGrid
	}
	img := im.Render(lines)
	if img.Bounds().Empty() {
		return ErrEmptyGrid
	}
	return png.Encode(w, img)
}

// WritePNG encodes the rows as PNG with the default Image settings.
func WritePNG(w io.Writer, lines []string) error {
	return NewImage().WritePNG(w, lines)
}
