package scene

import (
	"fmt"
	"strings"
)

// Area is a named canvas: a fixed-size character grid plus the ordered
// layers drawn into it.
//
// Every cell holds either the empty glyph, the fill glyph, or a value
// written directly through SetCell. Grid dimensions always match
// Width and Height.
type Area struct {
	id        ID
	name      string
	width     int
	height    int
	emptyChar rune
	fillChar  rune
	cells     []rune // row-major, width*height
	layers    []*Layer
}

// NewArea creates an area with a fresh id, no layers, default glyphs and a
// grid filled with the empty glyph. Both dimensions must be positive and
// the grid may hold at most MaxCells cells.
func NewArea(width, height int, name string) (*Area, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	a := &Area{
		id:        NextID(),
		name:      name,
		width:     width,
		height:    height,
		emptyChar: DefaultEmptyChar,
		fillChar:  DefaultFillChar,
		cells:     make([]rune, width*height),
	}
	a.Clear()
	return a, nil
}

// MaxCells is the largest grid an area may hold, width*height.
// 1<<22 cells is a 2048x2048 grid, 16 MiB of runes.
const MaxCells = 1 << 22

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidArgument, width, height)
	}
	// Division keeps the check itself free of overflow.
	if width > MaxCells/height {
		return fmt.Errorf("%w: size %dx%d exceeds %d cells", ErrInvalidArgument, width, height, MaxCells)
	}
	return nil
}

// ID returns the area id.
func (a *Area) ID() ID { return a.id }

// Name returns the area name.
func (a *Area) Name() string { return a.name }

// SetName renames the area.
func (a *Area) SetName(name string) { a.name = name }

// Width returns the grid width in cells.
func (a *Area) Width() int { return a.width }

// Height returns the grid height in cells.
func (a *Area) Height() int { return a.height }

// EmptyChar returns the background glyph.
func (a *Area) EmptyChar() rune { return a.emptyChar }

// FillChar returns the glyph shapes are drawn with.
func (a *Area) FillChar() rune { return a.fillChar }

// SetEmptyChar changes the background glyph used by the next Clear or
// Resize. Cells already on the grid are left as they are.
func (a *Area) SetEmptyChar(r rune) error {
	if err := checkGlyph(r); err != nil {
		return err
	}
	a.emptyChar = r
	return nil
}

// SetFillChar changes the glyph used by the next render.
func (a *Area) SetFillChar(r rune) error {
	if err := checkGlyph(r); err != nil {
		return err
	}
	a.fillChar = r
	return nil
}

// Clear overwrites every cell with the empty glyph.
func (a *Area) Clear() {
	for i := range a.cells {
		a.cells[i] = a.emptyChar
	}
}

// Resize changes the grid dimensions. Cells in the region shared by the old
// and the new size keep their content; newly exposed cells get the empty
// glyph. Nothing is scaled. The new size follows the same rules as
// NewArea; on error the area is left unchanged.
func (a *Area) Resize(width, height int) error {
	if err := checkSize(width, height); err != nil {
		return err
	}

	cells := make([]rune, width*height)
	keepW := min(a.width, width)
	keepH := min(a.height, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < keepW && y < keepH {
				cells[y*width+x] = a.cells[y*a.width+x]
			} else {
				cells[y*width+x] = a.emptyChar
			}
		}
	}

	a.cells = cells
	a.width = width
	a.height = height
	return nil
}

// Contains reports whether (x, y) is a cell of the grid.
func (a *Area) Contains(x, y int) bool {
	return x >= 0 && x < a.width && y >= 0 && y < a.height
}

// Cell returns the glyph at (x, y).
func (a *Area) Cell(x, y int) (rune, error) {
	if !a.Contains(x, y) {
		return 0, a.outOfBounds(x, y)
	}
	return a.cells[y*a.width+x], nil
}

// SetCell writes any glyph at (x, y). No clipping happens here: writes
// outside the grid fail with ErrOutOfBounds.
func (a *Area) SetCell(x, y int, r rune) error {
	if !a.Contains(x, y) {
		return a.outOfBounds(x, y)
	}
	a.cells[y*a.width+x] = r
	return nil
}

func (a *Area) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, a.width, a.height)
}

// Lines returns the grid as one string per row, top to bottom.
func (a *Area) Lines() []string {
	lines := make([]string, a.height)
	for y := range lines {
		lines[y] = string(a.cells[y*a.width : (y+1)*a.width])
	}
	return lines
}

// Text returns the grid rows joined by newlines, with a trailing newline.
func (a *Area) Text() string {
	var sb strings.Builder
	sb.Grow((a.width + 1) * a.height)
	for _, line := range a.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Layers returns the layers in draw order.
// The returned slice is a copy; the layers themselves are shared.
func (a *Area) Layers() []*Layer {
	out := make([]*Layer, len(a.layers))
	copy(out, a.layers)
	return out
}

// FirstLayer returns the bottom layer, or nil if the area has none.
func (a *Area) FirstLayer() *Layer {
	if len(a.layers) == 0 {
		return nil
	}
	return a.layers[0]
}

// AddLayer appends a layer on top of the existing ones.
func (a *Area) AddLayer(l *Layer) {
	a.layers = append(a.layers, l)
}

// RemoveLayer removes l, compared by identity.
// It returns false if l is not in the area.
func (a *Area) RemoveLayer(l *Layer) bool {
	for i, cur := range a.layers {
		if cur == l {
			a.removeLayerAt(i)
			return true
		}
	}
	return false
}

// RemoveLayerByID removes the first layer with the given id.
// It returns false if there is none.
func (a *Area) RemoveLayerByID(id ID) bool {
	for i, cur := range a.layers {
		if cur.id == id {
			a.removeLayerAt(i)
			return true
		}
	}
	return false
}

// FindLayer returns the first layer with the given id.
func (a *Area) FindLayer(id ID) (*Layer, bool) {
	for _, l := range a.layers {
		if l.id == id {
			return l, true
		}
	}
	return nil, false
}

// HasLayer reports whether l belongs to the area.
func (a *Area) HasLayer(l *Layer) bool {
	if l == nil {
		return false
	}
	for _, cur := range a.layers {
		if cur == l {
			return true
		}
	}
	return false
}

func (a *Area) removeLayerAt(i int) {
	copy(a.layers[i:], a.layers[i+1:])
	a.layers[len(a.layers)-1] = nil
	a.layers = a.layers[:len(a.layers)-1]
}

// String summarizes the area, e.g. "Area[id=1, name=Area1, size=80x40, layers=1]".
func (a *Area) String() string {
	return fmt.Sprintf("Area[id=%d, name=%s, size=%dx%d, layers=%d]", a.id, a.name, a.width, a.height, len(a.layers))
}
