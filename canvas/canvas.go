// Package canvas rasterizes shapes and composites them into a character grid.
package canvas

import "termdraw/core"

// Occupant is the result of looking up one cell. Point is only meaningful
// when Occupied is true.
type Occupant struct {
	Point    core.Point
	Occupied bool
}

// Neighborhood is a cell together with its four axis-adjacent cells.
type Neighborhood struct {
	Center Occupant
	Top    Occupant
	Bottom Occupant
	Left   Occupant
	Right  Occupant
}

// Neighbor returns the occupant adjacent to the center in direction d.
func (n Neighborhood) Neighbor(d core.Direction) Occupant {
	switch d {
	case core.North:
		return n.Top
	case core.South:
		return n.Bottom
	case core.West:
		return n.Left
	case core.East:
		return n.Right
	default:
		return Occupant{}
	}
}

// Canvas owns the placed shapes and composites them in insertion order.
// Where shapes overlap, the most recently inserted one wins.
//
// Thread Safety:
// Canvas is NOT thread-safe. Insert, Sample and Render must be called from a
// single goroutine; the terminal driver serializes them on its event loop.
//
// Performance Characteristics:
//   - Insert: O(1)
//   - Sample: O(1) once indexed; the first call after Insert rasterizes the
//     shapes added since the previous index update
//   - Render: O(height × width)
type Canvas struct {
	shapes []core.Shape
	raster *Rasterizer

	// index maps each occupied cell to the last point written there by
	// shapes[:indexed]. Shapes are append-only, so catching up is enough.
	index   map[core.Cell]core.Point
	indexed int
}

// NewCanvas creates an empty canvas stamping cells from glyphs.
func NewCanvas(glyphs GlyphSet) *Canvas {
	return &Canvas{
		raster: NewRasterizer(glyphs),
		index:  make(map[core.Cell]core.Point),
	}
}

// Insert appends a shape. Nil shapes are ignored.
func (c *Canvas) Insert(shape core.Shape) {
	if shape == nil {
		return
	}
	c.shapes = append(c.shapes, shape)
}

// Len returns the number of placed shapes.
func (c *Canvas) Len() int {
	return len(c.shapes)
}

// Shapes returns a copy of the placed shapes in insertion order.
func (c *Canvas) Shapes() []core.Shape {
	out := make([]core.Shape, len(c.shapes))
	copy(out, c.shapes)
	return out
}

// Rasterizer returns the rasterizer used for compositing.
func (c *Canvas) Rasterizer() *Rasterizer {
	return c.raster
}

// Glyphs returns the glyph set in use.
func (c *Canvas) Glyphs() GlyphSet {
	return c.raster.Glyphs()
}

// Sample returns the cell at (row, col) and its four neighbors. Neighbors
// outside the coordinate space are reported as unoccupied.
func (c *Canvas) Sample(row, col uint16) Neighborhood {
	c.catchUp()

	center := core.Cell{Row: row, Col: col}
	return Neighborhood{
		Center: c.lookup(center),
		Top:    c.neighbor(center, core.North),
		Bottom: c.neighbor(center, core.South),
		Left:   c.neighbor(center, core.West),
		Right:  c.neighbor(center, core.East),
	}
}

// Render composites every cell of [0, height) x [0, width) into a row-major
// buffer of exactly height*width runes. Unoccupied cells get the blank glyph.
func (c *Canvas) Render(height, width uint16) []rune {
	return c.RenderWith(height, width, CenterResolver)
}

// RenderWith is Render with a custom choice of glyph per cell. A resolver
// returning 0 leaves the cell blank.
func (c *Canvas) RenderWith(height, width uint16, resolver GlyphResolver) []rune {
	buf := make([]rune, int(height)*int(width))
	blank := c.raster.Glyphs().Blank

	i := 0
	for row := uint16(0); row < height; row++ {
		for col := uint16(0); col < width; col++ {
			glyph := resolver.Resolve(c.Sample(row, col))
			if glyph == 0 {
				glyph = blank
			}
			buf[i] = glyph
			i++
		}
	}
	return buf
}

func (c *Canvas) lookup(cell core.Cell) Occupant {
	p, ok := c.index[cell]
	return Occupant{Point: p, Occupied: ok}
}

func (c *Canvas) neighbor(cell core.Cell, d core.Direction) Occupant {
	next, ok := cell.Step(d)
	if !ok {
		return Occupant{}
	}
	return c.lookup(next)
}

// catchUp folds shapes inserted since the last call into the index.
func (c *Canvas) catchUp() {
	for ; c.indexed < len(c.shapes); c.indexed++ {
		for _, p := range c.raster.Rasterize(c.shapes[c.indexed]) {
			c.index[p.Cell()] = p
		}
	}
}
