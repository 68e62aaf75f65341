package canvas

import "termdraw/core"

// Rasterizer converts shapes into the cells they cover.
//
// Performance Characteristics:
//   - FilledBox: O(width × height)
//   - BorderBox: O(width + height)
//   - Line, Arrow: O(length)
type Rasterizer struct {
	glyphs GlyphSet
}

// NewRasterizer creates a rasterizer stamping cells from glyphs.
func NewRasterizer(glyphs GlyphSet) *Rasterizer {
	return &Rasterizer{glyphs: glyphs}
}

// Glyphs returns the glyph set in use.
func (r *Rasterizer) Glyphs() GlyphSet {
	return r.glyphs
}

// Rasterize returns the glyph-stamped cells covered by shape, in emission
// order. A nil or empty shape yields no cells.
func (r *Rasterizer) Rasterize(shape core.Shape) []core.Point {
	switch s := shape.(type) {
	case core.FilledBox:
		return r.filledBox(s.Rect)
	case core.BorderBox:
		return r.borderBox(s.Rect)
	case core.Line:
		return r.sweep(s.Start, s.End, r.glyphs.LineCap)
	case core.Arrow:
		return r.sweep(s.Start, s.End, r.glyphs.Arrows.Head(core.East))
	default:
		return nil
	}
}

// █████
// █████
// █████
func (r *Rasterizer) filledBox(rect core.Rectangle) []core.Point {
	if rect.Empty() {
		return nil
	}

	out := make([]core.Point, 0, rect.Width()*rect.Height())
	for row := rect.TopLeft.Row; row < rect.BottomLeft.Row; row++ {
		for col := rect.TopLeft.Col; col < rect.TopRight.Col; col++ {
			out = append(out, core.Point{Row: row, Col: col, Glyph: r.glyphs.Fill})
		}
	}
	return out
}

// ▒▒▒▒▒
// ▒   ▒
// ▒▒▒▒▒
func (r *Rasterizer) borderBox(rect core.Rectangle) []core.Point {
	if rect.Empty() {
		return nil
	}

	top, bottom := rect.TopLeft.Row, rect.BottomLeft.Row-1
	left, right := rect.TopLeft.Col, rect.TopRight.Col-1
	glyph := r.glyphs.Border

	out := make([]core.Point, 0, 2*(rect.Width()+rect.Height()))
	// top/bottom line
	for col := left; col < rect.TopRight.Col; col++ {
		out = append(out, core.Point{Row: top, Col: col, Glyph: glyph})
		out = append(out, core.Point{Row: bottom, Col: col, Glyph: glyph})
	}
	// left/right line
	for row := top; row < rect.BottomLeft.Row; row++ {
		out = append(out, core.Point{Row: row, Col: left, Glyph: glyph})
		out = append(out, core.Point{Row: row, Col: right, Glyph: glyph})
	}

	return Dedup(out)
}

// ─────►
func (r *Rasterizer) sweep(start, end core.Point, last rune) []core.Point {
	if end.Col < start.Col {
		return nil
	}

	out := make([]core.Point, 0, int(end.Col-start.Col)+1)
	for col := start.Col; col < end.Col; col++ {
		out = append(out, core.Point{Row: start.Row, Col: col, Glyph: r.glyphs.Rule})
	}
	out = append(out, core.Point{Row: start.Row, Col: end.Col, Glyph: last})
	return out
}

// Dedup removes points addressing an already seen cell, keeping the first
// occurrence and the original order.
func Dedup(points []core.Point) []core.Point {
	seen := make(map[core.Cell]struct{}, len(points))
	out := make([]core.Point, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p.Cell()]; ok {
			continue
		}
		seen[p.Cell()] = struct{}{}
		out = append(out, p)
	}
	return out
}
