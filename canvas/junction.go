package canvas

import "termdraw/core"

// GlyphResolver picks the glyph displayed at the center of a neighborhood.
// Returning 0 leaves the cell blank.
type GlyphResolver interface {
	Resolve(n Neighborhood) rune
}

// GlyphResolverFunc adapts a function to GlyphResolver.
type GlyphResolverFunc func(n Neighborhood) rune

// Resolve calls f(n).
func (f GlyphResolverFunc) Resolve(n Neighborhood) rune {
	return f(n)
}

// CenterResolver displays the center glyph as-is.
var CenterResolver GlyphResolver = GlyphResolverFunc(func(n Neighborhood) rune {
	if !n.Center.Occupied {
		return 0
	}
	return n.Center.Point.Glyph
})

// connection is a bit set of the directions a stroke continues in.
type connection uint8

const (
	connNorth connection = 1 << iota
	connEast
	connSouth
	connWest
)

func directionBit(d core.Direction) connection {
	switch d {
	case core.North:
		return connNorth
	case core.East:
		return connEast
	case core.South:
		return connSouth
	case core.West:
		return connWest
	default:
		return 0
	}
}

// JunctionResolver replaces stroke glyphs with the box-drawing character
// matching the strokes around them, so outlines get corners and crossing
// shapes get T-junctions and crosses. Fills and arrowheads are left alone.
type JunctionResolver struct {
	glyphs    GlyphSet
	junctions map[connection]rune
}

// NewJunctionResolver creates a resolver for strokes drawn with glyphs.
func NewJunctionResolver(glyphs GlyphSet) *JunctionResolver {
	jr := &JunctionResolver{
		glyphs:    glyphs,
		junctions: make(map[connection]rune),
	}
	jr.initializeJunctions()
	return jr
}

// Resolve implements GlyphResolver.
func (jr *JunctionResolver) Resolve(n Neighborhood) rune {
	if !n.Center.Occupied {
		return 0
	}
	glyph := n.Center.Point.Glyph
	if !jr.glyphs.IsStroke(glyph) {
		return glyph
	}

	var mask connection
	for _, d := range core.Directions {
		if jr.connects(n.Neighbor(d)) {
			mask |= directionBit(d)
		}
	}

	if junction, ok := jr.junctions[mask]; ok {
		return junction
	}
	// Isolated stroke cell
	return glyph
}

// connects reports whether a neighbor continues a stroke into the center.
func (jr *JunctionResolver) connects(o Occupant) bool {
	if !o.Occupied {
		return false
	}
	return jr.glyphs.IsStroke(o.Point.Glyph) || jr.glyphs.IsArrowHead(o.Point.Glyph)
}

// initializeJunctions sets up the junction mappings.
func (jr *JunctionResolver) initializeJunctions() {
	j := jr.glyphs.Joins

	// Straight runs, including stroke ends
	jr.junctions[connEast] = j.Horizontal
	jr.junctions[connWest] = j.Horizontal
	jr.junctions[connEast|connWest] = j.Horizontal
	jr.junctions[connNorth] = j.Vertical
	jr.junctions[connSouth] = j.Vertical
	jr.junctions[connNorth|connSouth] = j.Vertical

	// Corners
	// ┌ right and down, ┐ left and down, └ right and up, ┘ left and up
	jr.junctions[connEast|connSouth] = j.TopLeft
	jr.junctions[connWest|connSouth] = j.TopRight
	jr.junctions[connNorth|connEast] = j.BottomLeft
	jr.junctions[connNorth|connWest] = j.BottomRight

	// T-junctions
	jr.junctions[connNorth|connEast|connSouth] = j.TeeRight
	jr.junctions[connNorth|connWest|connSouth] = j.TeeLeft
	jr.junctions[connEast|connSouth|connWest] = j.TeeDown
	jr.junctions[connNorth|connEast|connWest] = j.TeeUp

	jr.junctions[connNorth|connEast|connSouth|connWest] = j.Cross
}
