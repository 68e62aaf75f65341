// Package core contains the fundamental types used throughout the termdraw canvas editor.
package core

import "fmt"

// Point is a cell on the character grid with an optional glyph.
//
// Identity is the (Row, Col) pair only. Two points at the same cell with
// different glyphs are equal, which keeps "is this cell occupied" separate
// from "what does this cell display".
type Point struct {
	Row   uint16
	Col   uint16
	Glyph rune // 0 means no glyph
}

// NewPoint creates a point without a glyph.
func NewPoint(row, col uint16) Point {
	return Point{Row: row, Col: col}
}

// Equal reports whether p and o address the same cell. Glyphs are ignored.
func (p Point) Equal(o Point) bool {
	return p.Row == o.Row && p.Col == o.Col
}

// WithGlyph returns a copy of p displaying glyph.
func (p Point) WithGlyph(glyph rune) Point {
	p.Glyph = glyph
	return p
}

// HasGlyph reports whether a glyph has been assigned.
func (p Point) HasGlyph() bool {
	return p.Glyph != 0
}

// Cell returns the glyph-free identity of the point, usable as a map key.
func (p Point) Cell() Cell {
	return Cell{Row: p.Row, Col: p.Col}
}

// String returns "(row,col)" or "(row,col 'g')" when a glyph is set.
func (p Point) String() string {
	if p.HasGlyph() {
		return fmt.Sprintf("(%d,%d %q)", p.Row, p.Col, p.Glyph)
	}
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is a bare grid address.
type Cell struct {
	Row, Col uint16
}

// Direction represents a cardinal direction.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the four cardinal directions in clockwise order.
var Directions = [...]Direction{North, East, South, West}

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// Step returns the cell one step from c in direction d. ok is false when the
// step would leave the uint16 coordinate space; the result never wraps.
func (c Cell) Step(d Direction) (next Cell, ok bool) {
	const maxCoord = ^uint16(0)
	switch d {
	case North:
		if c.Row == 0 {
			return Cell{}, false
		}
		return Cell{Row: c.Row - 1, Col: c.Col}, true
	case South:
		if c.Row == maxCoord {
			return Cell{}, false
		}
		return Cell{Row: c.Row + 1, Col: c.Col}, true
	case West:
		if c.Col == 0 {
			return Cell{}, false
		}
		return Cell{Row: c.Row, Col: c.Col - 1}, true
	case East:
		if c.Col == maxCoord {
			return Cell{}, false
		}
		return Cell{Row: c.Row, Col: c.Col + 1}, true
	default:
		return Cell{}, false
	}
}
