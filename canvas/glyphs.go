package canvas

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"

	"termdraw/core"
)

// ErrWideGlyph is returned when a glyph does not occupy exactly one cell.
var ErrWideGlyph = errors.New("glyph is not one cell wide")

// ArrowStyle defines the arrowhead for each heading.
type ArrowStyle struct {
	Right rune
	Left  rune
	Up    rune
	Down  rune
}

// Head returns the arrowhead pointing in direction d.
func (a ArrowStyle) Head(d core.Direction) rune {
	switch d {
	case core.North:
		return a.Up
	case core.South:
		return a.Down
	case core.West:
		return a.Left
	default:
		return a.Right
	}
}

// JoinStyle defines the characters used when strokes meet.
type JoinStyle struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Cross       rune
	TeeUp       rune
	TeeDown     rune
	TeeLeft     rune
	TeeRight    rune
}

// GlyphSet is the single character used for each kind of cell.
type GlyphSet struct {
	Blank   rune // Unoccupied cell
	Fill    rune // FilledBox interior
	Border  rune // BorderBox perimeter
	Rule    rune // Line and Arrow body
	LineCap rune // Last cell of a Line
	Arrows  ArrowStyle
	Joins   JoinStyle
}

// Predefined glyph sets
var (
	// UnicodeGlyphs uses block and box-drawing characters
	UnicodeGlyphs = GlyphSet{
		Blank:   ' ',
		Fill:    '█',
		Border:  '▒',
		Rule:    '─',
		LineCap: '─',
		Arrows: ArrowStyle{
			Right: '►',
			Left:  '◄',
			Up:    '▲',
			Down:  '▼',
		},
		Joins: JoinStyle{
			Horizontal:  '─',
			Vertical:    '│',
			TopLeft:     '┌',
			TopRight:    '┐',
			BottomLeft:  '└',
			BottomRight: '┘',
			Cross:       '┼',
			TeeUp:       '┴',
			TeeDown:     '┬',
			TeeLeft:     '┤',
			TeeRight:    '├',
		},
	}

	// ASCIIGlyphs uses printable ASCII only
	ASCIIGlyphs = GlyphSet{
		Blank:   ' ',
		Fill:    '#',
		Border:  '*',
		Rule:    '-',
		LineCap: '-',
		Arrows: ArrowStyle{
			Right: '>',
			Left:  '<',
			Up:    '^',
			Down:  'v',
		},
		Joins: JoinStyle{
			Horizontal:  '-',
			Vertical:    '|',
			TopLeft:     '+',
			TopRight:    '+',
			BottomLeft:  '+',
			BottomRight: '+',
			Cross:       '+',
			TeeUp:       '+',
			TeeDown:     '+',
			TeeLeft:     '+',
			TeeRight:    '+',
		},
	}
)

// IsStroke reports whether r is drawn as part of an outline or rule and may
// be replaced by a join character.
func (g GlyphSet) IsStroke(r rune) bool {
	return r == g.Border || r == g.Rule || r == g.LineCap
}

// IsArrowHead reports whether r is one of the arrowheads.
func (g GlyphSet) IsArrowHead(r rune) bool {
	return r == g.Arrows.Right || r == g.Arrows.Left || r == g.Arrows.Up || r == g.Arrows.Down
}

// Validate checks that every glyph renders one cell wide in the current
// locale. Wide glyphs would shift every following cell of the row.
func (g GlyphSet) Validate() error {
	return g.validate(runewidth.DefaultCondition)
}

func (g GlyphSet) validate(cond *runewidth.Condition) error {
	for _, r := range g.runes() {
		if cond.RuneWidth(r) != 1 {
			return fmt.Errorf("%w: %q", ErrWideGlyph, r)
		}
	}
	return nil
}

func (g GlyphSet) runes() []rune {
	j := g.Joins
	return []rune{
		g.Blank, g.Fill, g.Border, g.Rule, g.LineCap,
		g.Arrows.Right, g.Arrows.Left, g.Arrows.Up, g.Arrows.Down,
		j.Horizontal, j.Vertical, j.TopLeft, j.TopRight, j.BottomLeft, j.BottomRight,
		j.Cross, j.TeeUp, j.TeeDown, j.TeeLeft, j.TeeRight,
	}
}
