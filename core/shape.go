package core

// Kind identifies a shape variant.
type Kind int

const (
	KindFilledBox Kind = iota // Solid rectangle
	KindBorderBox             // Rectangle outline
	KindLine                  // Horizontal rule
	KindArrow                 // Horizontal rule with an arrowhead
)

// String returns the kind name for display.
func (k Kind) String() string {
	switch k {
	case KindFilledBox:
		return "box"
	case KindBorderBox:
		return "border"
	case KindLine:
		return "line"
	case KindArrow:
		return "arrow"
	default:
		return "unknown"
	}
}

// Shape is one of FilledBox, BorderBox, Line or Arrow. The set is closed:
// the unexported method keeps other packages from adding variants.
type Shape interface {
	Kind() Kind
	isShape()
}

// FilledBox is a solid rectangle.
type FilledBox struct {
	Rect Rectangle
}

// BorderBox is the outline of a rectangle.
type BorderBox struct {
	Rect Rectangle
}

// Line is a rule from Start to End. The points keep the raw drag direction.
type Line struct {
	Start, End Point
}

// Arrow is a Line ending in an arrowhead.
type Arrow struct {
	Start, End Point
}

func (FilledBox) Kind() Kind { return KindFilledBox }
func (BorderBox) Kind() Kind { return KindBorderBox }
func (Line) Kind() Kind      { return KindLine }
func (Arrow) Kind() Kind     { return KindArrow }

func (FilledBox) isShape() {}
func (BorderBox) isShape() {}
func (Line) isShape()      {}
func (Arrow) isShape()     {}

// NewFilledBox builds a filled box from the press and release points of a drag.
func NewFilledBox(press, release Point) FilledBox {
	return FilledBox{Rect: NewRectangle(press, release)}
}

// NewBorderBox builds a box outline from the press and release points of a drag.
func NewBorderBox(press, release Point) BorderBox {
	return BorderBox{Rect: NewRectangle(press, release)}
}

// NewLine builds a line. Points are stored unnormalized.
func NewLine(press, release Point) Line {
	return Line{Start: NewPoint(press.Row, press.Col), End: NewPoint(release.Row, release.Col)}
}

// NewArrow builds an arrow. Points are stored unnormalized.
func NewArrow(press, release Point) Arrow {
	return Arrow{Start: NewPoint(press.Row, press.Col), End: NewPoint(release.Row, release.Col)}
}

// NewShape builds the variant named by kind from a drag. Unknown kinds
// yield nil.
func NewShape(kind Kind, press, release Point) Shape {
	switch kind {
	case KindFilledBox:
		return NewFilledBox(press, release)
	case KindBorderBox:
		return NewBorderBox(press, release)
	case KindLine:
		return NewLine(press, release)
	case KindArrow:
		return NewArrow(press, release)
	default:
		return nil
	}
}
