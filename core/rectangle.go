package core

// Rectangle is a normalized box with explicit corners.
//
// Axis convention:
//
//	TopLeft    = (min row, min col)    TopRight    = (min row, max col)
//	BottomLeft = (max row, min col)    BottomRight = (max row, max col)
//
// The rectangle covers the half-open cell region
// [TopLeft.Row, BottomLeft.Row) x [TopLeft.Col, TopRight.Col).
// Corners never carry a glyph.
type Rectangle struct {
	TopLeft     Point
	TopRight    Point
	BottomLeft  Point
	BottomRight Point
}

// NewRectangle normalizes two corners of a drag into a Rectangle.
// Any pair is accepted, including equal or collinear points.
func NewRectangle(start, end Point) Rectangle {
	if start.Row > end.Row {
		if start.Col > end.Col {
			// end is up-left of start
			return Rectangle{
				TopLeft:     NewPoint(end.Row, end.Col),
				TopRight:    NewPoint(end.Row, start.Col),
				BottomLeft:  NewPoint(start.Row, end.Col),
				BottomRight: NewPoint(start.Row, start.Col),
			}
		}
		// end is up-right of start
		return Rectangle{
			TopLeft:     NewPoint(end.Row, start.Col),
			TopRight:    NewPoint(end.Row, end.Col),
			BottomLeft:  NewPoint(start.Row, start.Col),
			BottomRight: NewPoint(start.Row, end.Col),
		}
	}
	if start.Col > end.Col {
		// end is down-left of start
		return Rectangle{
			TopLeft:     NewPoint(start.Row, end.Col),
			TopRight:    NewPoint(start.Row, start.Col),
			BottomLeft:  NewPoint(end.Row, end.Col),
			BottomRight: NewPoint(end.Row, start.Col),
		}
	}
	// end is down-right of start
	return Rectangle{
		TopLeft:     NewPoint(start.Row, start.Col),
		TopRight:    NewPoint(start.Row, end.Col),
		BottomLeft:  NewPoint(end.Row, start.Col),
		BottomRight: NewPoint(end.Row, end.Col),
	}
}

// Width returns the number of columns covered.
func (r Rectangle) Width() int {
	return int(r.TopRight.Col) - int(r.TopLeft.Col)
}

// Height returns the number of rows covered.
func (r Rectangle) Height() int {
	return int(r.BottomLeft.Row) - int(r.TopLeft.Row)
}

// Empty reports whether the rectangle covers no cells.
func (r Rectangle) Empty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Contains checks if a cell is within the covered region.
func (r Rectangle) Contains(p Point) bool {
	return p.Row >= r.TopLeft.Row && p.Row < r.BottomLeft.Row &&
		p.Col >= r.TopLeft.Col && p.Col < r.TopRight.Col
}
