package core

import "testing"

func TestNewShape(t *testing.T) {
	press, release := NewPoint(6, 9), NewPoint(1, 3)

	tests := []struct {
		kind Kind
		want Shape
	}{
		{KindFilledBox, FilledBox{Rect: NewRectangle(press, release)}},
		{KindBorderBox, BorderBox{Rect: NewRectangle(press, release)}},
		{KindLine, Line{Start: press, End: release}},
		{KindArrow, Arrow{Start: press, End: release}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := NewShape(tt.kind, press, release)
			if got != tt.want {
				t.Errorf("NewShape(%v) = %+v, want %+v", tt.kind, got, tt.want)
			}
			if got.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", got.Kind(), tt.kind)
			}
		})
	}

	if s := NewShape(Kind(42), press, release); s != nil {
		t.Errorf("NewShape with unknown kind = %v, want nil", s)
	}
}

func TestLineKeepsDragDirection(t *testing.T) {
	a := NewArrow(NewPoint(5, 10).WithGlyph('q'), NewPoint(5, 2))
	if a.Start != NewPoint(5, 10) || a.End != NewPoint(5, 2) {
		t.Errorf("NewArrow normalized or kept glyphs: %+v", a)
	}
}
