package editor

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"termdraw/canvas"
	"termdraw/core"
	"termdraw/logging"
)

func newTestEditor(opts Options) *Editor {
	e := New(canvas.NewCanvas(canvas.ASCIIGlyphs), opts)
	e.SetTerminalSize(10, 5)
	return e
}

// rows splits a frame into strings of width runes.
func rows(frame []rune, width int) []string {
	var out []string
	for i := 0; i+width <= len(frame); i += width {
		out = append(out, string(frame[i:i+width]))
	}
	return out
}

func TestEditor_DragInsertsShape(t *testing.T) {
	tests := []struct {
		mode DrawMode
		want core.Shape
	}{
		{ModeBox, core.NewFilledBox(core.NewPoint(3, 6), core.NewPoint(1, 2))},
		{ModeBorder, core.NewBorderBox(core.NewPoint(3, 6), core.NewPoint(1, 2))},
		{ModeLine, core.NewLine(core.NewPoint(3, 6), core.NewPoint(1, 2))},
		{ModeArrow, core.NewArrow(core.NewPoint(3, 6), core.NewPoint(1, 2))},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			e := newTestEditor(Options{Mode: tt.mode})
			e.Press(3, 6)
			e.Drag(2, 4)
			e.Release(1, 2)

			shapes := e.Canvas().Shapes()
			if len(shapes) != 1 {
				t.Fatalf("canvas has %d shapes, want 1", len(shapes))
			}
			if shapes[0] != tt.want {
				t.Errorf("inserted %+v, want %+v", shapes[0], tt.want)
			}
			if e.Dragging() {
				t.Error("drag still in progress after release")
			}
		})
	}
}

func TestEditor_ReleaseWithoutPress(t *testing.T) {
	e := newTestEditor(Options{})
	e.Drag(1, 1)
	e.Release(2, 2)

	if e.Canvas().Len() != 0 {
		t.Errorf("release without press inserted %d shapes", e.Canvas().Len())
	}
}

func TestEditor_NegativeCoordinatesClamp(t *testing.T) {
	e := newTestEditor(Options{Mode: ModeBox})
	e.Press(-3, -1)
	e.Release(2, 2)

	want := core.NewFilledBox(core.NewPoint(0, 0), core.NewPoint(2, 2))
	if got := e.Canvas().Shapes()[0]; got != core.Shape(want) {
		t.Errorf("inserted %+v, want %+v", got, want)
	}
}

func TestEditor_HandleKey(t *testing.T) {
	tests := []struct {
		name     string
		key      KeyEvent
		wantMode DrawMode
		wantQuit bool
	}{
		{"s selects box", RuneKey('s'), ModeBox, false},
		{"b selects border", RuneKey('b'), ModeBorder, false},
		{"l selects line", RuneKey('l'), ModeLine, false},
		{"a selects arrow", RuneKey('a'), ModeArrow, false},
		{"unbound key", RuneKey('z'), ModeLine, false},
		{"q quits", RuneKey('q'), ModeLine, true},
		{"Esc quits", KeyEvent{SpecialKey: KeyEscape}, ModeLine, true},
		{"Ctrl-C quits", KeyEvent{SpecialKey: KeyInterrupt}, ModeLine, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(Options{Mode: ModeLine})
			quit := e.HandleKey(tt.key)
			if quit != tt.wantQuit || e.QuitRequested() != tt.wantQuit {
				t.Errorf("quit = %v (requested %v), want %v", quit, e.QuitRequested(), tt.wantQuit)
			}
			if e.Mode() != tt.wantMode {
				t.Errorf("Mode() = %v, want %v", e.Mode(), tt.wantMode)
			}
		})
	}
}

func TestEditor_ModeSwitchDuringDrag(t *testing.T) {
	e := newTestEditor(Options{Mode: ModeBox})
	e.Press(0, 0)
	e.HandleKey(RuneKey('b'))
	e.Release(3, 3)

	if got := e.Canvas().Shapes()[0].Kind(); got != core.KindBorderBox {
		t.Errorf("shape kind = %v, want %v", got, core.KindBorderBox)
	}
}

func TestEditor_RenderWithoutStatusLine(t *testing.T) {
	e := newTestEditor(Options{Mode: ModeBorder})
	e.Press(0, 0)
	e.Release(3, 4)
	e.HandleKey(RuneKey('a'))
	e.Press(4, 1)
	e.Release(4, 5)

	got := rows(e.Render(), 10)
	want := []string{
		"****      ",
		"*  *      ",
		"****      ",
		"          ",
		" ---->    ",
	}

	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("Render mismatch:\ngot:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestEditor_RenderPreview(t *testing.T) {
	e := newTestEditor(Options{Mode: ModeBox})
	e.Press(1, 1)
	e.Drag(3, 4)

	got := rows(e.Render(), 10)
	want := []string{
		"          ",
		" ###      ",
		" ###      ",
		"          ",
		"          ",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("preview mismatch:\ngot:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
	if e.Canvas().Len() != 0 {
		t.Error("preview inserted a shape")
	}
}

func TestEditor_PreviewClippedToGrid(t *testing.T) {
	e := newTestEditor(Options{Mode: ModeBox})
	e.Press(2, 7)
	e.Drag(40, 90)

	frame := e.Render()
	if len(frame) != 50 {
		t.Fatalf("frame length = %d, want 50", len(frame))
	}
	if frame[2*10+9] != '#' || frame[4*10+9] != '#' {
		t.Error("preview missing inside the grid")
	}
}

func TestEditor_StatusLine(t *testing.T) {
	e := newTestEditor(Options{Mode: ModeArrow, StatusLine: true})
	e.SetTerminalSize(100, 4)

	frame := e.Render()
	if len(frame) != 400 {
		t.Fatalf("frame length = %d, want 400", len(frame))
	}
	if e.StatusRow() != 3 {
		t.Errorf("StatusRow() = %d, want 3", e.StatusRow())
	}

	status := string(frame[300:])
	if !strings.HasPrefix(status, " ARROW ") || !strings.Contains(status, "shapes: 0") {
		t.Errorf("status row = %q", status)
	}

	// Shapes never draw over the status row.
	e.HandleKey(RuneKey('s'))
	e.Press(0, 0)
	e.Release(10, 10)
	frame = e.Render()
	if strings.Contains(string(frame[300:]), "#") {
		t.Errorf("box drawn over the status row: %q", string(frame[300:]))
	}
	if !strings.Contains(string(frame[300:]), "shapes: 1") {
		t.Errorf("status row = %q, want shapes: 1", string(frame[300:]))
	}
}

func TestEditor_StatusLineWidth(t *testing.T) {
	e := newTestEditor(Options{StatusLine: true})

	for _, width := range []int{0, 1, 12, 200} {
		if got := len([]rune(e.StatusLine(width))); got != width {
			t.Errorf("StatusLine(%d) has %d runes", width, got)
		}
	}
}

func TestEditor_StatusLineShowsDrag(t *testing.T) {
	e := newTestEditor(Options{StatusLine: true})
	e.Press(1, 2)
	e.Drag(3, 4)

	if got := e.StatusLine(200); !strings.Contains(got, "1,2 -> 3,4") {
		t.Errorf("StatusLine() = %q, want drag coordinates", got)
	}
}

func TestEditor_EmptyTerminal(t *testing.T) {
	e := newTestEditor(Options{StatusLine: true})
	e.Press(0, 0)
	e.Release(3, 3)
	e.SetTerminalSize(0, 0)

	if frame := e.Render(); len(frame) != 0 {
		t.Errorf("Render() on 0x0 terminal = %q, want empty", string(frame))
	}
	if e.StatusRow() != -1 {
		t.Errorf("StatusRow() = %d, want -1", e.StatusRow())
	}
}

func TestEditor_Junctions(t *testing.T) {
	e := New(canvas.NewCanvas(canvas.UnicodeGlyphs), Options{Mode: ModeBorder, Junctions: true})
	e.SetTerminalSize(4, 3)
	e.Press(0, 0)
	e.Release(3, 4)

	got := rows(e.Render(), 4)
	want := []string{"┌──┐", "│  │", "└──┘"}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("junction render mismatch:\ngot:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestEditor_LogsInsertions(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEditor(Options{Mode: ModeArrow, Logger: logging.New(&buf, slog.LevelDebug)})
	e.HandleKey(RuneKey('b'))
	e.Press(0, 0)
	e.Release(2, 2)

	out := buf.String()
	if !strings.Contains(out, "mode changed") || !strings.Contains(out, "to=BORDER") {
		t.Errorf("missing mode change log: %q", out)
	}
	if !strings.Contains(out, "shape inserted") || !strings.Contains(out, "kind=border") {
		t.Errorf("missing insertion log: %q", out)
	}
}

func TestParseDrawMode(t *testing.T) {
	tests := []struct {
		in      string
		want    DrawMode
		wantErr bool
	}{
		{"box", ModeBox, false},
		{"BORDER", ModeBorder, false},
		{" Line ", ModeLine, false},
		{"arrow", ModeArrow, false},
		{"circle", ModeBox, true},
		{"", ModeBox, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDrawMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDrawMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDrawMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDrawModeKind(t *testing.T) {
	for mode, want := range map[DrawMode]core.Kind{
		ModeBox:    core.KindFilledBox,
		ModeBorder: core.KindBorderBox,
		ModeLine:   core.KindLine,
		ModeArrow:  core.KindArrow,
	} {
		if got := mode.Kind(); got != want {
			t.Errorf("%v.Kind() = %v, want %v", mode, got, want)
		}
		if back, err := ParseDrawMode(mode.String()); err != nil || back != mode {
			t.Errorf("ParseDrawMode(%v.String()) = %v, %v", mode, back, err)
		}
	}
}
