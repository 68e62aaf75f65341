// Package editor turns pointer drags and key presses into shapes on a canvas
// and produces the frame shown in the terminal.
package editor

import (
	"fmt"
	"log/slog"

	"github.com/mattn/go-runewidth"

	"termdraw/canvas"
	"termdraw/core"
	"termdraw/logging"
)

const maxCoord = int(^uint16(0))

// Options configures a new Editor.
type Options struct {
	Mode       DrawMode
	Junctions  bool // Render with canvas.JunctionResolver
	StatusLine bool // Reserve the bottom row for the status line
	Logger     *slog.Logger
}

// Editor is the interactive drawing state: the canvas, the draw mode and the
// drag in progress.
//
// Like the canvas it wraps, Editor is not safe for concurrent use; the
// terminal driver calls it from a single goroutine.
type Editor struct {
	canvas     *canvas.Canvas
	resolver   canvas.GlyphResolver
	statusLine bool
	logger     *slog.Logger

	mode DrawMode

	// Drag state. dragEnd follows the pointer for the preview.
	dragging  bool
	dragStart core.Point
	dragEnd   core.Point

	// Terminal state
	width  uint16
	height uint16

	quit bool
}

// New creates an editor drawing on c.
func New(c *canvas.Canvas, opts Options) *Editor {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Logger()
	}

	var resolver canvas.GlyphResolver = canvas.CenterResolver
	if opts.Junctions {
		resolver = canvas.NewJunctionResolver(c.Glyphs())
	}

	return &Editor{
		canvas:     c,
		resolver:   resolver,
		statusLine: opts.StatusLine,
		logger:     logger,
		mode:       opts.Mode,
		width:      80,
		height:     24,
	}
}

// Canvas returns the canvas being drawn on.
func (e *Editor) Canvas() *canvas.Canvas {
	return e.canvas
}

// QuitRequested reports whether a quit key has been pressed.
func (e *Editor) QuitRequested() bool {
	return e.quit
}

// SetTerminalSize updates the terminal dimensions. Values are clamped to the
// grid coordinate range. Existing shapes are not reflowed.
func (e *Editor) SetTerminalSize(width, height int) {
	e.width = clampCoord(width)
	e.height = clampCoord(height)
}

// Size returns the terminal dimensions.
func (e *Editor) Size() (width, height int) {
	return int(e.width), int(e.height)
}

// Press starts a drag at (row, col).
func (e *Editor) Press(row, col int) {
	p := core.NewPoint(clampCoord(row), clampCoord(col))
	e.dragging = true
	e.dragStart = p
	e.dragEnd = p
}

// Drag moves the free end of the drag in progress.
func (e *Editor) Drag(row, col int) {
	if !e.dragging {
		return
	}
	e.dragEnd = core.NewPoint(clampCoord(row), clampCoord(col))
}

// Release completes the drag at (row, col) and inserts the shape for the
// current mode. A release without a press is ignored.
func (e *Editor) Release(row, col int) {
	if !e.dragging {
		return
	}
	e.dragging = false
	e.dragEnd = core.NewPoint(clampCoord(row), clampCoord(col))

	shape := core.NewShape(e.mode.Kind(), e.dragStart, e.dragEnd)
	e.canvas.Insert(shape)
	e.logger.Debug("shape inserted",
		"kind", shape.Kind(),
		"start", e.dragStart,
		"end", e.dragEnd,
		"shapes", e.canvas.Len())
}

// Dragging reports whether a drag is in progress.
func (e *Editor) Dragging() bool {
	return e.dragging
}

// canvasHeight is the number of rows available to the drawing.
func (e *Editor) canvasHeight() uint16 {
	if e.statusLine && e.height > 0 {
		return e.height - 1
	}
	return e.height
}

// StatusRow returns the row index of the status line, or -1 without one.
func (e *Editor) StatusRow() int {
	if !e.statusLine || e.height == 0 {
		return -1
	}
	return int(e.height) - 1
}

// Render produces the current frame: height*width runes, row-major. The drag
// in progress is drawn over the canvas without being inserted, and the
// status line, if enabled, fills the bottom row.
func (e *Editor) Render() []rune {
	width := e.width
	rows := e.canvasHeight()

	frame := make([]rune, 0, int(e.height)*int(width))
	frame = append(frame, e.canvas.RenderWith(rows, width, e.resolver)...)

	if e.dragging {
		preview := core.NewShape(e.mode.Kind(), e.dragStart, e.dragEnd)
		for _, p := range e.canvas.Rasterizer().Rasterize(preview) {
			if p.Row < rows && p.Col < width {
				frame[int(p.Row)*int(width)+int(p.Col)] = p.Glyph
			}
		}
	}

	if e.StatusRow() >= 0 {
		frame = append(frame, []rune(e.StatusLine(int(width)))...)
	}
	return frame
}

// StatusLine returns the status text padded or truncated to width cells.
func (e *Editor) StatusLine(width int) string {
	text := fmt.Sprintf(" %-6s | s:box b:border l:line a:arrow q:quit | shapes: %d",
		e.mode, e.canvas.Len())
	if e.dragging {
		text += fmt.Sprintf(" | %d,%d -> %d,%d",
			e.dragStart.Row, e.dragStart.Col, e.dragEnd.Row, e.dragEnd.Col)
	}
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(text, width, ""), width)
}

func clampCoord(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > maxCoord {
		return uint16(maxCoord)
	}
	return uint16(v)
}
