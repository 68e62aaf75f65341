// Package terminal runs the editor on a tcell screen: it decodes mouse and key
// events, keeps the editor sized to the screen and redraws on a fixed cadence.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"termdraw/editor"
	"termdraw/logging"
)

// Common errors
var (
	ErrNilScreen   = errors.New("screen is nil")
	ErrNilEditor   = errors.New("editor is nil")
	ErrBadInterval = errors.New("redraw interval must be positive")
)

// eventBuffer is the capacity of the channel between the event pump and the
// driver loop.
const eventBuffer = 100

// Driver owns a tcell screen for the lifetime of Run.
//
// All editor calls happen on the goroutine running Run. The screen's event
// pump runs separately and only forwards events over a channel.
type Driver struct {
	screen   tcell.Screen
	editor   *editor.Editor
	interval time.Duration
	logger   *slog.Logger

	style       tcell.Style
	statusStyle tcell.Style
}

// NewDriver creates a driver for an initialized screen.
func NewDriver(screen tcell.Screen, ed *editor.Editor, interval time.Duration) (*Driver, error) {
	if screen == nil {
		return nil, ErrNilScreen
	}
	if ed == nil {
		return nil, ErrNilEditor
	}
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadInterval, interval)
	}

	return &Driver{
		screen:      screen,
		editor:      ed,
		interval:    interval,
		logger:      logging.Logger(),
		style:       tcell.StyleDefault,
		statusStyle: tcell.StyleDefault.Reverse(true),
	}, nil
}

// Run processes events and redraws until the editor asks to quit, the event
// stream ends or ctx is done. The caller owns screen setup and Fini.
func (d *Driver) Run(ctx context.Context) error {
	d.screen.EnableMouse()
	d.screen.HideCursor()
	d.screen.Clear()

	width, height := d.screen.Size()
	d.editor.SetTerminalSize(width, height)
	d.logger.Info("terminal ready", "width", width, "height", height, "interval", d.interval)

	events := make(chan tcell.Event, eventBuffer)
	quit := make(chan struct{})
	defer close(quit)
	go d.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.draw()
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("stopping", "reason", ctx.Err())
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				d.logger.Info("event stream closed")
				return nil
			}
			if d.handleEvent(ev) {
				d.logger.Info("quit requested", "shapes", d.editor.Canvas().Len())
				return nil
			}

		case <-ticker.C:
			d.draw()
		}
	}
}

// handleEvent applies one event to the editor and reports whether to quit.
func (d *Driver) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, ok := translateKey(ev)
		if !ok {
			return false
		}
		return d.editor.HandleKey(key)

	case *tcell.EventMouse:
		d.handleMouse(ev)

	case *tcell.EventResize:
		width, height := ev.Size()
		d.editor.SetTerminalSize(width, height)
		d.screen.Sync()
		d.logger.Debug("resized", "width", width, "height", height)
	}
	return false
}

// handleMouse turns primary-button state changes into a drag. The screen
// reports button state, not transitions, so the editor's drag flag tells a
// press from a motion with the button held.
func (d *Driver) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	held := ev.Buttons()&tcell.ButtonPrimary != 0

	switch {
	case held && !d.editor.Dragging():
		d.editor.Press(y, x)
	case held:
		d.editor.Drag(y, x)
	case d.editor.Dragging():
		d.editor.Release(y, x)
	}
}

// translateKey maps a tcell key to an editor key event.
func translateKey(ev *tcell.EventKey) (editor.KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return editor.RuneKey(ev.Rune()), true
	case tcell.KeyEscape:
		return editor.KeyEvent{SpecialKey: editor.KeyEscape}, true
	case tcell.KeyCtrlC:
		return editor.KeyEvent{SpecialKey: editor.KeyInterrupt}, true
	default:
		return editor.KeyEvent{}, false
	}
}

// draw writes the editor frame to the screen from the top-left origin.
func (d *Driver) draw() {
	width, _ := d.editor.Size()
	if width == 0 {
		d.screen.Show()
		return
	}

	statusRow := d.editor.StatusRow()
	for i, r := range d.editor.Render() {
		row, col := i/width, i%width
		style := d.style
		if row == statusRow {
			style = d.statusStyle
		}
		d.screen.SetContent(col, row, r, nil, style)
	}
	d.screen.Show()
}
