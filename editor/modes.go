package editor

import (
	"errors"
	"fmt"
	"strings"

	"termdraw/core"
)

// ErrUnknownMode is returned when a draw mode name is not recognized.
var ErrUnknownMode = errors.New("unknown draw mode")

// DrawMode selects which shape the next completed drag creates.
type DrawMode int

const (
	ModeBox    DrawMode = iota // Filled box
	ModeBorder                 // Box outline
	ModeLine                   // Horizontal line
	ModeArrow                  // Horizontal arrow
)

// String returns the mode name for display
func (m DrawMode) String() string {
	switch m {
	case ModeBox:
		return "BOX"
	case ModeBorder:
		return "BORDER"
	case ModeLine:
		return "LINE"
	case ModeArrow:
		return "ARROW"
	default:
		return "UNKNOWN"
	}
}

// Kind returns the shape kind created in this mode.
func (m DrawMode) Kind() core.Kind {
	switch m {
	case ModeBorder:
		return core.KindBorderBox
	case ModeLine:
		return core.KindLine
	case ModeArrow:
		return core.KindArrow
	default:
		return core.KindFilledBox
	}
}

// ParseDrawMode parses a mode name as printed by String, case-insensitively.
func ParseDrawMode(s string) (DrawMode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BOX":
		return ModeBox, nil
	case "BORDER":
		return ModeBorder, nil
	case "LINE":
		return ModeLine, nil
	case "ARROW":
		return ModeArrow, nil
	default:
		return ModeBox, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// modeKeys maps mode selection keys to modes.
var modeKeys = map[rune]DrawMode{
	's': ModeBox,
	'b': ModeBorder,
	'l': ModeLine,
	'a': ModeArrow,
}

// SetMode changes the draw mode. A drag in progress keeps going and is
// completed in the new mode.
func (e *Editor) SetMode(mode DrawMode) {
	if mode == e.mode {
		return
	}
	e.logger.Debug("mode changed", "from", e.mode, "to", mode)
	e.mode = mode
}

// Mode returns the current draw mode.
func (e *Editor) Mode() DrawMode {
	return e.mode
}
