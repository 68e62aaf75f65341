package editor

// SpecialKey represents keys without a printable rune.
type SpecialKey int

const (
	KeyNone SpecialKey = iota
	KeyEscape
	KeyInterrupt // Ctrl-C
)

// KeyEvent represents either a regular character or a special key
type KeyEvent struct {
	Rune       rune
	SpecialKey SpecialKey
}

// IsSpecial returns true if this is a special key event
func (k KeyEvent) IsSpecial() bool {
	return k.SpecialKey != KeyNone
}

// RuneKey is shorthand for a printable key event.
func RuneKey(r rune) KeyEvent {
	return KeyEvent{Rune: r}
}

// HandleKey processes a key press and reports whether the editor should quit.
func (e *Editor) HandleKey(key KeyEvent) bool {
	if key.IsSpecial() {
		switch key.SpecialKey {
		case KeyEscape, KeyInterrupt:
			e.quit = true
		}
		return e.quit
	}

	if key.Rune == 'q' {
		e.quit = true
		return true
	}
	if mode, ok := modeKeys[key.Rune]; ok {
		e.SetMode(mode)
	}
	return e.quit
}
