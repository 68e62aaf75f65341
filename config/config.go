// Package config parses the termdraw command line and environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"termdraw/canvas"
	"termdraw/editor"
)

// TerminalModeEnv forces the glyph set when -glyphs is left on auto.
const TerminalModeEnv = "TERMDRAW_TERMINAL_MODE"

// Common errors
var (
	ErrInvalidInterval = errors.New("redraw interval must be positive")
	ErrUnknownGlyphs   = errors.New("unknown glyph set")
	ErrInvalidLevel    = errors.New("invalid log level")
	ErrUnexpectedArgs  = errors.New("unexpected arguments")
)

// Config is the resolved runtime configuration.
type Config struct {
	LogFile    string        // Empty disables logging
	LogLevel   slog.Level    // Minimum level written to LogFile
	Interval   time.Duration // Redraw cadence
	Mode       editor.DrawMode
	GlyphsName string // "unicode" or "ascii" after resolution
	Glyphs     canvas.GlyphSet
	Junctions  bool // Edge-aware corner and junction rendering
	StatusLine bool // Mode and key help on the bottom row
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		LogLevel:   slog.LevelInfo,
		Interval:   10 * time.Millisecond,
		Mode:       editor.ModeBox,
		GlyphsName: "unicode",
		Glyphs:     canvas.UnicodeGlyphs,
		StatusLine: true,
	}
}

// rawFlags holds flag values before validation.
type rawFlags struct {
	logFile    string
	logLevel   string
	interval   time.Duration
	mode       string
	glyphs     string
	junctions  bool
	statusLine bool
}

func newFlagSet(raw *rawFlags, output io.Writer) *flag.FlagSet {
	def := Default()

	fs := flag.NewFlagSet("termdraw", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&raw.logFile, "log", "", "Append logs to this file (default: no logging)")
	fs.StringVar(&raw.logLevel, "log-level", strings.ToLower(def.LogLevel.String()), "Log level: debug, info, warn, error")
	fs.DurationVar(&raw.interval, "interval", def.Interval, "Redraw interval")
	fs.StringVar(&raw.mode, "mode", strings.ToLower(def.Mode.String()), "Initial draw mode: box, border, line, arrow")
	fs.StringVar(&raw.glyphs, "glyphs", "auto", "Glyph set: auto, unicode, ascii")
	fs.BoolVar(&raw.junctions, "junctions", false, "Join outlines and rules with box-drawing corners and junctions")
	fs.BoolVar(&raw.statusLine, "status", def.StatusLine, "Show the status line")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: termdraw [options]\n\n")
		fmt.Fprintf(fs.Output(), "Draw boxes, outlines, lines and arrows in the terminal with the mouse.\n\n")
		fmt.Fprintf(fs.Output(), "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), "\nKeys:\n")
		fmt.Fprintf(fs.Output(), "  s  filled box    b  box outline\n")
		fmt.Fprintf(fs.Output(), "  l  line          a  arrow\n")
		fmt.Fprintf(fs.Output(), "  q, Esc  quit\n")
		fmt.Fprintf(fs.Output(), "\nEnvironment:\n")
		fmt.Fprintf(fs.Output(), "  %s=ascii|unicode  glyph set used when -glyphs=auto\n", TerminalModeEnv)
	}
	return fs
}

// Load parses args (without the program name) and resolves the result
// against the environment. Usage and parse errors are written to output.
// flag.ErrHelp is returned unchanged when -h or -help is given.
func Load(args []string, getenv func(string) string, output io.Writer) (Config, error) {
	var raw rawFlags
	fs := newFlagSet(&raw, output)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(fs.Args(), " "))
	}

	cfg := Default()
	cfg.LogFile = raw.logFile
	cfg.Junctions = raw.junctions
	cfg.StatusLine = raw.statusLine

	if err := cfg.LogLevel.UnmarshalText([]byte(raw.logLevel)); err != nil {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidLevel, raw.logLevel)
	}

	if raw.interval <= 0 {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidInterval, raw.interval)
	}
	cfg.Interval = raw.interval

	mode, err := editor.ParseDrawMode(raw.mode)
	if err != nil {
		return Config{}, fmt.Errorf("parsing -mode: %w", err)
	}
	cfg.Mode = mode

	name, glyphs, err := resolveGlyphs(raw.glyphs, getenv)
	if err != nil {
		return Config{}, err
	}
	cfg.GlyphsName = name
	cfg.Glyphs = glyphs

	return cfg, nil
}

// resolveGlyphs picks the glyph set. An explicit flag wins, then the
// environment override, then Unicode if it renders one cell wide here.
func resolveGlyphs(name string, getenv func(string) string) (string, canvas.GlyphSet, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "auto" || name == "" {
		if getenv != nil {
			name = strings.ToLower(strings.TrimSpace(getenv(TerminalModeEnv)))
		}
		if name == "" {
			if canvas.UnicodeGlyphs.Validate() == nil {
				name = "unicode"
			} else {
				name = "ascii"
			}
		}
	}

	switch name {
	case "unicode":
		return name, canvas.UnicodeGlyphs, nil
	case "ascii":
		return name, canvas.ASCIIGlyphs, nil
	default:
		return "", canvas.GlyphSet{}, fmt.Errorf("%w: %q", ErrUnknownGlyphs, name)
	}
}
