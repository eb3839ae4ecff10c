// Package config loads the editor settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"CurveBoard/internal/spline"
	"CurveBoard/internal/state"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window Window `toml:"window"`
	Points Points `toml:"points"`
	Curves Curves `toml:"curves"`
	Keys   Keys   `toml:"keys"`
	Log    Log    `toml:"log"`
}

type Window struct {
	Title      string  `toml:"title"`
	Width      float32 `toml:"width"`
	Height     float32 `toml:"height"`
	FPS        int     `toml:"fps"`
	Background string  `toml:"background"`
}

type Points struct {
	DisplayRadius  float64 `toml:"display_radius"`
	SelectedRadius float64 `toml:"selected_radius"`
	DefaultColor   string  `toml:"default_color"`
	SelectedColor  string  `toml:"selected_color"`
}

type Curves struct {
	LineWidth float32 `toml:"line_width"`
	Linestrip Curve   `toml:"linestrip"`
	BSpline   Curve   `toml:"bspline"`
	Cardinal  Curve   `toml:"cardinal"`
	Bezier    Curve   `toml:"bezier"`
}

type Curve struct {
	Color   string `toml:"color"`
	Visible bool   `toml:"visible"`
}

type Keys struct {
	// Remove is a fyne key name, e.g. "C" or "BackSpace".
	Remove string `toml:"remove"`
}

type Log struct {
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:      "CurveBoard",
			Width:      1024,
			Height:     768,
			FPS:        60,
			Background: "#2b2b2b",
		},
		Points: Points{
			DisplayRadius:  5,
			SelectedRadius: 10,
			DefaultColor:   "green",
			SelectedColor:  "red",
		},
		Curves: Curves{
			LineWidth: 2,
			Linestrip: Curve{Color: "white", Visible: true},
			BSpline:   Curve{Color: "pink", Visible: true},
			Cardinal:  Curve{Color: "yellow", Visible: true},
			Bezier:    Curve{Color: "green", Visible: true},
		},
		Keys: Keys{Remove: "C"},
		Log:  Log{Level: "info"},
	}
}

// Load reads and validates the file at path. An empty path yields the
// defaults. Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML over the defaults and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}
	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %gx%g", c.Window.Width, c.Window.Height)
	check(c.Window.FPS > 0 && c.Window.FPS <= 240, "fps %d out of range 1..240", c.Window.FPS)
	check(c.Points.DisplayRadius > 0, "display_radius %g must be positive", c.Points.DisplayRadius)
	check(c.Points.SelectedRadius > 0, "selected_radius %g must be positive", c.Points.SelectedRadius)
	check(c.Curves.LineWidth > 0, "line_width %g must be positive", c.Curves.LineWidth)
	check(strings.TrimSpace(c.Keys.Remove) != "", "keys.remove is empty")

	colors := map[string]string{
		"window.background":     c.Window.Background,
		"points.default_color":  c.Points.DefaultColor,
		"points.selected_color": c.Points.SelectedColor,
		"curves.linestrip":      c.Curves.Linestrip.Color,
		"curves.bspline":        c.Curves.BSpline.Color,
		"curves.cardinal":       c.Curves.Cardinal.Color,
		"curves.bezier":         c.Curves.Bezier.Color,
	}
	for key, value := range colors {
		_, err := ParseColor(value)
		check(err == nil, "%s: %v", key, err)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		check(false, "log.level: %v", err)
	}
	return errors.Join(errs...)
}

// ParseColor accepts a CSS color name or #rrggbb.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

func mustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// The accessors below assume a validated config.

func (c Config) PointStyle() state.Style {
	return state.Style{
		DisplayRadius:  c.Points.DisplayRadius,
		SelectedRadius: c.Points.SelectedRadius,
		DefaultColor:   mustColor(c.Points.DefaultColor),
		SelectedColor:  mustColor(c.Points.SelectedColor),
	}
}

func (c Config) curve(kind spline.Kind) Curve {
	switch kind {
	case spline.KindBSpline:
		return c.Curves.BSpline
	case spline.KindCardinal:
		return c.Curves.Cardinal
	case spline.KindBezier:
		return c.Curves.Bezier
	default:
		return c.Curves.Linestrip
	}
}

func (c Config) CurveColors() map[spline.Kind]color.Color {
	m := make(map[spline.Kind]color.Color, len(spline.Kinds))
	for _, k := range spline.Kinds {
		m[k] = mustColor(c.curve(k).Color)
	}
	return m
}

func (c Config) CurveVisible(kind spline.Kind) bool {
	return c.curve(kind).Visible
}

func (c Config) Background() color.RGBA {
	return mustColor(c.Window.Background)
}

func (c Config) LogLevel() slog.Level {
	l, _ := parseLevel(c.Log.Level)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return l, nil
}
