// Package frame runs the per-frame pipeline: input, interaction, curve
// evaluation and draw call emission, always in that order.
package frame

import (
	"image/color"
	"log/slog"

	"CurveBoard/internal/interact"
	"CurveBoard/internal/spline"
	"CurveBoard/internal/state"

	"golang.org/x/image/colornames"
)

// Input yields the raw events received since the previous call.
type Input interface {
	Poll() []interact.Event
}

// DefaultColors are the curve colors used when none are configured.
func DefaultColors() map[spline.Kind]color.Color {
	return map[spline.Kind]color.Color{
		spline.KindLinestrip: colornames.White,
		spline.KindBSpline:   colornames.Pink,
		spline.KindCardinal:  colornames.Yellow,
		spline.KindBezier:    colornames.Green,
	}
}

type Engine struct {
	store   *state.Store
	machine *interact.Machine
	tracker interact.Tracker
	input   Input

	colors  map[spline.Kind]color.Color
	visible map[spline.Kind]bool
	frames  uint64
	log     *slog.Logger
}

func NewEngine(store *state.Store, camera interact.Camera, input Input, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	e := &Engine{
		store:   store,
		machine: interact.NewMachine(store, camera, log),
		input:   input,
		colors:  DefaultColors(),
		visible: make(map[spline.Kind]bool),
		log:     log.With("component", "engine"),
	}
	for _, k := range spline.Kinds {
		e.visible[k] = true
	}
	return e
}

func (e *Engine) Store() *state.Store {
	return e.store
}

func (e *Engine) Machine() *interact.Machine {
	return e.machine
}

// Frames is the number of completed ticks.
func (e *Engine) Frames() uint64 {
	return e.frames
}

func (e *Engine) SetVisible(kind spline.Kind, visible bool) {
	e.visible[kind] = visible
}

func (e *Engine) Visible(kind spline.Kind) bool {
	return e.visible[kind]
}

// SetColors replaces the colors of the given curve kinds.
func (e *Engine) SetColors(colors map[spline.Kind]color.Color) {
	for k, c := range colors {
		e.colors[k] = c
	}
}

// Tick runs one frame and emits its draw calls to r.
func (e *Engine) Tick(r Renderer) interact.Result {
	var events []interact.Event
	if e.input != nil {
		events = e.input.Poll()
	}
	pointer := e.tracker.Feed(events)

	res := e.machine.Step(pointer)
	if res.Removed || res.Created >= 0 {
		e.log.Debug("points changed", "frame", e.frames, "count", e.store.Len())
	}

	e.draw(r)
	e.frames++
	return res
}

func (e *Engine) draw(r Renderer) {
	positions := e.store.Positions()
	for _, kind := range spline.Kinds {
		if !e.visible[kind] {
			continue
		}
		samples := spline.Tessellate(kind, positions)
		if len(samples) < 2 {
			continue
		}
		r.LineStrip(samples, e.colors[kind])
	}
	for _, p := range e.store.Points() {
		r.Circle(p.Position, p.Radius(), p.Color())
	}
}
