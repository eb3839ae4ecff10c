// Package interact maps per-frame pointer and keyboard state onto control
// point mutations.
//
// The machine keeps no mode of its own. Whether a drag is in progress is
// read back from the store's selection every frame, so a missed release
// or a vanished pointer can never leave a stale drag behind.
package interact

import (
	"fmt"
	"log/slog"

	"CurveBoard/internal/state"

	"seehuhn.de/go/geom/vec"
)

// Camera projects screen coordinates into world coordinates. It reports
// false when no projection is possible, for example before the viewport
// has a size.
type Camera interface {
	ScreenToWorld(screen vec.Vec2) (vec.Vec2, bool)
}

type Mode int

const (
	Idle Mode = iota
	Dragging
)

func (m Mode) String() string {
	if m == Dragging {
		return "dragging"
	}
	return "idle"
}

// Result describes what a single Step changed.
type Result struct {
	Removed bool
	// Created and Selected are point indices, or -1.
	Created  int
	Selected int
	Moved    bool
}

type Machine struct {
	store  *state.Store
	camera Camera
	log    *slog.Logger
}

func NewMachine(store *state.Store, camera Camera, log *slog.Logger) *Machine {
	if log == nil {
		log = slog.Default()
	}
	return &Machine{
		store:  store,
		camera: camera,
		log:    log.With("component", "interact"),
	}
}

// Mode derives the interaction mode from the store. The index is the
// dragged point, or -1 when idle.
func (m *Machine) Mode() (Mode, int) {
	if i, ok := m.store.FindSelected(); ok {
		return Dragging, i
	}
	return Idle, -1
}

// Status is a short human readable summary for the status bar.
func (m *Machine) Status() string {
	mode, i := m.Mode()
	if mode == Dragging {
		return fmt.Sprintf("%d points, dragging #%d", m.store.Len(), i)
	}
	return fmt.Sprintf("%d points, %s", m.store.Len(), mode)
}

// Step runs one frame: deletion, then drag or selection, then creation.
func (m *Machine) Step(p PointerState) Result {
	res := Result{Created: -1, Selected: -1}

	if p.RemovePressed {
		res.Removed = m.store.RemoveLast()
	}

	m.dragOrSelect(p, &res)

	if p.RightPressed && p.Known {
		if world, ok := m.project(p.Position); ok {
			res.Created = m.store.Append(world)
		}
	}
	return res
}

func (m *Machine) dragOrSelect(p PointerState, res *Result) {
	if !p.Known || !p.LeftHeld {
		m.store.ClearSelection()
		return
	}
	world, ok := m.project(p.Position)
	if !ok {
		return
	}

	// An active drag keeps its point; no new hit test this frame.
	if _, ok := m.store.FindSelected(); ok {
		m.store.MoveSelectedTo(world)
		res.Moved = true
		return
	}

	if i, ok := m.store.FindWithinRadius(world); ok {
		m.store.ClearSelection()
		m.store.Select(i)
		res.Selected = i
		m.log.Debug("drag started", "index", i, "x", world.X, "y", world.Y)
	}
}

func (m *Machine) project(screen vec.Vec2) (vec.Vec2, bool) {
	if m.camera == nil {
		return vec.Vec2{}, false
	}
	return m.camera.ScreenToWorld(screen)
}
