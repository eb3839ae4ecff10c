// Package state holds the ordered control points and their selection.
//
// The store is owned by a single goroutine (the frame loop) and is not
// safe for concurrent use.
package state

import (
	"log/slog"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/vec"
)

// Store is the ordered sequence of control points. Order defines the
// curve parameterization. At most one point is selected at any time.
type Store struct {
	points []ControlPoint
	style  Style
	log    *slog.Logger
}

func NewStore(style Style, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		style: style,
		log:   log.With("component", "store"),
	}
}

// SetStyle changes the attributes of points appended from now on.
func (s *Store) SetStyle(style Style) {
	s.style = style
}

func (s *Store) Style() Style {
	return s.style
}

func (s *Store) Len() int {
	return len(s.points)
}

// At returns the point at index i. It panics if i is out of range.
func (s *Store) At(i int) ControlPoint {
	return s.points[i]
}

// Points returns a copy of all points in order.
func (s *Store) Points() []ControlPoint {
	out := make([]ControlPoint, len(s.points))
	copy(out, s.points)
	return out
}

// Positions returns the point positions in order.
func (s *Store) Positions() []vec.Vec2 {
	out := make([]vec.Vec2, len(s.points))
	for i, p := range s.points {
		out[i] = p.Position
	}
	return out
}

// Append adds an unselected point at the tail and returns its index.
func (s *Store) Append(pos vec.Vec2) int {
	p := ControlPoint{
		ID:             uuid.NewString(),
		Position:       pos,
		DisplayRadius:  s.style.DisplayRadius,
		SelectedRadius: s.style.SelectedRadius,
		DefaultColor:   s.style.DefaultColor,
		SelectedColor:  s.style.SelectedColor,
	}
	s.points = append(s.points, p)
	idx := len(s.points) - 1
	s.log.Debug("point added", "id", p.ID, "index", idx, "x", pos.X, "y", pos.Y)
	return idx
}

// RemoveLast pops the tail point. It reports false on an empty store.
func (s *Store) RemoveLast() bool {
	n := len(s.points)
	if n == 0 {
		return false
	}
	p := s.points[n-1]
	s.points[n-1] = ControlPoint{}
	s.points = s.points[:n-1]
	s.log.Debug("point removed", "id", p.ID, "index", n-1)
	return true
}

func (s *Store) ClearSelection() {
	for i := range s.points {
		s.points[i].Selected = false
	}
}

// Select marks point i as selected and unselects any other point, so
// callers need not call ClearSelection first.
// An out of range index is ignored.
func (s *Store) Select(i int) {
	if i < 0 || i >= len(s.points) {
		return
	}
	for j := range s.points {
		s.points[j].Selected = j == i
	}
	s.log.Debug("point selected", "id", s.points[i].ID, "index", i)
}

// MoveSelectedTo moves the selected point, if there is one.
func (s *Store) MoveSelectedTo(pos vec.Vec2) {
	if i, ok := s.FindSelected(); ok {
		s.points[i].Position = pos
	}
}

func (s *Store) FindSelected() (int, bool) {
	for i, p := range s.points {
		if p.Selected {
			return i, true
		}
	}
	return -1, false
}

// FindWithinRadius returns the first point, in store order, whose distance
// to pos is strictly less than its SelectedRadius. Earlier points win when
// hit zones overlap, even if a later point is closer.
func (s *Store) FindWithinRadius(pos vec.Vec2) (int, bool) {
	for i, p := range s.points {
		if p.Position.Sub(pos).Length() < p.SelectedRadius {
			return i, true
		}
	}
	return -1, false
}
