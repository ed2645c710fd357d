package editor

import (
	"math"

	"parabola/curve"
)

// DefaultCaptureRadius is the hit-test radius in plot units.
const DefaultCaptureRadius = 0.3

// State is the drag interaction state.
type State uint8

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// EventKind is the phase of a pointer event.
type EventKind uint8

const (
	EventPress EventKind = iota + 1
	EventMove
	EventRelease
)

// Event is a pointer event in plot coordinates. Inside is false when the pointer is
// outside the plotting area, in which case Pos is meaningless.
type Event struct {
	Kind   EventKind
	Pos    curve.Point
	Inside bool
}

// Transition describes the outcome of one event.
type Transition struct {
	From State
	To   State
	Role Role

	// Move is set when the selected point should take Pos.
	Move bool
	Pos  curve.Point
}

// Machine is the idle/dragging state machine. It never touches the points; callers
// apply the returned Transition.
type Machine struct {
	state    State
	selected Role

	radius    float64
	draggable [roleCount]bool
}

// NewMachine returns an idle machine. With dragAll every role is draggable, otherwise
// only RoleDrag is.
func NewMachine(radius float64, dragAll bool) *Machine {
	if radius <= 0 || math.IsNaN(radius) {
		radius = DefaultCaptureRadius
	}
	m := &Machine{radius: radius}
	for r := Role(0); r < roleCount; r++ {
		m.draggable[r] = dragAll || r == RoleDrag
	}
	return m
}

func (m *Machine) State() State { return m.state }

// Selected returns the role being dragged.
func (m *Machine) Selected() (Role, bool) {
	return m.selected, m.state == StateDragging
}

// Draggable reports whether r can be picked up.
func (m *Machine) Draggable(r Role) bool {
	return r < roleCount && m.draggable[r]
}

// Handle feeds one event through the machine.
func (m *Machine) Handle(ev Event, pts Points) Transition {
	tr := Transition{From: m.state, To: m.state, Role: m.selected}

	switch ev.Kind {
	case EventPress:
		if m.state != StateIdle || !ev.Inside {
			return tr
		}
		r, ok := m.hitTest(pts, ev.Pos)
		if !ok {
			return tr
		}
		m.state = StateDragging
		m.selected = r

	case EventMove:
		if m.state != StateDragging || !ev.Inside {
			return tr
		}
		tr.Move = true
		tr.Pos = ev.Pos

	case EventRelease:
		m.state = StateIdle
	}

	tr.To = m.state
	tr.Role = m.selected
	return tr
}

// hitTest returns the nearest draggable point strictly closer than the radius.
func (m *Machine) hitTest(pts Points, pos curve.Point) (Role, bool) {
	best := Role(0)
	bestDist := math.Inf(1)
	for r := Role(0); r < roleCount; r++ {
		if !m.draggable[r] {
			continue
		}
		d := pts[r].Dist(pos)
		if d < m.radius && d < bestDist {
			best = r
			bestDist = d
		}
	}
	return best, !math.IsInf(bestDist, 1)
}
