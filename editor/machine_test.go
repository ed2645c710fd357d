package editor

import (
	"testing"

	"parabola/curve"
)

func press(x, y float64) Event { return Event{Kind: EventPress, Pos: curve.Point{X: x, Y: y}, Inside: true} }
func move(x, y float64) Event  { return Event{Kind: EventMove, Pos: curve.Point{X: x, Y: y}, Inside: true} }

func TestMachine_HitRadius(t *testing.T) {
	drag := InitialPoints[RoleDrag]
	cases := []struct {
		name string
		dx   float64
		want State
	}{
		{"on point", 0, StateDragging},
		{"inside radius", 0.29, StateDragging},
		{"at radius", 0.3, StateIdle},
		{"outside radius", 0.31, StateIdle},
		{"far away", 3, StateIdle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMachine(DefaultCaptureRadius, false)
			tr := m.Handle(press(drag.X+tc.dx, drag.Y), InitialPoints)
			if m.State() != tc.want || tr.To != tc.want {
				t.Fatalf("state=%v transition=%+v want %v", m.State(), tr, tc.want)
			}
			if tr.From != StateIdle {
				t.Fatalf("from=%v", tr.From)
			}
		})
	}
}

func TestMachine_OnlyDragPointByDefault(t *testing.T) {
	m := NewMachine(DefaultCaptureRadius, false)
	left := InitialPoints[RoleLeft]
	m.Handle(press(left.X, left.Y), InitialPoints)
	if m.State() != StateIdle {
		t.Fatalf("left point picked up without drag-all")
	}
	if m.Draggable(RoleLeft) || !m.Draggable(RoleDrag) || m.Draggable(RoleRight) {
		t.Fatalf("draggable=%v", m.draggable)
	}
}

func TestMachine_DragAllPicksNearest(t *testing.T) {
	pts := Points{
		RoleLeft:  {X: 1, Y: 0},
		RoleDrag:  {X: 1.4, Y: 0},
		RoleRight: {X: 8, Y: 0},
	}
	m := NewMachine(DefaultCaptureRadius, true)
	m.Handle(press(1.15, 0), pts)
	role, ok := m.Selected()
	if !ok || role != RoleLeft {
		t.Fatalf("selected=%v ok=%v want left", role, ok)
	}

	m = NewMachine(DefaultCaptureRadius, true)
	m.Handle(press(8.1, 0.1), pts)
	role, ok = m.Selected()
	if !ok || role != RoleRight {
		t.Fatalf("selected=%v ok=%v want right", role, ok)
	}
}

func TestMachine_PressOutsideIgnored(t *testing.T) {
	m := NewMachine(DefaultCaptureRadius, false)
	drag := InitialPoints[RoleDrag]
	tr := m.Handle(Event{Kind: EventPress, Pos: drag, Inside: false}, InitialPoints)
	if m.State() != StateIdle || tr.Move {
		t.Fatalf("state=%v transition=%+v", m.State(), tr)
	}
}

func TestMachine_MoveWhileDragging(t *testing.T) {
	m := NewMachine(DefaultCaptureRadius, false)
	drag := InitialPoints[RoleDrag]
	m.Handle(press(drag.X, drag.Y), InitialPoints)

	tr := m.Handle(move(9.5, 5.0), InitialPoints)
	if !tr.Move || tr.Role != RoleDrag || tr.Pos != (curve.Point{X: 9.5, Y: 5.0}) {
		t.Fatalf("transition=%+v", tr)
	}
	if tr.From != StateDragging || tr.To != StateDragging {
		t.Fatalf("transition=%+v", tr)
	}

	tr = m.Handle(Event{Kind: EventMove, Inside: false}, InitialPoints)
	if tr.Move || m.State() != StateDragging {
		t.Fatalf("outside move: transition=%+v state=%v", tr, m.State())
	}

	tr = m.Handle(move(9, 1), InitialPoints)
	if !tr.Move {
		t.Fatalf("drag did not resume after re-entry")
	}
}

func TestMachine_MoveWhileIdleIgnored(t *testing.T) {
	m := NewMachine(DefaultCaptureRadius, false)
	drag := InitialPoints[RoleDrag]
	tr := m.Handle(move(drag.X, drag.Y), InitialPoints)
	if tr.Move || m.State() != StateIdle {
		t.Fatalf("transition=%+v state=%v", tr, m.State())
	}
}

func TestMachine_ReleaseAlwaysIdle(t *testing.T) {
	drag := InitialPoints[RoleDrag]
	releases := []Event{
		{Kind: EventRelease, Pos: drag, Inside: true},
		{Kind: EventRelease, Inside: false},
		{Kind: EventRelease, Pos: curve.Point{X: 100, Y: 100}, Inside: true},
	}
	for _, rel := range releases {
		for _, startDragging := range []bool{false, true} {
			m := NewMachine(DefaultCaptureRadius, false)
			if startDragging {
				m.Handle(press(drag.X, drag.Y), InitialPoints)
				if m.State() != StateDragging {
					t.Fatalf("setup: not dragging")
				}
			}
			tr := m.Handle(rel, InitialPoints)
			if m.State() != StateIdle || tr.To != StateIdle {
				t.Fatalf("release %+v from dragging=%v: state=%v", rel, startDragging, m.State())
			}
			if _, ok := m.Selected(); ok {
				t.Fatalf("selection survived release")
			}
		}
	}
}

func TestMachine_SecondPressWhileDragging(t *testing.T) {
	m := NewMachine(DefaultCaptureRadius, true)
	left := InitialPoints[RoleLeft]
	drag := InitialPoints[RoleDrag]
	m.Handle(press(drag.X, drag.Y), InitialPoints)
	m.Handle(press(left.X, left.Y), InitialPoints)
	role, _ := m.Selected()
	if role != RoleDrag {
		t.Fatalf("selection switched to %v during drag", role)
	}
}

func TestNewMachine_DefaultRadius(t *testing.T) {
	m := NewMachine(0, false)
	if m.radius != DefaultCaptureRadius {
		t.Fatalf("radius=%v", m.radius)
	}
}
