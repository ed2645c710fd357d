package editor

import (
	"errors"
	"fmt"

	"parabola/curve"
)

// View is the fixed plot window in plot units.
type View struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// DefaultView matches the editor's fixed display bounds.
var DefaultView = View{XMin: 0, XMax: 15, YMin: -5, YMax: 5}

func (v View) valid() bool {
	return v.XMin < v.XMax && v.YMin < v.YMax
}

// Config tunes the editor. Zero values select the defaults.
type Config struct {
	CaptureRadius float64
	DragAll       bool
	Samples       int
	View          View

	// Logf receives one line per notable editor event. Nil discards.
	Logf func(format string, args ...any)
}

// Editor holds the three points, their interpolating quadratic and the drag state.
type Editor struct {
	cfg Config
	m   *Machine

	initial Points
	points  Points

	coeffs  curve.Coefficients
	samples []curve.Point

	// err is the last solve failure; coeffs and samples keep the last valid curve.
	err error

	version uint64
}

// New builds an editor over initial. The initial configuration must be solvable.
func New(cfg Config, initial Points) (*Editor, error) {
	if cfg.CaptureRadius <= 0 {
		cfg.CaptureRadius = DefaultCaptureRadius
	}
	if cfg.Samples < 2 {
		cfg.Samples = curve.DefaultSamples
	}
	if !cfg.View.valid() {
		cfg.View = DefaultView
	}

	e := &Editor{
		cfg:     cfg,
		m:       NewMachine(cfg.CaptureRadius, cfg.DragAll),
		initial: initial,
		points:  initial,
		samples: make([]curve.Point, 0, cfg.Samples),
	}
	if err := e.recompute(); err != nil {
		return nil, fmt.Errorf("editor: initial points: %w", err)
	}
	return e, nil
}

func (e *Editor) Points() Points                   { return e.points }
func (e *Editor) Coefficients() curve.Coefficients { return e.coeffs }
func (e *Editor) Samples() []curve.Point           { return e.samples }
func (e *Editor) View() View                       { return e.cfg.View }
func (e *Editor) State() State                     { return e.m.State() }
func (e *Editor) Selected() (Role, bool)           { return e.m.Selected() }
func (e *Editor) Draggable(r Role) bool            { return e.m.Draggable(r) }

// Err returns the current degenerate-configuration error, if any.
func (e *Editor) Err() error { return e.err }

// Version increments on every visible change.
func (e *Editor) Version() uint64 { return e.version }

// Handle applies one pointer event and reports whether anything visible changed.
func (e *Editor) Handle(ev Event) bool {
	tr := e.m.Handle(ev, e.points)
	changed := false

	if tr.From != tr.To {
		changed = true
		switch tr.To {
		case StateDragging:
			e.logf("drag start: %s at %v", tr.Role, e.points[tr.Role])
		case StateIdle:
			e.logf("drag end: %s at %v", tr.Role, e.points[tr.Role])
		}
	}

	if tr.Move && tr.Pos != e.points[tr.Role] {
		e.points[tr.Role] = tr.Pos
		_ = e.recompute()
		changed = true
	}

	if changed {
		e.version++
	}
	return changed
}

// Reset restores the initial points and drops any drag in progress.
func (e *Editor) Reset() {
	e.m.Handle(Event{Kind: EventRelease}, e.points)
	e.points = e.initial
	_ = e.recompute()
	e.version++
	e.logf("reset: %s", e.coeffs)
}

// recompute re-solves from scratch. On a degenerate configuration the previous
// coefficients and samples stay in place.
func (e *Editor) recompute() error {
	c, err := curve.Solve(e.points)
	if err != nil {
		if e.err == nil {
			e.logf("%s; curve frozen", e.describe(err))
		}
		e.err = err
		return err
	}
	if e.err != nil {
		e.logf("curve recovered: %s", c)
	}
	e.err = nil
	e.coeffs = c
	v := e.cfg.View
	e.samples = curve.AppendSamples(e.samples[:0], c, v.XMin, v.XMax, e.cfg.Samples)
	return nil
}

// describe renders a solve error with role names instead of indexes.
func (e *Editor) describe(err error) string {
	var de *curve.DegenerateError
	if errors.As(err, &de) && de.I >= 0 {
		return fmt.Sprintf("degenerate: %s and %s share x=%.2f", Role(de.I), Role(de.J), de.X)
	}
	return err.Error()
}

// Warning returns the status text for the current error, or "".
func (e *Editor) Warning() string {
	if e.err == nil {
		return ""
	}
	return e.describe(e.err)
}

func (e *Editor) logf(format string, args ...any) {
	if e.cfg.Logf != nil {
		e.cfg.Logf(format, args...)
	}
}
