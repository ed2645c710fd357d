package editor

import (
	"errors"
	"fmt"

	"parabola/hal"
)

// TaskConfig configures a Task.
type TaskConfig struct {
	Editor Config

	// Verbose logs every pointer event.
	Verbose bool
}

// Task binds an Editor to a HAL display and input devices. Step is called once per
// host frame and does all of its work synchronously.
type Task struct {
	log     hal.Logger
	verbose bool

	fb  hal.Framebuffer
	d   *fbDisplay
	r   *renderer
	con *console

	ed *Editor

	ptr <-chan hal.PointerEvent
	kbd <-chan hal.KeyEvent

	drawn  uint64
	primed bool
}

// NewTask builds the editor and its display. The HAL must provide a framebuffer.
func NewTask(h hal.HAL, cfg TaskConfig) (*Task, error) {
	if h == nil || h.Display() == nil {
		return nil, errors.New("editor: no display")
	}
	fb := h.Display().Framebuffer()
	if fb == nil {
		return nil, errors.New("editor: no framebuffer")
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("editor: unsupported pixel format %d", fb.Format())
	}

	t := &Task{log: h.Logger(), verbose: cfg.Verbose, fb: fb}
	t.d = newFBDisplay(fb)

	view := cfg.Editor.View
	if !view.valid() {
		view = DefaultView
	}
	t.r = newRenderer(t.d, view)
	if !t.r.l.plot.valid() {
		return nil, fmt.Errorf("editor: framebuffer %dx%d too small", fb.Width(), fb.Height())
	}
	cr := t.r.l.console
	t.con = newConsole(t.d.region(int(cr.x), int(cr.y), int(cr.w), int(cr.h)), t.r.l.font)

	ecfg := cfg.Editor
	ecfg.View = view
	ecfg.Logf = t.logf
	ed, err := New(ecfg, InitialPoints)
	if err != nil {
		return nil, err
	}
	t.ed = ed

	if in := h.Input(); in != nil {
		if p := in.Pointer(); p != nil {
			t.ptr = p.Events()
		}
		if k := in.Keyboard(); k != nil {
			t.kbd = k.Events()
		}
	}

	t.logf("ready: %s", ed.Coefficients())
	return t, nil
}

// Editor exposes the underlying editor.
func (t *Task) Editor() *Editor { return t.ed }

// Step drains pending input and redraws when the scene changed. It returns
// hal.ErrStop when the user asks to quit.
func (t *Task) Step() error {
	for {
		select {
		case ev := <-t.ptr:
			t.handlePointer(ev)
			continue
		case ev := <-t.kbd:
			if err := t.handleKey(ev); err != nil {
				return err
			}
			continue
		default:
		}
		break
	}

	if !t.primed || t.ed.Version() != t.drawn {
		t.render()
	}
	return nil
}

func (t *Task) handlePointer(ev hal.PointerEvent) {
	pos, inside := t.r.l.plot.toPlot(ev.X, ev.Y)
	var kind EventKind
	switch ev.Kind {
	case hal.PointerPress:
		kind = EventPress
	case hal.PointerMove:
		kind = EventMove
	case hal.PointerRelease:
		kind = EventRelease
	default:
		return
	}
	if t.verbose {
		t.logLine(fmt.Sprintf("editor: pointer %s px=(%d,%d) plot=%v inside=%v", ev.Kind, ev.X, ev.Y, pos, inside))
	}
	t.ed.Handle(Event{Kind: kind, Pos: pos, Inside: inside})
}

func (t *Task) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	switch {
	case ev.Code == hal.KeyEscape:
		return hal.ErrStop
	case ev.Rune == 'r' || ev.Rune == 'R':
		t.ed.Reset()
	}
	return nil
}

func (t *Task) render() {
	t.r.render(t.ed)
	t.drawn = t.ed.Version()
	t.primed = true
	_ = t.d.Display()
}

func (t *Task) logf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	t.logLine("editor: " + line)
	t.con.Printf("%s", line)
}

func (t *Task) logLine(s string) {
	if t.log != nil {
		t.log.WriteLineString(s)
	}
}
