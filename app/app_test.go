package app

import (
	"errors"
	"strings"
	"testing"

	"parabola/curve"
	"parabola/editor"
	"parabola/hal"
)

type testFB struct {
	w, h int
	buf  []byte
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) Present() error          { return nil }

func (f *testFB) ClearRGB(r, g, b uint8) {
	p := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

type testLogger struct{ lines []string }

func (l *testLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *testLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type testHAL struct {
	fb  *testFB
	log *testLogger
	ptr chan hal.PointerEvent
}

func newTestHAL(w, h int) *testHAL {
	return &testHAL{
		fb:  &testFB{w: w, h: h, buf: make([]byte, w*h*2)},
		log: &testLogger{},
		ptr: make(chan hal.PointerEvent, 64),
	}
}

func (h *testHAL) Logger() hal.Logger           { return h.log }
func (h *testHAL) Display() hal.Display         { return h }
func (h *testHAL) Input() hal.Input             { return h }
func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) Keyboard() hal.Keyboard       { return nil }
func (h *testHAL) Pointer() hal.Pointer         { return h }

func (h *testHAL) Events() <-chan hal.PointerEvent { return h.ptr }

func (h *testHAL) logged(prefix string) bool {
	for _, l := range h.log.lines {
		if strings.HasPrefix(l, prefix) {
			return true
		}
	}
	return false
}

func TestNew_StepRunsDemoScript(t *testing.T) {
	h := newTestHAL(480, 320)
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	step := New(h, cfg)
	if !h.logged("parabola ") {
		t.Fatalf("no startup line: %q", h.log.lines)
	}

	for _, ev := range DemoScript(480, 320) {
		h.ptr <- ev
		if err := step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	for _, want := range []string{"editor: ready", "editor: drag start", "editor: drag end"} {
		if !h.logged(want) {
			t.Fatalf("missing %q in %q", want, h.log.lines)
		}
	}
}

func TestNew_ConstructionErrorReportedByStep(t *testing.T) {
	step := New(newTestHAL(16, 16), Config{})
	if err := step(); err == nil || !strings.HasPrefix(err.Error(), "app: ") {
		t.Fatalf("err=%v", err)
	}
}

func TestDemoScript_Shape(t *testing.T) {
	s := DemoScript(480, 320)
	if len(s) < 3 {
		t.Fatalf("script too short: %d", len(s))
	}
	if s[0].Kind != hal.PointerPress || s[len(s)-1].Kind != hal.PointerRelease {
		t.Fatalf("first=%v last=%v", s[0].Kind, s[len(s)-1].Kind)
	}
	x, y := editor.ScreenPoint(480, 320, editor.DefaultView, editor.InitialPoints[editor.RoleDrag])
	if s[0].X != x || s[0].Y != y {
		t.Fatalf("press at (%d,%d) want (%d,%d)", s[0].X, s[0].Y, x, y)
	}

	rx, _ := editor.ScreenPoint(480, 320, editor.DefaultView, curve.Point{X: editor.InitialPoints[editor.RoleRight].X})
	found := false
	for _, ev := range s {
		found = found || (ev.Kind == hal.PointerMove && ev.X == rx)
	}
	if !found {
		t.Fatalf("no move onto the right point's column")
	}
}

func TestGuardStep_RecoversPanic(t *testing.T) {
	h := newTestHAL(120, 80)
	step := guardStep(h, func() error { panic("boom") })
	err := step()
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err=%v", err)
	}
	if !h.logged("Editor panic:") {
		t.Fatalf("panic not logged: %q", h.log.lines)
	}
}

func TestGuardStep_PassesThrough(t *testing.T) {
	step := guardStep(newTestHAL(8, 8), func() error { return hal.ErrStop })
	if err := step(); !errors.Is(err, hal.ErrStop) {
		t.Fatalf("err=%v", err)
	}
}
