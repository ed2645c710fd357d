package editor

import (
	"sync"

	"parabola/hal"
)

type testFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newTestFB(w, h int) *testFB {
	return &testFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) Present() error          { f.presents++; return nil }

func (f *testFB) ClearRGB(r, g, b uint8) {
	p := rgb565From888(r, g, b)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

type testLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *testLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *testLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

type testHAL struct {
	fb  *testFB
	log *testLogger
	ptr chan hal.PointerEvent
	kbd chan hal.KeyEvent
}

func newTestHAL(w, h int) *testHAL {
	return &testHAL{
		fb:  newTestFB(w, h),
		log: &testLogger{},
		ptr: make(chan hal.PointerEvent, 64),
		kbd: make(chan hal.KeyEvent, 8),
	}
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Display() hal.Display { return h }
func (h *testHAL) Input() hal.Input     { return h }

func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) Keyboard() hal.Keyboard       { return testKeyboard(h.kbd) }
func (h *testHAL) Pointer() hal.Pointer         { return testPointer(h.ptr) }

type testKeyboard chan hal.KeyEvent

func (k testKeyboard) Events() <-chan hal.KeyEvent { return k }

type testPointer chan hal.PointerEvent

func (p testPointer) Events() <-chan hal.PointerEvent { return p }
