package hal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	Width  int
	Height int
	Hz     int
}

// newTerminalHAL builds the host HAL for terminal mode. Log lines go to logs while
// the screen is owned by tcell.
func newTerminalHAL(cfg TerminalConfig, logs io.Writer) *hostHAL {
	h := newHostHAL(cfg.Width, cfg.Height)
	h.logger.setOutput(logs)
	return h
}

// RunTerminal renders the framebuffer into the terminal with half-block cells and
// forwards mouse and keyboard input. It blocks until Esc, Ctrl-C or ErrStop.
// Log lines are held back and written to stdout once the screen is released.
func RunTerminal(cfg TerminalConfig, newApp func(HAL) func() error) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}

	var logs bytes.Buffer
	h := newTerminalHAL(cfg, &logs)
	defer func() {
		h.logger.setOutput(os.Stdout)
		_, _ = os.Stdout.Write(logs.Bytes())
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	step := newApp(h)

	tr := &termRenderer{screen: screen, fb: h.fb}
	tr.resize()

	eventCh := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventCh <- ev:
			case <-quit:
				return
			}
		}
	}()

	frame := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer frame.Stop()

	for {
		select {
		case ev := <-eventCh:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if ev.Key() == tcell.KeyRune {
					h.kbd.emit(KeyEvent{Press: true, Rune: ev.Rune()})
				}
			case *tcell.EventMouse:
				cx, cy := ev.Position()
				x, y := tr.cellToPixel(cx, cy)
				h.ptr.sample(x, y, ev.Buttons()&tcell.Button1 != 0)
			case *tcell.EventResize:
				tr.resize()
				screen.Sync()
			}

		case <-frame.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrStop) {
						return nil
					}
					return err
				}
			}
			tr.draw()
		}
	}
}

// termRenderer downsamples the framebuffer into terminal cells. Every cell holds two
// vertical samples drawn as an upper half block; the brightest framebuffer pixel of
// each sample area wins so one-pixel lines survive the reduction.
type termRenderer struct {
	screen tcell.Screen
	fb     *hostFramebuffer

	cols    int
	rows    int
	scratch []byte

	shown uint64
	dirty bool
}

func (r *termRenderer) resize() {
	r.cols, r.rows = r.screen.Size()
	if r.cols < 1 {
		r.cols = 1
	}
	if r.rows < 1 {
		r.rows = 1
	}
	r.dirty = true
}

// cellToPixel maps a terminal cell to the framebuffer pixel at its centre.
func (r *termRenderer) cellToPixel(cx, cy int) (x, y int) {
	x = (2*cx + 1) * r.fb.width / (2 * r.cols)
	y = (2*cy + 1) * r.fb.height / (2 * r.rows)
	return x, y
}

// draw repaints the terminal when a new frame was presented or the size changed.
func (r *termRenderer) draw() {
	if n := r.fb.presentCount(); n != r.shown || r.dirty {
		r.shown = n
		r.dirty = false
	} else {
		return
	}
	if len(r.scratch) != len(r.fb.buf) {
		r.scratch = make([]byte, len(r.fb.buf))
	}
	r.fb.snapshotRGB565(r.scratch)

	subRows := r.rows * 2
	for cy := 0; cy < r.rows; cy++ {
		for cx := 0; cx < r.cols; cx++ {
			x0 := cx * r.fb.width / r.cols
			x1 := (cx + 1) * r.fb.width / r.cols
			top := r.brightest(x0, x1, (2*cy)*r.fb.height/subRows, (2*cy+1)*r.fb.height/subRows)
			bot := r.brightest(x0, x1, (2*cy+1)*r.fb.height/subRows, (2*cy+2)*r.fb.height/subRows)
			style := tcell.StyleDefault.Foreground(top).Background(bot)
			r.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	r.screen.Show()
}

func (r *termRenderer) brightest(x0, x1, y0, y1 int) tcell.Color {
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	var br, bg, bb uint8
	best := -1
	for y := y0; y < y1 && y < r.fb.height; y++ {
		for x := x0; x < x1 && x < r.fb.width; x++ {
			pr, pg, pb := pixelAt(r.scratch, r.fb.stride, x, y)
			if l := luma(pr, pg, pb); l > best {
				best = l
				br, bg, bb = pr, pg, pb
			}
		}
	}
	return tcell.NewRGBColor(int32(br), int32(bg), int32(bb))
}
