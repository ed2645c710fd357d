package hal

const inputQueueLen = 64

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, inputQueueLen)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

// hostPointer tracks the primary button so front ends can feed raw samples and get
// press/move/release transitions out.
type hostPointer struct {
	ch chan PointerEvent

	down   bool
	lastX  int
	lastY  int
	seeded bool
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, inputQueueLen)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) emit(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}

// sample records the current cursor position and button level.
func (p *hostPointer) sample(x, y int, down bool) {
	moved := !p.seeded || x != p.lastX || y != p.lastY
	p.seeded = true
	p.lastX, p.lastY = x, y

	switch {
	case down && !p.down:
		p.down = true
		p.emit(PointerEvent{Kind: PointerPress, X: x, Y: y})
	case !down && p.down:
		p.down = false
		if moved {
			p.emit(PointerEvent{Kind: PointerMove, X: x, Y: y})
		}
		p.emit(PointerEvent{Kind: PointerRelease, X: x, Y: y})
	case moved:
		p.emit(PointerEvent{Kind: PointerMove, X: x, Y: y})
	}
}
