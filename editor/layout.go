package editor

import (
	"parabola/curve"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const consoleRows = 4

var uiFont = &proggy.TinySZ8pt7b

type fontMetrics struct {
	width  int16
	height int16
	offset int16
}

func measureFont(f tinyfont.Fonter) fontMetrics {
	_, outboxWidth := tinyfont.LineWidth(f, "0")
	m := fontMetrics{width: int16(outboxWidth), height: int16(f.GetYAdvance())}
	if m.width <= 0 {
		m.width = 6
	}
	if m.height <= 0 {
		m.height = 10
	}
	m.offset = m.height * 3 / 4
	return m
}

type rect struct {
	x, y int16
	w, h int16
}

// layout splits the framebuffer into title bar, plot, status line and console.
type layout struct {
	font fontMetrics

	header  rect
	plot    viewport
	status  rect
	console rect

	leftMargin   int16
	bottomMargin int16
}

func computeLayout(width, height int, view View, fm fontMetrics) layout {
	w := int16(width)
	h := int16(height)

	l := layout{font: fm}
	l.header = rect{x: 0, y: 0, w: w, h: fm.height}
	l.console = rect{x: 0, y: h - consoleRows*fm.height, w: w, h: consoleRows * fm.height}
	l.status = rect{x: 0, y: l.console.y - fm.height, w: w, h: fm.height}

	l.leftMargin = 5*fm.width + 2
	l.bottomMargin = fm.height + 1

	top := l.header.y + l.header.h + 2
	l.plot = viewport{
		x:    l.leftMargin,
		y:    top,
		w:    w - l.leftMargin - fm.width,
		h:    l.status.y - l.bottomMargin - top,
		view: view,
	}
	return l
}

// ScreenPoint returns the framebuffer pixel where p is drawn on a width x height
// framebuffer. It is meant for scripted input.
func ScreenPoint(width, height int, view View, p curve.Point) (x, y int) {
	if !view.valid() {
		view = DefaultView
	}
	return computeLayout(width, height, view, measureFont(uiFont)).plot.toScreen(p)
}
