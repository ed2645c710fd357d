package editor

import (
	"math"

	"parabola/curve"
)

// viewport maps plot units onto a pixel rectangle. y grows upwards in plot units and
// downwards in pixels.
type viewport struct {
	x, y int16
	w, h int16

	view View
}

func (v viewport) valid() bool {
	return v.w > 2 && v.h > 2 && v.view.valid()
}

func (v viewport) xPxPerUnit() float64 {
	return float64(v.w-1) / (v.view.XMax - v.view.XMin)
}

func (v viewport) yPxPerUnit() float64 {
	return float64(v.h-1) / (v.view.YMax - v.view.YMin)
}

// toLocal converts a plot point to pixel offsets from the viewport origin.
func (v viewport) toLocal(p curve.Point) (px, py float64) {
	px = (p.X - v.view.XMin) * v.xPxPerUnit()
	py = (v.view.YMax - p.Y) * v.yPxPerUnit()
	return px, py
}

// toPlot converts framebuffer pixel coordinates into plot units. inside is false when
// the pixel lies outside the plotting area.
func (v viewport) toPlot(px, py int) (p curve.Point, inside bool) {
	if !v.valid() {
		return curve.Point{}, false
	}
	lx := px - int(v.x)
	ly := py - int(v.y)
	if lx < 0 || ly < 0 || lx >= int(v.w) || ly >= int(v.h) {
		return curve.Point{}, false
	}
	p.X = v.view.XMin + float64(lx)/v.xPxPerUnit()
	p.Y = v.view.YMax - float64(ly)/v.yPxPerUnit()
	return p, true
}

// toScreen converts a plot point to the nearest framebuffer pixel.
func (v viewport) toScreen(p curve.Point) (x, y int) {
	lx, ly := v.toLocal(p)
	return int(v.x) + int(math.Round(lx)), int(v.y) + int(math.Round(ly))
}
