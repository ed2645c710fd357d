package editor

// This file contains the framebuffer plotter for the editor scene.

import (
	"fmt"
	"image/color"
	"math"

	"parabola/curve"

	"tinygo.org/x/tinyfont"
)

var (
	colorBG       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	colorFG       = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colorDim      = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colorHeaderBG = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorStatusBG = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorPanelBG  = color.RGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xFF}
	colorGrid     = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorAxis     = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
	colorCurve    = color.RGBA{R: 0x3F, G: 0xC8, B: 0x3F, A: 0xFF}
	colorFixed    = color.RGBA{R: 0x3F, G: 0x6F, B: 0xFF, A: 0xFF}
	colorHandle   = color.RGBA{R: 0xFF, G: 0x3F, B: 0x3F, A: 0xFF}
	colorSelected = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorWarn     = color.RGBA{R: 0xFF, G: 0xB0, B: 0x30, A: 0xFF}
)

const (
	title = "Interactive parabolic interpolation"

	// markerRadius is in plot units.
	markerRadius = 0.2
	markerAlpha  = 0.7
)

type renderer struct {
	d    *fbDisplay
	font tinyfont.Fonter
	l    layout
	cols int
}

func newRenderer(d *fbDisplay, view View) *renderer {
	fm := measureFont(uiFont)
	w, h := d.Size()
	r := &renderer{
		d:    d,
		font: uiFont,
		l:    computeLayout(int(w), int(h), view, fm),
	}
	r.cols = int(w / fm.width)
	return r
}

// render redraws everything above the console.
func (r *renderer) render(e *Editor) {
	l := r.l
	w := l.header.w

	_ = r.d.FillRectangle(0, 0, w, l.console.y, colorBG)

	_ = r.d.FillRectangle(0, l.header.y, w, l.header.h, colorHeaderBG)
	r.drawStringClipped(l.font.width, l.header.y, title, colorFG, r.cols-1)

	p := l.plot
	if p.valid() {
		_ = r.d.FillRectangle(p.x, p.y, p.w, p.h, colorPanelBG)
		r.drawGrid(p)
		r.drawAxes(p)
		r.drawSeries(p, e.Samples(), colorCurve)
		r.drawMarkers(p, e)
	}

	_ = r.d.FillRectangle(0, l.status.y, w, l.status.h, colorStatusBG)
	if warn := e.Warning(); warn != "" {
		r.drawStringClipped(l.font.width, l.status.y, warn+"; curve frozen", colorWarn, r.cols-1)
	} else {
		r.drawStringClipped(l.font.width, l.status.y, statusText(e), colorFG, r.cols-1)
	}
}

func statusText(e *Editor) string {
	s := e.Coefficients().String()
	if role, ok := e.Selected(); ok {
		s += fmt.Sprintf("  [%s %v]", role, e.Points()[role])
	}
	return s
}

func (r *renderer) drawGrid(p viewport) {
	v := p.view
	xPx := p.xPxPerUnit()
	yPx := p.yPxPerUnit()
	if xPx <= 0 || yPx <= 0 || math.IsInf(xPx, 0) || math.IsInf(yPx, 0) {
		return
	}

	stepX := niceStep(40 / xPx)
	stepY := niceStep(28 / yPx)

	xStart := math.Ceil(v.XMin/stepX) * stepX
	for x := xStart; x <= v.XMax+stepX*1e-9; x += stepX {
		ix := int16((x - v.XMin) / (v.XMax - v.XMin) * float64(p.w-1))
		for y := int16(0); y < p.h; y++ {
			r.d.SetPixel(p.x+ix, p.y+y, colorGrid)
		}
		r.drawXAxisLabel(p.x+ix, p.y+p.h+1, fmtAxis(x))
	}

	yStart := math.Ceil(v.YMin/stepY) * stepY
	for y := yStart; y <= v.YMax+stepY*1e-9; y += stepY {
		iy := int16((v.YMax - y) / (v.YMax - v.YMin) * float64(p.h-1))
		for x := int16(0); x < p.w; x++ {
			r.d.SetPixel(p.x+x, p.y+iy, colorGrid)
		}
		r.drawYAxisLabel(p.x-1, p.y+iy, fmtAxis(y))
	}
}

func (r *renderer) drawAxes(p viewport) {
	v := p.view
	if v.XMin <= 0 && v.XMax >= 0 {
		x := int16((0 - v.XMin) / (v.XMax - v.XMin) * float64(p.w-1))
		for y := int16(0); y < p.h; y++ {
			r.d.SetPixel(p.x+x, p.y+y, colorAxis)
		}
	}
	if v.YMin <= 0 && v.YMax >= 0 {
		y := int16((v.YMax - 0) / (v.YMax - v.YMin) * float64(p.h-1))
		for x := int16(0); x < p.w; x++ {
			r.d.SetPixel(p.x+x, p.y+y, colorAxis)
		}
	}
}

// drawSeries draws the sampled curve as a two pixel wide polyline clipped to p.
func (r *renderer) drawSeries(p viewport, pts []curve.Point, c color.RGBA) {
	prevOK := false
	var prevX, prevY float64
	xMax := float64(p.w - 1)
	yMax := float64(p.h - 1)
	for _, pt := range pts {
		if math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
			prevOK = false
			continue
		}

		curX, curY := p.toLocal(pt)
		if prevOK {
			cx0, cy0, cx1, cy1, ok := clipLineToRect(prevX, prevY, curX, curY, 0, 0, xMax, yMax-1)
			if ok {
				x0, y0 := p.x+roundInt16(cx0), p.y+roundInt16(cy0)
				x1, y1 := p.x+roundInt16(cx1), p.y+roundInt16(cy1)
				r.drawLine(x0, y0, x1, y1, c)
				r.drawLine(x0, y0+1, x1, y1+1, c)
			}
		}
		prevOK = true
		prevX = curX
		prevY = curY
	}
}

// drawMarkers paints one translucent disc per point. Plot units are not square on
// screen, so the discs are ellipses in pixels.
func (r *renderer) drawMarkers(p viewport, e *Editor) {
	rx := markerRadius * p.xPxPerUnit()
	ry := markerRadius * p.yPxPerUnit()
	selected, dragging := e.Selected()
	pts := e.Points()

	for role := Role(0); role < roleCount; role++ {
		c := colorFixed
		if e.Draggable(role) {
			c = colorHandle
		}
		cx, cy := p.toLocal(pts[role])
		r.fillEllipse(p, cx, cy, rx, ry, c, markerAlpha)
		if dragging && role == selected {
			r.strokeEllipse(p, cx, cy, rx+1, ry+1, colorSelected)
		}
	}
}

func (r *renderer) fillEllipse(p viewport, cx, cy, rx, ry float64, c color.RGBA, alpha float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	y0 := int(math.Floor(cy - ry))
	y1 := int(math.Ceil(cy + ry))
	for y := y0; y <= y1; y++ {
		dy := (float64(y) - cy) / ry
		if dy < -1 || dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		x0 := int(math.Ceil(cx - half))
		x1 := int(math.Floor(cx + half))
		for x := x0; x <= x1; x++ {
			r.blendPlotPixel(p, x, y, c, alpha)
		}
	}
}

func (r *renderer) strokeEllipse(p viewport, cx, cy, rx, ry float64, c color.RGBA) {
	steps := int(4 * (rx + ry))
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := int(math.Round(cx + rx*math.Cos(a)))
		y := int(math.Round(cy + ry*math.Sin(a)))
		r.blendPlotPixel(p, x, y, c, 1)
	}
}

// blendPlotPixel mixes c over the existing pixel at plot-local (x, y).
func (r *renderer) blendPlotPixel(p viewport, x, y int, c color.RGBA, alpha float64) {
	if x < 0 || y < 0 || x >= int(p.w) || y >= int(p.h) {
		return
	}
	sx := int(p.x) + x
	sy := int(p.y) + y
	if alpha < 1 {
		if under, ok := r.d.pixel(sx, sy); ok {
			c = blend(c, under, alpha)
		}
	}
	r.d.SetPixel(int16(sx), int16(sy), c)
}

func blend(over, under color.RGBA, alpha float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a)*alpha + float64(b)*(1-alpha)))
	}
	return color.RGBA{R: mix(over.R, under.R), G: mix(over.G, under.G), B: mix(over.B, under.B), A: 0xFF}
}

func (r *renderer) drawXAxisLabel(px, py int16, s string) {
	if s == "" {
		return
	}
	rs := []rune(s)
	w := int16(len(rs)) * r.l.font.width
	x := px - w/2
	if x < 0 {
		x = 0
	}
	maxCols := int((int16(r.cols)*r.l.font.width - x) / r.l.font.width)
	if maxCols <= 0 {
		return
	}
	r.drawStringClipped(x, py, s, colorDim, maxCols)
}

func (r *renderer) drawYAxisLabel(rightEdgePx, py int16, s string) {
	if s == "" {
		return
	}
	rs := []rune(s)
	w := int16(len(rs)) * r.l.font.width
	x := rightEdgePx - w - 1
	minX := rightEdgePx - r.l.leftMargin + 1
	if x < minX {
		x = minX
	}
	if x < 0 {
		x = 0
	}
	maxCols := int((rightEdgePx - x) / r.l.font.width)
	if maxCols <= 0 {
		return
	}
	r.drawStringClipped(x, py-r.l.font.height/2, s, colorDim, maxCols)
}

func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(raw)))
	if pow == 0 || math.IsNaN(pow) || math.IsInf(pow, 0) {
		return 1
	}
	frac := raw / pow
	switch {
	case frac <= 1:
		return 1 * pow
	case frac <= 2:
		return 2 * pow
	case frac <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

func fmtAxis(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if math.Abs(v) < 1e-12 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1000 || av < 0.01:
		return fmt.Sprintf("%.2g", v)
	case av >= 10 || av == math.Trunc(av):
		return fmt.Sprintf("%.0f", v)
	case av >= 1:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func clipLineToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	u1 := 0.0
	u2 := 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			if t > u1 {
				u1 = t
			}
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			if t < u2 {
				u2 = t
			}
		}
	}

	cx0 = math.Min(math.Max(x0+u1*dx, xmin), xmax)
	cy0 = math.Min(math.Max(y0+u1*dy, ymin), ymax)
	cx1 = math.Min(math.Max(x0+u2*dx, xmin), xmax)
	cy1 = math.Min(math.Max(y0+u2*dy, ymin), ymax)
	return cx0, cy0, cx1, cy1, true
}

func roundInt16(v float64) int16 {
	if v < 0 {
		return int16(v - 0.5)
	}
	return int16(v + 0.5)
}

func (r *renderer) drawLine(x0, y0, x1, y1 int16, c color.RGBA) {
	dx := int(math.Abs(float64(x1 - x0)))
	dy := -int(math.Abs(float64(y1 - y0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		r.d.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += int16(sx)
		}
		if e2 <= dx {
			err += dx
			y0 += int16(sy)
		}
	}
}

func (r *renderer) drawStringClipped(x, y int16, s string, fg color.RGBA, cols int) {
	col := int16(0)
	for _, ch := range s {
		if int(col) >= cols {
			return
		}
		tinyfont.DrawChar(r.d, r.font, x+col*r.l.font.width, y+r.l.font.offset, ch, fg)
		col++
	}
}
