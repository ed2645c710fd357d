package editor

import (
	"image/color"
	"math"
	"testing"

	"parabola/curve"
)

func TestViewport_RoundTrip(t *testing.T) {
	l := computeLayout(480, 320, DefaultView, measureFont(uiFont))
	p := l.plot
	if !p.valid() {
		t.Fatalf("plot=%+v", p)
	}
	for _, pt := range InitialPoints {
		sx, sy := p.toScreen(pt)
		got, inside := p.toPlot(sx, sy)
		if !inside {
			t.Fatalf("%v mapped outside at (%d,%d)", pt, sx, sy)
		}
		if math.Abs(got.X-pt.X) > 1/p.xPxPerUnit() || math.Abs(got.Y-pt.Y) > 1/p.yPxPerUnit() {
			t.Fatalf("round trip %v -> (%d,%d) -> %v", pt, sx, sy, got)
		}
	}
}

func TestViewport_Corners(t *testing.T) {
	p := viewport{x: 10, y: 20, w: 151, h: 101, view: DefaultView}
	got, inside := p.toPlot(10, 20)
	if !inside || got != (curve.Point{X: 0, Y: 5}) {
		t.Fatalf("top-left=%v inside=%v", got, inside)
	}
	got, inside = p.toPlot(160, 120)
	if !inside || got != (curve.Point{X: 15, Y: -5}) {
		t.Fatalf("bottom-right=%v inside=%v", got, inside)
	}
	for _, px := range [][2]int{{9, 50}, {161, 50}, {50, 19}, {50, 121}} {
		if _, inside := p.toPlot(px[0], px[1]); inside {
			t.Fatalf("(%d,%d) reported inside", px[0], px[1])
		}
	}
}

func TestLayout_RegionsDoNotOverlap(t *testing.T) {
	l := computeLayout(480, 320, DefaultView, measureFont(uiFont))
	if l.plot.y < l.header.y+l.header.h {
		t.Fatalf("plot overlaps header: %+v %+v", l.plot, l.header)
	}
	if l.plot.y+l.plot.h+l.bottomMargin > l.status.y {
		t.Fatalf("plot overlaps status: %+v %+v", l.plot, l.status)
	}
	if l.status.y+l.status.h > l.console.y {
		t.Fatalf("status overlaps console: %+v %+v", l.status, l.console)
	}
	if l.console.y+l.console.h != 320 {
		t.Fatalf("console=%+v", l.console)
	}
}

func renderScene(t *testing.T, e *Editor) (*renderer, *fbDisplay) {
	t.Helper()
	d := newFBDisplay(newTestFB(480, 320))
	r := newRenderer(d, e.View())
	r.render(e)
	return r, d
}

func TestRender_MarkersAndCurve(t *testing.T) {
	e, _ := newTestEditor(t, Config{})
	r, d := renderScene(t, e)
	p := r.l.plot

	for role, pt := range e.Points() {
		sx, sy := p.toScreen(pt)
		c, ok := d.pixel(sx, sy)
		if !ok {
			t.Fatalf("%v: no pixel at (%d,%d)", Role(role), sx, sy)
		}
		if Role(role) == RoleDrag {
			if c.R <= c.B {
				t.Fatalf("drag marker not red: %+v", c)
			}
		} else if c.B <= c.R {
			t.Fatalf("%v marker not blue: %+v", Role(role), c)
		}
	}

	// A curve pixel well away from the markers.
	x := 2.0
	sx, sy := p.toScreen(curve.Point{X: x, Y: e.Coefficients().Eval(x)})
	found := false
	for dy := -2; dy <= 2 && !found; dy++ {
		c, ok := d.pixel(sx, sy+dy)
		found = ok && c.G > c.R && c.G > c.B && c.G > 0x80
	}
	if !found {
		t.Fatalf("no curve pixel near (%d,%d)", sx, sy)
	}
}

func TestRender_SelectedOutline(t *testing.T) {
	e, _ := newTestEditor(t, Config{})
	drag := InitialPoints[RoleDrag]
	e.Handle(press(drag.X, drag.Y))
	r, d := renderScene(t, e)
	p := r.l.plot

	cx, cy := p.toLocal(drag)
	rx := markerRadius*p.xPxPerUnit() + 1
	x := int(p.x) + int(math.Round(cx+rx))
	y := int(p.y) + int(math.Round(cy))
	c, _ := d.pixel(x, y)
	if c != rgb888From565(rgb565From888(0xFF, 0xFF, 0xFF)) {
		t.Fatalf("outline pixel=%+v", c)
	}
}

func TestRender_LeavesConsoleAlone(t *testing.T) {
	e, _ := newTestEditor(t, Config{})
	fb := newTestFB(480, 320)
	d := newFBDisplay(fb)
	r := newRenderer(d, e.View())

	marker := color.RGBA{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF}
	cy := int(r.l.console.y)
	d.SetPixel(5, int16(cy+2), marker)
	r.render(e)
	got, _ := d.pixel(5, cy+2)
	if got != rgb888From565(rgb565From888(marker.R, marker.G, marker.B)) {
		t.Fatalf("console pixel overwritten: %+v", got)
	}
}

func TestNiceStep(t *testing.T) {
	cases := map[float64]float64{0.7: 1, 1.5: 2, 3: 5, 7: 10, 0.03: 0.05, -1: 1}
	for in, want := range cases {
		if got := niceStep(in); math.Abs(got-want) > 1e-12 {
			t.Fatalf("niceStep(%v)=%v want %v", in, got, want)
		}
	}
}

func TestFmtAxis(t *testing.T) {
	cases := map[float64]string{0: "0", 5: "5", -5: "-5", 2.5: "2.5", 12: "12", 0.25: "0.25"}
	for in, want := range cases {
		if got := fmtAxis(in); got != want {
			t.Fatalf("fmtAxis(%v)=%q want %q", in, got, want)
		}
	}
}

func TestClipLineToRect(t *testing.T) {
	_, _, _, _, ok := clipLineToRect(-5, -5, -1, -1, 0, 0, 10, 10)
	if ok {
		t.Fatalf("line outside rect accepted")
	}
	x0, y0, x1, y1, ok := clipLineToRect(-5, 5, 15, 5, 0, 0, 10, 10)
	if !ok || x0 != 0 || x1 != 10 || y0 != 5 || y1 != 5 {
		t.Fatalf("clip=(%v,%v)-(%v,%v) ok=%v", x0, y0, x1, y1, ok)
	}
}

func TestFBDisplay_Region(t *testing.T) {
	fb := newTestFB(20, 20)
	d := newFBDisplay(fb).region(5, 10, 10, 5)
	if w, h := d.Size(); w != 10 || h != 5 {
		t.Fatalf("size=%dx%d", w, h)
	}
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	d.SetPixel(0, 0, white)
	d.SetPixel(10, 0, white) // clipped
	full := newFBDisplay(fb)
	if c, _ := full.pixel(5, 10); c.R != 0xFF {
		t.Fatalf("region origin not mapped: %+v", c)
	}
	if c, _ := full.pixel(15, 10); c.R != 0 {
		t.Fatalf("clipped pixel drawn: %+v", c)
	}

	_ = d.FillRectangle(0, 1, 10, 1, white)
	_ = d.ScrollUp(1, color.RGBA{})
	if c, _ := full.pixel(6, 10); c.R != 0xFF {
		t.Fatalf("scroll did not move row up: %+v", c)
	}
	if c, _ := full.pixel(6, 14); c.R != 0 {
		t.Fatalf("bottom row not cleared: %+v", c)
	}
}

func TestBlend(t *testing.T) {
	got := blend(color.RGBA{R: 200}, color.RGBA{B: 100}, 0.5)
	if got.R != 100 || got.B != 50 || got.A != 0xFF {
		t.Fatalf("blend=%+v", got)
	}
}
