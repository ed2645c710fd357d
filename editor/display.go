package editor

import (
	"image/color"

	"parabola/hal"

	"tinygo.org/x/drivers"
)

// fbDisplay adapts a rectangle of a Framebuffer to the tinygo Displayer interfaces
// used by tinyfont and tinyterm. Coordinates are relative to the rectangle origin and
// everything outside it is clipped.
type fbDisplay struct {
	fb hal.Framebuffer

	x0 int
	y0 int
	w  int
	h  int
}

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	if fb == nil {
		return &fbDisplay{}
	}
	return &fbDisplay{fb: fb, w: fb.Width(), h: fb.Height()}
}

// region returns a display restricted to the given rectangle of d.
func (d *fbDisplay) region(x, y, w, h int) *fbDisplay {
	x0 := clampInt(d.x0+x, d.x0, d.x0+d.w)
	y0 := clampInt(d.y0+y, d.y0, d.y0+d.h)
	x1 := clampInt(d.x0+x+w, x0, d.x0+d.w)
	y1 := clampInt(d.y0+y+h, y0, d.y0+d.h)
	return &fbDisplay{fb: d.fb, x0: x0, y0: y0, w: x1 - x0, h: y1 - y0}
}

func (d *fbDisplay) ok() bool {
	return d.fb != nil && d.fb.Format() == hal.PixelFormatRGB565 && d.fb.Buffer() != nil
}

func (d *fbDisplay) Size() (x, y int16) {
	return int16(d.w), int16(d.h)
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if !d.ok() {
		return
	}
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.w || iy < 0 || iy >= d.h {
		return
	}

	buf := d.fb.Buffer()
	pixel := rgb565From888(c.R, c.G, c.B)
	off := (d.y0+iy)*d.fb.StrideBytes() + (d.x0+ix)*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// pixel reads back the colour at (x, y), used by tests and blending.
func (d *fbDisplay) pixel(x, y int) (color.RGBA, bool) {
	if !d.ok() || x < 0 || x >= d.w || y < 0 || y >= d.h {
		return color.RGBA{}, false
	}
	buf := d.fb.Buffer()
	off := (d.y0+y)*d.fb.StrideBytes() + (d.x0+x)*2
	if off < 0 || off+1 >= len(buf) {
		return color.RGBA{}, false
	}
	p := uint16(buf[off]) | uint16(buf[off+1])<<8
	return rgb888From565(p), true
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if !d.ok() {
		return nil
	}

	x0 := clampInt(int(x), 0, d.w)
	y0 := clampInt(int(y), 0, d.h)
	x1 := clampInt(int(x)+int(width), 0, d.w)
	y1 := clampInt(int(y)+int(height), 0, d.h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	buf := d.fb.Buffer()
	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := (d.y0 + py) * stride
		for px := x0; px < x1; px++ {
			off := row + (d.x0+px)*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

// ScrollUp shifts the rectangle contents up by lines rows and clears the bottom.
func (d *fbDisplay) ScrollUp(lines int16, bg color.RGBA) error {
	if !d.ok() || lines <= 0 {
		return nil
	}
	n := int(lines)
	if n >= d.h {
		return d.FillRectangle(0, 0, int16(d.w), int16(d.h), bg)
	}

	buf := d.fb.Buffer()
	stride := d.fb.StrideBytes()
	rowBytes := d.w * 2
	for y := 0; y < d.h-n; y++ {
		dst := (d.y0+y)*stride + d.x0*2
		src := (d.y0+y+n)*stride + d.x0*2
		if dst < 0 || src+rowBytes > len(buf) {
			break
		}
		copy(buf[dst:dst+rowBytes], buf[src:src+rowBytes])
	}
	return d.FillRectangle(0, int16(d.h-n), int16(d.w), int16(n), bg)
}

func (d *fbDisplay) SetScroll(line int16) {
	_ = line
}

func (d *fbDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func rgb888From565(p uint16) color.RGBA {
	r := (p >> 11) & 0x1F
	g := (p >> 5) & 0x3F
	b := p & 0x1F
	return color.RGBA{R: uint8(r * 255 / 31), G: uint8(g * 255 / 63), B: uint8(b * 255 / 31), A: 0xFF}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
