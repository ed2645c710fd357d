package curve

// DefaultSamples is the polyline resolution used for display.
const DefaultSamples = 100

// Sample evaluates c at n evenly spaced x-values covering [xMin, xMax], both ends
// included. n below 2 is raised to 2.
func Sample(c Coefficients, xMin, xMax float64, n int) []Point {
	return AppendSamples(nil, c, xMin, xMax, n)
}

// AppendSamples is Sample appending into dst, so callers can reuse a buffer.
func AppendSamples(dst []Point, c Coefficients, xMin, xMax float64, n int) []Point {
	if n < 2 {
		n = 2
	}
	step := (xMax - xMin) / float64(n-1)
	for i := 0; i < n; i++ {
		x := xMin + float64(i)*step
		if i == n-1 {
			x = xMax
		}
		dst = append(dst, Point{X: x, Y: c.Eval(x)})
	}
	return dst
}

// SampleAt evaluates c at each of xs.
func SampleAt(c Coefficients, xs []float64) []Point {
	out := make([]Point, 0, len(xs))
	for _, x := range xs {
		out = append(out, Point{X: x, Y: c.Eval(x)})
	}
	return out
}
