package curve

import (
	"math"
	"testing"
)

func TestSample_Endpoints(t *testing.T) {
	c := Coefficients{A: 1}
	pts := Sample(c, 0, 15, DefaultSamples)
	if len(pts) != DefaultSamples {
		t.Fatalf("len=%d", len(pts))
	}
	if pts[0].X != 0 || pts[len(pts)-1].X != 15 {
		t.Fatalf("ends=%v %v", pts[0], pts[len(pts)-1])
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].X <= pts[i-1].X {
			t.Fatalf("x not increasing at %d: %v <= %v", i, pts[i].X, pts[i-1].X)
		}
		if pts[i].Y != c.Eval(pts[i].X) {
			t.Fatalf("sample %d: y=%v want %v", i, pts[i].Y, c.Eval(pts[i].X))
		}
	}
}

func TestSample_Spacing(t *testing.T) {
	pts := Sample(Coefficients{B: 1}, 0, 9, 10)
	for i, p := range pts {
		if math.Abs(p.X-float64(i)) > 1e-12 {
			t.Fatalf("x[%d]=%v", i, p.X)
		}
	}
}

func TestSample_ClampsResolution(t *testing.T) {
	for _, n := range []int{-3, 0, 1} {
		pts := Sample(Coefficients{C: 2}, 1, 4, n)
		if len(pts) != 2 {
			t.Fatalf("n=%d len=%d", n, len(pts))
		}
	}
}

func TestSample_AppendReusesBuffer(t *testing.T) {
	buf := make([]Point, 0, DefaultSamples)
	out := AppendSamples(buf[:0], Coefficients{A: 1}, 0, 1, DefaultSamples)
	if &out[0] != &buf[:1][0] {
		t.Fatalf("buffer not reused")
	}
}

func TestSampleAt_RoundTrip(t *testing.T) {
	c, err := Solve(initialPoints)
	if err != nil {
		t.Fatalf("solve err=%v", err)
	}
	xs := []float64{initialPoints[0].X, initialPoints[1].X, initialPoints[2].X}
	got := SampleAt(c, xs)
	for i, p := range got {
		want := initialPoints[i].Y
		if math.Abs(p.Y-want) > 1e-9 {
			t.Fatalf("sample %d: y=%v want=%v", i, p.Y, want)
		}
	}
}

func TestPoint_Dist(t *testing.T) {
	if d := (Point{0, 0}).Dist(Point{3, 4}); d != 5 {
		t.Fatalf("dist=%v", d)
	}
}
