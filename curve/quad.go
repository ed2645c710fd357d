package curve

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerate reports a point set with no unique interpolating quadratic.
var ErrDegenerate = errors.New("degenerate configuration")

const (
	// xTol is the relative gap below which two x-values count as equal.
	xTol = 1e-9

	pivotTol = 1e-12
)

// DegenerateError names the two points that collide in x.
// It matches ErrDegenerate under errors.Is.
type DegenerateError struct {
	I, J int
	X    float64
}

func (e *DegenerateError) Error() string {
	if e.I < 0 {
		return ErrDegenerate.Error() + ": singular interpolation matrix"
	}
	return fmt.Sprintf("%s: points %d and %d share x=%.6g", ErrDegenerate, e.I, e.J, e.X)
}

func (e *DegenerateError) Unwrap() error { return ErrDegenerate }

// Coefficients define y = A*x^2 + B*x + C.
type Coefficients struct {
	A float64
	B float64
	C float64
}

// Eval evaluates the quadratic at x using Horner's scheme.
func (c Coefficients) Eval(x float64) float64 {
	return (c.A*x+c.B)*x + c.C
}

func (c Coefficients) String() string {
	return fmt.Sprintf("y = %.4gx^2 %+.4gx %+.4g", c.A, c.B, c.C)
}

// Solve returns the quadratic passing through all three points.
//
// The system rows are [x², x, 1] and are solved by Gaussian elimination. Two points
// sharing an x-value yield a *DegenerateError.
func Solve(pts [3]Point) (Coefficients, error) {
	for i, p := range pts {
		if !p.finite() {
			return Coefficients{}, fmt.Errorf("solve: point %d is not finite: %v", i, p)
		}
	}
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if sameX(pts[i].X, pts[j].X) {
				return Coefficients{}, &DegenerateError{I: i, J: j, X: pts[i].X}
			}
		}
	}

	a := make([]float64, 0, 9)
	b := make([]float64, 0, 3)
	for _, p := range pts {
		a = append(a, p.X*p.X, p.X, 1)
		b = append(b, p.Y)
	}
	x, err := solveLinearSystem(a, b, 3)
	if errors.Is(err, errSingular) {
		return Coefficients{}, &DegenerateError{I: -1, J: -1}
	}
	if err != nil {
		return Coefficients{}, fmt.Errorf("solve: %w", err)
	}
	return Coefficients{A: x[0], B: x[1], C: x[2]}, nil
}

// Residual returns the largest |c(x_i) - y_i| over pts.
func Residual(c Coefficients, pts [3]Point) float64 {
	worst := 0.0
	for _, p := range pts {
		worst = math.Max(worst, math.Abs(c.Eval(p.X)-p.Y))
	}
	return worst
}

func sameX(x0, x1 float64) bool {
	scale := math.Max(1, math.Max(math.Abs(x0), math.Abs(x1)))
	return math.Abs(x0-x1) <= xTol*scale
}
