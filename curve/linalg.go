package curve

import (
	"errors"
	"fmt"
	"math"
)

var errSingular = errors.New("singular system")

// solveLinearSystem solves A*x=b for x with A as row-major NxN.
//
// Pivots whose magnitude falls below pivotTol times the largest entry of A are
// treated as zero.
func solveLinearSystem(a []float64, b []float64, n int) ([]float64, error) {
	if len(a) != n*n || len(b) != n {
		return nil, fmt.Errorf("bad dimensions: a=%d b=%d n=%d", len(a), len(b), n)
	}
	aa := make([]float64, len(a))
	copy(aa, a)
	bb := make([]float64, len(b))
	copy(bb, b)

	scale := 0.0
	for _, v := range aa {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errSingular
		}
		scale = math.Max(scale, math.Abs(v))
	}
	tol := pivotTol * scale

	for k := 0; k < n; k++ {
		piv := k
		maxAbs := math.Abs(aa[k*n+k])
		for i := k + 1; i < n; i++ {
			v := math.Abs(aa[i*n+k])
			if v > maxAbs {
				maxAbs = v
				piv = i
			}
		}
		if maxAbs <= tol || math.IsNaN(maxAbs) || math.IsInf(maxAbs, 0) {
			return nil, errSingular
		}
		if piv != k {
			for j := k; j < n; j++ {
				aa[k*n+j], aa[piv*n+j] = aa[piv*n+j], aa[k*n+j]
			}
			bb[k], bb[piv] = bb[piv], bb[k]
		}

		pivot := aa[k*n+k]
		for i := k + 1; i < n; i++ {
			f := aa[i*n+k] / pivot
			if f == 0 {
				continue
			}
			aa[i*n+k] = 0
			for j := k + 1; j < n; j++ {
				aa[i*n+j] -= f * aa[k*n+j]
			}
			bb[i] -= f * bb[k]
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := bb[i]
		for j := i + 1; j < n; j++ {
			sum -= aa[i*n+j] * x[j]
		}
		pivot := aa[i*n+i]
		if math.Abs(pivot) <= tol {
			return nil, errSingular
		}
		x[i] = sum / pivot
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errSingular
		}
	}
	return x, nil
}
