// Package curve solves and samples the quadratic that interpolates three points.
//
// The package has no dependencies on the display or input layers so the math can be
// exercised on its own.
package curve
