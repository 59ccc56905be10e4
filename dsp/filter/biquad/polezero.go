package biquad

import "math/cmplx"

// Poles returns the z-plane poles of the section denominator:
//
//	1 + A1*z^-1 + A2*z^-2 = 0
//
// For first-order sections the second pole is 0.
func (c Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// PoleRadius returns the largest pole magnitude of the section.
func (c Coefficients) PoleRadius() float64 {
	p := c.Poles()
	return max(cmplx.Abs(p[0]), cmplx.Abs(p[1]))
}

// stabilityMargin is the distance from the stability triangle boundary below
// which a section counts as marginal.
const stabilityMargin = 1e-12

// Stable reports whether every pole lies strictly inside the unit circle.
// It evaluates the stability triangle |A2| < 1, |A1| < 1+A2 on the
// coefficients, treating poles within rounding distance of the circle as
// unstable.
func (c Coefficients) Stable() bool {
	return 1+c.A1+c.A2 > stabilityMargin &&
		1-c.A1+c.A2 > stabilityMargin &&
		1-c.A2 > stabilityMargin
}

// MaxPoleRadius returns the largest pole magnitude over the cascade, 0 when
// it is empty.
func (c Cascade) MaxPoleRadius() float64 {
	r := 0.0
	for i := range c {
		r = max(r, c[i].PoleRadius())
	}
	return r
}

// Stable reports whether every section is stable.
func (c Cascade) Stable() bool {
	for i := range c {
		if !c[i].Stable() {
			return false
		}
	}
	return true
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-c/b, 0), 0}
	}

	discriminant := complex(b*b-4*a*c, 0)
	sqrtDiscriminant := cmplx.Sqrt(discriminant)
	den := complex(2*a, 0)
	return [2]complex128{
		(-complex(b, 0) + sqrtDiscriminant) / den,
		(-complex(b, 0) - sqrtDiscriminant) / den,
	}
}
