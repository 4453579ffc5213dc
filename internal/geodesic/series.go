package geodesic

import "math"

// Truncation orders of the series expansions.
const (
	nA1  = 6
	nC1  = 6
	nA2  = 6
	nC2  = 6
	nA3  = 6
	nC3  = 6
	nC4  = 6
	nC3x = (nC3 * (nC3 - 1)) / 2
	nC4x = (nC4 * (nC4 + 1)) / 2
	nC   = 7 // length of scratch coefficient arrays, max(nC1, nC2, nC3, nC4) + 1
)

const (
	maxit1 = 20
	maxit2 = maxit1 + 53 + 10
	degree = math.Pi / 180
)

var (
	tiny    = math.Sqrt(0x1p-1022) // square root of the smallest normal number
	tol0    = 0x1p-52              // machine epsilon
	tol1    = 200 * tol0
	tol2    = math.Sqrt(tol0)
	tolb    = tol0 * tol2
	xthresh = 1000 * tol2
)

func sq(x float64) float64 { return x * x }

// polyval evaluates the polynomial of degree n whose coefficients, highest
// power first, start at p[0].
func polyval(n int, p []float64, x float64) float64 {
	if n < 0 {
		return 0
	}
	y := p[0]
	for i := 1; i <= n; i++ {
		y = y*x + p[i]
	}

	return y
}

// sinCosSeries evaluates sum(c[l] * sin(2*l*sigma), l=1..n) when sinp is set and
// sum(c[l] * cos((2*l+1)*sigma), l=0..n-1) otherwise, by Clenshaw summation.
func sinCosSeries(sinp bool, sinx, cosx float64, c []float64, n int) float64 {
	k := n
	if sinp {
		k++
	}
	ar := 2 * (cosx - sinx) * (cosx + sinx)

	var y0, y1 float64
	if n&1 != 0 {
		k--
		y0 = c[k]
	}
	for i := n / 2; i > 0; i-- {
		k--
		y1 = ar*y0 - y1 + c[k]
		k--
		y0 = ar*y1 - y0 + c[k]
	}

	if sinp {
		return 2 * sinx * cosx * y0
	}

	return cosx * (y0 - y1)
}

// a1m1f returns A1 - 1.
func a1m1f(eps float64) float64 {
	coeff := []float64{1, 4, 64, 0, 256}
	m := nA1 / 2
	t := polyval(m, coeff, sq(eps)) / coeff[m+1]

	return (t + eps) / (1 - eps)
}

// c1f fills c[1..nC1] with the C1 coefficients.
func c1f(eps float64, c []float64) {
	coeff := []float64{
		-1, 6, -16, 32,
		-9, 64, -128, 2048,
		9, -16, 768,
		3, -5, 512,
		-7, 1280,
		-7, 2048,
	}
	eps2 := sq(eps)
	d := eps
	o := 0
	for l := 1; l <= nC1; l++ {
		m := (nC1 - l) / 2
		c[l] = d * polyval(m, coeff[o:], eps2) / coeff[o+m+1]
		o += m + 2
		d *= eps
	}
}

// a2m1f returns A2 - 1.
func a2m1f(eps float64) float64 {
	coeff := []float64{-11, -28, -192, 0, 256}
	m := nA2 / 2
	t := polyval(m, coeff, sq(eps)) / coeff[m+1]

	return (t - eps) / (1 + eps)
}

// c2f fills c[1..nC2] with the C2 coefficients.
func c2f(eps float64, c []float64) {
	coeff := []float64{
		1, 2, 16, 32,
		35, 64, 384, 2048,
		15, 80, 768,
		7, 35, 512,
		63, 1280,
		77, 2048,
	}
	eps2 := sq(eps)
	d := eps
	o := 0
	for l := 1; l <= nC2; l++ {
		m := (nC2 - l) / 2
		c[l] = d * polyval(m, coeff[o:], eps2) / coeff[o+m+1]
		o += m + 2
		d *= eps
	}
}

func (e *Ellipsoid) a3coeff() {
	coeff := []float64{
		-3, 128,
		-2, -3, 64,
		-1, -3, -1, 16,
		3, -1, -2, 8,
		1, -1, 2,
		1, 1,
	}
	o, k := 0, 0
	for j := nA3 - 1; j >= 0; j-- {
		m := min(nA3-j-1, j)
		e.a3x[k] = polyval(m, coeff[o:], e.n) / coeff[o+m+1]
		k++
		o += m + 2
	}
}

func (e *Ellipsoid) c3coeff() {
	coeff := []float64{
		3, 128,
		2, 5, 128,
		-1, 3, 3, 64,
		-1, 0, 1, 8,
		-1, 1, 4,
		5, 256,
		1, 3, 128,
		-3, -2, 3, 64,
		1, -3, 2, 32,
		7, 512,
		-10, 9, 384,
		5, -9, 5, 192,
		7, 512,
		-14, 7, 512,
		21, 2560,
	}
	o, k := 0, 0
	for l := 1; l < nC3; l++ {
		for j := nC3 - 1; j >= l; j-- {
			m := min(nC3-j-1, j)
			e.c3x[k] = polyval(m, coeff[o:], e.n) / coeff[o+m+1]
			k++
			o += m + 2
		}
	}
}

func (e *Ellipsoid) c4coeff() {
	coeff := []float64{
		97, 15015,
		1088, 156, 45045,
		-224, -4784, 1573, 45045,
		-10656, 14144, -4576, -858, 45045,
		64, 624, -4576, 6864, -3003, 15015,
		100, 208, 572, 3432, -12012, 30030, 45045,
		1, 9009,
		-2944, 468, 135135,
		5792, 1040, -1287, 135135,
		5952, -11648, 9152, -2574, 135135,
		-64, -624, 4576, -6864, 3003, 135135,
		8, 10725,
		1856, -936, 225225,
		-8448, 4992, -1144, 225225,
		-1440, 4160, -4576, 1716, 225225,
		-136, 63063,
		1024, -208, 105105,
		3584, -3328, 1144, 315315,
		-128, 135135,
		-2560, 832, 405405,
		128, 99099,
	}
	o, k := 0, 0
	for l := 0; l < nC4; l++ {
		for j := nC4 - 1; j >= l; j-- {
			m := nC4 - j - 1
			e.c4x[k] = polyval(m, coeff[o:], e.n) / coeff[o+m+1]
			k++
			o += m + 2
		}
	}
}

func (e *Ellipsoid) a3f(eps float64) float64 {
	return polyval(nA3-1, e.a3x[:], eps)
}

// c3f fills c[1..nC3-1].
func (e *Ellipsoid) c3f(eps float64, c []float64) {
	mult := 1.0
	o := 0
	for l := 1; l < nC3; l++ {
		m := nC3 - l - 1
		mult *= eps
		c[l] = mult * polyval(m, e.c3x[o:], eps)
		o += m + 1
	}
}

// c4f fills c[0..nC4-1].
func (e *Ellipsoid) c4f(eps float64, c []float64) {
	mult := 1.0
	o := 0
	for l := 0; l < nC4; l++ {
		m := nC4 - l - 1
		c[l] = mult * polyval(m, e.c4x[o:], eps)
		o += m + 1
		mult *= eps
	}
}
