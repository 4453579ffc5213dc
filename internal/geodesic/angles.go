package geodesic

import "math"

// sumx returns the rounded sum u+v and the rounding error t, so that s+t == u+v exactly.
func sumx(u, v float64) (float64, float64) {
	s := u + v
	up := s - v
	vpp := s - up
	up -= u
	vpp -= v
	if s == 0 {
		return s, s
	}

	return s, 0 - (up + vpp)
}

// angNormalize reduces an angle to (-180, 180].
func angNormalize(x float64) float64 {
	y := math.Remainder(x, 360)
	if y == -180 {
		return 180
	}

	return y
}

// angRound coarsens tiny angles so that they are exact multiples of 2^-57 degrees.
func angRound(x float64) float64 {
	const z = 1.0 / 16
	y := math.Abs(x)
	if y < z {
		y = z - (z - y)
	}

	return math.Copysign(y, x)
}

// angDiff returns the exact difference y - x reduced to [-180, 180] together with
// its rounding error. Inputs do not need to be normalized.
func angDiff(x, y float64) (float64, float64) {
	d, t := sumx(math.Remainder(-x, 360), math.Remainder(y, 360))
	d, t = sumx(math.Remainder(d, 360), t)
	if d == 0 || math.Abs(d) == 180 {
		if t == 0 {
			d = math.Copysign(d, y-x)
		} else {
			d = math.Copysign(d, -t)
		}
	}

	return d, t
}

// latFix replaces latitudes outside [-90, 90] with NaN.
func latFix(x float64) float64 {
	if math.Abs(x) > 90 {
		return math.NaN()
	}

	return x
}

// sincosd returns the sine and cosine of x degrees, exact at multiples of 90.
func sincosd(x float64) (float64, float64) {
	r := math.Mod(x, 360)
	q := 0
	if !math.IsNaN(r) {
		q = int(math.Round(r / 90))
	}
	r -= 90 * float64(q)
	s, c := math.Sincos(r * degree)

	var sinx, cosx float64
	switch q & 3 {
	case 0:
		sinx, cosx = s, c
	case 1:
		sinx, cosx = c, -s
	case 2:
		sinx, cosx = -s, -c
	default:
		sinx, cosx = -c, s
	}
	cosx += 0
	if sinx == 0 {
		sinx = math.Copysign(sinx, x)
	}

	return sinx, cosx
}

func norm2(x, y float64) (float64, float64) {
	r := math.Hypot(x, y)

	return x / r, y / r
}
