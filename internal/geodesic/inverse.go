package geodesic

import "math"

// Inverse solves the inverse geodesic problem between (lat1, lon1) and
// (lat2, lon2), in degrees. It returns the geodesic distance in meters and
// the area, in square meters, between the geodesic and the equator, counted
// positive when the geodesic runs eastward.
//
// Latitudes must lie in [-90, 90]; longitudes are unrestricted.
func (e *Ellipsoid) Inverse(lat1, lon1, lat2, lon2 float64) (float64, float64) {
	lon12, lon12s := angDiff(lon1, lon2)
	lonsign := 1.0
	if lon12 < 0 {
		lonsign = -1
	}
	lon12 = lonsign * angRound(lon12)
	lon12s = angRound((180 - lon12) - lonsign*lon12s)
	lam12 := lon12 * degree

	var slam12, clam12 float64
	if lon12 > 90 {
		slam12, clam12 = sincosd(lon12s)
		clam12 = -clam12
	} else {
		slam12, clam12 = sincosd(lon12)
	}

	lat1 = angRound(latFix(lat1))
	lat2 = angRound(latFix(lat2))

	// Make lat1 the point farther from the equator and put it in the southern hemisphere.
	swapp := 1.0
	if math.Abs(lat1) < math.Abs(lat2) || math.IsNaN(lat2) {
		swapp = -1
		lonsign = -lonsign
		lat1, lat2 = lat2, lat1
	}
	latsign := -1.0
	if lat1 < 0 {
		latsign = 1
	}
	lat1 *= latsign
	lat2 *= latsign

	sbet1, cbet1 := sincosd(lat1)
	sbet1 *= e.f1
	sbet1, cbet1 = norm2(sbet1, cbet1)
	cbet1 = math.Max(tiny, cbet1)

	sbet2, cbet2 := sincosd(lat2)
	sbet2 *= e.f1
	sbet2, cbet2 = norm2(sbet2, cbet2)
	cbet2 = math.Max(tiny, cbet2)

	if cbet1 < -sbet1 {
		if cbet2 == cbet1 {
			sbet2 = math.Copysign(sbet1, sbet2)
		}
	} else if math.Abs(sbet2) == -sbet1 {
		cbet2 = cbet1
	}

	dn1 := math.Sqrt(1 + e.ep2*sq(sbet1))
	dn2 := math.Sqrt(1 + e.ep2*sq(sbet2))

	var (
		sig12, s12x, m12x          float64
		salp1, calp1, salp2, calp2 float64
		omg12                      float64
		somg12                     = 2.0
		comg12                     float64
	)

	meridian := lat1 == -90 || slam12 == 0
	if meridian {
		calp1, salp1 = clam12, slam12
		calp2, salp2 = 1, 0

		ssig1, csig1 := sbet1, calp1*cbet1
		ssig2, csig2 := sbet2, calp2*cbet2

		sig12 = math.Atan2(math.Max(0, csig1*ssig2-ssig1*csig2)+0, csig1*csig2+ssig1*ssig2)
		s12x, m12x = e.lengths(e.n, sig12, ssig1, csig1, dn1, ssig2, csig2, dn2, true)
		if sig12 < 1 || m12x >= 0 {
			if sig12 < 3*tiny || (sig12 < tol0 && (s12x < 0 || m12x < 0)) {
				sig12, m12x, s12x = 0, 0, 0
			}
			s12x *= e.b
		} else {
			// m12 < 0, the meridian is not the shortest path.
			meridian = false
		}
	}

	switch {
	case meridian:
	case sbet1 == 0 && (e.f <= 0 || lon12s >= e.f*180):
		// Equatorial geodesic.
		calp1, calp2 = 0, 0
		salp1, salp2 = 1, 1
		s12x = e.a * lam12
		sig12 = lam12 / e.f1
		omg12 = sig12
	default:
		var dnm float64
		sig12, salp1, calp1, salp2, calp2, dnm = e.inverseStart(
			sbet1, cbet1, dn1, sbet2, cbet2, dn2, lam12, slam12, clam12,
		)

		if sig12 >= 0 {
			// Short line on a nearly spherical body.
			s12x = sig12 * e.b * dnm
			omg12 = lam12 / (e.f1 * dnm)
		} else {
			var (
				ssig1, csig1, ssig2, csig2, eps, domg12 float64
				salp1a, calp1a                          = tiny, 1.0
				salp1b, calp1b                          = tiny, -1.0
				tripn, tripb                            bool
			)

			for numit := 0; ; numit++ {
				var v, dv float64
				v, salp2, calp2, sig12, ssig1, csig1, ssig2, csig2, eps, domg12, dv = e.lambda12(
					sbet1, cbet1, dn1, sbet2, cbet2, dn2, salp1, calp1, slam12, clam12, numit < maxit1,
				)

				threshold := 1.0
				if tripn {
					threshold = 8
				}
				if tripb || !(math.Abs(v) >= threshold*tol0) || numit == maxit2 {
					break
				}

				// Update the bracketing values.
				if v > 0 && (numit > maxit1 || calp1/salp1 > calp1b/salp1b) {
					salp1b, calp1b = salp1, calp1
				} else if v < 0 && (numit > maxit1 || calp1/salp1 < calp1a/salp1a) {
					salp1a, calp1a = salp1, calp1
				}

				if numit < maxit1 && dv > 0 {
					dalp1 := -v / dv
					if math.Abs(dalp1) < math.Pi {
						sdalp1, cdalp1 := math.Sincos(dalp1)
						nsalp1 := salp1*cdalp1 + calp1*sdalp1
						if nsalp1 > 0 {
							calp1 = calp1*cdalp1 - salp1*sdalp1
							salp1 = nsalp1
							salp1, calp1 = norm2(salp1, calp1)
							tripn = math.Abs(v) <= 16*tol0
							continue
						}
					}
				}

				// Newton failed to stay in range, bisect.
				salp1 = (salp1a + salp1b) / 2
				calp1 = (calp1a + calp1b) / 2
				salp1, calp1 = norm2(salp1, calp1)
				tripn = false
				tripb = math.Abs(salp1a-salp1)+(calp1a-calp1) < tolb ||
					math.Abs(salp1-salp1b)+(calp1-calp1b) < tolb
			}

			s12x, _ = e.lengths(eps, sig12, ssig1, csig1, dn1, ssig2, csig2, dn2, true)
			s12x *= e.b

			sdomg12, cdomg12 := math.Sincos(domg12)
			somg12 = slam12*cdomg12 - clam12*sdomg12
			comg12 = clam12*cdomg12 + slam12*sdomg12
		}
	}

	s12 := 0 + s12x
	S12 := e.areaTerm(sbet1, cbet1, sbet2, cbet2, salp1, calp1, salp2, calp2)

	if !meridian && somg12 == 2 {
		somg12, comg12 = math.Sincos(omg12)
	}

	var alp12 float64
	if !meridian && comg12 > -0.7071 && sbet2-sbet1 < 1.75 {
		// Use the tan(omega/2) formula for short lines.
		domg12 := 1 + comg12
		dbet1 := 1 + cbet1
		dbet2 := 1 + cbet2
		alp12 = 2 * math.Atan2(somg12*(sbet1*dbet2+sbet2*dbet1), domg12*(sbet1*sbet2+dbet1*dbet2))
	} else {
		salp12 := salp2*calp1 - calp2*salp1
		calp12 := calp2*calp1 + salp2*salp1
		if salp12 == 0 && calp12 < 0 {
			salp12 = tiny * calp1
			calp12 = -1
		}
		alp12 = math.Atan2(salp12, calp12)
	}

	S12 += e.c2 * alp12
	S12 *= swapp * lonsign * latsign
	S12 += 0

	return s12, S12
}

// areaTerm returns the A4 * (B42 - B41) part of the area between a geodesic and the equator.
func (e *Ellipsoid) areaTerm(sbet1, cbet1, sbet2, cbet2, salp1, calp1, salp2, calp2 float64) float64 {
	salp0 := salp1 * cbet1
	calp0 := math.Hypot(calp1, salp1*sbet1)
	if calp0 == 0 || salp0 == 0 {
		return 0
	}

	ssig1, csig1 := norm2(sbet1, calp1*cbet1)
	ssig2, csig2 := norm2(sbet2, calp2*cbet2)
	k2 := sq(calp0) * e.ep2
	eps := k2 / (2*(1+math.Sqrt(1+k2)) + k2)
	a4 := sq(e.a) * calp0 * salp0 * e.e2

	var c [nC]float64
	e.c4f(eps, c[:])
	b41 := sinCosSeries(false, ssig1, csig1, c[:], nC4)
	b42 := sinCosSeries(false, ssig2, csig2, c[:], nC4)

	return a4 * (b42 - b41)
}

// lengths returns the scaled distance s12/b and, when wantM is set, the
// reduced length m12/b of the geodesic segment.
func (e *Ellipsoid) lengths(
	eps, sig12, ssig1, csig1, dn1, ssig2, csig2, dn2 float64,
	wantS bool,
) (float64, float64) {
	var ca, cb [nC]float64

	a1 := a1m1f(eps)
	c1f(eps, ca[:])
	a2 := a2m1f(eps)
	c2f(eps, cb[:])
	m0 := a1 - a2
	a2 = 1 + a2
	a1 = 1 + a1

	var s12b, j12 float64
	if wantS {
		b1 := sinCosSeries(true, ssig2, csig2, ca[:], nC1) - sinCosSeries(true, ssig1, csig1, ca[:], nC1)
		s12b = a1 * (sig12 + b1)
		b2 := sinCosSeries(true, ssig2, csig2, cb[:], nC2) - sinCosSeries(true, ssig1, csig1, cb[:], nC2)
		j12 = m0*sig12 + (a1*b1 - a2*b2)
	} else {
		for l := 1; l <= nC2; l++ {
			cb[l] = a1*ca[l] - a2*cb[l]
		}
		j12 = m0*sig12 + (sinCosSeries(true, ssig2, csig2, cb[:], nC2) - sinCosSeries(true, ssig1, csig1, cb[:], nC2))
	}

	m12b := dn2*(csig1*ssig2) - dn1*(ssig1*csig2) - csig1*csig2*j12

	return s12b, m12b
}

// inverseStart returns a starting azimuth for Newton's method. A non-negative
// sig12 means the short-line solution is already accurate.
func (e *Ellipsoid) inverseStart(
	sbet1, cbet1, dn1, sbet2, cbet2, dn2, lam12, slam12, clam12 float64,
) (sig12, salp1, calp1, salp2, calp2, dnm float64) {
	sig12 = -1
	sbet12 := sbet2*cbet1 - cbet2*sbet1
	cbet12 := cbet2*cbet1 + sbet2*sbet1
	sbet12a := sbet2*cbet1 + cbet2*sbet1
	shortline := cbet12 >= 0 && sbet12 < 0.5 && cbet2*lam12 < 0.5

	var somg12, comg12 float64
	if shortline {
		sbetm2 := sq(sbet1 + sbet2)
		sbetm2 /= sbetm2 + sq(cbet1+cbet2)
		dnm = math.Sqrt(1 + e.ep2*sbetm2)
		omg12 := lam12 / (e.f1 * dnm)
		somg12, comg12 = math.Sincos(omg12)
	} else {
		somg12, comg12 = slam12, clam12
	}

	salp1 = cbet2 * somg12
	if comg12 >= 0 {
		calp1 = sbet12 + cbet2*sbet1*sq(somg12)/(1+comg12)
	} else {
		calp1 = sbet12a - cbet2*sbet1*sq(somg12)/(1-comg12)
	}

	ssig12 := math.Hypot(salp1, calp1)
	csig12 := sbet1*sbet2 + cbet1*cbet2*comg12

	switch {
	case shortline && ssig12 < e.etol2:
		salp2 = cbet1 * somg12
		if comg12 >= 0 {
			calp2 = sbet12 - cbet1*sbet2*(sq(somg12)/(1+comg12))
		} else {
			calp2 = sbet12 - cbet1*sbet2*(1-comg12)
		}
		salp2, calp2 = norm2(salp2, calp2)
		sig12 = math.Atan2(ssig12, csig12)
	case math.Abs(e.n) > 0.1 || csig12 >= 0 || ssig12 >= 6*math.Abs(e.n)*math.Pi*sq(cbet1):
		// The zeroth order spherical approximation is good enough.
	default:
		// Nearly antipodal points, solve the astroid problem.
		lam12x := math.Atan2(-slam12, -clam12)
		k2 := sq(sbet1) * e.ep2
		eps := k2 / (2*(1+math.Sqrt(1+k2)) + k2)
		lamscale := e.f * cbet1 * e.a3f(eps) * math.Pi
		betscale := lamscale * cbet1
		x := lam12x / lamscale
		y := sbet12a / betscale

		if y > -tol1 && x > -1-xthresh {
			salp1 = math.Min(1, -x)
			calp1 = -math.Sqrt(1 - sq(salp1))
		} else {
			k := astroid(x, y)
			omg12a := lamscale * (-x * k / (1 + k))
			somg12, comg12 = math.Sincos(omg12a)
			comg12 = -comg12
			salp1 = cbet2 * somg12
			calp1 = sbet12a - cbet2*sbet1*sq(somg12)/(1-comg12)
		}
	}

	if !(salp1 <= 0) {
		salp1, calp1 = norm2(salp1, calp1)
	} else {
		salp1, calp1 = 1, 0
	}

	return sig12, salp1, calp1, salp2, calp2, dnm
}

// lambda12 returns the longitude difference reached by a geodesic leaving the
// first point with azimuth alp1, minus the target difference, and its derivative.
func (e *Ellipsoid) lambda12(
	sbet1, cbet1, dn1, sbet2, cbet2, dn2, salp1, calp1, slam120, clam120 float64,
	diffp bool,
) (lam12, salp2, calp2, sig12, ssig1, csig1, ssig2, csig2, eps, domg12, dlam12 float64) {
	if sbet1 == 0 && calp1 == 0 {
		// Break the degeneracy of equatorial lines.
		calp1 = -tiny
	}

	salp0 := salp1 * cbet1
	calp0 := math.Hypot(calp1, salp1*sbet1)

	ssig1 = sbet1
	somg1 := salp0 * sbet1
	csig1 = calp1 * cbet1
	comg1 := csig1
	ssig1, csig1 = norm2(ssig1, csig1)

	if cbet2 != cbet1 {
		salp2 = salp0 / cbet2
	} else {
		salp2 = salp1
	}
	if cbet2 != cbet1 || math.Abs(sbet2) != -sbet1 {
		var t float64
		if cbet1 < -sbet1 {
			t = (cbet2 - cbet1) * (cbet1 + cbet2)
		} else {
			t = (sbet1 - sbet2) * (sbet1 + sbet2)
		}
		calp2 = math.Sqrt(sq(calp1*cbet1)+t) / cbet2
	} else {
		calp2 = math.Abs(calp1)
	}

	ssig2 = sbet2
	somg2 := salp0 * sbet2
	csig2 = calp2 * cbet2
	comg2 := csig2
	ssig2, csig2 = norm2(ssig2, csig2)

	sig12 = math.Atan2(math.Max(0, csig1*ssig2-ssig1*csig2)+0, csig1*csig2+ssig1*ssig2)

	somg12 := math.Max(0, comg1*somg2-somg1*comg2) + 0
	comg12 := comg1*comg2 + somg1*somg2
	eta := math.Atan2(somg12*clam120-comg12*slam120, comg12*clam120+somg12*slam120)

	k2 := sq(calp0) * e.ep2
	eps = k2 / (2*(1+math.Sqrt(1+k2)) + k2)

	var c [nC]float64
	e.c3f(eps, c[:])
	b312 := sinCosSeries(true, ssig2, csig2, c[:], nC3-1) - sinCosSeries(true, ssig1, csig1, c[:], nC3-1)
	domg12 = -e.f * e.a3f(eps) * salp0 * (sig12 + b312)
	lam12 = eta + domg12

	if diffp {
		if calp2 == 0 {
			dlam12 = -2 * e.f1 * dn1 / sbet1
		} else {
			_, dlam12 = e.lengths(eps, sig12, ssig1, csig1, dn1, ssig2, csig2, dn2, false)
			dlam12 *= e.f1 / (calp2 * cbet2)
		}
	}

	return lam12, salp2, calp2, sig12, ssig1, csig1, ssig2, csig2, eps, domg12, dlam12
}

// astroid solves k^4 + 2*k^3 - (x^2 + y^2 - 1)*k^2 - 2*y^2*k - y^2 = 0 for the positive root.
func astroid(x, y float64) float64 {
	p := sq(x)
	q := sq(y)
	r := (p + q - 1) / 6
	if q == 0 && r <= 0 {
		return 0
	}

	s := p * q / 4
	r2 := sq(r)
	r3 := r * r2
	disc := s * (s + 2*r3)
	u := r
	if disc >= 0 {
		t3 := s + r3
		if t3 < 0 {
			t3 -= math.Sqrt(disc)
		} else {
			t3 += math.Sqrt(disc)
		}
		t := math.Cbrt(t3)
		u += t
		if t != 0 {
			u += r2 / t
		}
	} else {
		ang := math.Atan2(math.Sqrt(-disc), -(s + r3))
		u += 2 * r * math.Cos(ang/3)
	}

	v := math.Sqrt(sq(u) + q)
	var uv float64
	if u < 0 {
		uv = q / (v - u)
	} else {
		uv = u + v
	}
	w := (uv - q) / (2 * v)

	return uv / (math.Sqrt(uv+sq(w)) + w)
}
