package astro

import "math"

// EquatorialToCartesian converts J2000 equatorial coordinates plus a distance
// into a cartesian position in the same distance unit.
//
// Axes follow the equatorial frame:
//   - X points toward the vernal equinox (RA 0°, Dec 0°)
//   - Y points toward RA 90°, Dec 0°
//   - Z points toward the north celestial pole
func EquatorialToCartesian(raDeg, decDeg, distance float64) Vec3 {
	ra := degToRad(raDeg)
	dec := degToRad(decDeg)
	cosDec := math.Cos(dec)

	return Vec3{
		X: distance * cosDec * math.Cos(ra),
		Y: distance * cosDec * math.Sin(ra),
		Z: distance * math.Sin(dec),
	}
}

// CartesianToEquatorial is the inverse of EquatorialToCartesian.
// The origin maps to RA 0, Dec 0, distance 0.
func CartesianToEquatorial(v Vec3) (raDeg, decDeg, distance float64) {
	distance = v.Norm()
	if distance == 0 {
		return 0, 0, 0
	}
	decDeg = radToDeg(math.Asin(v.Z / distance))
	raDeg = radToDeg(math.Atan2(v.Y, v.X))
	if raDeg < 0 {
		raDeg += 360
	}
	return raDeg, decDeg, distance
}

// NormalizeAngle wraps an angle in degrees to the -180..+180 range.
func NormalizeAngle(a float64) float64 {
	for a > 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
