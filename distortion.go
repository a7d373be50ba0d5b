package chinacrs

import "math"

// Origin of the distortion series.
const (
	originLon = 105.0
	originLat = 35.0
)

// Polynomial terms of the latitude series.
const (
	latC0    = -100.0
	latCX    = 2.0
	latCY    = 3.0
	latCYY   = 0.2
	latCXY   = 0.1
	latCSqrt = 0.2
)

// Polynomial terms of the longitude series.
const (
	lonC0    = 300.0
	lonCX    = 1.0
	lonCY    = 2.0
	lonCXX   = 0.1
	lonCXY   = 0.1
	lonCSqrt = 0.1
)

// Harmonic amplitudes. The first pair is shared by both series.
const (
	ampSix = 20.0
	ampTwo = 20.0

	latAmpPi    = 20.0
	latAmpPi3   = 40.0
	latAmpPi12  = 160.0
	latAmpPi30  = 320.0
	lonAmpPi    = 20.0
	lonAmpPi3   = 40.0
	lonAmpPi12  = 150.0
	lonAmpPi30  = 300.0
	harmonicMul = 2.0
	harmonicDiv = 3.0
)

// transformLat returns the unscaled latitude perturbation. x and y are offsets
// from the series origin in longitude and latitude respectively.
func transformLat(x, y float64) float64 {
	ret := latC0 + latCX*x + latCY*y + latCYY*y*y + latCXY*x*y + latCSqrt*math.Sqrt(math.Abs(x))
	ret += (ampSix*math.Sin(6.0*x*math.Pi) + ampTwo*math.Sin(2.0*x*math.Pi)) * harmonicMul / harmonicDiv
	ret += (latAmpPi*math.Sin(y*math.Pi) + latAmpPi3*math.Sin(y/3.0*math.Pi)) * harmonicMul / harmonicDiv
	ret += (latAmpPi12*math.Sin(y/12.0*math.Pi) + latAmpPi30*math.Sin(y*math.Pi/30.0)) * harmonicMul / harmonicDiv
	return ret
}

// transformLon returns the unscaled longitude perturbation.
func transformLon(x, y float64) float64 {
	ret := lonC0 + lonCX*x + lonCY*y + lonCXX*x*x + lonCXY*x*y + lonCSqrt*math.Sqrt(math.Abs(x))
	ret += (ampSix*math.Sin(6.0*x*math.Pi) + ampTwo*math.Sin(2.0*x*math.Pi)) * harmonicMul / harmonicDiv
	ret += (lonAmpPi*math.Sin(x*math.Pi) + lonAmpPi3*math.Sin(x/3.0*math.Pi)) * harmonicMul / harmonicDiv
	ret += (lonAmpPi12*math.Sin(x/12.0*math.Pi) + lonAmpPi30*math.Sin(x/30.0*math.Pi)) * harmonicMul / harmonicDiv
	return ret
}

// Delta returns the offset in degrees that WGS-84 to GCJ-02 obfuscation adds
// at the given point. The perturbation series is scaled to an angle using the
// Krasovsky meridian and prime vertical radii of curvature at lat.
//
// Delta does not consult OutsideChina.
func Delta(lat, lon float64) (dLat, dLon float64) {
	dLat = transformLat(lon-originLon, lat-originLat)
	dLon = transformLon(lon-originLon, lat-originLat)

	radLat := lat * math.Pi / 180.0
	magic := math.Sin(radLat)
	magic = 1.0 - KrasovskyEE*magic*magic
	sqrtMagic := math.Sqrt(magic)

	dLat = (dLat * 180.0) / ((KrasovskyA * (1.0 - KrasovskyEE)) / (magic * sqrtMagic) * math.Pi)
	dLon = (dLon * 180.0) / (KrasovskyA / sqrtMagic * math.Cos(radLat) * math.Pi)
	return dLat, dLon
}
