package chinacrs

import "math"

// Convergence limits of GCJToWGSExact.
const (
	exactEpsilon   = 1e-7
	exactMaxRounds = 10
)

// WGSToGCJ converts a WGS-84 coordinate into GCJ-02.
// Points outside China are returned unchanged.
func WGSToGCJ(lat, lon float64) (float64, float64) {
	if OutsideChina(lat, lon) {
		return lat, lon
	}

	dLat, dLon := Delta(lat, lon)
	return lat + dLat, lon + dLon
}

// GCJToWGS converts a GCJ-02 coordinate into WGS-84.
//
// The offset is evaluated at the GCJ-02 point rather than the unknown WGS-84
// one, so the result is a first-order inverse accurate to a few meters.
// Use GCJToWGSExact when that is not enough.
func GCJToWGS(lat, lon float64) (float64, float64) {
	if OutsideChina(lat, lon) {
		return lat, lon
	}

	dLat, dLon := Delta(lat, lon)
	return lat - dLat, lon - dLon
}

// GCJToWGSExact converts a GCJ-02 coordinate into WGS-84 by refining the guess
// until its forward transform matches the input to within 1e-7 degrees, or
// ten rounds have passed.
func GCJToWGSExact(lat, lon float64) (float64, float64) {
	wgsLat, wgsLon := lat, lon

	for i := 0; i < exactMaxRounds; i++ {
		curLat, curLon := WGSToGCJ(wgsLat, wgsLon)
		dLat, dLon := lat-curLat, lon-curLon
		if math.Abs(dLat) < exactEpsilon && math.Abs(dLon) < exactEpsilon {
			break
		}

		wgsLat += dLat
		wgsLon += dLon
	}

	return wgsLat, wgsLon
}
