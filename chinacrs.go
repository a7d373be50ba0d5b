// Package chinacrs converts coordinates between WGS-84, GCJ-02 and BD-09.
//
// WGS-84 is the GPS datum. GCJ-02 is the obfuscated datum required for public
// maps in China, approximated here by the widely used empirical model. BD-09
// is Baidu's additional offset on top of GCJ-02.
//
// Every function takes and returns (latitude, longitude) in decimal degrees.
// Inputs are not validated: out of range values are converted like any other
// and NaN or Inf propagate to the result. All functions are safe for
// concurrent use.
package chinacrs

// WGSToBD converts a WGS-84 coordinate into BD-09.
func WGSToBD(lat, lon float64) (float64, float64) {
	return GCJToBD(WGSToGCJ(lat, lon))
}

// BDToWGS converts a BD-09 coordinate into WGS-84 using the first-order
// GCJ-02 inverse.
func BDToWGS(lat, lon float64) (float64, float64) {
	return GCJToWGS(BDToGCJ(lat, lon))
}

// BDToWGSExact converts a BD-09 coordinate into WGS-84 using the iterative
// GCJ-02 inverse.
func BDToWGSExact(lat, lon float64) (float64, float64) {
	return GCJToWGSExact(BDToGCJ(lat, lon))
}
