package chinacrs

import "math"

// BD-09 shift applied after the polar perturbation.
const (
	bdShiftLat = 0.006
	bdShiftLon = 0.0065
	bdRadius   = 0.00002
	bdAngle    = 0.000003
)

// GCJToBD converts a GCJ-02 coordinate into BD-09.
// The offset is applied everywhere, the China bounding box is not consulted.
func GCJToBD(lat, lon float64) (float64, float64) {
	z := math.Sqrt(lon*lon+lat*lat) + bdRadius*math.Sin(lat*XPi)
	theta := math.Atan2(lat, lon) + bdAngle*math.Cos(lon*XPi)
	return z*math.Sin(theta) + bdShiftLat, z*math.Cos(theta) + bdShiftLon
}

// BDToGCJ converts a BD-09 coordinate into GCJ-02.
func BDToGCJ(lat, lon float64) (float64, float64) {
	x := lon - bdShiftLon
	y := lat - bdShiftLat
	z := math.Sqrt(x*x+y*y) - bdRadius*math.Sin(y*XPi)
	theta := math.Atan2(y, x) - bdAngle*math.Cos(x*XPi)
	return z * math.Sin(theta), z * math.Cos(theta)
}
