package chinacrs

import "math"

// Krasovsky 1940 ellipsoid, the datum GCJ-02 obfuscation is defined against.
//
//	a = 6378245.0, 1/f = 298.3
//	b = a * (1 - f)
//	ee = (a^2 - b^2) / a^2
const (
	// KrasovskyA is the semi-major axis in meters.
	KrasovskyA = 6378245.0
	// KrasovskyEE is the first eccentricity squared.
	KrasovskyEE = 0.00669342162296594323
)

// XPi scales degrees for the BD-09 offset.
const XPi = math.Pi * 3000.0 / 180.0
