package chinacrs

// Rectangle approximating the region where GCJ-02 obfuscation applies.
const (
	chinaMinLon = 72.004
	chinaMaxLon = 137.8347
	chinaMinLat = 0.8293
	chinaMaxLat = 55.8271
)

// OutsideChina reports whether the point lies outside the bounding box in which
// WGS-84 and GCJ-02 differ. It is a coarse heuristic, not a territorial boundary.
func OutsideChina(lat, lon float64) bool {
	return lon < chinaMinLon || lon > chinaMaxLon || lat < chinaMinLat || lat > chinaMaxLat
}
