// Package geo holds the GeoJSON structures written by the converter.
package geo

// GeoJSON type names.
const (
	TypeFeatureCollection = "FeatureCollection"
	TypeFeature           = "Feature"
	TypePoint             = "Point"
)

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature represents a single geographic feature with geometry and properties.
type GeoJSONFeature struct {
	Properties map[string]any  `json:"properties" yaml:"properties"`
	Type       string          `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry represents the geometry of a feature.
type GeoJSONGeometry struct {
	Type        string    `json:"type" yaml:"type"`
	Coordinates []float64 `json:"coordinates" yaml:"coordinates"` // [Lon, Lat]
}

// NewFeatureCollection returns an empty collection with room for n features.
func NewFeatureCollection(n int) GeoJSONFeatureCollection {
	return GeoJSONFeatureCollection{
		Type:     TypeFeatureCollection,
		Features: make([]GeoJSONFeature, 0, n),
	}
}

// NewPoint builds a Point feature. GeoJSON orders positions as [lon, lat].
func NewPoint(lat, lon float64, props map[string]any) GeoJSONFeature {
	if props == nil {
		props = map[string]any{}
	}

	return GeoJSONFeature{
		Type: TypeFeature,
		Geometry: GeoJSONGeometry{
			Type:        TypePoint,
			Coordinates: []float64{lon, lat},
		},
		Properties: props,
	}
}

// Lat returns the latitude of a Point geometry.
func (g GeoJSONGeometry) Lat() float64 {
	if len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[1]
}

// Lon returns the longitude of a Point geometry.
func (g GeoJSONGeometry) Lon() float64 {
	if len(g.Coordinates) < 1 {
		return 0
	}
	return g.Coordinates[0]
}
