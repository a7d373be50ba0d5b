package processor

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/woozymasta/chinacrs"
	"github.com/woozymasta/chinacrs/internal/config"
	"github.com/woozymasta/chinacrs/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    Point
		wantErr bool
	}{
		{in: "39.9087,116.3975", want: Point{Lat: 39.9087, Lon: 116.3975}},
		{in: " 39.9087 , 116.3975 ", want: Point{Lat: 39.9087, Lon: 116.3975}},
		{in: "39.9087,116.3975,Tiananmen Square", want: Point{Name: "Tiananmen Square", Lat: 39.9087, Lon: 116.3975}},
		{in: "39.9087 116.3975", want: Point{Lat: 39.9087, Lon: 116.3975}},
		{in: "39.9087\t116.3975   People's Square", want: Point{Name: "People's Square", Lat: 39.9087, Lon: 116.3975}},
		{in: "-33.8688,151.2093", want: Point{Lat: -33.8688, Lon: 151.2093}},
		{in: "39.9087", wantErr: true},
		{in: "", wantErr: true},
		{in: "north,116", wantErr: true},
		{in: "39,east", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePoint(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPoint)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadPoints(t *testing.T) {
	input := `# city centers
39.9087,116.3975,Beijing

31.2304 121.4737 Shanghai
`
	points, err := ReadPoints(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Point{
		{Name: "Beijing", Lat: 39.9087, Lon: 116.3975},
		{Name: "Shanghai", Lat: 31.2304, Lon: 121.4737},
	}, points)
}

func TestReadPointsBadLine(t *testing.T) {
	_, err := ReadPoints(strings.NewReader("39,116\n\nbad\n"))
	require.ErrorIs(t, err, ErrInvalidPoint)
	assert.Contains(t, err.Error(), "line 3")
}

func TestPointsFromConfig(t *testing.T) {
	cfg := &config.Config{Points: []config.Point{{Name: "a", Lat: 1, Lon: 2}}}
	assert.Equal(t, []Point{{Name: "a", Lat: 1, Lon: 2}}, PointsFromConfig(cfg))
}

func TestConverter(t *testing.T) {
	p := Point{Name: "Beijing", Lat: 39.9087, Lon: 116.3975}

	c := Converter{From: chinacrs.WGS84, To: chinacrs.BD09}
	r := c.Convert(p)

	wantLat, wantLon := chinacrs.WGSToBD(p.Lat, p.Lon)
	assert.Equal(t, "Beijing", r.Name)
	assert.Equal(t, chinacrs.WGS84, r.From)
	assert.Equal(t, chinacrs.BD09, r.To)
	assert.Equal(t, Coordinate{Lat: p.Lat, Lon: p.Lon}, r.Input)
	assert.Equal(t, Coordinate{Lat: wantLat, Lon: wantLon}, r.Output)
}

func TestConverterExact(t *testing.T) {
	p := Point{Lat: 39.0, Lon: 116.0}

	r := Converter{From: chinacrs.GCJ02, To: chinacrs.WGS84, Exact: true}.Convert(p)
	wantLat, wantLon := chinacrs.GCJToWGSExact(p.Lat, p.Lon)
	assert.Equal(t, Coordinate{Lat: wantLat, Lon: wantLon}, r.Output)

	r = Converter{From: chinacrs.GCJ02, To: chinacrs.WGS84}.Convert(p)
	wantLat, wantLon = chinacrs.GCJToWGS(p.Lat, p.Lon)
	assert.Equal(t, Coordinate{Lat: wantLat, Lon: wantLon}, r.Output)
}

func sampleResults() []Result {
	return []Result{
		{
			Name:   "Beijing",
			From:   chinacrs.WGS84,
			To:     chinacrs.GCJ02,
			Input:  Coordinate{Lat: 39.9087, Lon: 116.3975},
			Output: Coordinate{Lat: 39.91, Lon: 116.40381},
		},
		{
			From:   chinacrs.WGS84,
			To:     chinacrs.GCJ02,
			Input:  Coordinate{Lat: 0, Lon: 0},
			Output: Coordinate{Lat: 0, Lon: 0},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, config.FormatText, 4, sampleResults()))
	assert.Equal(t, "39.9100,116.4038,Beijing\n0.0000,0.0000\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, config.FormatJSON, 6, sampleResults()))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Beijing", got[0]["name"])
	assert.Equal(t, "wgs84", got[0]["from"])
	assert.Equal(t, "gcj02", got[0]["to"])
	assert.NotContains(t, got[1], "name")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, config.FormatYAML, 6, sampleResults()))

	var got []struct {
		Name   string          `yaml:"name"`
		From   chinacrs.System `yaml:"from"`
		To     chinacrs.System `yaml:"to"`
		Output Coordinate      `yaml:"output"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Beijing", got[0].Name)
	assert.Equal(t, chinacrs.GCJ02, got[0].To)
	assert.Equal(t, Coordinate{Lat: 39.91, Lon: 116.40381}, got[0].Output)
}

func TestWriteGeoJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, config.FormatGeoJSON, 6, sampleResults()))

	var fc geo.GeoJSONFeatureCollection
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fc))
	assert.Equal(t, geo.TypeFeatureCollection, fc.Type)
	require.Len(t, fc.Features, 2)

	f := fc.Features[0]
	assert.Equal(t, []float64{116.40381, 39.91}, f.Geometry.Coordinates)
	assert.Equal(t, "Beijing", f.Properties["name"])
	assert.Equal(t, "gcj02", f.Properties["crs"])
	assert.Equal(t, "wgs84", f.Properties["source_crs"])
	assert.Equal(t, []any{116.3975, 39.9087}, f.Properties["source"])
	assert.NotContains(t, fc.Features[1].Properties, "name")
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "csv", 6, nil)
	require.ErrorIs(t, err, config.ErrInvalidFormat)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "points.txt")
	require.NoError(t, WriteFile(path, config.FormatText, 2, sampleResults()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "39.91,116.40,Beijing\n0.00,0.00\n", string(data))
}
