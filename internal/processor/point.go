// Package processor parses input coordinates, converts them and writes the results.
package processor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/woozymasta/chinacrs/internal/config"
)

// ErrInvalidPoint is returned when a coordinate cannot be parsed.
var ErrInvalidPoint = errors.New("invalid point")

// Point is an input coordinate with an optional label.
type Point struct {
	Name string  `json:"name,omitempty" yaml:"name,omitempty"`
	Lat  float64 `json:"lat" yaml:"lat"`
	Lon  float64 `json:"lon" yaml:"lon"`
}

// PointsFromConfig returns the points defined in the configuration file.
func PointsFromConfig(cfg *config.Config) []Point {
	points := make([]Point, 0, len(cfg.Points))
	for _, p := range cfg.Points {
		points = append(points, Point(p))
	}

	return points
}

// ParsePoint parses "lat,lon[,name]" or whitespace separated "lat lon [name]".
func ParsePoint(s string) (Point, error) {
	s = strings.TrimSpace(s)

	var fields []string
	if strings.Contains(s, ",") {
		fields = strings.SplitN(s, ",", 3)
	} else {
		fields = strings.SplitN(strings.Join(strings.Fields(s), " "), " ", 3)
	}

	if len(fields) < 2 {
		return Point{}, fmt.Errorf("%w: %q: expected lat,lon", ErrInvalidPoint, s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: latitude: %w", ErrInvalidPoint, s, err)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: longitude: %w", ErrInvalidPoint, s, err)
	}

	p := Point{Lat: lat, Lon: lon}
	if len(fields) == 3 {
		p.Name = strings.TrimSpace(fields[2])
	}

	return p, nil
}

// ReadPoints reads one point per line. Blank lines and lines starting with '#'
// are skipped.
func ReadPoints(r io.Reader) ([]Point, error) {
	var points []Point

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		p, err := ParsePoint(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points = append(points, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return points, nil
}
