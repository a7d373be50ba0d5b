package processor

import (
	"github.com/woozymasta/chinacrs"

	"github.com/rs/zerolog/log"
)

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Result is a converted point together with its source.
type Result struct {
	Name   string          `json:"name,omitempty" yaml:"name,omitempty"`
	From   chinacrs.System `json:"from" yaml:"from"`
	To     chinacrs.System `json:"to" yaml:"to"`
	Input  Coordinate      `json:"input" yaml:"input"`
	Output Coordinate      `json:"output" yaml:"output"`
}

// Converter converts points between two coordinate systems.
type Converter struct {
	From  chinacrs.System
	To    chinacrs.System
	Exact bool
}

// Convert converts a single point.
func (c Converter) Convert(p Point) Result {
	var lat, lon float64
	if c.Exact {
		lat, lon = chinacrs.ConvertExact(c.From, c.To, p.Lat, p.Lon)
	} else {
		lat, lon = chinacrs.Convert(c.From, c.To, p.Lat, p.Lon)
	}

	if chinacrs.OutsideChina(p.Lat, p.Lon) && c.From != chinacrs.BD09 && c.To != chinacrs.BD09 {
		log.Debug().
			Str("name", p.Name).
			Float64("lat", p.Lat).
			Float64("lon", p.Lon).
			Msg("Point outside China, coordinates unchanged")
	}

	log.Trace().
		Str("from", c.From.String()).
		Str("to", c.To.String()).
		Float64("lat", p.Lat).
		Float64("lon", p.Lon).
		Float64("out_lat", lat).
		Float64("out_lon", lon).
		Msg("Point converted")

	return Result{
		Name:   p.Name,
		From:   c.From,
		To:     c.To,
		Input:  Coordinate{Lat: p.Lat, Lon: p.Lon},
		Output: Coordinate{Lat: lat, Lon: lon},
	}
}
