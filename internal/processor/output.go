package processor

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/woozymasta/chinacrs/internal/config"
	"github.com/woozymasta/chinacrs/internal/geo"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Write encodes results in the given format. Precision applies to text output only.
func Write(w io.Writer, format string, precision int, results []Result) error {
	switch format {
	case config.FormatText:
		return writeText(w, precision, results)

	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)

	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()

	case config.FormatGeoJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(FeatureCollection(results))

	default:
		return fmt.Errorf("%w: %q", config.ErrInvalidFormat, format)
	}
}

func writeText(w io.Writer, precision int, results []Result) error {
	for _, r := range results {
		line := strconv.FormatFloat(r.Output.Lat, 'f', precision, 64) + "," +
			strconv.FormatFloat(r.Output.Lon, 'f', precision, 64)
		if r.Name != "" {
			line += "," + r.Name
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// FeatureCollection maps results to Point features positioned at the converted
// coordinates. The source position is kept in the properties.
func FeatureCollection(results []Result) geo.GeoJSONFeatureCollection {
	fc := geo.NewFeatureCollection(len(results))
	for _, r := range results {
		props := map[string]any{
			"crs":        r.To.String(),
			"source_crs": r.From.String(),
			"source":     []float64{r.Input.Lon, r.Input.Lat},
		}
		if r.Name != "" {
			props["name"] = r.Name
		}

		fc.Features = append(fc.Features, geo.NewPoint(r.Output.Lat, r.Output.Lon, props))
	}

	return fc
}

// WriteFile writes results to path, creating parent directories as needed.
func WriteFile(path, format string, precision int, results []Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
		}
	}()

	return Write(f, format, precision, results)
}
