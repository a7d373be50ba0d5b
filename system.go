package chinacrs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSystem is returned when a coordinate system name is not recognized.
var ErrUnknownSystem = errors.New("unknown coordinate system")

// System identifies a coordinate reference system.
type System int

// Supported coordinate systems.
const (
	WGS84 System = iota
	GCJ02
	BD09
)

var systemNames = map[string]System{
	"wgs84":  WGS84,
	"wgs-84": WGS84,
	"gps":    WGS84,
	"gcj02":  GCJ02,
	"gcj-02": GCJ02,
	"mars":   GCJ02,
	"bd09":   BD09,
	"bd-09":  BD09,
	"baidu":  BD09,
}

// ParseSystem resolves a case-insensitive system name such as "wgs84",
// "gcj-02" or "baidu".
func ParseSystem(name string) (System, error) {
	if s, ok := systemNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
}

func (s System) String() string {
	switch s {
	case WGS84:
		return "wgs84"
	case GCJ02:
		return "gcj02"
	case BD09:
		return "bd09"
	default:
		return fmt.Sprintf("System(%d)", int(s))
	}
}

// Valid reports whether s is one of the supported systems.
func (s System) Valid() bool {
	return s == WGS84 || s == GCJ02 || s == BD09
}

// MarshalText implements encoding.TextMarshaler.
func (s System) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSystem, int(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *System) UnmarshalText(text []byte) error {
	parsed, err := ParseSystem(string(text))
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}

// UnmarshalFlag lets System be used directly as a go-flags option.
func (s *System) UnmarshalFlag(value string) error {
	return s.UnmarshalText([]byte(value))
}

// Convert converts a coordinate from one system to another. Paths ending in
// WGS-84 use the first-order inverse. Equal or unsupported systems return the
// input unchanged.
func Convert(from, to System, lat, lon float64) (float64, float64) {
	return convert(from, to, lat, lon, false)
}

// ConvertExact is Convert with the iterative inverse on paths ending in WGS-84.
func ConvertExact(from, to System, lat, lon float64) (float64, float64) {
	return convert(from, to, lat, lon, true)
}

func convert(from, to System, lat, lon float64, exact bool) (float64, float64) {
	switch {
	case from == to:
		return lat, lon
	case from == WGS84 && to == GCJ02:
		return WGSToGCJ(lat, lon)
	case from == WGS84 && to == BD09:
		return WGSToBD(lat, lon)
	case from == GCJ02 && to == WGS84:
		if exact {
			return GCJToWGSExact(lat, lon)
		}
		return GCJToWGS(lat, lon)
	case from == GCJ02 && to == BD09:
		return GCJToBD(lat, lon)
	case from == BD09 && to == WGS84:
		if exact {
			return BDToWGSExact(lat, lon)
		}
		return BDToWGS(lat, lon)
	case from == BD09 && to == GCJ02:
		return BDToGCJ(lat, lon)
	default:
		return lat, lon
	}
}
