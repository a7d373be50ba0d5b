package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/chinacrs"
	"github.com/woozymasta/chinacrs/internal/config"
	"github.com/woozymasta/chinacrs/internal/logger"
	"github.com/woozymasta/chinacrs/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string          `short:"c" long:"config"    env:"CONFIG_FILE" description:"Path to configuration file" default:"chinacrs.yaml"`
	From       chinacrs.System `short:"f" long:"from"      env:"FROM_CRS"    description:"Source coordinate system (wgs84, gcj02, bd09)"`
	To         chinacrs.System `short:"t" long:"to"        env:"TO_CRS"      description:"Target coordinate system (wgs84, gcj02, bd09)"`
	Input      string          `short:"i" long:"in"        description:"Input file with one lat,lon[,name] per line, '-' for stdin"`
	Output     string          `short:"o" long:"out"       description:"Output file path. Writes to stdout if empty"`
	Format     string          `short:"F" long:"format"    description:"Output format" choice:"text" choice:"json" choice:"yaml" choice:"geojson"`
	Precision  int             `short:"p" long:"precision" description:"Decimals in text output"`
	Exact      bool            `short:"e" long:"exact"     description:"Use the iterative inverse when converting to WGS-84"`

	Args struct {
		Points []string `positional-arg-name:"POINT" description:"Coordinate as lat,lon[,name]"`
	} `positional-args:"yes"`
}

const defaultConfigFile = "chinacrs.yaml"

var errNoPoints = errors.New("no points to convert")

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	if err := run(parser, &opts, os.Stdin, os.Stdout, stdinIsTerminal()); err != nil {
		log.Fatal().Err(err).Msg("Conversion failed")
	}
}

// run loads the configuration, merges explicitly set flags over it and
// converts every collected point.
func run(parser *flags.Parser, opts *Options, stdin io.Reader, stdout io.Writer, interactive bool) error {
	cfg, err := loadConfig(opts.ConfigFile)
	if err != nil {
		return err
	}

	if isSet(parser, "from") {
		cfg.From = &opts.From
	}
	if isSet(parser, "to") {
		cfg.To = &opts.To
	}
	if isSet(parser, "format") {
		cfg.Format = opts.Format
	}
	if isSet(parser, "precision") {
		cfg.Precision = opts.Precision
	}
	if opts.Exact {
		cfg.Exact = true
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	points, err := collectPoints(cfg, opts, stdin, interactive)
	if err != nil {
		return err
	}

	conv := processor.Converter{From: *cfg.From, To: *cfg.To, Exact: cfg.Exact}

	log.Debug().
		Str("from", conv.From.String()).
		Str("to", conv.To.String()).
		Bool("exact", conv.Exact).
		Int("points", len(points)).
		Msg("Starting conversion")

	results := make([]processor.Result, 0, len(points))
	for _, p := range points {
		results = append(results, conv.Convert(p))
	}

	if opts.Output == "" {
		return processor.Write(stdout, cfg.Format, cfg.Precision, results)
	}

	if err := processor.WriteFile(opts.Output, cfg.Format, cfg.Precision, results); err != nil {
		return fmt.Errorf("write %s: %w", opts.Output, err)
	}

	log.Info().
		Int("points", len(results)).
		Str("path", opts.Output).
		Str("format", cfg.Format).
		Msg("Points converted")

	return nil
}

// loadConfig tolerates a missing file only when the path is the default one.
func loadConfig(path string) (*config.Config, error) {
	if path != defaultConfigFile {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadOptional(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// collectPoints gathers points from the configuration, positional arguments
// and the input file or stdin, in that order.
func collectPoints(cfg *config.Config, opts *Options, stdin io.Reader, interactive bool) ([]processor.Point, error) {
	points := processor.PointsFromConfig(cfg)

	for _, arg := range opts.Args.Points {
		p, err := processor.ParsePoint(arg)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	switch {
	case opts.Input == "-":
		read, err := processor.ReadPoints(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		points = append(points, read...)

	case opts.Input != "":
		read, err := readPointsFile(opts.Input)
		if err != nil {
			return nil, err
		}
		points = append(points, read...)

	case len(points) == 0 && !interactive:
		read, err := processor.ReadPoints(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		points = append(points, read...)
	}

	if len(points) == 0 {
		return nil, errNoPoints
	}

	return points, nil
}

func readPointsFile(path string) ([]processor.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	// Explicitly ignore close error as it's a read-only operation
	defer func() { _ = f.Close() }()

	points, err := processor.ReadPoints(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return points, nil
}

// isSet reports whether an option without a default was given on the
// command line or through its environment variable.
func isSet(parser *flags.Parser, name string) bool {
	opt := parser.FindOptionByLongName(name)
	return opt != nil && opt.IsSet()
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
