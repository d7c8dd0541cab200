// Package main is the entry point for dungeontiles.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeontiles/internal/config"
	"github.com/samdwyer/dungeontiles/internal/ctxlog"
	"github.com/samdwyer/dungeontiles/internal/export"
	"github.com/samdwyer/dungeontiles/internal/gamedata"
	"github.com/samdwyer/dungeontiles/internal/mapsource"
	"github.com/samdwyer/dungeontiles/internal/telemetry"
	"github.com/samdwyer/dungeontiles/internal/tilemap"
	"github.com/samdwyer/dungeontiles/internal/viewer"
	"github.com/samdwyer/dungeontiles/internal/world"
)

const usage = `usage: dungeontiles [flags] [load|preview|generate|maps]

  load      resolve a map and write its tile records (default)
  preview   resolve a map and open the terminal viewer
  generate  print a generated sample layout
  maps      list the embedded sample maps

flags:
`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// .env is optional; variables may be set directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn(".env file not loaded", "error", err)
	}

	ctx := context.Background()

	telemetry.ConfigureHoneycomb()
	if telemetry.Enabled(os.LookupEnv) {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn("telemetry setup failed, continuing without tracing", "error", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error("telemetry shutdown failed", "error", err)
				}
			}()
		}
	}

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Error("dungeontiles failed", "error", err)
		os.Exit(1)
	}
}

// options are the command-line settings that are not part of config.Config.
type options struct {
	configPath string
	verbose    bool
	seed       int64
	width      int
	height     int
}

// run parses args and executes one command, writing results to stdout.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	var opts options
	flagCfg := config.Default()

	fs := flag.NewFlagSet("dungeontiles", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.configPath, "config", "", "HCL config file")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	fs.StringVar(&flagCfg.Map, "map", flagCfg.Map, `map file, or "embed:<name>" for a sample map`)
	fs.Float64Var(&flagCfg.Scale, "scale", flagCfg.Scale, "world units per grid cell")
	fs.IntVar(&flagCfg.Workers, "workers", flagCfg.Workers, "resolver goroutines (0 resolves inline)")
	fs.StringVar(&flagCfg.Format, "format", flagCfg.Format, "output format: json or table")
	fs.Int64Var(&opts.seed, "seed", 0, "generator seed (0 picks one from the clock)")
	fs.IntVar(&opts.width, "width", world.DefaultWidth, "generated layout width")
	fs.IntVar(&opts.height, "height", world.DefaultHeight, "generated layout height")

	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	ctx = ctxlog.WithLogger(ctx, logger)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	// Explicit flags win over file and environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "map":
			cfg.Map = flagCfg.Map
		case "scale":
			cfg.Scale = flagCfg.Scale
		case "workers":
			cfg.Workers = flagCfg.Workers
		case "format":
			cfg.Format = flagCfg.Format
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	command := "load"
	if fs.NArg() > 0 {
		command = fs.Arg(0)
	}

	switch command {
	case "load":
		return runLoad(ctx, stdout, cfg)
	case "preview":
		return runPreview(ctx, cfg)
	case "generate":
		return runGenerate(ctx, stdout, opts)
	case "maps":
		return runMaps(stdout)
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func resolve(ctx context.Context, cfg config.Config) (string, []tilemap.TileRecord, error) {
	text, err := mapsource.Open(cfg.Map)
	if err != nil {
		return "", nil, err
	}
	records := tilemap.LoadMap(ctx, text, cfg.Scale, cfg.ResolveOptions()...)
	ctxlog.FromContext(ctx).Info("map loaded",
		"map", cfg.Map,
		"scale", cfg.Scale,
		"summary", tilemap.Summarize(records).String(),
	)
	return text, records, nil
}

func runLoad(ctx context.Context, stdout io.Writer, cfg config.Config) error {
	_, records, err := resolve(ctx, cfg)
	if err != nil {
		return err
	}
	return export.Write(stdout, cfg.Format, cfg.Map, cfg.Scale, records)
}

func runPreview(ctx context.Context, cfg config.Config) error {
	text, records, err := resolve(ctx, cfg)
	if err != nil {
		return err
	}
	tileset, err := gamedata.LoadTilesetRegistry()
	if err != nil {
		return fmt.Errorf("failed to load tileset: %w", err)
	}

	v, err := viewer.New(viewer.Config{
		Title:   cfg.Map,
		Lines:   strings.Split(strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n"), "\n"),
		Records: records,
		Scale:   cfg.Scale,
	}, tileset)
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	return v.Run(ctx)
}

func runGenerate(ctx context.Context, stdout io.Writer, opts options) error {
	if opts.width < 3 || opts.height < 3 {
		return fmt.Errorf("layout must be at least 3x3, got %dx%d", opts.width, opts.height)
	}
	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d := world.NewDungeon(opts.width, opts.height, rand.New(rand.NewSource(seed)))
	d.Generate(ctx)

	ctxlog.FromContext(ctx).Info("layout generated", "seed", seed, "rooms", len(d.Rooms))
	_, err := io.WriteString(stdout, d.Text())
	return err
}

func runMaps(stdout io.Writer) error {
	names, err := mapsource.EmbeddedNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintf(stdout, "%s%s\n", mapsource.EmbedPrefix, name)
	}
	return nil
}
