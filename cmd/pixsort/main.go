// Command pixsort applies the pixel-sorting glitch filter to image files.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/glitchfx/pixsort"
	"github.com/glitchfx/pixsort/codec"
)

func main() {
	var (
		mode    = flag.String("mode", "bright", "sort mode: white, black, bright or dark")
		white   = flag.Int("white", int(pixsort.DefaultWhiteValue), "white threshold (signed packed color)")
		black   = flag.Int("black", int(pixsort.DefaultBlackValue), "black threshold (signed packed color)")
		bright  = flag.Int("bright", pixsort.DefaultBrightValue, "bright threshold (luminance 0-255)")
		dark    = flag.Int("dark", pixsort.DefaultDarkValue, "dark threshold (luminance 0-255)")
		preset  = flag.String("preset", "", "TOML preset file overriding mode and thresholds")
		output  = flag.String("o", "", "output file (default: <input>.sorted.png)")
		maxDim  = flag.Int("max", 0, "downscale so neither side exceeds this before sorting (0 = off)")
		quality = flag.Int("q", 90, "JPEG output quality")
		workers = flag.Int("workers", 1, "scanline worker goroutines (0 = GOMAXPROCS)")
		quiet   = flag.Bool("quiet", false, "suppress progress output")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] input...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if flag.NArg() > 1 && *output != "" {
		log.Fatal("-o cannot be combined with multiple inputs")
	}

	if *verbose {
		pixsort.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := buildConfig(*mode, *preset, int32(*white), int32(*black), *bright, *dark)
	if err != nil {
		log.Fatal(err)
	}

	// Ctrl-C cancels the sort; a partial image is never written.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for _, input := range flag.Args() {
		out := *output
		if out == "" {
			out = outputName(input)
		}
		if err := run(ctx, input, out, cfg, *maxDim, *quality, *workers, *quiet); err != nil {
			log.Fatalf("%s: %v", input, err)
		}
	}
}

// buildConfig assembles the sort configuration from flags, applying a
// preset file on top when one is given.
func buildConfig(mode, preset string, white, black int32, bright, dark int) (pixsort.Config, error) {
	m, err := pixsort.ParseMode(mode)
	if err != nil {
		return pixsort.Config{}, err
	}
	cfg := pixsort.Config{
		Mode:        m,
		WhiteValue:  white,
		BlackValue:  black,
		BrightValue: bright,
		DarkValue:   dark,
	}
	if preset == "" {
		return cfg, nil
	}
	return loadPreset(preset, cfg)
}

func run(ctx context.Context, input, output string, cfg pixsort.Config, maxDim, quality, workers int, quiet bool) error {
	pm, err := codec.Load(input)
	if err != nil {
		return err
	}

	if maxDim > 0 {
		fitted, err := codec.Fit(pm, maxDim, codec.FilterBilinear)
		if err != nil {
			return err
		}
		pm = fitted
	}

	opts := []pixsort.Option{
		pixsort.WithContext(ctx),
		pixsort.WithWorkers(workers),
	}
	if !quiet {
		opts = append(opts, pixsort.WithProgress(func(pct int, label string) {
			fmt.Fprintf(os.Stderr, "\r%s: %3d%% %-20s", input, pct, label)
		}))
	}

	sorted, err := pixsort.Sort(pm, cfg, opts...)
	if !quiet {
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		return err
	}

	if err := codec.Save(output, sorted, &codec.EncodeOptions{JPEGQuality: quality}); err != nil {
		return err
	}
	log.Printf("%s -> %s (%dx%d, mode %s)", input, output, sorted.Width(), sorted.Height(), cfg.Mode)
	return nil
}

// outputName derives the default output path: the input name with a
// .sorted.png suffix in place of its extension.
func outputName(input string) string {
	if i := strings.LastIndexByte(input, '.'); i > 0 {
		return input[:i] + ".sorted.png"
	}
	return input + ".sorted.png"
}
