// Command create builds a signed distance field font atlas.
//
// Usage:
//
//	create [flags] <fontfile> <fontsize> <big_margin> <small_width> [blockname...]
//
// The font is rendered at fontsize pixels with big_margin pixels around
// each glyph, then reduced to a small_width square distance field. Block
// names select the codepoints (see -blocks). Outputs are written next to
// each other as <font>.dds, <font>.bin and, unless -png=false, the
// high-resolution <font>.png.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/blocks"
	"github.com/gogpu/fontatlas/dds"
)

const usage = "Usage:  create [flags] <fontfile> <fontsize> <big_margin> <small_width> [blockname...]"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

// run builds the atlas described by args. Usage and block listings go to
// stdout; a nil error with no output files means only usage was printed.
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(stdout)
	var (
		writePNG   = fs.Bool("png", true, "also write the high-resolution bitmap as <font>.png")
		parser     = fs.String("parser", "", "font parser backend (ximage or gotext)")
		outDir     = fs.String("out", ".", "output directory")
		verbose    = fs.Bool("v", false, "debug logging")
		listBlocks = fs.Bool("blocks", false, "list the known block names and exit")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *listBlocks {
		for _, name := range blocks.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	args = fs.Args()
	if len(args) < 4 {
		fmt.Fprintln(stdout, usage)
		return nil
	}

	fontSize, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		return fmt.Errorf("invalid fontsize %q: %w", args[1], err)
	}
	margin, err := strconv.ParseUint(args[2], 10, 31)
	if err != nil {
		return fmt.Errorf("invalid big_margin %q: %w", args[2], err)
	}
	width, err := strconv.ParseUint(args[3], 10, 31)
	if err != nil {
		return fmt.Errorf("invalid small_width %q: %w", args[3], err)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	fontatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := fontatlas.Config{
		FontPath:    args[0],
		FontSize:    float32(fontSize),
		Margin:      int(margin),
		Width:       int(width),
		WriteBigPNG: *writePNG,
		OutputDir:   *outDir,
		Ranges:      blocks.Select(args[4:]),
	}

	atlas, texture, err := fontatlas.Build(cfg, fontatlas.WithParser(*parser))
	if err != nil {
		return fmt.Errorf("failed to build atlas: %w", err)
	}

	// The texture goes first; a reader that finds the .bin can rely on it.
	stem := filepath.Join(*outDir, atlas.FontName)
	if err := dds.WriteFile(stem+".dds", texture); err != nil {
		return fmt.Errorf("failed to save texture: %w", err)
	}
	if err := atlas.WriteFile(stem + ".bin"); err != nil {
		return fmt.Errorf("failed to save atlas: %w", err)
	}

	fmt.Fprintf(stdout, "Atlas saved to %s.bin and %s.dds (%d glyphs, %dx%d)\n",
		stem, stem, len(atlas.Map), cfg.Width, cfg.Width)
	return nil
}
